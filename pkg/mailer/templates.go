package mailer

import (
	"fmt"
	"html"
	"strings"
)

// buildChangeDetectedHTML renders the "new change is being watched"
// notification body.
func buildChangeDetectedHTML(input ChangeDetectedInput, dashboardURL string) (subject, body string) {
	subject = fmt.Sprintf("Change detected on %s", input.PageURL)

	var b strings.Builder
	b.WriteString("<h2>We spotted a change on your page</h2>")
	fmt.Fprintf(&b, "<p><strong>%s</strong></p>", html.EscapeString(input.Element))
	if input.Description != "" {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(input.Description))
	}
	fmt.Fprintf(&b, "<p>Page: <a href=%q>%s</a></p>",
		input.PageURL, html.EscapeString(input.PageURL))
	b.WriteString("<p>We are now watching this change and will report back once enough data has accumulated to judge its impact.</p>")
	writeDashboardLink(&b, dashboardURL, input.PageID)
	return subject, b.String()
}

// buildVerdictHTML renders the checkpoint verdict notification body.
func buildVerdictHTML(input VerdictInput, dashboardURL string) (subject, body string) {
	switch input.Verdict {
	case "validated":
		subject = fmt.Sprintf("Your change on %s is working", input.PageURL)
	case "regressed":
		subject = fmt.Sprintf("Your change on %s may be hurting", input.PageURL)
	default:
		subject = fmt.Sprintf("Verdict on your change on %s", input.PageURL)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Day %d verdict: %s</h2>", input.HorizonDays, html.EscapeString(input.Verdict))
	fmt.Fprintf(&b, "<p><strong>%s</strong></p>", html.EscapeString(input.Element))
	if input.Reasoning != "" {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(input.Reasoning))
	}
	fmt.Fprintf(&b, "<p>Page: <a href=%q>%s</a></p>",
		input.PageURL, html.EscapeString(input.PageURL))
	writeDashboardLink(&b, dashboardURL, input.PageID)
	return subject, b.String()
}

// buildDigestHTML renders the daily digest body.
func buildDigestHTML(input DigestInput, dashboardURL string) (subject, body string) {
	subject = fmt.Sprintf("Your daily page report (%d pages scanned)", len(input.Pages))

	var b strings.Builder
	b.WriteString("<h2>Today's scans</h2>")
	for _, p := range input.Pages {
		fmt.Fprintf(&b, "<h3><a href=%q>%s</a></h3>", p.URL, html.EscapeString(p.URL))
		if p.Verdict != "" {
			fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(p.Verdict))
		}
		fmt.Fprintf(&b, "<p>%d validated &middot; %d watching &middot; %d open suggestions</p>",
			p.Validated, p.Watching, p.Open)
	}
	writeDashboardLink(&b, dashboardURL, "")
	return subject, b.String()
}

func writeDashboardLink(b *strings.Builder, dashboardURL, pageID string) {
	if dashboardURL == "" {
		return
	}
	link := dashboardURL
	if pageID != "" {
		link = fmt.Sprintf("%s/pages/%s", strings.TrimSuffix(dashboardURL, "/"), pageID)
	}
	fmt.Fprintf(b, "<p><a href=%q>Open your dashboard</a></p>", link)
}
