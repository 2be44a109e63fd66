package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/loupe-hq/loupe/pkg/fingerprint"
)

// Prompt builders for each gateway task. Context payloads are embedded
// as JSON so field names stay stable across prompt edits.

const auditSystemPrompt = `You are a conversion optimization auditor reviewing website page screenshots.
Analyze the page and produce findings with predicted impact ranges.
Respond with a single JSON object matching this shape:
{
  "findingsCount": <int>,
  "verdict": "<one-line overall verdict>",
  "verdictContext": "<supporting context>",
  "projectedImpactRange": "<e.g. 5-12%>",
  "summary": "<short paragraph>",
  "findings": [
    {
      "id": "<stable finding id>",
      "title": "...",
      "elementType": "...",
      "impact": "high|medium|low",
      "currentValue": "...",
      "suggestion": "...",
      "prediction": {"range": "N-M%", "friendlyText": "..."},
      "assumption": "...",
      "methodology": "..."
    }
  ],
  "headlineRewrite": {"current": "...", "suggested": "...", "reasoning": "..."}
}
Omit headlineRewrite if the current headline is already strong.
Respond with JSON only, no prose around it.`

func auditUserPrompt(url string, hasMobile bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Audit the page at %s.\n", url)
	if hasMobile {
		b.WriteString("The first image is the desktop rendering, the second is mobile.\n")
	} else {
		b.WriteString("The image is the desktop rendering. No mobile capture is available.\n")
	}
	b.WriteString("Identify the findings most likely to move conversion and predict their impact.")
	return b.String()
}

const quickDiffSystemPrompt = `You compare two captures of the same web page and report visual or copy deltas.
Only report real differences between the captures. Do not invent changes.
Respond with a single JSON object:
{
  "hasChanges": <bool>,
  "changes": [
    {
      "element": "<what changed, e.g. 'hero headline'>",
      "scope": "element|section|page",
      "before": "<state in the baseline capture>",
      "after": "<state in the current capture>",
      "description": "<one sentence>",
      "matched_change_id": "<id from the tracked list, or omit>",
      "match_confidence": <0.0-1.0, only with matched_change_id>,
      "match_rationale": "<why it matches, only with matched_change_id>"
    }
  ]
}
matched_change_id MUST be an id from the tracked changes list verbatim; never fabricate one.
Respond with JSON only.`

func quickDiffUserPrompt(url string, hasMobilePair bool, watching []fingerprint.Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Compare captures of %s.\n", url)
	if hasMobilePair {
		b.WriteString("Images in order: baseline desktop, current desktop, baseline mobile, current mobile.\n")
	} else {
		b.WriteString("Images in order: baseline desktop, current desktop.\n")
	}
	writeTrackedChanges(&b, watching)
	return b.String()
}

const postAnalysisSystemPrompt = `You maintain the change chronicle for a tracked web page.
Given the latest audit, the previous chronicle, and the page captures, produce the updated chronicle.
Respond with a single JSON object:
{
  "verdict": "...",
  "verdictContext": "...",
  "changes": [ {"element", "scope", "before", "after", "description", "matched_change_id", "match_confidence", "match_rationale"} ],
  "suggestions": [ {"title", "element", "suggestedFix", "impact"} ],
  "running_summary": "<rolling narrative of the page's trajectory>",
  "observations": [ {"changeId": "<tracked change id>", "text": "..."} ],
  "revertedChangeIds": [ "<tracked change id>" ]
}
Rules:
- matched_change_id and every id in revertedChangeIds and observations MUST come from the tracked changes list verbatim.
- revertedChangeIds is for tracked changes whose before-state is visibly back on the page.
- Do not include a progress section; it is computed elsewhere.
Respond with JSON only.`

func postAnalysisUserPrompt(in *PostAnalysisInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Page: %s\n", in.URL)
	if in.PageFocus != "" {
		fmt.Fprintf(&b, "The page owner's stated metric focus: %s\n", in.PageFocus)
	}
	if in.DeployContext != "" {
		fmt.Fprintf(&b, "This scan was triggered by %s\n", in.DeployContext)
	}
	if in.BaselineImageURL != "" {
		b.WriteString("Images in order: baseline capture, current capture.\n")
	} else {
		b.WriteString("One image: the current capture.\n")
	}
	if in.Audit != nil {
		b.WriteString("\nLatest audit:\n")
		writeJSON(&b, in.Audit)
	}
	if in.PreviousSummary != nil {
		b.WriteString("\nPrevious chronicle:\n")
		writeJSON(&b, in.PreviousSummary)
	}
	if len(in.PriorSuggestions) > 0 {
		b.WriteString("\nPreviously suggested actions:\n")
		writeJSON(&b, in.PriorSuggestions)
	}
	writeTrackedChanges(&b, in.WatchingChanges)
	if len(in.ChangeHistories) > 0 {
		b.WriteString("\nEvidence gathered for the tracked changes (hypotheses, checkpoint verdicts, owner feedback):\n")
		writeJSON(&b, in.ChangeHistories)
	}
	return b.String()
}

const assessmentSystemPrompt = `You assess whether a tracked page change improved, regressed, or left its page's performance unchanged.
Base your verdict on the metric deltas provided. Treat moves inside a small band around zero as neutral.
If the metrics are missing or contradictory, say inconclusive.
Respond with a single JSON object:
{"assessment": "improved|regressed|neutral|inconclusive", "confidence": <0.0-1.0>, "reasoning": "<short explanation>"}
Respond with JSON only.`

func assessmentUserPrompt(in *AssessmentInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Change: %s\n", in.Element)
	fmt.Fprintf(&b, "Before: %s\nAfter: %s\n", in.Before, in.After)
	fmt.Fprintf(&b, "Horizon: %d days since the change was detected.\n", in.HorizonDays)
	if in.PageFocus != "" {
		fmt.Fprintf(&b, "The page owner's stated metric focus: %s\n", in.PageFocus)
	}
	b.WriteString("\nMetric deltas (before window vs after window):\n")
	writeJSON(&b, in.Metrics)
	if len(in.PriorCheckpoints) > 0 {
		b.WriteString("\nEarlier checkpoint verdicts for this change:\n")
		writeJSON(&b, in.PriorCheckpoints)
	}
	if len(in.FeedbackNotes) > 0 {
		b.WriteString("\nOwner feedback on this change:\n")
		for _, note := range in.FeedbackNotes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}
	return b.String()
}

const narrativeSystemPrompt = `You write the strategy narrative for a tracked web page: a short, direct read on where the page is heading and what to do next.
Respond with a single JSON object:
{
  "strategy_narrative": "<2-4 sentences>",
  "running_summary": "<updated rolling summary>",
  "observations": [ {"changeId": "<tracked change id>", "text": "..."} ]
}
Every changeId MUST come from the progress lists provided. Respond with JSON only.`

func narrativeUserPrompt(in *NarrativeInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Page: %s\n", in.URL)
	b.WriteString("\nCurrent progress state:\n")
	writeJSON(&b, in.Progress)
	if in.RunningSummary != "" {
		fmt.Fprintf(&b, "\nPrevious running summary:\n%s\n", in.RunningSummary)
	}
	if len(in.RecentObservations) > 0 {
		b.WriteString("\nRecent assessor observations:\n")
		writeJSON(&b, in.RecentObservations)
	}
	return b.String()
}

func writeTrackedChanges(b *strings.Builder, watching []fingerprint.Candidate) {
	if len(watching) == 0 {
		b.WriteString("\nNo changes are currently tracked for this page.\n")
		return
	}
	b.WriteString("\nTracked changes (the only valid ids for matching):\n")
	writeJSON(b, watching)
}

func writeJSON(b *strings.Builder, v any) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		b.WriteString("(unavailable)\n")
		return
	}
	b.Write(raw)
	b.WriteByte('\n')
}
