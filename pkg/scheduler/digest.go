package scheduler

import (
	"sort"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/pkg/mailer"
	"github.com/loupe-hq/loupe/pkg/models"
)

// buildDigests groups completed scheduled scans into per-user digest
// pages. Only pages whose scan actually observed something (new changes
// or reverts) are included; a page with multiple scans in the window
// keeps the newest. Input must be ordered oldest first.
func buildDigests(completed []*ent.Analysis) map[string][]mailer.DigestPage {
	type key struct{ userID, pageID string }
	latest := make(map[key]mailer.DigestPage)

	for _, a := range completed {
		if a.ChangesSummary == nil {
			continue
		}
		var summary models.ChangesSummary
		if err := models.FromMap(a.ChangesSummary, &summary); err != nil {
			continue
		}
		if len(summary.Changes) == 0 && len(summary.RevertedChangeIDs) == 0 {
			continue
		}
		latest[key{a.UserID, a.PageID}] = mailer.DigestPage{
			URL:       a.URL,
			Verdict:   summary.Verdict,
			Validated: summary.Progress.Validated,
			Watching:  summary.Progress.Watching,
			Open:      summary.Progress.Open,
		}
	}

	digests := make(map[string][]mailer.DigestPage)
	for k, p := range latest {
		digests[k.userID] = append(digests[k.userID], p)
	}
	for userID := range digests {
		pages := digests[userID]
		sort.Slice(pages, func(i, j int) bool { return pages[i].URL < pages[j].URL })
	}
	return digests
}
