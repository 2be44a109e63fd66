package analytics

// friendlyLabels maps recognized metric names to their user-facing
// labels. Unknown names pass through untransformed.
var friendlyLabels = map[string]string{
	"pageviews":        "Page views",
	"unique_visitors":  "Unique visitors",
	"conversions":      "Conversions",
	"conversion_rate":  "Conversion rate",
	"bounce_rate":      "Bounce rate",
	"avg_session_secs": "Avg. time on page",
	"signups":          "Sign-ups",
	"revenue":          "Revenue",
}

// FriendlyLabel returns the user-facing label for a metric name.
func FriendlyLabel(name string) string {
	if label, ok := friendlyLabels[name]; ok {
		return label
	}
	return name
}
