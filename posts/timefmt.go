package posts

import (
	"fmt"
	"time"
)

// RelativeTimeLabel converts a timestamp into the feed's human-readable age
// label. The function is pure in (ts, now): under a minute is "Just now", under
// an hour "{m}m ago", under a day "{h}h ago", under a week "{d}d ago", and
// anything older falls back to the absolute date.
func RelativeTimeLabel(ts, now time.Time) string {
	diff := now.Sub(ts)

	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	default:
		// "1/2/2006" renders as M/D/YYYY without zero padding.
		return ts.Format("1/2/2006")
	}
}
