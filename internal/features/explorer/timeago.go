package explorer

import (
	"fmt"
	"time"
)

// TimeAgo возвращает относительное время с гранулярностью день/час/минута,
// иначе "just now". Считается на нашей стороне от абсолютной метки апстрима.
func TimeAgo(now, t time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	case hours > 0:
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case minutes > 0:
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	default:
		return "just now"
	}
}

func plural(n int64) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// формат меток времени в карточках, как toLocaleString('en-US')
const timestampLayout = "1/2/2006, 3:04:05 PM"

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Format(timestampLayout)
}
