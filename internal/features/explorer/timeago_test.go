package explorer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeAgoBoundaries(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"59 seconds", 59 * time.Second, "just now"},
		{"exactly a minute", 60 * time.Second, "1 minute ago"},
		{"two minutes", 2 * time.Minute, "2 minutes ago"},
		{"under an hour", 59 * time.Minute, "59 minutes ago"},
		{"exactly an hour", time.Hour, "1 hour ago"},
		{"several hours", 5 * time.Hour, "5 hours ago"},
		{"under a day", 23 * time.Hour, "23 hours ago"},
		{"exactly a day", 24 * time.Hour, "1 day ago"},
		{"several days", 72 * time.Hour, "3 days ago"},
		{"zero", 0, "just now"},
		{"future timestamp", -time.Minute, "just now"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TimeAgo(now, now.Add(-tc.ago)))
		})
	}
}
