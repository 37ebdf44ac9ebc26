package stats

import (
	"math"
	"time"
)

// Animation — плавный переход отображаемого счетчика очков от Start к End
// за Duration. Значение семплируется на каждом рендере; после Duration
// переход зафиксирован на End.
type Animation struct {
	Start     int64
	End       int64
	StartedAt time.Time
	Duration  time.Duration
}

func NewAnimation(start, end int64, startedAt time.Time, duration time.Duration) Animation {
	if duration <= 0 {
		duration = time.Second
	}
	return Animation{Start: start, End: end, StartedAt: startedAt, Duration: duration}
}

// ValueAt возвращает отображаемое значение в момент now. Кубический
// ease-out: displayed(t) = start + (end-start) * (1 - (1-t)^3), t clamped
// к [0, 1].
func (a Animation) ValueAt(now time.Time) int64 {
	elapsed := now.Sub(a.StartedAt)
	if elapsed <= 0 {
		return a.Start
	}
	if elapsed >= a.Duration {
		return a.End
	}

	t := float64(elapsed) / float64(a.Duration)
	easeOut := 1 - math.Pow(1-t, 3)
	return int64(math.Floor(float64(a.Start) + float64(a.End-a.Start)*easeOut))
}

// Done сообщает, завершен ли переход.
func (a Animation) Done(now time.Time) bool {
	return now.Sub(a.StartedAt) >= a.Duration
}
