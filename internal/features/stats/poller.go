package stats

import (
	"context"
	"time"
)

// Poller периодически дергает refresh, пока контекст жив. Заменяет
// неотменяемый интервал из браузерной версии: закрытие сессии отменяет
// контекст и детерминированно останавливает опрос.
type Poller struct {
	interval time.Duration
	refresh  func(ctx context.Context)
}

func NewPoller(interval time.Duration, refresh func(ctx context.Context)) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{interval: interval, refresh: refresh}
}

// Run блокирует до отмены контекста. Первый refresh выполняется сразу,
// дальше — раз в interval. Перекрывающиеся медленные refresh не
// дедуплицируются: запросы идемпотентные чтения.
func (p *Poller) Run(ctx context.Context) {
	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}
