package app

import (
	"context"
	"sync"
	"time"

	"hatch-egg-webapp/internal/features/explorer"
	"hatch-egg-webapp/internal/features/stats"
	"hatch-egg-webapp/internal/features/tasks"
	"hatch-egg-webapp/internal/features/wallet"
	"hatch-egg-webapp/internal/platform/eggchain"
)

// Services — зависимости сессионного контроллера.
type Services struct {
	Stats    *stats.Service
	Tasks    *tasks.Service
	Explorer *explorer.Controller

	// WalletProvider может быть nil: кошелек тогда просто не
	// инициализируется, профиль продолжает работать.
	WalletProvider wallet.Provider

	StatsPollInterval   time.Duration
	WalletInitRetry     time.Duration
	CounterAnimDuration time.Duration
}

// Session — состояние одного пользователя мини-аппа: текущая страница,
// очки с анимацией счетчика, задание на подписку, кошелек и область
// explorer. Все мутации — под мьютексом; фоновый поллер статистики живет,
// пока жив контекст сессии.
type Session struct {
	UserID int64

	mu       sync.Mutex
	page     Page
	stats    *eggchain.Stats
	points   int64
	anim     stats.Animation
	notices  []string
	lastSeen time.Time

	task         *tasks.State
	walletBridge *wallet.Bridge
	walletC      *wallet.Connector
	explorer     *explorer.Region

	svc          *Services
	animDuration time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

func newSession(userID int64, svc *Services, now time.Time) *Session {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Session{
		UserID:       userID,
		page:         PageHome,
		task:         &tasks.State{},
		explorer:     explorer.NewRegion(),
		svc:          svc,
		animDuration: svc.CounterAnimDuration,
		lastSeen:     now,
		ctx:          ctx,
		cancel:       cancel,
	}
	// Провайдер кошелька либо задан извне (тесты), либо это HTTP-мост,
	// который кормит клиент мини-аппа.
	if svc.WalletProvider != nil {
		s.walletC = wallet.NewConnector(svc.WalletProvider, svc.WalletInitRetry)
	} else {
		s.walletBridge = wallet.NewBridge()
		s.walletC = wallet.NewConnector(s.walletBridge, svc.WalletInitRetry)
	}

	poller := stats.NewPoller(svc.StatsPollInterval, s.refreshStats)
	go poller.Run(ctx)

	return s
}

// refreshStats перечитывает статистику и запускает переход счетчика от
// текущего отображаемого значения к новому. Очки никогда не
// инкрементируются локально, только пересчитываются из свежего ответа.
func (s *Session) refreshStats(ctx context.Context) {
	data, points := s.svc.Stats.Load(ctx, s.UserID)

	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = data
	if points != s.points {
		from := s.anim.ValueAt(now)
		s.anim = stats.NewAnimation(from, points, now, s.animDuration)
		s.points = points
	}
}

// RefreshStats форсирует внеочередное перечитывание статистики (например,
// после начисления награды за задание).
func (s *Session) RefreshStats(ctx context.Context) {
	s.refreshStats(ctx)
}

// StatsView — снимок страницы статистики для рендера.
type StatsView struct {
	Points          int64 `json:"points"`
	DisplayedPoints int64 `json:"displayed_points"`
	Animating       bool  `json:"animating"`
	MyEggsHatched   int64 `json:"my_eggs_hatched"`
	HatchedByMe     int64 `json:"hatched_by_me"`
	AvailableEggs   int64 `json:"available_eggs"`
	Degraded        bool  `json:"degraded,omitempty"`
}

// Stats возвращает текущие счетчики; отображаемые очки семплируются на
// момент вызова.
func (s *Session) Stats(now time.Time) StatsView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := StatsView{
		Points:          s.points,
		DisplayedPoints: s.anim.ValueAt(now),
		Animating:       !s.anim.Done(now),
	}
	if s.stats == nil {
		v.Degraded = true
		return v
	}
	v.MyEggsHatched = s.stats.MyEggsHatched
	v.HatchedByMe = s.stats.HatchedByMe
	v.AvailableEggs = stats.AvailableEggs(s.stats)
	return v
}

// Task возвращает состояние задания на подписку.
func (s *Session) Task() *tasks.State {
	return s.task
}

// Wallet возвращает коннектор кошелька сессии.
func (s *Session) Wallet() *wallet.Connector {
	return s.walletC
}

// WalletBridge возвращает HTTP-мост провайдера кошелька; nil, если
// провайдер задан извне.
func (s *Session) WalletBridge() *wallet.Bridge {
	return s.walletBridge
}

// Explorer возвращает область результатов explorer этой сессии.
func (s *Session) Explorer() *explorer.Region {
	return s.explorer
}

// Context — контекст жизни сессии; отменяется при закрытии.
func (s *Session) Context() context.Context {
	return s.ctx
}

// PushNotice ставит в очередь одноразовое уведомление (награда за
// задание, пришедшая из отложенной перепроверки).
func (s *Session) PushNotice(text string) {
	if text == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, text)
}

// TakeNotices забирает накопленные уведомления; повторный вызов вернет
// пустой срез.
func (s *Session) TakeNotices() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.notices
	s.notices = nil
	return n
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}

// Close останавливает поллер и отписывает кошелек.
func (s *Session) Close() {
	s.cancel()
	if s.walletC != nil {
		s.walletC.Close()
	}
}
