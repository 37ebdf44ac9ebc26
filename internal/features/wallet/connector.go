package wallet

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/xssnick/tonutils-go/address"

	"hatch-egg-webapp/internal/common/logger"
)

// Provider — внешний мост подключения кошелька (TON Connect). Его
// внутренности (реконнекты, мосты) вне нашей зоны ответственности.
type Provider interface {
	// Ready сообщает, загружен ли провайдер.
	Ready() bool
	// RestoreConnection возвращает ранее подключенный адрес, если он есть.
	RestoreConnection(ctx context.Context) (string, bool)
	// Subscribe регистрирует колбэк смены статуса: непустая строка — адрес
	// подключенного кошелька, пустая — отключение.
	Subscribe(onChange func(rawAddress string)) (unsubscribe func())
}

// Connector отслеживает максимум один подключенный адрес за сессию.
type Connector struct {
	provider   Provider
	retryDelay time.Duration

	mu          sync.Mutex
	initStarted bool
	initialized bool
	closed      bool
	addr        *address.Address
	unsubscribe func()
}

func NewConnector(provider Provider, retryDelay time.Duration) *Connector {
	if retryDelay <= 0 {
		retryDelay = 500 * time.Millisecond
	}
	return &Connector{provider: provider, retryDelay: retryDelay}
}

// Init лениво инициализирует подключение при первом открытии профиля;
// запускается не более одного раза за жизнь сессии. Если провайдер еще не
// готов — одна повторная попытка через retryDelay, дальше тихо сдаемся
// (пользователю это не показывается).
func (c *Connector) Init(ctx context.Context) {
	c.mu.Lock()
	if c.initStarted {
		c.mu.Unlock()
		return
	}
	c.initStarted = true
	c.mu.Unlock()

	if c.tryInit(ctx) {
		return
	}

	go func() {
		select {
		case <-ctx.Done():
			return
		case <-time.After(c.retryDelay):
		}
		if !c.tryInit(ctx) {
			logger.Warn().Msg("Wallet provider not available, giving up")
		}
	}()
}

func (c *Connector) tryInit(ctx context.Context) bool {
	if c.provider == nil || !c.provider.Ready() {
		return false
	}

	c.mu.Lock()
	if c.initialized || c.closed {
		c.mu.Unlock()
		return true
	}
	c.initialized = true
	c.mu.Unlock()

	if raw, ok := c.provider.RestoreConnection(ctx); ok {
		c.onStatusChange(raw)
	}
	unsubscribe := c.provider.Subscribe(c.onStatusChange)

	// Сессия могла закрыться, пока отложенная инициализация подписывалась:
	// тогда подписка снимается сразу, иначе Close ее не увидит.
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		unsubscribe()
		return true
	}
	c.unsubscribe = unsubscribe
	c.mu.Unlock()

	logger.Info().Msg("Wallet connector initialized")
	return true
}

// onStatusChange применяет событие провайдера: адрес нормализуется через
// tonutils; пустая строка означает отключение.
func (c *Connector) onStatusChange(raw string) {
	if raw == "" {
		c.mu.Lock()
		c.addr = nil
		c.mu.Unlock()
		logger.Info().Msg("TON wallet disconnected")
		return
	}

	parsed, err := parseAddress(raw)
	if err != nil {
		logger.Warn().Err(err).Str("address", raw).Msg("Ignoring invalid wallet address")
		return
	}

	c.mu.Lock()
	c.addr = parsed
	c.mu.Unlock()
	logger.Info().Str("address", parsed.String()).Msg("TON wallet connected")
}

// Address возвращает нормализованный адрес подключенного кошелька.
func (c *Connector) Address() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.addr == nil {
		return "", false
	}
	return c.addr.String(), true
}

// Disconnect сбрасывает адрес. Переподключение — забота провайдера.
func (c *Connector) Disconnect() {
	c.onStatusChange("")
}

// Close снимает подписку на статус. Инициализация, завершающаяся после
// Close, отписывается сама.
func (c *Connector) Close() {
	c.mu.Lock()
	c.closed = true
	unsub := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

// parseAddress принимает и friendly-, и raw-форму адреса.
func parseAddress(raw string) (*address.Address, error) {
	if strings.Contains(raw, ":") {
		return address.ParseRawAddr(raw)
	}
	return address.ParseAddr(raw)
}
