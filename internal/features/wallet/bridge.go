package wallet

import (
	"context"
	"sync"
)

// Bridge — серверная сторона TON Connect. Клиент мини-аппа сообщает по
// HTTP о готовности провайдера и сменах статуса кошелька; Bridge
// транслирует их коннектору через интерфейс Provider. Один Bridge на
// сессию.
type Bridge struct {
	mu       sync.Mutex
	ready    bool
	restored string
	subs     map[int]func(string)
	nextID   int
}

func NewBridge() *Bridge {
	return &Bridge{subs: make(map[int]func(string))}
}

// SetReady отмечает провайдер загруженным; restored — ранее подключенный
// адрес, если клиент его восстановил.
func (b *Bridge) SetReady(restored string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ready = true
	b.restored = restored
}

// Publish рассылает смену статуса подписчикам. Пустой адрес означает
// отключение.
func (b *Bridge) Publish(rawAddress string) {
	b.mu.Lock()
	b.restored = rawAddress
	subs := make([]func(string), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	b.mu.Unlock()

	for _, fn := range subs {
		fn(rawAddress)
	}
}

func (b *Bridge) Ready() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ready
}

func (b *Bridge) RestoreConnection(ctx context.Context) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.restored, b.restored != ""
}

func (b *Bridge) Subscribe(onChange func(rawAddress string)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = onChange

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}
