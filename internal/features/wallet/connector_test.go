package wallet

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawTestAddr = "0:0000000000000000000000000000000000000000000000000000000000000001"

type fakeProvider struct {
	ready      atomic.Bool
	restored   string
	subscribes atomic.Int64
	onChange   func(string)
}

func (f *fakeProvider) Ready() bool { return f.ready.Load() }

func (f *fakeProvider) RestoreConnection(ctx context.Context) (string, bool) {
	return f.restored, f.restored != ""
}

func (f *fakeProvider) Subscribe(onChange func(string)) func() {
	f.subscribes.Add(1)
	f.onChange = onChange
	return func() { f.onChange = nil }
}

func TestInitRunsOnce(t *testing.T) {
	p := &fakeProvider{}
	p.ready.Store(true)
	c := NewConnector(p, time.Millisecond)

	c.Init(context.Background())
	c.Init(context.Background())
	c.Init(context.Background())

	assert.Equal(t, int64(1), p.subscribes.Load())
}

func TestInitRetriesOnceWhenProviderNotReady(t *testing.T) {
	p := &fakeProvider{}
	c := NewConnector(p, 10*time.Millisecond)

	c.Init(context.Background())
	assert.Equal(t, int64(0), p.subscribes.Load())

	// Провайдер догрузился до повторной попытки.
	p.ready.Store(true)

	assert.Eventually(t, func() bool {
		return p.subscribes.Load() == 1
	}, time.Second, 2*time.Millisecond)
}

func TestInitGivesUpSilently(t *testing.T) {
	p := &fakeProvider{} // never ready
	c := NewConnector(p, 5*time.Millisecond)

	c.Init(context.Background())
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, int64(0), p.subscribes.Load())
	_, ok := c.Address()
	assert.False(t, ok)
}

func TestStatusChangeTracksSingleAddress(t *testing.T) {
	p := &fakeProvider{}
	p.ready.Store(true)
	c := NewConnector(p, time.Millisecond)
	c.Init(context.Background())
	require.NotNil(t, p.onChange)

	p.onChange(rawTestAddr)
	addr, ok := c.Address()
	require.True(t, ok)
	assert.NotEmpty(t, addr)
	assert.False(t, strings.Contains(addr, ":"), "stored address is normalized to friendly form")

	// Отключение очищает адрес.
	p.onChange("")
	_, ok = c.Address()
	assert.False(t, ok)
}

func TestRestoredConnection(t *testing.T) {
	p := &fakeProvider{restored: rawTestAddr}
	p.ready.Store(true)
	c := NewConnector(p, time.Millisecond)

	c.Init(context.Background())

	_, ok := c.Address()
	assert.True(t, ok)
}

func TestInvalidAddressIgnored(t *testing.T) {
	p := &fakeProvider{}
	p.ready.Store(true)
	c := NewConnector(p, time.Millisecond)
	c.Init(context.Background())

	p.onChange(rawTestAddr)
	before, _ := c.Address()

	p.onChange("not-an-address")
	after, ok := c.Address()
	assert.True(t, ok)
	assert.Equal(t, before, after)
}

func TestDisconnect(t *testing.T) {
	p := &fakeProvider{}
	p.ready.Store(true)
	c := NewConnector(p, time.Millisecond)
	c.Init(context.Background())

	p.onChange(rawTestAddr)
	c.Disconnect()

	_, ok := c.Address()
	assert.False(t, ok)
}

// slowProvider имитирует медленную подписку: Ready взводится после первой
// проверки, а Subscribe не возвращается, пока его не отпустят.
type slowProvider struct {
	ready        atomic.Bool
	subscribed   chan struct{}
	release      chan struct{}
	unsubscribes atomic.Int64
}

func (p *slowProvider) Ready() bool { return p.ready.Load() }

func (p *slowProvider) RestoreConnection(ctx context.Context) (string, bool) {
	return "", false
}

func (p *slowProvider) Subscribe(onChange func(string)) func() {
	close(p.subscribed)
	<-p.release
	return func() { p.unsubscribes.Add(1) }
}

func TestCloseDuringDelayedInitUnsubscribes(t *testing.T) {
	p := &slowProvider{
		subscribed: make(chan struct{}),
		release:    make(chan struct{}),
	}
	c := NewConnector(p, 20*time.Millisecond)

	// Первая попытка проваливается, повторная идет в горутине.
	c.Init(context.Background())
	p.ready.Store(true)

	// Сессия закрывается, пока повторная инициализация стоит в Subscribe.
	<-p.subscribed
	c.Close()
	close(p.release)

	assert.Eventually(t, func() bool {
		return p.unsubscribes.Load() == 1
	}, time.Second, 2*time.Millisecond, "subscription taken after close must be released")
}

func TestInitAfterCloseDoesNotSubscribe(t *testing.T) {
	p := &fakeProvider{}
	p.ready.Store(true)
	c := NewConnector(p, time.Millisecond)

	c.Close()
	c.Init(context.Background())

	assert.Equal(t, int64(0), p.subscribes.Load())
}
