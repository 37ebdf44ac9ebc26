package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBridgeReadiness(t *testing.T) {
	b := NewBridge()
	assert.False(t, b.Ready())

	b.SetReady("")
	assert.True(t, b.Ready())

	_, ok := b.RestoreConnection(context.Background())
	assert.False(t, ok)

	b.SetReady(rawTestAddr)
	restored, ok := b.RestoreConnection(context.Background())
	assert.True(t, ok)
	assert.Equal(t, rawTestAddr, restored)
}

func TestBridgePublish(t *testing.T) {
	b := NewBridge()

	var got []string
	unsubscribe := b.Subscribe(func(addr string) { got = append(got, addr) })

	b.Publish(rawTestAddr)
	b.Publish("")
	assert.Equal(t, []string{rawTestAddr, ""}, got)

	unsubscribe()
	b.Publish(rawTestAddr)
	assert.Len(t, got, 2)
}

func TestBridgeDrivesConnector(t *testing.T) {
	b := NewBridge()
	b.SetReady("")

	c := NewConnector(b, 0)
	c.Init(context.Background())

	b.Publish(rawTestAddr)
	addr, ok := c.Address()
	assert.True(t, ok)
	assert.NotEmpty(t, addr)

	b.Publish("")
	_, ok = c.Address()
	assert.False(t, ok)
}
