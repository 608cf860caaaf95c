package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu      sync.Mutex
	msgs    [][]byte
	closed  bool
	failing bool
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errors.New("broken pipe")
	}
	f.msgs = append(f.msgs, data)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.msgs)
}

func TestHub_Broadcast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	good := &fakeConn{}
	bad := &fakeConn{failing: true}
	hub.Register(good)
	hub.Register(bad)
	require.Eventually(t, func() bool { return hub.Clients() == 2 }, time.Second, 5*time.Millisecond)

	hub.Publish(Event{Action: "import", Key: "k", Qty: 3})

	require.Eventually(t, func() bool { return good.count() == 1 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	var ev Event
	require.NoError(t, json.Unmarshal(good.msgs[0], &ev))
	assert.Equal(t, "inventory_changed", ev.Type)
	assert.Equal(t, "import", ev.Action)
	assert.Equal(t, 3, ev.Qty)
	assert.False(t, ev.At.IsZero())

	hub.Unregister(good)
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 5*time.Millisecond)
	assert.True(t, good.closed)
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	hub := NewHub(nil)
	for i := 0; i < 200; i++ {
		hub.Publish(Event{Action: "noop"})
	}

	var nilHub *Hub
	nilHub.Publish(Event{})
}

func TestHub_StopClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	conn := &fakeConn{}
	hub.Register(conn)
	cancel()
	<-done

	assert.True(t, conn.closed)
	assert.Equal(t, 0, hub.Clients())
}

func TestHub_CallsAfterStopDoNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	cancel()
	hub.Run(ctx)

	conn := &fakeConn{}
	returned := make(chan struct{})
	go func() {
		hub.Register(conn)
		hub.Unregister(conn)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Register/Unregister blocked after the hub stopped")
	}
	assert.True(t, conn.closed)
	assert.Equal(t, 0, hub.Clients())
}
