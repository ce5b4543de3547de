package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{}) {}

var testDate = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

func TestHub_BroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub(nopLogger{})
	defer hub.Close()

	_, first := hub.Subscribe()
	_, second := hub.Subscribe()

	hub.SlotsUpdated(testDate)

	want := Event{Type: TypeSlotsUpdated, Date: "2025-10-14"}
	assert.Equal(t, want, <-first)
	assert.Equal(t, want, <-second)
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(nopLogger{})
	defer hub.Close()

	id, ch := hub.Subscribe()
	hub.Unsubscribe(id)

	_, open := <-ch
	assert.False(t, open)

	// Повторная отписка безопасна
	hub.Unsubscribe(id)
}

func TestHub_UnsubscribedMissesEvents(t *testing.T) {
	hub := NewHub(nopLogger{})
	defer hub.Close()

	id, ch := hub.Subscribe()
	hub.Unsubscribe(id)

	hub.SlotsUpdated(testDate)

	_, open := <-ch
	assert.False(t, open)
}

func TestHub_SlowSubscriberDropsEvents(t *testing.T) {
	hub := NewHub(nopLogger{})
	defer hub.Close()

	_, ch := hub.Subscribe()

	// Переполняем буфер: лишние события отбрасываются, рассылка не блокируется
	for i := 0; i < subscriberBuffer+3; i++ {
		hub.SlotsUpdated(testDate)
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	assert.Equal(t, subscriberBuffer, received)
}

func TestHub_CloseClosesAllChannels(t *testing.T) {
	hub := NewHub(nopLogger{})

	_, first := hub.Subscribe()
	_, second := hub.Subscribe()

	hub.Close()

	_, open := <-first
	assert.False(t, open)
	_, open = <-second
	assert.False(t, open)

	// После закрытия рассылка и повторный Close не паникуют
	hub.SlotsUpdated(testDate)
	hub.Close()
}

func TestHub_SubscribeAfterCloseYieldsClosedChannel(t *testing.T) {
	hub := NewHub(nopLogger{})
	hub.Close()

	_, ch := hub.Subscribe()

	_, open := <-ch
	require.False(t, open)
}
