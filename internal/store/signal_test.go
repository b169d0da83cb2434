package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalEmitReachesAllSubscribers(t *testing.T) {
	var s Signal
	var first, second int

	s.Subscribe(func() { first++ })
	s.Subscribe(func() { second++ })

	s.Emit()
	s.Emit()

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}

func TestSignalCancelStopsDelivery(t *testing.T) {
	var s Signal
	var calls int

	cancel := s.Subscribe(func() { calls++ })
	s.Emit()
	cancel()
	s.Emit()

	assert.Equal(t, 1, calls)
}

func TestSignalEmitWithoutSubscribers(t *testing.T) {
	var s Signal
	assert.NotPanics(t, func() { s.Emit() })
}

func TestSignalSubscribeDuringEmit(t *testing.T) {
	var s Signal
	var late int

	s.Subscribe(func() {
		s.Subscribe(func() { late++ })
	})

	// The new subscriber joins the next emission, not the current one.
	s.Emit()
	assert.Equal(t, 0, late)
	s.Emit()
	assert.Equal(t, 1, late)
}
