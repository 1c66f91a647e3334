package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiredMessageIsAcceptedOnce(t *testing.T) {
	s := NewScheduler()
	h, cmd := s.After(time.Millisecond, PurposeToast)
	require.NotNil(t, cmd)

	msg, ok := cmd().(FiredMsg)
	require.True(t, ok)
	assert.Equal(t, h, msg.Handle)
	assert.Equal(t, PurposeToast, msg.Purpose)

	assert.True(t, s.Accept(msg))
	assert.False(t, s.Accept(msg))
	assert.Equal(t, 0, s.Pending())
}

func TestCancelledHandleIsIgnored(t *testing.T) {
	s := NewScheduler()
	h, _ := s.After(time.Hour, PurposeToast)
	s.Cancel(h)

	assert.False(t, s.Accept(FiredMsg{Handle: h, Purpose: PurposeToast}))
}

func TestReplaceCancelsSamePurposeOnly(t *testing.T) {
	s := NewScheduler()
	oldToast, _ := s.After(time.Hour, PurposeToast)
	loading, _ := s.After(time.Hour, PurposeLoading)
	newToast, _ := s.Replace(time.Hour, PurposeToast)

	assert.NotEqual(t, oldToast, newToast)
	assert.False(t, s.Accept(FiredMsg{Handle: oldToast}))
	assert.True(t, s.Accept(FiredMsg{Handle: loading}))
	assert.True(t, s.Accept(FiredMsg{Handle: newToast}))
}

func TestCancelAll(t *testing.T) {
	s := NewScheduler()
	a, _ := s.After(time.Hour, PurposeToast)
	b, _ := s.After(time.Hour, PurposeLoading)
	assert.Equal(t, 2, s.Pending())

	s.CancelAll()
	assert.Equal(t, 0, s.Pending())
	assert.False(t, s.Accept(FiredMsg{Handle: a}))
	assert.False(t, s.Accept(FiredMsg{Handle: b}))
}
