package notify

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulazimo/kolagen/internal/domain"
)

func TestSchedule_Fires(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	done := make(chan struct{})
	s.Schedule("a", 5*time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not fire")
	}
	assert.False(t, s.Pending("a"))
}

func TestSchedule_SameKeySupersedes(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var first, second atomic.Int32
	s.Schedule("k", 10*time.Millisecond, func() { first.Add(1) })
	s.Schedule("k", 20*time.Millisecond, func() { second.Add(1) })

	assert.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Zero(t, first.Load())
}

func TestCancel(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var fired atomic.Bool
	h := s.Schedule("k", 20*time.Millisecond, func() { fired.Store(true) })
	assert.True(t, s.Pending("k"))
	assert.True(t, h.Cancel())
	assert.False(t, h.Cancel())
	assert.False(t, s.Cancel("k"))

	time.Sleep(40 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestHandleCancel_StaleHandleKeepsNewTask(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	old := s.Schedule("k", time.Hour, func() {})
	s.Schedule("k", time.Hour, func() {})
	assert.False(t, old.Cancel())
	assert.True(t, s.Pending("k"))
}

func TestStop_RejectsNewTasks(t *testing.T) {
	s := NewScheduler()
	var fired atomic.Bool
	s.Schedule("k", 10*time.Millisecond, func() { fired.Store(true) })
	s.Stop()

	assert.Nil(t, s.Schedule("later", time.Millisecond, func() { fired.Store(true) }))
	time.Sleep(30 * time.Millisecond)
	assert.False(t, fired.Load())
	var nilHandle *Handle
	assert.False(t, nilHandle.Cancel())
}

func TestDebouncer_CollapsesBurst(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()
	d := NewDebouncer(s, "resize", 20*time.Millisecond)

	var calls atomic.Int32
	var last atomic.Int32
	for i := 1; i <= 5; i++ {
		v := int32(i)
		d.Trigger(func() {
			calls.Add(1)
			last.Store(v)
		})
		time.Sleep(2 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(5), last.Load())
}

func TestBoard_AutoDismiss(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()
	b := NewBoard(s)

	n := b.Post("", domain.NoticeAdded, "Kolagen Marine dodat u korpu", 15*time.Millisecond)
	assert.Equal(t, "notice-1", n.Key)
	require.Len(t, b.Active(), 1)

	assert.Eventually(t, func() bool { return len(b.Active()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestBoard_SameKeyReplaces(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()
	b := NewBoard(s)

	b.Post("form-message", domain.NoticeError, "first", time.Hour)
	second := b.Post("form-message", domain.NoticeError, "second", time.Hour)
	b.Post("", domain.NoticeAdded, "added", time.Hour)

	active := b.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "second", active[0].Text)
	assert.Equal(t, second.ID, active[0].ID)
}

func TestBoard_Dismiss(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()
	b := NewBoard(s)

	n := b.Post("banner", domain.NoticeSuccess, "ok", time.Hour)
	assert.True(t, b.Dismiss(n.ID))
	assert.False(t, b.Dismiss(n.ID))
	assert.Empty(t, b.Active())
	assert.False(t, s.Pending("banner"))
}

func TestBoard_ReplacedNoticeTimerDoesNotRemoveNew(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()
	b := NewBoard(s)

	b.Post("k", domain.NoticeError, "short", 10*time.Millisecond)
	b.Post("k", domain.NoticeError, "long", time.Hour)
	time.Sleep(30 * time.Millisecond)

	active := b.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "long", active[0].Text)
}
