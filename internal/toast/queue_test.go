package toast

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestQueue() *Queue {
	return NewQueue(Options{
		Lifetime:  100 * time.Millisecond,
		ExitLead:  30 * time.Millisecond,
		UndoDelay: 20 * time.Millisecond,
	})
}

func findToast(q *Queue, id string) (Toast, bool) {
	for _, t := range q.Toasts() {
		if t.ID == id {
			return t, true
		}
	}
	return Toast{}, false
}

func TestQueue_ShowAppendsInOrder(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	id1 := q.Show("first", "m1", TypeSuccess, ShowOptions{})
	id2 := q.Show("second", "m2", TypeInfo, ShowOptions{})

	toasts := q.Toasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, id1, toasts[0].ID)
	assert.Equal(t, id2, toasts[1].ID)
	assert.NotEqual(t, id1, id2)
	assert.False(t, toasts[0].Exiting)
	assert.WithinDuration(t, time.Now(), toasts[0].CreatedAt, time.Second)
}

func TestQueue_LifecycleExitsThenExpires(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	id := q.Show("hello", "world", TypeSuccess, ShowOptions{})

	// Before the exit flip.
	time.Sleep(40 * time.Millisecond)
	got, ok := findToast(q, id)
	require.True(t, ok)
	assert.False(t, got.Exiting)

	// After lifetime-exitLead the toast is exiting but still present.
	time.Sleep(45 * time.Millisecond)
	got, ok = findToast(q, id)
	require.True(t, ok)
	assert.True(t, got.Exiting)

	// After the full lifetime it is gone without any external signal.
	time.Sleep(40 * time.Millisecond)
	_, ok = findToast(q, id)
	assert.False(t, ok)
}

func TestQueue_FinishExitRemovesExitingToast(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	id := q.Show("hello", "world", TypeSuccess, ShowOptions{})

	time.Sleep(85 * time.Millisecond) // past the exit flip
	q.FinishExit(id)

	_, ok := findToast(q, id)
	assert.False(t, ok)
}

func TestQueue_FinishExitIgnoresLiveToast(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	id := q.Show("hello", "world", TypeSuccess, ShowOptions{})
	q.FinishExit(id)

	_, ok := findToast(q, id)
	assert.True(t, ok, "a toast that has not started exiting must stay")
}

func TestQueue_DismissRemovesImmediatelyAndCancelsTimers(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	id := q.Show("hello", "world", TypeSuccess, ShowOptions{})
	q.Dismiss(id)

	assert.Empty(t, q.Toasts())

	// The canceled exit timer must not resurrect anything.
	time.Sleep(120 * time.Millisecond)
	assert.Empty(t, q.Toasts())
}

func TestQueue_DismissDuringExitPhase(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	id := q.Show("hello", "world", TypeSuccess, ShowOptions{})
	time.Sleep(85 * time.Millisecond)
	q.Dismiss(id)

	assert.Empty(t, q.Toasts())
}

func TestQueue_UndoInvokesCallbackAndRemoves(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	undone := false
	id := q.Show("deleted", "task gone", TypeError, ShowOptions{
		OnUndo: func() error { undone = true; return nil },
	})

	q.Undo(id)

	assert.True(t, undone)
	got, ok := findToast(q, id)
	require.True(t, ok, "removal is delayed to let the exit play")
	assert.True(t, got.Exiting)

	time.Sleep(50 * time.Millisecond)
	_, ok = findToast(q, id)
	assert.False(t, ok)
}

func TestQueue_UndoFailureBecomesErrorToast(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	id := q.Show("deleted", "task gone", TypeError, ShowOptions{
		OnUndo: func() error { return errors.New("storage detached") },
	})

	q.Undo(id)

	toasts := q.Toasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, TypeError, toasts[1].Type)
	assert.Equal(t, "Undo failed", toasts[1].Title)
	assert.Contains(t, toasts[1].Message, "storage detached")
}

func TestQueue_UndoPanicIsContained(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	id := q.Show("deleted", "task gone", TypeError, ShowOptions{
		OnUndo: func() error { panic("boom") },
	})

	assert.NotPanics(t, func() { q.Undo(id) })

	toasts := q.Toasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, TypeError, toasts[1].Type)
	assert.Contains(t, toasts[1].Message, "boom")
}

func TestQueue_UndoUnknownIDIsNoop(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	q.Undo("toast-nope")
	assert.Empty(t, q.Toasts())
}

func TestQueue_MultipleToastsExpireIndependently(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	q.Show("one", "", TypeInfo, ShowOptions{})
	time.Sleep(50 * time.Millisecond)
	id2 := q.Show("two", "", TypeInfo, ShowOptions{})

	// First expires, second is still alive.
	time.Sleep(70 * time.Millisecond)
	toasts := q.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, id2, toasts[0].ID)
}

func TestQueue_CloseStopsEverything(t *testing.T) {
	q := newTestQueue()

	q.Show("one", "", TypeInfo, ShowOptions{})
	q.Show("two", "", TypeInfo, ShowOptions{})
	q.Close()

	assert.Empty(t, q.Toasts())
	assert.Empty(t, q.Show("late", "", TypeInfo, ShowOptions{}),
		"a closed queue must not accept new toasts")
}

func TestQueue_OnChangeFires(t *testing.T) {
	var calls int
	q := NewQueue(Options{
		Lifetime: time.Minute,
		OnChange: func() { calls++ },
	})
	defer q.Close()

	id := q.Show("one", "", TypeInfo, ShowOptions{})
	q.Dismiss(id)

	assert.Equal(t, 2, calls)
}
