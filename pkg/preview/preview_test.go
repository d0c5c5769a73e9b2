package preview

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview_DebouncesRapidInput(t *testing.T) {
	var lookups int32
	var mu sync.Mutex
	var got []string
	done := make(chan struct{}, 1)

	p := New(
		func(q string) string {
			atomic.AddInt32(&lookups, 1)
			return q
		},
		func(r string) {
			mu.Lock()
			got = append(got, r)
			mu.Unlock()
			done <- struct{}{}
		},
		20*time.Millisecond,
	)
	defer p.Close()

	// Typing "Cmaj7" one keystroke at a time inside the window.
	for _, q := range []string{"C", "Cm", "Cma", "Cmaj", "Cmaj7"} {
		p.Preview(q)
		time.Sleep(2 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced preview never fired")
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&lookups), "only settled input reaches the engine")
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, "Cmaj7", got[0])
}

func TestPreview_StaleResultDiscarded(t *testing.T) {
	// A is issued first but resolves last; B's result must stick.
	releaseA := make(chan struct{})
	applied := make(chan string, 2)

	p := New(
		func(q string) string {
			if q == "A" {
				<-releaseA
			}
			return q
		},
		func(r string) { applied <- r },
		time.Millisecond,
	)
	defer p.Close()

	// Drive the issue path directly so both requests are in flight.
	p.fire("A")
	p.fire("B")

	select {
	case r := <-applied:
		assert.Equal(t, "B", r)
	case <-time.After(time.Second):
		t.Fatal("B never applied")
	}

	// A resolves after B; last-issued-wins drops it silently.
	close(releaseA)
	select {
	case r := <-applied:
		t.Fatalf("stale result %q applied after a newer one", r)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPreview_LastIssuedWinsNotLastCompleted(t *testing.T) {
	// Even when the newer request B completes before the older A starts
	// being awaited, only B may ever apply.
	gate := make(chan struct{})
	var applies []string
	var mu sync.Mutex

	p := New(
		func(q string) string {
			if q == "slow" {
				<-gate
			}
			return q
		},
		func(r string) {
			mu.Lock()
			applies = append(applies, r)
			mu.Unlock()
		},
		time.Millisecond,
	)
	defer p.Close()

	p.fire("slow")
	p.fire("fast")
	time.Sleep(20 * time.Millisecond)
	close(gate)
	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"fast"}, applies)
}

func TestPreview_NoApplyAfterClose(t *testing.T) {
	release := make(chan struct{})
	var applies int32

	p := New(
		func(q string) string {
			<-release
			return q
		},
		func(string) { atomic.AddInt32(&applies, 1) },
		time.Millisecond,
	)

	p.fire("in-flight")
	p.Close()
	close(release)
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, int32(0), atomic.LoadInt32(&applies),
		"no callback may fire after teardown")
}

func TestPreview_PendingDebounceCancelledByClose(t *testing.T) {
	var lookups int32
	p := New(
		func(q string) string {
			atomic.AddInt32(&lookups, 1)
			return q
		},
		func(string) {},
		10*time.Millisecond,
	)

	p.Preview("C")
	p.Close()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, int32(0), atomic.LoadInt32(&lookups))
	// Preview after Close is a no-op, not a panic.
	p.Preview("D")
}

func TestNew_DefaultDebounce(t *testing.T) {
	p := New(func(q string) string { return q }, func(string) {}, 0)
	defer p.Close()
	assert.Equal(t, DefaultDebounce, p.debounce)
}
