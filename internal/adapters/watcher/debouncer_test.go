package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetsync/internal/adapters/watcher"
)

// batchRecorder collects debouncer callbacks.
type batchRecorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *batchRecorder) callback(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, paths)
}

func (r *batchRecorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.batches...)
}

func TestDebouncer_CoalescesSortedAndDeduplicated(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/src/shaders/b.frag")
		d.Add("/src/shaders/a.vert")
		d.Add("/src/shaders/b.frag")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		batches := rec.snapshot()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/src/shaders/a.vert", "/src/shaders/b.frag"}, batches[0])
	})
}

func TestDebouncer_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/src/a.png")
		time.Sleep(60 * time.Millisecond)
		d.Add("/src/b.png")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.snapshot())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		batches := rec.snapshot()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/src/a.png", "/src/b.png"}, batches[0])
	})
}

func TestDebouncer_SeparateBatches(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.callback)

		d.Add("/src/a.vert")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("/src/b.vert")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/src/a.vert"}, {"/src/b.vert"}}, rec.snapshot())
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/src/a.vert")
		d.Flush()

		assert.Equal(t, [][]string{{"/src/a.vert"}}, rec.snapshot())

		// The original timer must not deliver the batch again.
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_Flush_Empty(t *testing.T) {
	rec := &batchRecorder{}
	d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

	d.Flush()

	assert.Empty(t, rec.snapshot())
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.callback)

		d.Add("/src/a.vert")
		d.Stop()
		d.Add("/src/b.vert")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Flush()

		assert.Empty(t, rec.snapshot())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("/src/a.vert")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Flush()
	})
}
