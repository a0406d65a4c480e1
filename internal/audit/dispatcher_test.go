package audit

import (
	"context"
	"sync"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
)

type memRecorder struct {
	mu     sync.Mutex
	events []Event
	block  chan struct{}
	fail   bool
}

func (m *memRecorder) Log(_ context.Context, ev Event) error {
	if m.block != nil {
		<-m.block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	if m.fail {
		return eris.New("insert failed")
	}
	return nil
}

func TestDispatcher_DeliversOnClose(t *testing.T) {
	rec := &memRecorder{}
	d := NewDispatcher(rec, 10)

	d.Dispatch(Event{Action: ActionClientNotFound, CD: "AV46", Code: "1"})
	d.Dispatch(Event{Action: ActionClientUnmappable, CD: "AV46", Code: "2"})
	d.Close()

	assert.Len(t, rec.events, 2)
	assert.Equal(t, ActionClientNotFound, rec.events[0].Action)
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	rec := &memRecorder{block: make(chan struct{})}
	d := NewDispatcher(rec, 1)

	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: ActionBulkLookup})
	}
	close(rec.block)
	d.Close()

	// one in flight in the worker plus at most one buffered
	assert.LessOrEqual(t, len(rec.events), 2)
	assert.GreaterOrEqual(t, len(rec.events), 1)
	assert.Equal(t, int64(10-len(rec.events)), d.Dropped())
}

func TestDispatcher_RecorderErrorsAreSwallowed(t *testing.T) {
	rec := &memRecorder{fail: true}
	d := NewDispatcher(rec, 5)
	d.Dispatch(Event{Action: ActionImportCompleted})
	d.Close()
	assert.Len(t, rec.events, 1)
}

func TestDispatcher_DispatchAfterClose(t *testing.T) {
	rec := &memRecorder{}
	d := NewDispatcher(rec, 1)
	d.Close()
	assert.NotPanics(t, func() { d.Dispatch(Event{Action: ActionBulkLookup}) })
	d.Close()

	assert.Empty(t, rec.events)
	assert.Equal(t, int64(1), d.Dropped())
}

func TestDispatcher_ConcurrentDispatchAndClose(t *testing.T) {
	rec := &memRecorder{}
	d := NewDispatcher(rec, 1000)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				d.Dispatch(Event{Action: ActionBulkLookup})
			}
		}()
	}
	d.Close()
	wg.Wait()

	assert.Equal(t, int64(800), int64(len(rec.events))+d.Dropped())
}
