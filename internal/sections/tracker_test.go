package sections

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	*PushObserver
	ids  []string
	opts Options
}

func (r *recordingObserver) Observe(ids []string, opts Options, deliver func([]Entry)) func() {
	r.ids = ids
	r.opts = opts
	return r.PushObserver.Observe(ids, opts, deliver)
}

func TestTrackerObservesFocusBand(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{PushObserver: NewPushObserver()}
	tr := NewTracker(obs, nil, "inicio")
	tr.Start()
	t.Cleanup(tr.Stop)

	assert.Equal(t, DefaultIDs, obs.ids)
	assert.Equal(t, "-35% 0px -45% 0px", obs.opts.RootMargin)
	assert.Equal(t, []float64{0.15, 0.35, 0.55}, obs.opts.Thresholds)
}

func TestHighestRatioWins(t *testing.T) {
	t.Parallel()

	obs := NewPushObserver()
	tr := NewTracker(obs, nil, "inicio")
	tr.Start()
	t.Cleanup(tr.Stop)

	obs.Deliver([]Entry{
		{ID: "servicos", Intersecting: true, Ratio: 0.35},
		{ID: "projetos", Intersecting: true, Ratio: 0.55},
		{ID: "sobre", Intersecting: false, Ratio: 0.9},
	})
	require.Equal(t, "projetos", tr.Active())
}

func TestNoIntersectionKeepsPrevious(t *testing.T) {
	t.Parallel()

	obs := NewPushObserver()
	tr := NewTracker(obs, nil, "sobre")
	tr.Start()
	t.Cleanup(tr.Stop)

	obs.Deliver([]Entry{{ID: "contato", Intersecting: false, Ratio: 0.2}})
	require.Equal(t, "sobre", tr.Active())
	obs.Deliver(nil)
	require.Equal(t, "sobre", tr.Active())
}

func TestTieBreaking(t *testing.T) {
	t.Parallel()

	tied := []Entry{
		{ID: "servicos", Intersecting: true, Ratio: 0.35},
		{ID: "projetos", Intersecting: true, Ratio: 0.35},
	}
	assert.Equal(t, "projetos", Select("projetos", tied), "current among tied entries is kept")
	assert.Equal(t, "servicos", Select("inicio", tied), "first in observation order otherwise")
	assert.Equal(t, "servicos", Select("", tied))
}

func TestUnknownIDsIgnored(t *testing.T) {
	t.Parallel()

	tr := NewTracker(nil, []string{"a", "b"}, "a")
	tr.Apply([]Entry{{ID: "zzz", Intersecting: true, Ratio: 1}})
	assert.Equal(t, "a", tr.Active())
	tr.Apply([]Entry{{ID: "b", Intersecting: true, Ratio: 0.15}})
	assert.Equal(t, "b", tr.Active())
}

func TestStopTearsDownObservation(t *testing.T) {
	t.Parallel()

	obs := NewPushObserver()
	tr := NewTracker(obs, nil, "inicio")
	tr.Start()
	tr.Start()
	require.Equal(t, 1, obs.Len())

	tr.Stop()
	tr.Stop()
	require.Equal(t, 0, obs.Len())

	obs.Deliver([]Entry{{ID: "contato", Intersecting: true, Ratio: 0.55}})
	require.Equal(t, "inicio", tr.Active())
}

func TestConcurrentStartSubscribesOnce(t *testing.T) {
	t.Parallel()

	obs := NewPushObserver()
	tr := NewTracker(obs, nil, "inicio")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Start()
		}()
	}
	wg.Wait()
	require.Equal(t, 1, obs.Len())

	tr.Stop()
	assert.Equal(t, 0, obs.Len())
}

type eagerObserver struct {
	*PushObserver
	batch []Entry
}

func (e *eagerObserver) Observe(ids []string, opts Options, deliver func([]Entry)) func() {
	cancel := e.PushObserver.Observe(ids, opts, deliver)
	deliver(e.batch)
	return cancel
}

func TestStartToleratesSynchronousDelivery(t *testing.T) {
	t.Parallel()

	obs := &eagerObserver{
		PushObserver: NewPushObserver(),
		batch:        []Entry{{ID: "sobre", Intersecting: true, Ratio: 0.4}},
	}
	tr := NewTracker(obs, nil, "inicio")
	tr.Start()
	t.Cleanup(tr.Stop)

	assert.Equal(t, "sobre", tr.Active())
}
