package engine_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsaviz/engine"
)

type valuePayload struct {
	Values []int
}

func (p valuePayload) Clone() engine.Payload {
	return valuePayload{Values: append([]int(nil), p.Values...)}
}

// countBody emits n compare steps and returns n.
func countBody(n int) engine.Body {
	return func(_ context.Context, e *engine.Emitter) (any, error) {
		var m engine.Metrics
		for i := 0; i < n; i++ {
			m.Comparisons++
			if err := e.Emit(engine.KindCompare, valuePayload{Values: []int{i}}, m); err != nil {
				return nil, err
			}
		}
		if err := e.Emit(engine.KindDone, nil, m); err != nil {
			return nil, err
		}

		return n, nil
	}
}

func waitStatus(t *testing.T, r *engine.Run) engine.Status {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	st, err := r.Wait(ctx)
	require.NoError(t, err)

	return st
}

func TestExecute_SequenceAndResult(t *testing.T) {
	r, err := engine.Execute(context.Background(), "count", countBody(5))
	require.NoError(t, err)
	assert.Equal(t, engine.StatusCompleted, r.Status())

	steps := r.Steps()
	require.Len(t, steps, 6)
	for i, s := range steps {
		assert.Equal(t, i, s.Seq)
	}
	assert.Equal(t, engine.KindDone, steps[5].Kind)
	assert.True(t, steps[5].Kind.Terminal())
	assert.Equal(t, 5, steps[5].Metrics.Comparisons)

	n, err := engine.ResultAs[int](r)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestEmit_ClonesPayload(t *testing.T) {
	shared := []int{1, 2, 3}
	r, err := engine.Execute(context.Background(), "clone", func(_ context.Context, e *engine.Emitter) (any, error) {
		if err := e.Emit(engine.KindVisit, valuePayload{Values: shared}, engine.Metrics{}); err != nil {
			return nil, err
		}
		shared[0] = 99

		return nil, nil
	})
	require.NoError(t, err)

	s, ok := r.Step(0)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, s.Payload.(valuePayload).Values)
}

func TestStart_InvalidInput(t *testing.T) {
	rn := engine.NewRunner()

	_, err := rn.Start(context.Background(), "nil", nil)
	assert.ErrorIs(t, err, engine.ErrInvalidInput)

	_, err = rn.Start(context.Background(), "neg", countBody(1), engine.WithPacing(-time.Second))
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
	assert.Empty(t, rn.Runs())
}

func TestResult_NotReady(t *testing.T) {
	rn := engine.NewRunner()
	r, err := rn.Start(context.Background(), "manual", countBody(3), engine.WithManual())
	require.NoError(t, err)

	_, err = r.Result()
	assert.ErrorIs(t, err, engine.ErrNotReady)

	r.Cancel()
	assert.Equal(t, engine.StatusCancelled, waitStatus(t, r))
	_, err = r.Result()
	assert.ErrorIs(t, err, engine.ErrNotReady)
}

func TestCancel_StopsEmission(t *testing.T) {
	rn := engine.NewRunner()
	r, err := rn.Start(context.Background(), "slow", countBody(1000), engine.WithPacing(5*time.Millisecond))
	require.NoError(t, err)

	require.Eventually(t, func() bool { return r.Len() >= 2 }, 2*time.Second, time.Millisecond)
	require.NoError(t, rn.Cancel(r.ID()))
	assert.Equal(t, engine.StatusCancelled, r.Status())

	assert.Equal(t, engine.StatusCancelled, waitStatus(t, r))
	n := r.Len()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, r.Len(), "no steps after cancellation")
	assert.Less(t, n, 1001)

	// idempotent
	r.Cancel()
	assert.Equal(t, engine.StatusCancelled, r.Status())
}

func TestCancel_TerminalIsNoop(t *testing.T) {
	rn := engine.NewRunner()
	r, err := rn.Execute(context.Background(), "done", countBody(2))
	require.NoError(t, err)

	r.Cancel()
	assert.Equal(t, engine.StatusCompleted, r.Status())
	assert.ErrorIs(t, rn.Cancel("missing"), engine.ErrRunNotFound)
}

func TestParentContextCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rn := engine.NewRunner()
	r, err := rn.Start(ctx, "ctx", countBody(1000), engine.WithPacing(time.Millisecond))
	require.NoError(t, err)

	cancel()
	assert.Equal(t, engine.StatusCancelled, waitStatus(t, r))
}

func TestReconfigure_AppliesToWaitingStep(t *testing.T) {
	rn := engine.NewRunner()
	r, err := rn.Start(context.Background(), "pace", countBody(3), engine.WithPacing(time.Hour))
	require.NoError(t, err)

	require.Eventually(t, func() bool { return r.Len() == 1 }, time.Second, time.Millisecond)
	require.NoError(t, rn.Reconfigure(r.ID(), 0))
	assert.Equal(t, engine.StatusCompleted, waitStatus(t, r))
	assert.Equal(t, 4, r.Len())

	assert.ErrorIs(t, rn.Reconfigure(r.ID(), -time.Millisecond), engine.ErrInvalidInput)
	assert.ErrorIs(t, rn.Reconfigure("missing", 0), engine.ErrRunNotFound)
}

func TestManual_AdvanceReleasesOneStep(t *testing.T) {
	rn := engine.NewRunner()
	r, err := rn.Start(context.Background(), "manual", countBody(3), engine.WithManual())
	require.NoError(t, err)

	require.Eventually(t, func() bool { return r.Len() == 1 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, engine.StatusRunning, r.Status())

	r.Advance()
	require.Eventually(t, func() bool { return r.Len() == 2 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 2, r.Len())

	r.Resume()
	assert.Equal(t, engine.StatusCompleted, waitStatus(t, r))
	assert.Equal(t, 4, r.Len())
}

func TestPause_KeepsRunning(t *testing.T) {
	rn := engine.NewRunner()
	r, err := rn.Start(context.Background(), "pause", countBody(50), engine.WithPacing(time.Millisecond))
	require.NoError(t, err)

	r.Pause()
	assert.True(t, r.Manual())
	time.Sleep(10 * time.Millisecond)
	n := r.Len()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, n, r.Len())
	assert.Equal(t, engine.StatusRunning, r.Status())

	r.Resume()
	assert.Equal(t, engine.StatusCompleted, waitStatus(t, r))
}

func TestFailedAndPanicking(t *testing.T) {
	boom := errors.New("boom")
	rn := engine.NewRunner()

	failed, err := rn.Execute(context.Background(), "fail", func(_ context.Context, e *engine.Emitter) (any, error) {
		_ = e.Emit(engine.KindVisit, nil, engine.Metrics{})
		return nil, boom
	})
	require.NoError(t, err)
	assert.Equal(t, engine.StatusFailed, failed.Status())
	assert.ErrorIs(t, failed.Err(), boom)
	assert.Equal(t, 1, failed.Len())

	panicked, err := rn.Execute(context.Background(), "panic", func(context.Context, *engine.Emitter) (any, error) {
		panic("bad state")
	})
	require.NoError(t, err)
	assert.Equal(t, engine.StatusFailed, panicked.Status())
	assert.ErrorIs(t, panicked.Err(), engine.ErrBodyPanicked)
}

func TestSubscribe_Lossless(t *testing.T) {
	rn := engine.NewRunner()
	r, err := rn.Start(context.Background(), "sub", countBody(200))
	require.NoError(t, err)

	var got []int
	for s := range r.Subscribe(context.Background()) {
		got = append(got, s.Seq)
	}
	require.Len(t, got, 201)
	for i, seq := range got {
		require.Equal(t, i, seq)
	}
	assert.Equal(t, engine.StatusCompleted, waitStatus(t, r))
}

func TestReplay_ReproducesSteps(t *testing.T) {
	rn := engine.NewRunner()
	src, err := rn.Execute(context.Background(), "count", countBody(4))
	require.NoError(t, err)

	rep, err := rn.Replay(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, engine.StatusCompleted, waitStatus(t, rep))
	assert.NotEqual(t, src.ID(), rep.ID())
	assert.Equal(t, src.Steps(), rep.Steps())

	res, err := rep.Result()
	require.NoError(t, err)
	assert.Equal(t, 4, res)

	pending, err := rn.Start(context.Background(), "manual", countBody(1), engine.WithManual())
	require.NoError(t, err)
	_, err = rn.Replay(context.Background(), pending)
	assert.ErrorIs(t, err, engine.ErrNotReady)
	pending.Cancel()
}

func TestConcurrentRunsInterleave(t *testing.T) {
	rn := engine.NewRunner()
	var runs []*engine.Run
	for i := 0; i < 8; i++ {
		r, err := rn.Start(context.Background(), "race", countBody(100+i))
		require.NoError(t, err)
		runs = append(runs, r)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, engine.WaitAll(ctx, runs...))

	for i, r := range runs {
		assert.Equal(t, engine.StatusCompleted, r.Status())
		assert.Equal(t, 100+i+1, r.Len())
	}
	assert.Len(t, rn.Runs(), 8)
}

func TestRunnerRegistry(t *testing.T) {
	rn := engine.NewRunner()
	live, err := rn.Start(context.Background(), "live", countBody(1), engine.WithManual())
	require.NoError(t, err)
	done, err := rn.Execute(context.Background(), "done", countBody(1))
	require.NoError(t, err)

	got, ok := rn.Get(done.ID())
	require.True(t, ok)
	assert.Same(t, done, got)

	assert.False(t, rn.Forget(live.ID()), "live runs are kept")
	assert.True(t, rn.Forget(done.ID()))
	_, ok = rn.Get(done.ID())
	assert.False(t, ok)

	live.Cancel()
}

func TestRunnerPrune(t *testing.T) {
	rn := engine.NewRunner()
	live, err := rn.Start(context.Background(), "live", countBody(1), engine.WithManual())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := rn.Execute(context.Background(), "done", countBody(1))
		require.NoError(t, err)
	}
	require.Len(t, rn.Runs(), 6)

	assert.Zero(t, rn.Prune(time.Hour), "recent runs are retained")
	assert.Equal(t, 5, rn.Prune(0))
	require.Len(t, rn.Runs(), 1)
	assert.Equal(t, live.ID(), rn.Runs()[0].ID())

	live.Cancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = live.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rn.Prune(0))
	assert.Empty(t, rn.Runs())
}

func TestLifecycleLogging(t *testing.T) {
	var (
		mu  sync.Mutex
		buf bytes.Buffer
	)
	logger := slog.New(slog.NewTextHandler(&lockedWriter{mu: &mu, w: &buf}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := engine.Execute(context.Background(), "logged", countBody(1), engine.WithLogger(logger))
	require.NoError(t, err)

	mu.Lock()
	out := buf.String()
	mu.Unlock()
	assert.Contains(t, out, "run started")
	assert.Contains(t, out, "run completed")
	assert.Contains(t, out, "algorithm=logged")
	assert.Contains(t, out, "steps=2")
}

type lockedWriter struct {
	mu *sync.Mutex
	w  *bytes.Buffer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.w.Write(p)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "running", engine.StatusRunning.String())
	assert.Equal(t, "status(42)", engine.Status(42).String())
	assert.True(t, engine.StatusFailed.Terminal())
	assert.False(t, engine.StatusRunning.Terminal())
}
