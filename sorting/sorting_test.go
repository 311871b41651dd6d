package sorting_test

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsaviz/engine"
	"github.com/katalvlaran/dsaviz/sorting"
)

func execute(t *testing.T, alg sorting.Algorithm, values []int) (*engine.Run, *sorting.Result) {
	t.Helper()
	body, err := sorting.Sort(alg, values)
	require.NoError(t, err)
	run, err := engine.Execute(context.Background(), "sort."+string(alg), body)
	require.NoError(t, err)
	res, err := engine.ResultAs[*sorting.Result](run)
	require.NoError(t, err)

	return run, res
}

type trace struct {
	kind engine.Kind
	i, j int
}

func traceOf(run *engine.Run) []trace {
	var out []trace
	for _, s := range run.Steps() {
		p := s.Payload.(sorting.Payload)
		out = append(out, trace{s.Kind, p.I, p.J})
	}

	return out
}

func TestBubble_Steps(t *testing.T) {
	run, res := execute(t, sorting.Bubble, []int{3, 1, 2})

	assert.Equal(t, []trace{
		{engine.KindCompare, 0, 1},
		{engine.KindSwap, 0, 1},
		{engine.KindCompare, 1, 2},
		{engine.KindSwap, 1, 2},
		{engine.KindCompare, 0, 1},
		{engine.KindDone, -1, -1},
	}, traceOf(run))
	assert.Equal(t, []int{1, 3, 2}, run.Steps()[1].Payload.(sorting.Payload).Array)
	assert.Equal(t, []int{1, 2, 3}, res.Sorted)
	assert.Equal(t, 3, res.Comparisons)
	assert.Equal(t, 2, res.Swaps)
}

func TestQuick_LomutoLastPivot(t *testing.T) {
	run, res := execute(t, sorting.Quick, []int{3, 1, 2})

	assert.Equal(t, []trace{
		{engine.KindHighlight, 2, -1},
		{engine.KindCompare, 0, 2},
		{engine.KindCompare, 1, 2},
		{engine.KindSwap, 0, 1},
		{engine.KindSwap, 1, 2},
		{engine.KindDone, -1, -1},
	}, traceOf(run))
	assert.Equal(t, []int{1, 2, 3}, res.Sorted)
}

func TestMerge_Writes(t *testing.T) {
	run, res := execute(t, sorting.Merge, []int{2, 1})

	assert.Equal(t, []trace{
		{engine.KindCompare, 0, 1},
		{engine.KindWrite, 0, -1},
		{engine.KindWrite, 1, -1},
		{engine.KindDone, -1, -1},
	}, traceOf(run))
	assert.Equal(t, 2, res.Swaps)
}

func TestInsertion_ShiftAndKey(t *testing.T) {
	run, res := execute(t, sorting.Insertion, []int{2, 1})

	assert.Equal(t, []trace{
		{engine.KindHighlight, 1, -1},
		{engine.KindCompare, 0, 1},
		{engine.KindWrite, 1, -1},
		{engine.KindWrite, 0, -1},
		{engine.KindDone, -1, -1},
	}, traceOf(run))
	assert.Equal(t, []int{1, 2}, res.Sorted)
}

func TestAll_SortPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, alg := range sorting.Algorithms() {
		for round := 0; round < 20; round++ {
			values, err := sorting.RandomArray(rng, rng.Intn(25), 5, 95)
			require.NoError(t, err)
			want := append([]int(nil), values...)
			sort.Ints(want)

			_, res := execute(t, alg, values)
			if len(want) == 0 {
				assert.Empty(t, res.Sorted)
				continue
			}
			assert.Equal(t, want, res.Sorted, "%s round %d", alg, round)
		}
	}
}

func TestAll_SortedInputZeroSwaps(t *testing.T) {
	inputs := [][]int{
		{1, 2, 3, 4, 5, 6, 7, 8},
		{1, 1, 2, 2, 2, 3, 9, 9},
		{4},
		{},
	}
	for _, alg := range sorting.Algorithms() {
		for _, in := range inputs {
			run, res := execute(t, alg, in)
			assert.Zero(t, res.Swaps, "%s %v", alg, in)
			for _, s := range run.Steps() {
				assert.NotEqual(t, engine.KindSwap, s.Kind)
				assert.NotEqual(t, engine.KindWrite, s.Kind)
			}
		}
	}
}

func TestSort_Validation(t *testing.T) {
	_, err := sorting.Sort("bogo", []int{1})
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
	assert.ErrorIs(t, err, engine.ErrInvalidInput)

	_, err = sorting.RandomArray(rand.New(rand.NewSource(1)), 3, 9, 1)
	assert.ErrorIs(t, err, sorting.ErrBadRange)

	values, err := sorting.RandomArray(rand.New(rand.NewSource(1)), 50, 5, 95)
	require.NoError(t, err)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, 5)
		assert.LessOrEqual(t, v, 95)
	}
}

func TestRace_AllFinishIndependently(t *testing.T) {
	values, err := sorting.RandomArray(rand.New(rand.NewSource(9)), 12, 5, 95)
	require.NoError(t, err)
	rn := engine.NewRunner()

	out, err := sorting.RunRace(context.Background(), rn, values)
	require.NoError(t, err)

	require.Len(t, out.Standings, 4)
	seen := map[sorting.Algorithm]bool{}
	for i, st := range out.Standings {
		seen[st.Algorithm] = true
		assert.Equal(t, engine.StatusCompleted, st.Status)
		assert.Positive(t, st.Comparisons)
		if i > 0 {
			assert.LessOrEqual(t, out.Standings[i-1].Steps, st.Steps)
		}
		run, ok := rn.Get(st.RunID)
		require.True(t, ok)
		assert.Equal(t, st.Steps, run.Len())
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, out.Standings[0].Algorithm, out.Winner)
}

func TestRace_CancelLeavesNoWinner(t *testing.T) {
	rn := engine.NewRunner()
	race, err := sorting.StartRace(context.Background(), rn, []int{5, 4, 3, 2, 1}, engine.WithManual())
	require.NoError(t, err)
	require.Len(t, race.Entrants(), 4)

	race.Cancel()
	out, err := race.Wait(context.Background())
	require.NoError(t, err)

	assert.Empty(t, out.Winner)
	for _, st := range out.Standings {
		assert.Equal(t, engine.StatusCancelled, st.Status)
	}
}
