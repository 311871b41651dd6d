package catalog_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsaviz/catalog"
	"github.com/katalvlaran/dsaviz/engine"
	"github.com/katalvlaran/dsaviz/builder"
	"github.com/katalvlaran/dsaviz/core"
	"github.com/katalvlaran/dsaviz/hashtable"
	"github.com/katalvlaran/dsaviz/linear"
	"github.com/katalvlaran/dsaviz/nqueens"
	"github.com/katalvlaran/dsaviz/scheduling"
	"github.com/katalvlaran/dsaviz/sorting"
	"github.com/katalvlaran/dsaviz/sudoku"
)

func wait(t *testing.T, run *engine.Run) engine.Status {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	st, err := run.Wait(ctx)
	require.NoError(t, err)

	return st
}

func TestRun_EveryEntryCompletes(t *testing.T) {
	cat := catalog.New(catalog.DefaultPresets())
	rn := engine.NewRunner()
	inputs := map[string]any{
		"trie.insert":   &catalog.WordsInput{Word: "gopher"},
		"hash.insert":   &catalog.HashInput{Key: "k", Value: "v"},
		"hash.search":   &catalog.HashInput{Key: "k"},
		"hash.delete":   &catalog.HashInput{Key: "k"},
		"stack.pop":     &catalog.LinearInput{Items: []int{1, 2}},
		"stack.peek":    &catalog.LinearInput{Items: []int{1, 2}},
		"queue.dequeue": &catalog.LinearInput{Items: []int{1, 2}},
		"queue.front":   &catalog.LinearInput{Items: []int{1, 2}},
		"list.delete":   &catalog.LinearInput{Items: []int{1, 2}, Position: 1},
	}

	ids := cat.IDs()
	require.Len(t, ids, 37)
	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			run, err := cat.Run(context.Background(), rn, id, inputs[id])
			require.NoError(t, err)
			require.Equal(t, engine.StatusCompleted, wait(t, run), "%v", run.Err())

			steps := run.Steps()
			require.NotEmpty(t, steps)
			assert.True(t, steps[len(steps)-1].Kind.Terminal())
			assert.Equal(t, id, run.Algorithm())
		})
	}
}

func TestRun_Errors(t *testing.T) {
	cat := catalog.New(catalog.DefaultPresets())
	rn := engine.NewRunner()
	ctx := context.Background()

	_, err := cat.Run(ctx, rn, "bogo-sort", nil)
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
	assert.ErrorIs(t, err, catalog.ErrUnknownAlgorithm)

	_, err = cat.Run(ctx, rn, "sort.quick", &catalog.JobsInput{})
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
	assert.ErrorIs(t, err, catalog.ErrInputType)

	_, err = cat.Run(ctx, rn, "sort.quick", nil, engine.WithAnimateOnly())
	assert.ErrorIs(t, err, catalog.ErrNoAnimation)

	_, err = cat.Run(ctx, rn, "hash.insert", &catalog.HashInput{Key: "k", Value: "v", Policy: "cuckoo"})
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
	assert.ErrorIs(t, err, hashtable.ErrUnknownPolicy)

	_, err = cat.Run(ctx, rn, "graph.astar", &catalog.GraphInput{Heuristic: "manhattan"})
	assert.ErrorIs(t, err, catalog.ErrUnknownHeuristic)

	_, err = cat.Run(ctx, rn, "nqueens.solve", &catalog.QueensInput{N: 17})
	assert.ErrorIs(t, err, nqueens.ErrBadSize)

	_, err = cat.Run(ctx, rn, "binary-search", nil, engine.WithPacing(-time.Second))
	assert.ErrorIs(t, err, engine.ErrInvalidInput)

	assert.Empty(t, rn.Runs(), "rejected inputs never create runs")
}

func TestDecode_YAML(t *testing.T) {
	cat := catalog.New(catalog.DefaultPresets())

	in, err := cat.Decode("graph.dijkstra", []byte(`
nodes:
  - {id: A, x: 0, y: 0}
  - {id: B, x: 3, y: 4}
  - {id: C, x: 6, y: 8}
edges:
  - {from: A, to: B}
  - {from: B, to: C, weight: 1}
start: A
goal: C
`))
	require.NoError(t, err)
	g := in.(*catalog.GraphInput)
	assert.Len(t, g.Nodes, 3)
	assert.Nil(t, g.Edges[0].Weight)

	run, err := cat.Run(context.Background(), engine.NewRunner(), "graph.dijkstra", in)
	require.NoError(t, err)
	require.Equal(t, engine.StatusCompleted, wait(t, run))
	last := run.Steps()[run.Len()-1]
	assert.Equal(t, engine.KindFound, last.Kind)

	_, err = cat.Decode("sort.merge", []byte("valuez: [1, 2]"))
	assert.ErrorIs(t, err, engine.ErrInvalidInput, "unknown fields are rejected")

	empty, err := cat.Decode("schedule.edf", nil)
	require.NoError(t, err)
	assert.Equal(t, &catalog.JobsInput{}, empty)
}

func TestRun_ExplicitValues(t *testing.T) {
	cat := catalog.New(catalog.DefaultPresets())
	run, err := cat.Run(context.Background(), engine.NewRunner(), "sort.insertion", &catalog.ArrayInput{Values: []int{3, 2, 1}})
	require.NoError(t, err)
	wait(t, run)

	res, err := engine.ResultAs[*sorting.Result](run)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Sorted)
}

func TestRun_PresetsFeedEmptyInputs(t *testing.T) {
	p := catalog.DefaultPresets()
	p.Jobs = []scheduling.Job{{ID: 9, Name: "only", Duration: 100, Deadline: 500, Priority: 1}}
	cat := catalog.New(p)

	run, err := cat.Run(context.Background(), engine.NewRunner(), "schedule.sjf", nil)
	require.NoError(t, err)
	wait(t, run)
	res, err := engine.ResultAs[*scheduling.Result](run)
	require.NoError(t, err)
	require.Len(t, res.Slots, 1)
	assert.Equal(t, 9, res.Slots[0].Job.ID)
}

func TestAnimateOnly(t *testing.T) {
	cat := catalog.New(catalog.DefaultPresets())
	rn := engine.NewRunner()

	run, err := cat.Run(context.Background(), rn, "nqueens.solve", &catalog.QueensInput{N: 4}, engine.WithAnimateOnly())
	require.NoError(t, err)
	wait(t, run)
	kinds := map[engine.Kind]int{}
	for _, s := range run.Steps() {
		kinds[s.Kind]++
	}
	assert.Equal(t, map[engine.Kind]int{engine.KindPlace: 4, engine.KindFound: 1}, kinds)

	_, err = cat.Run(context.Background(), rn, "nqueens.solve", &catalog.QueensInput{N: 3}, engine.WithAnimateOnly())
	assert.ErrorIs(t, err, nqueens.ErrInvalidSolution)

	run, err = cat.Run(context.Background(), rn, "sudoku.solve", &catalog.SudokuInput{Preset: "easy"}, engine.WithAnimateOnly())
	require.NoError(t, err)
	wait(t, run)
	res, err := engine.ResultAs[*sudoku.Result](run)
	require.NoError(t, err)
	assert.True(t, sudoku.Validate(res.Grid).Solved)
	for _, s := range run.Steps() {
		assert.NotEqual(t, engine.KindBacktrack, s.Kind, "animate-only never searches")
	}
}

func TestRegister(t *testing.T) {
	cat := catalog.New(catalog.Presets{})
	err := cat.Register(catalog.Entry{
		ID:       "binary-search",
		NewInput: func() any { return new(catalog.ArrayInput) },
		Compute:  func(any) (engine.Body, error) { return nil, nil },
	})
	assert.ErrorIs(t, err, catalog.ErrDuplicateEntry)
	assert.ErrorIs(t, cat.Register(catalog.Entry{ID: "x"}), engine.ErrInvalidInput)

	_, err = cat.Lookup("binary-search")
	assert.NoError(t, err)
}

func TestRun_HashPreloadMustFit(t *testing.T) {
	cat := catalog.New(catalog.DefaultPresets())
	in := &catalog.HashInput{
		Size:    2,
		Policy:  "linear",
		Entries: []catalog.KeyValue{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}, {Key: "c", Value: "3"}},
		Key:     "a",
	}
	_, err := cat.Body("hash.search", in, false)
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
	assert.ErrorIs(t, err, hashtable.ErrFull)

	in.Size = 3
	_, err = cat.Body("hash.search", in, false)
	assert.NoError(t, err)
}

func TestRun_LinearStructures(t *testing.T) {
	cat := catalog.New(catalog.DefaultPresets())
	rn := engine.NewRunner()

	in, err := cat.Decode("list.insert", []byte("items: [1, 2, 4]\nposition: 2\nvalue: 3\n"))
	require.NoError(t, err)
	run, err := cat.Run(context.Background(), rn, "list.insert", in)
	require.NoError(t, err)
	require.Equal(t, engine.StatusCompleted, wait(t, run))
	res, err := engine.ResultAs[*linear.Result](run)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, res.Items)

	_, err = cat.Run(context.Background(), rn, "list.insert", &catalog.LinearInput{Items: []int{1}, Position: 5})
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
	assert.ErrorIs(t, err, linear.ErrPosition)

	_, err = cat.Run(context.Background(), rn, "stack.pop", nil)
	assert.ErrorIs(t, err, linear.ErrEmpty)
}

// graphOf builds the graph a search entry would run on.
func graphOf(t *testing.T, in *catalog.GraphInput) *core.Graph {
	t.Helper()
	cat := catalog.New(catalog.DefaultPresets())
	run, err := cat.Run(context.Background(), engine.NewRunner(), "graph.bfs", in)
	require.NoError(t, err)
	require.Equal(t, engine.StatusCompleted, wait(t, run), "%v", run.Err())

	g, err := cat.Graph(in)
	require.NoError(t, err)

	return g
}

func TestGraphInput_Grid(t *testing.T) {
	margin := 0.0
	g := graphOf(t, &catalog.GraphInput{Grid: &catalog.GridGraph{Rows: 2, Cols: 3, Spacing: 10.4, Margin: &margin}, RoundedWeights: true})

	assert.Equal(t, 6, g.VertexCount())
	v, ok := g.Vertex(builder.GridID(1, 2))
	require.True(t, ok)
	assert.InDelta(t, 20.8, v.X, 1e-9)
	for _, e := range g.Edges() {
		assert.Equal(t, 10.0, e.Weight)
	}

	_, err := catalog.New(catalog.DefaultPresets()).Graph(&catalog.GraphInput{Grid: &catalog.GridGraph{Rows: 0, Cols: 2}})
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestGraphInput_RandomOptions(t *testing.T) {
	g := graphOf(t, &catalog.GraphInput{Random: &catalog.RandomGraph{Nodes: 5, IDs: catalog.IDsLetters}, RoundedWeights: true})
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.VertexIDs())
	for _, e := range g.Edges() {
		assert.Equal(t, math.Round(e.Weight), e.Weight)
	}

	g = graphOf(t, &catalog.GraphInput{Random: &catalog.RandomGraph{Nodes: 3, IDPrefix: "n"}})
	assert.Equal(t, []string{"n0", "n1", "n2"}, g.VertexIDs())

	margin := 200.0
	g = graphOf(t, &catalog.GraphInput{Random: &catalog.RandomGraph{Nodes: 4, Margin: &margin}})
	for _, v := range g.Vertices() {
		assert.GreaterOrEqual(t, v.X, margin)
		assert.LessOrEqual(t, v.X, 800-margin)
	}

	cat := catalog.New(catalog.DefaultPresets())
	_, err := cat.Graph(&catalog.GraphInput{Random: &catalog.RandomGraph{IDs: "roman"}})
	assert.ErrorIs(t, err, catalog.ErrUnknownIDScheme)
	bad := -1.0
	_, err = cat.Graph(&catalog.GraphInput{Random: &catalog.RandomGraph{Margin: &bad}})
	assert.ErrorIs(t, err, builder.ErrInvalidCanvas)
}

func TestGraphInput_ExplicitRounded(t *testing.T) {
	g, err := catalog.New(catalog.DefaultPresets()).Graph(&catalog.GraphInput{
		Nodes:          []catalog.NodeSpec{{ID: "A"}, {ID: "B", X: 1, Y: 1}},
		Edges:          []catalog.EdgeSpec{{From: "A", To: "B"}},
		RoundedWeights: true,
	})
	require.NoError(t, err)
	e, ok := g.EdgeBetween("A", "B")
	require.True(t, ok)
	assert.Equal(t, 1.0, e.Weight)
}
