package bfs_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsaviz/bfs"
	"github.com/katalvlaran/dsaviz/builder"
	"github.com/katalvlaran/dsaviz/core"
	"github.com/katalvlaran/dsaviz/engine"
)

// diamond builds A–B, A–C, B–D, C–D, D–E with unit weights.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

func execute(t *testing.T, body engine.Body) (*engine.Run, *bfs.Result) {
	t.Helper()
	run, err := engine.Execute(context.Background(), "graph.bfs", body)
	require.NoError(t, err)
	require.Equal(t, engine.StatusCompleted, run.Status())
	res, err := engine.ResultAs[*bfs.Result](run)
	require.NoError(t, err)

	return run, res
}

func kinds(run *engine.Run) []engine.Kind {
	var out []engine.Kind
	for _, s := range run.Steps() {
		out = append(out, s.Kind)
	}

	return out
}

func TestSearch_Errors(t *testing.T) {
	g := diamond(t)

	_, err := bfs.Search(nil, "A", "E")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	assert.ErrorIs(t, err, engine.ErrInvalidInput)

	_, err = bfs.Search(g, "X", "E")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.Search(g, "A", "X")
	assert.ErrorIs(t, err, bfs.ErrGoalVertexNotFound)

	_, err = bfs.Search(g, "A", "E", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
}

func TestSearch_ExactStepOrder(t *testing.T) {
	body, err := bfs.Search(diamond(t), "A", "E")
	require.NoError(t, err)
	run, res := execute(t, body)

	assert.Equal(t, []engine.Kind{
		engine.KindVisit, engine.KindDiscover, engine.KindDiscover, // A → B, C
		engine.KindVisit, engine.KindDiscover, // B → D
		engine.KindVisit,                      // C
		engine.KindVisit, engine.KindDiscover, // D → E
		engine.KindVisit, engine.KindFound, // E
	}, kinds(run))

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "D", "E"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)
	assert.Equal(t, 3, res.Depth["E"])

	last := run.Steps()[run.Len()-1]
	assert.Equal(t, []string{"A", "B", "D", "E"}, last.Payload.(core.SearchPayload).Path)
	assert.Equal(t, 5, last.Metrics.Visited)

	first := run.Steps()[0].Payload.(core.SearchPayload)
	assert.Equal(t, "A", first.Vertex)
}

func TestSearch_NotFound(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.AddVertex("Z"))

	body, err := bfs.Search(g, "A", "Z")
	require.NoError(t, err)
	run, res := execute(t, body)

	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Equal(t, engine.KindNotFound, kinds(run)[run.Len()-1])
	_, err = res.PathTo("Z")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestSearch_StartIsGoal(t *testing.T) {
	body, err := bfs.Search(diamond(t), "C", "C")
	require.NoError(t, err)
	run, res := execute(t, body)

	assert.Equal(t, []engine.Kind{engine.KindVisit, engine.KindFound}, kinds(run))
	assert.Equal(t, []string{"C"}, res.Path)
	assert.Zero(t, res.Cost)
}

func TestSearch_TraversalAndOptions(t *testing.T) {
	g := diamond(t)

	body, err := bfs.Search(g, "A", "")
	require.NoError(t, err)
	run, res := execute(t, body)
	assert.Equal(t, engine.KindDone, kinds(run)[run.Len()-1])
	assert.Len(t, res.Order, 5)
	path, err := res.PathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E"}, path)

	body, err = bfs.Search(g, "A", "", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	_, res = execute(t, body)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	body, err = bfs.Search(g, "A", "E", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "B" }))
	require.NoError(t, err)
	_, res = execute(t, body)
	assert.Equal(t, []string{"A", "C", "D", "E"}, res.Path)
}

func TestSearch_UsesSnapshot(t *testing.T) {
	g := diamond(t)
	body, err := bfs.Search(g, "A", "E")
	require.NoError(t, err)

	_, err = g.AddEdge("A", "E", 1)
	require.NoError(t, err)

	_, res := execute(t, body)
	assert.Equal(t, []string{"A", "B", "D", "E"}, res.Path, "edits after Search do not leak into the run")
}

// hops returns all-pairs edge counts by Floyd-Warshall; unreachable pairs
// stay at +Inf.
func hops(g *core.Graph) map[string]map[string]float64 {
	ids := g.VertexIDs()
	d := make(map[string]map[string]float64, len(ids))
	for _, u := range ids {
		d[u] = make(map[string]float64, len(ids))
		for _, v := range ids {
			d[u][v] = math.Inf(1)
		}
		d[u][u] = 0
	}
	for _, e := range g.Edges() {
		d[e.From][e.To] = 1
		d[e.To][e.From] = 1
	}
	for _, k := range ids {
		for _, i := range ids {
			for _, j := range ids {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}

	return d
}

func TestSearch_FewestEdgesOnRandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			g, err := builder.BuildGraph(nil,
				[]builder.BuilderOption{builder.WithSeed(seed)},
				builder.RandomGeometric(14, 220, 0.6))
			require.NoError(t, err)
			want := hops(g)

			for _, s := range g.VertexIDs() {
				body, err := bfs.Search(g, s, "")
				require.NoError(t, err)
				_, res := execute(t, body)

				for _, v := range g.VertexIDs() {
					depth, reached := res.Depth[v]
					if math.IsInf(want[s][v], 1) {
						assert.False(t, reached, "%s→%s is unreachable", s, v)
						continue
					}
					require.True(t, reached, "%s→%s is reachable", s, v)
					assert.Equal(t, want[s][v], float64(depth), "%s→%s", s, v)

					path, err := res.PathTo(v)
					require.NoError(t, err)
					assert.Len(t, path, depth+1)
					for i := 1; i < len(path); i++ {
						assert.True(t, g.HasEdge(path[i-1], path[i]), "%v", path)
					}
				}
			}

			ids := g.VertexIDs()
			first, last := ids[0], ids[len(ids)-1]
			body, err := bfs.Search(g, first, last)
			require.NoError(t, err)
			_, res := execute(t, body)
			if math.IsInf(want[first][last], 1) {
				assert.False(t, res.Found)
				return
			}
			require.True(t, res.Found)
			assert.Equal(t, want[first][last], float64(len(res.Path)-1))
		})
	}
}
