package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsaviz/core"
)

func TestAddVertex_IdempotentAndOrdered(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("B", core.WithPosition(1, 2)))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B", core.WithPosition(9, 9)))

	assert.Equal(t, []string{"B", "A"}, g.VertexIDs())
	v, ok := g.Vertex("B")
	require.True(t, ok)
	assert.Equal(t, core.Vertex{ID: "B", X: 1, Y: 2}, v, "re-adding keeps the first position")

	i, ok := g.Index("A")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.SetPosition("Z", 0, 0), core.ErrVertexNotFound)
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "B", -1)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("A", "B", math.NaN())
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("A", "A", 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	eid, err := g.AddEdge("A", "B", 2.5)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)
	_, err = g.AddEdge("B", "A", 1)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected edges are mirrored")
}

func TestNeighbors_SymmetricInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "C"}, {"A", "B"}, {"D", "A"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	ids := make([]string, len(nbs))
	for i, nb := range nbs {
		ids[i] = nb.ID
	}
	assert.Equal(t, []string{"C", "B", "D"}, ids)

	for _, u := range g.VertexIDs() {
		nbs, err := g.Neighbors(u)
		require.NoError(t, err)
		for _, nb := range nbs {
			assert.True(t, g.HasEdge(nb.ID, u), "%s-%s must be mirrored", nb.ID, u)
		}
	}

	_, err = g.Neighbors("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDirectedGraph_NoMirror(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	_, err = g.AddEdge("B", "A", 1)
	assert.NoError(t, err)
}

func TestDistance(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("O", core.WithPosition(0, 0)))
	require.NoError(t, g.AddVertex("P", core.WithPosition(3, 4)))

	d, err := g.Distance("O", "P")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-9)

	_, err = g.Distance("O", "X")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	c := g.Clone()
	_, err = c.AddEdge("B", "C", 2)
	require.NoError(t, err)
	require.NoError(t, c.SetPosition("A", 7, 7))

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	a, _ := g.Vertex("A")
	assert.Zero(t, a.X)

	assert.Equal(t, 3, c.VertexCount())
	assert.Equal(t, []string{"e1", "e2"}, []string{c.Edges()[0].ID, c.Edges()[1].ID})
}

func TestConcurrentReadsAndWrites(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = g.AddVertex(string(rune('a'+w)) + string(rune('a'+i%26)))
				_ = g.Vertices()
				_ = g.Clone()
			}
		}(w)
	}
	wg.Wait()
	assert.Equal(t, 4*26, g.VertexCount())
}
