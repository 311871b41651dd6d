// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/dsaviz/builder"
	"github.com/katalvlaran/dsaviz/core"
	"github.com/katalvlaran/dsaviz/scheduling"
	"github.com/katalvlaran/dsaviz/sudoku"
)

// ArrayInput feeds binary search and the sorts. Empty Values are generated
// from Size, Min, Max and Seed.
type ArrayInput struct {
	Values []int `yaml:"values" json:"values,omitempty"`
	Target int   `yaml:"target" json:"target,omitempty"`
	Size   int   `yaml:"size" json:"size,omitempty"`
	Min    int   `yaml:"min" json:"min,omitempty"`
	Max    int   `yaml:"max" json:"max,omitempty"`
	Seed   int64 `yaml:"seed" json:"seed,omitempty"`
}

// TreeInput feeds the BST operations: the tree is built from Values, then
// Value is inserted, searched or deleted, or the tree is walked in Order.
type TreeInput struct {
	Values []int  `yaml:"values" json:"values,omitempty"`
	Value  int    `yaml:"value" json:"value"`
	Order  string `yaml:"order" json:"order,omitempty"`
}

// NodeSpec is one explicit graph vertex.
type NodeSpec struct {
	ID string  `yaml:"id" json:"id"`
	X  float64 `yaml:"x" json:"x"`
	Y  float64 `yaml:"y" json:"y"`
}

// EdgeSpec is one explicit graph edge. A nil Weight uses the Euclidean
// distance between the endpoints.
type EdgeSpec struct {
	From   string   `yaml:"from" json:"from"`
	To     string   `yaml:"to" json:"to"`
	Weight *float64 `yaml:"weight" json:"weight,omitempty"`
}

// ErrUnknownIDScheme reports a vertex id scheme other than numeric or letters.
var ErrUnknownIDScheme = errors.New("catalog: unknown vertex id scheme")

// Vertex id schemes for random graphs.
const (
	IDsNumeric = "numeric" // "0", "1", ...
	IDsLetters = "letters" // "A" .. "Z", "AA", ...
)

const defaultGridSpacing = 100.0

// RandomGraph parameterizes a random geometric graph. A nil Margin keeps
// the builder default; IDPrefix wins over IDs.
type RandomGraph struct {
	Nodes    int      `yaml:"nodes" json:"nodes"`
	Width    float64  `yaml:"width" json:"width"`
	Height   float64  `yaml:"height" json:"height"`
	Radius   float64  `yaml:"radius" json:"radius"`
	Keep     float64  `yaml:"keep_probability" json:"keep_probability"`
	Seed     int64    `yaml:"seed" json:"seed"`
	Margin   *float64 `yaml:"margin" json:"margin,omitempty"`
	IDs      string   `yaml:"ids" json:"ids,omitempty"`
	IDPrefix string   `yaml:"id_prefix" json:"id_prefix,omitempty"`
}

// GridGraph parameterizes an orthogonal grid with "r,c" vertex ids.
// A zero Spacing selects 100.
type GridGraph struct {
	Rows    int      `yaml:"rows" json:"rows"`
	Cols    int      `yaml:"cols" json:"cols"`
	Spacing float64  `yaml:"spacing" json:"spacing,omitempty"`
	Margin  *float64 `yaml:"margin" json:"margin,omitempty"`
}

// GraphInput feeds the graph searches. Explicit Nodes/Edges win over Grid,
// Grid wins over Random; with none of them the preset random graph is used.
// Empty Start and Goal default to the first and last vertex; Traverse drops
// the goal. RoundedWeights rounds derived distances to whole numbers;
// explicit edge weights are kept as given.
type GraphInput struct {
	Nodes          []NodeSpec   `yaml:"nodes" json:"nodes,omitempty"`
	Edges          []EdgeSpec   `yaml:"edges" json:"edges,omitempty"`
	Grid           *GridGraph   `yaml:"grid" json:"grid,omitempty"`
	Random         *RandomGraph `yaml:"random" json:"random,omitempty"`
	Directed       bool         `yaml:"directed" json:"directed,omitempty"`
	RoundedWeights bool         `yaml:"rounded_weights" json:"rounded_weights,omitempty"`
	Start          string       `yaml:"start" json:"start,omitempty"`
	Goal           string       `yaml:"goal" json:"goal,omitempty"`
	Traverse       bool         `yaml:"traverse" json:"traverse,omitempty"`
	Heuristic      string       `yaml:"heuristic" json:"heuristic,omitempty"`
}

// WordsInput feeds the trie operations. Nil Words selects the preset list.
type WordsInput struct {
	Words  []string `yaml:"words" json:"words,omitempty"`
	Word   string   `yaml:"word" json:"word,omitempty"`
	Prefix string   `yaml:"prefix" json:"prefix,omitempty"`
}

// KeyValue is one preloaded hash table entry.
type KeyValue struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// HashInput feeds the hash table operations. The table is built from
// Entries, then Key (and Value for insert) is applied.
type HashInput struct {
	Size     int        `yaml:"size" json:"size,omitempty"`
	Policy   string     `yaml:"policy" json:"policy,omitempty"`
	Deletion string     `yaml:"deletion" json:"deletion,omitempty"`
	Entries  []KeyValue `yaml:"entries" json:"entries,omitempty"`
	Key      string     `yaml:"key" json:"key"`
	Value    string     `yaml:"value" json:"value,omitempty"`
}

// QueensInput feeds N-Queens. Solution is only read in animate-only mode;
// when empty it is computed first.
type QueensInput struct {
	N        int   `yaml:"n" json:"n"`
	Solution []int `yaml:"solution" json:"solution,omitempty"`
}

// SudokuInput feeds the Sudoku solver. Grid wins over Preset. Solution is
// only read in animate-only mode; when empty it is computed first.
type SudokuInput struct {
	Preset      string  `yaml:"preset" json:"preset,omitempty"`
	Grid        [][]int `yaml:"grid" json:"grid,omitempty"`
	Solution    [][]int `yaml:"solution" json:"solution,omitempty"`
	MaxAttempts int     `yaml:"max_attempts" json:"max_attempts,omitempty"`
}

// LinearInput feeds the stack, queue and linked list operations. Items is
// the structure before the operation: the top of a stack and the back of a
// queue are the last element.
type LinearInput struct {
	Items    []int `yaml:"items" json:"items,omitempty"`
	Value    int   `yaml:"value" json:"value"`
	Position int   `yaml:"position" json:"position,omitempty"`
}

// JobsInput feeds the schedulers. Nil Jobs selects the preset jobs.
type JobsInput struct {
	Jobs []scheduling.Job `yaml:"jobs" json:"jobs,omitempty"`
}

// Presets are the defaults entries fall back to when an input leaves a
// field empty.
type Presets struct {
	ArraySize  int
	ArrayMin   int
	ArrayMax   int
	Words      []string
	Jobs       []scheduling.Job
	Sudoku     map[string]sudoku.Grid
	Graph      RandomGraph
	HashSize   int
	HashPolicy string
	QueensN    int
}

func (in *GraphInput) graphOptions() []core.GraphOption {
	if in.Directed {
		return []core.GraphOption{core.WithDirected()}
	}

	return nil
}

// common returns the builder options shared by every generated graph.
func (in *GraphInput) common(margin *float64) ([]builder.BuilderOption, error) {
	var bopts []builder.BuilderOption
	if margin != nil {
		if *margin < 0 {
			return nil, fmt.Errorf("%w: margin %g", builder.ErrInvalidCanvas, *margin)
		}
		bopts = append(bopts, builder.WithMargin(*margin))
	}
	if in.RoundedWeights {
		bopts = append(bopts, builder.WithRoundedWeights())
	}

	return bopts, nil
}

func (in *GraphInput) random(g RandomGraph) (*core.Graph, error) {
	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("%w: canvas %gx%g", builder.ErrInvalidCanvas, g.Width, g.Height)
	}
	bopts, err := in.common(g.Margin)
	if err != nil {
		return nil, err
	}
	bopts = append(bopts, builder.WithSeed(g.Seed), builder.WithCanvas(g.Width, g.Height))
	switch {
	case g.IDPrefix != "":
		bopts = append(bopts, builder.WithPrefixIDs(g.IDPrefix))
	case g.IDs == "" || g.IDs == IDsNumeric:
	case g.IDs == IDsLetters:
		bopts = append(bopts, builder.WithLetterIDs())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIDScheme, g.IDs)
	}

	return builder.BuildGraph(in.graphOptions(), bopts, builder.RandomGeometric(g.Nodes, g.Radius, g.Keep))
}

func (in *GraphInput) grid() (*core.Graph, error) {
	spacing := in.Grid.Spacing
	if spacing == 0 {
		spacing = defaultGridSpacing
	}
	bopts, err := in.common(in.Grid.Margin)
	if err != nil {
		return nil, err
	}

	return builder.BuildGraph(in.graphOptions(), bopts, builder.Grid(in.Grid.Rows, in.Grid.Cols, spacing))
}

func (in *GraphInput) graph(preset RandomGraph) (*core.Graph, error) {
	switch {
	case len(in.Nodes) > 0 || len(in.Edges) > 0:
		return in.explicit()
	case in.Grid != nil:
		return in.grid()
	case in.Random != nil:
		r := *in.Random
		fill(&r, preset)

		return in.random(r)
	default:
		return in.random(preset)
	}
}

func (in *GraphInput) explicit() (*core.Graph, error) {
	g := core.NewGraph(in.graphOptions()...)
	for _, n := range in.Nodes {
		if err := g.AddVertex(n.ID, core.WithPosition(n.X, n.Y)); err != nil {
			return nil, err
		}
	}
	for _, e := range in.Edges {
		if err := g.AddVertex(e.From); err != nil {
			return nil, err
		}
		if err := g.AddVertex(e.To); err != nil {
			return nil, err
		}
		var w float64
		if e.Weight != nil {
			w = *e.Weight
		} else {
			d, err := g.Distance(e.From, e.To)
			if err != nil {
				return nil, err
			}
			w = d
			if in.RoundedWeights {
				w = math.Round(d)
			}
		}
		if _, err := g.AddEdge(e.From, e.To, w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// fill copies preset values into the zero fields of r.
func fill(r *RandomGraph, preset RandomGraph) {
	if r.Nodes == 0 {
		r.Nodes = preset.Nodes
	}
	if r.Width == 0 {
		r.Width = preset.Width
	}
	if r.Height == 0 {
		r.Height = preset.Height
	}
	if r.Radius == 0 {
		r.Radius = preset.Radius
	}
	if r.Keep == 0 {
		r.Keep = preset.Keep
	}
	if r.Margin == nil {
		r.Margin = preset.Margin
	}
	if r.IDs == "" && r.IDPrefix == "" {
		r.IDs, r.IDPrefix = preset.IDs, preset.IDPrefix
	}
}

func (in *ArrayInput) rng() *rand.Rand {
	return rand.New(rand.NewSource(in.Seed))
}
