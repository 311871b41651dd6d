// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dsaviz/astar"
	"github.com/katalvlaran/dsaviz/bfs"
	"github.com/katalvlaran/dsaviz/binsearch"
	"github.com/katalvlaran/dsaviz/bst"
	"github.com/katalvlaran/dsaviz/builder"
	"github.com/katalvlaran/dsaviz/core"
	"github.com/katalvlaran/dsaviz/dfs"
	"github.com/katalvlaran/dsaviz/dijkstra"
	"github.com/katalvlaran/dsaviz/engine"
	"github.com/katalvlaran/dsaviz/hashtable"
	"github.com/katalvlaran/dsaviz/linear"
	"github.com/katalvlaran/dsaviz/nqueens"
	"github.com/katalvlaran/dsaviz/scheduling"
	"github.com/katalvlaran/dsaviz/sorting"
	"github.com/katalvlaran/dsaviz/sudoku"
	"github.com/katalvlaran/dsaviz/trie"
)

// ErrUnknownHeuristic reports an A* heuristic name other than euclidean or zero.
var ErrUnknownHeuristic = errors.New("catalog: unknown heuristic")

// DefaultPresets returns the built-in fallbacks.
func DefaultPresets() Presets {
	return Presets{
		ArraySize:  10,
		ArrayMin:   5,
		ArrayMax:   95,
		Words:      trie.SampleWords(),
		Jobs:       scheduling.SampleJobs(),
		Graph:      RandomGraph{Nodes: 12, Width: 800, Height: 500, Radius: 150, Keep: 0.6, Seed: 1},
		HashSize:   10,
		HashPolicy: string(hashtable.Chaining),
		QueensN:    8,
	}
}

func (c *Catalog) builtins() []Entry {
	entries := []Entry{
		{
			ID:          "binary-search",
			Description: "Binary search over a sorted array",
			NewInput:    func() any { return new(ArrayInput) },
			Compute:     typed(c.binarySearch),
		},
		c.treeEntry("bst.insert", "Insert a value into a binary search tree", bst.Insert),
		c.treeEntry("bst.search", "Search a binary search tree", bst.Search),
		c.treeEntry("bst.delete", "Delete a value from a binary search tree", bst.Delete),
		{
			ID:          "bst.traverse",
			Description: "Depth-first traversal of a binary search tree",
			NewInput:    func() any { return new(TreeInput) },
			Compute:     typed(traverse),
		},
		c.graphEntry("graph.bfs", "Breadth-first search", func(g *core.Graph, s, t string, _ *GraphInput) (engine.Body, error) {
			return bfs.Search(g, s, t)
		}),
		c.graphEntry("graph.dfs", "Depth-first search", func(g *core.Graph, s, t string, _ *GraphInput) (engine.Body, error) {
			return dfs.Search(g, s, t)
		}),
		c.graphEntry("graph.dijkstra", "Dijkstra shortest path", func(g *core.Graph, s, t string, _ *GraphInput) (engine.Body, error) {
			return dijkstra.Search(g, s, t)
		}),
		c.graphEntry("graph.astar", "A* shortest path", searchAStar),
		{
			ID:          "trie.insert",
			Description: "Insert a word into a trie",
			NewInput:    func() any { return new(WordsInput) },
			Compute: typed(func(in *WordsInput) (engine.Body, error) {
				return trie.Insert(c.trie(in), in.Word)
			}),
		},
		{
			ID:          "trie.suggest",
			Description: "Autocomplete a prefix from a trie",
			NewInput:    func() any { return new(WordsInput) },
			Compute: typed(func(in *WordsInput) (engine.Body, error) {
				return trie.Suggest(c.trie(in), in.Prefix)
			}),
		},
		c.hashEntry("hash.insert", "Insert a key into a hash table", func(t *hashtable.Table, in *HashInput) (engine.Body, error) {
			return hashtable.Insert(t, in.Key, in.Value)
		}),
		c.hashEntry("hash.search", "Look a key up in a hash table", func(t *hashtable.Table, in *HashInput) (engine.Body, error) {
			return hashtable.Search(t, in.Key)
		}),
		c.hashEntry("hash.delete", "Delete a key from a hash table", func(t *hashtable.Table, in *HashInput) (engine.Body, error) {
			return hashtable.Delete(t, in.Key)
		}),
		{
			ID:          "nqueens.solve",
			Description: "First N-Queens solution by backtracking",
			NewInput:    func() any { return new(QueensInput) },
			Compute: typed(func(in *QueensInput) (engine.Body, error) {
				return nqueens.Solve(c.queensN(in))
			}),
			Animate: typed(c.showQueens),
		},
		{
			ID:          "nqueens.solve-all",
			Description: "Every N-Queens solution by backtracking",
			NewInput:    func() any { return new(QueensInput) },
			Compute: typed(func(in *QueensInput) (engine.Body, error) {
				return nqueens.SolveAll(c.queensN(in))
			}),
		},
		{
			ID:          "sudoku.solve",
			Description: "Sudoku by backtracking",
			NewInput:    func() any { return new(SudokuInput) },
			Compute:     typed(c.solveSudoku),
			Animate:     typed(c.showSudoku),
		},
		linearEntry("stack.push", "Push a value onto a stack", func(in *LinearInput) (engine.Body, error) {
			return linear.Push(in.Items, in.Value)
		}),
		linearEntry("stack.pop", "Pop the top of a stack", func(in *LinearInput) (engine.Body, error) {
			return linear.Pop(in.Items)
		}),
		linearEntry("stack.peek", "Peek at the top of a stack", func(in *LinearInput) (engine.Body, error) {
			return linear.Peek(in.Items)
		}),
		linearEntry("queue.enqueue", "Enqueue a value at the back of a queue", func(in *LinearInput) (engine.Body, error) {
			return linear.Enqueue(in.Items, in.Value)
		}),
		linearEntry("queue.dequeue", "Dequeue the front of a queue", func(in *LinearInput) (engine.Body, error) {
			return linear.Dequeue(in.Items)
		}),
		linearEntry("queue.front", "Look at the front of a queue", func(in *LinearInput) (engine.Body, error) {
			return linear.Front(in.Items)
		}),
		linearEntry("list.insert", "Insert a value at a linked list position", func(in *LinearInput) (engine.Body, error) {
			return linear.Insert(in.Items, in.Position, in.Value)
		}),
		linearEntry("list.delete", "Delete the node at a linked list position", func(in *LinearInput) (engine.Body, error) {
			return linear.Delete(in.Items, in.Position)
		}),
		linearEntry("list.search", "Search a linked list for a value", func(in *LinearInput) (engine.Body, error) {
			return linear.Search(in.Items, in.Value)
		}),
		clearEntry(linear.Stack, "Empty a stack"),
		clearEntry(linear.Queue, "Empty a queue"),
		clearEntry(linear.List, "Empty a linked list"),
	}

	for _, alg := range sorting.Algorithms() {
		entries = append(entries, Entry{
			ID:          "sort." + string(alg),
			Description: strings.ToUpper(string(alg[:1])) + string(alg[1:]) + " sort",
			NewInput:    func() any { return new(ArrayInput) },
			Compute: typed(func(in *ArrayInput) (engine.Body, error) {
				values, err := c.Array(in)
				if err != nil {
					return nil, err
				}

				return sorting.Sort(alg, values)
			}),
		})
	}
	for _, p := range scheduling.Policies() {
		entries = append(entries, Entry{
			ID:          "schedule." + string(p),
			Description: p.Describe(),
			NewInput:    func() any { return new(JobsInput) },
			Compute: typed(func(in *JobsInput) (engine.Body, error) {
				jobs := in.Jobs
				if jobs == nil {
					jobs = c.presets.Jobs
				}

				return scheduling.Schedule(p, jobs)
			}),
		})
	}

	return entries
}

// Array returns in.Values, or a random array drawn with in.Seed from the
// preset size and range.
func (c *Catalog) Array(in *ArrayInput) ([]int, error) {
	if len(in.Values) > 0 {
		return in.Values, nil
	}
	n, lo, hi := in.Size, in.Min, in.Max
	if n == 0 {
		n = c.presets.ArraySize
	}
	if lo == 0 && hi == 0 {
		lo, hi = c.presets.ArrayMin, c.presets.ArrayMax
	}

	return sorting.RandomArray(in.rng(), n, lo, hi)
}

func (c *Catalog) binarySearch(in *ArrayInput) (engine.Body, error) {
	values := in.Values
	if len(values) == 0 {
		n := in.Size
		if n == 0 {
			n = c.presets.ArraySize
		}
		var err error
		if values, err = binsearch.GenerateSorted(in.rng(), n); err != nil {
			return nil, err
		}
	}

	return binsearch.Search(values, in.Target)
}

func (c *Catalog) treeEntry(id, desc string, op func(*bst.Tree, int) (engine.Body, error)) Entry {
	return Entry{
		ID:          id,
		Description: desc,
		NewInput:    func() any { return new(TreeInput) },
		Compute: typed(func(in *TreeInput) (engine.Body, error) {
			return op(bst.New(in.Values...), in.Value)
		}),
	}
}

func traverse(in *TreeInput) (engine.Body, error) {
	name := in.Order
	if name == "" {
		name = string(bst.InOrder)
	}
	o, err := bst.ParseOrder(name)
	if err != nil {
		return nil, err
	}

	return bst.Traverse(bst.New(in.Values...), o)
}

// Graph builds the graph in describes, falling back to the preset random
// graph.
func (c *Catalog) Graph(in *GraphInput) (*core.Graph, error) {
	if in == nil {
		in = new(GraphInput)
	}

	return in.graph(c.presets.Graph)
}

type graphSearch func(g *core.Graph, start, goal string, in *GraphInput) (engine.Body, error)

func (c *Catalog) graphEntry(id, desc string, search graphSearch) Entry {
	return Entry{
		ID:          id,
		Description: desc,
		NewInput:    func() any { return new(GraphInput) },
		Compute: typed(func(in *GraphInput) (engine.Body, error) {
			g, err := c.Graph(in)
			if err != nil {
				return nil, err
			}
			first, last, err := builder.Endpoints(g)
			if err != nil {
				return nil, err
			}
			start, goal := in.Start, in.Goal
			if start == "" {
				start = first
			}
			switch {
			case in.Traverse:
				goal = ""
			case goal == "":
				goal = last
			}

			return search(g, start, goal, in)
		}),
	}
}

func searchAStar(g *core.Graph, start, goal string, in *GraphInput) (engine.Body, error) {
	var opts []astar.Option
	switch strings.ToLower(in.Heuristic) {
	case "", "euclidean":
	case "zero":
		opts = append(opts, astar.WithHeuristic(astar.Zero))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, in.Heuristic)
	}

	return astar.Search(g, start, goal, opts...)
}

func (c *Catalog) trie(in *WordsInput) *trie.Trie {
	words := in.Words
	if words == nil {
		words = c.presets.Words
	}

	return trie.New(words...)
}

func (c *Catalog) hashEntry(id, desc string, op func(*hashtable.Table, *HashInput) (engine.Body, error)) Entry {
	return Entry{
		ID:          id,
		Description: desc,
		NewInput:    func() any { return new(HashInput) },
		Compute: typed(func(in *HashInput) (engine.Body, error) {
			t, err := c.table(in)
			if err != nil {
				return nil, err
			}

			return op(t, in)
		}),
	}
}

func (c *Catalog) table(in *HashInput) (*hashtable.Table, error) {
	size, name := in.Size, in.Policy
	if size == 0 {
		size = c.presets.HashSize
	}
	if name == "" {
		name = c.presets.HashPolicy
	}
	policy, err := hashtable.ParsePolicy(name)
	if err != nil {
		return nil, err
	}
	del, err := hashtable.ParseDeletion(in.Deletion)
	if err != nil {
		return nil, err
	}
	t, err := hashtable.New(size, policy, hashtable.WithDeletion(del))
	if err != nil {
		return nil, err
	}
	for _, kv := range in.Entries {
		if kv.Key == "" || kv.Value == "" {
			return nil, fmt.Errorf("%w: entry %q=%q", hashtable.ErrEmptyKey, kv.Key, kv.Value)
		}
		if _, ok := t.Put(kv.Key, kv.Value); !ok {
			return nil, fmt.Errorf("%w: entry %q in a %d-slot %s table", hashtable.ErrFull, kv.Key, size, policy)
		}
	}

	return t, nil
}

func linearEntry(id, desc string, op func(*LinearInput) (engine.Body, error)) Entry {
	return Entry{
		ID:          id,
		Description: desc,
		NewInput:    func() any { return new(LinearInput) },
		Compute:     typed(op),
	}
}

func clearEntry(s linear.Structure, desc string) Entry {
	return linearEntry(string(s)+".clear", desc, func(in *LinearInput) (engine.Body, error) {
		return linear.Clear(s, in.Items)
	})
}

func (c *Catalog) queensN(in *QueensInput) int {
	if in.N == 0 {
		return c.presets.QueensN
	}

	return in.N
}

// showQueens animates in.Solution, solving the board off-screen when it
// is empty.
func (c *Catalog) showQueens(in *QueensInput) (engine.Body, error) {
	if len(in.Solution) > 0 {
		return nqueens.Show(in.Solution)
	}
	n := c.queensN(in)
	body, err := nqueens.Solve(n)
	if err != nil {
		return nil, err
	}
	run, err := engine.Execute(context.Background(), "nqueens.solve", body)
	if err != nil {
		return nil, err
	}
	res, err := engine.ResultAs[*nqueens.Result](run)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, fmt.Errorf("%w: n=%d has no solution", nqueens.ErrInvalidSolution, n)
	}

	return nqueens.Show(res.Solutions[0])
}

func (c *Catalog) puzzle(in *SudokuInput) (sudoku.Grid, error) {
	if len(in.Grid) > 0 {
		return sudoku.FromRows(in.Grid)
	}
	name := strings.ToLower(in.Preset)
	if name == "" {
		name = sudoku.PresetNames()[0]
	}
	if g, ok := c.presets.Sudoku[name]; ok {
		return g, nil
	}

	return sudoku.Preset(name)
}

func (in *SudokuInput) options() []sudoku.Option {
	if in.MaxAttempts > 0 {
		return []sudoku.Option{sudoku.WithMaxAttempts(in.MaxAttempts)}
	}

	return nil
}

func (c *Catalog) solveSudoku(in *SudokuInput) (engine.Body, error) {
	g, err := c.puzzle(in)
	if err != nil {
		return nil, err
	}

	return sudoku.Solve(g, in.options()...)
}

// showSudoku animates in.Solution over the puzzle, solving it off-screen
// when no solution is given.
func (c *Catalog) showSudoku(in *SudokuInput) (engine.Body, error) {
	g, err := c.puzzle(in)
	if err != nil {
		return nil, err
	}
	if len(in.Solution) > 0 {
		solved, err := sudoku.FromRows(in.Solution)
		if err != nil {
			return nil, err
		}

		return sudoku.Show(g, solved)
	}

	body, err := sudoku.Solve(g, in.options()...)
	if err != nil {
		return nil, err
	}
	run, err := engine.Execute(context.Background(), "sudoku.solve", body)
	if err != nil {
		return nil, err
	}
	res, err := engine.ResultAs[*sudoku.Result](run)
	if err != nil {
		return nil, err
	}
	if !res.Solved {
		return nil, fmt.Errorf("%w: puzzle has no solution", sudoku.ErrInvalidSolution)
	}

	return sudoku.Show(res.Original, res.Grid)
}
