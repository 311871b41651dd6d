// SPDX-License-Identifier: MIT

package trie

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/dsaviz/engine"
)

// Payload describes one trie step.
//
//	visit / place  Prefix is the path to the node just reached or created
//	highlight      Word was collected below the prefix node
//	found          Word was already stored (Insert)
//	not-found      Prefix left the trie at its last character
//	done           Word stored (Insert) or Suggestions ready (Suggest)
type Payload struct {
	Prefix      string   `json:"prefix,omitempty"`
	Word        string   `json:"word,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Clone implements engine.Payload.
func (p Payload) Clone() engine.Payload {
	c := p
	c.Suggestions = append([]string(nil), p.Suggestions...)

	return c
}

// OpResult is returned by Insert and Suggest.
type OpResult struct {
	Trie        *Trie    `json:"trie"`
	Found       bool     `json:"found"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Insert returns a Body storing word in a clone of t.
func Insert(t *Trie, word string) (engine.Body, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, ErrNilTrie)
	}
	w := Normalize(word)
	if w == "" {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, ErrEmptyWord)
	}
	snap := t.Clone()

	return func(_ context.Context, e *engine.Emitter) (any, error) {
		var m engine.Metrics
		n, prefix := snap.root, ""
		for _, r := range w {
			prefix += string(r)
			kind := engine.KindVisit
			c, ok := n.child(r)
			if !ok {
				c, kind = n.addChild(r), engine.KindPlace
			}
			n = c
			m.Visited++
			if err := e.Emit(kind, Payload{Prefix: prefix}, m); err != nil {
				return nil, err
			}
		}

		if n.end {
			if err := e.Emit(engine.KindFound, Payload{Prefix: w, Word: w}, m); err != nil {
				return nil, err
			}
			return &OpResult{Trie: snap, Found: true}, nil
		}
		n.end = true
		snap.count++
		if err := e.Emit(engine.KindDone, Payload{Prefix: w, Word: w}, m); err != nil {
			return nil, err
		}

		return &OpResult{Trie: snap}, nil
	}, nil
}

// Suggest returns a Body collecting up to MaxSuggestions words of a clone of
// t that start with prefix.
func Suggest(t *Trie, prefix string) (engine.Body, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, ErrNilTrie)
	}
	p := Normalize(prefix)
	snap := t.Clone()

	return func(_ context.Context, e *engine.Emitter) (any, error) {
		var m engine.Metrics
		res := &OpResult{Trie: snap}
		if p == "" {
			return res, e.Emit(engine.KindDone, Payload{}, m)
		}

		n, walked := snap.root, ""
		for _, r := range p {
			walked += string(r)
			c, ok := n.child(r)
			if !ok {
				return res, e.Emit(engine.KindNotFound, Payload{Prefix: walked}, m)
			}
			n = c
			m.Visited++
			if err := e.Emit(engine.KindVisit, Payload{Prefix: walked}, m); err != nil {
				return nil, err
			}
		}

		var words []string
		var err error
		collect(n, p, func(w string) {
			if err != nil {
				return
			}
			words = append(words, w)
			err = e.Emit(engine.KindHighlight, Payload{Prefix: p, Word: w}, m)
		})
		if err != nil {
			return nil, err
		}

		sort.Strings(words)
		if len(words) > MaxSuggestions {
			words = words[:MaxSuggestions]
		}
		res.Found, res.Suggestions = len(words) > 0, words
		if err := e.Emit(engine.KindDone, Payload{Prefix: p, Suggestions: words}, m); err != nil {
			return nil, err
		}

		return res, nil
	}, nil
}
