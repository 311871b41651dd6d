// SPDX-License-Identifier: MIT

package trie

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
)

// MaxSuggestions caps the result of Suggest.
const MaxSuggestions = 10

// ErrEmptyWord indicates a word that is empty after trimming.
var ErrEmptyWord = errors.New("trie: empty word")

// ErrNilTrie indicates an operation on a nil *Trie.
var ErrNilTrie = errors.New("trie: trie is nil")

type node struct {
	children map[rune]*node
	keys     []rune // insertion order of children
	end      bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

func (n *node) child(r rune) (*node, bool) {
	c, ok := n.children[r]
	return c, ok
}

func (n *node) addChild(r rune) *node {
	c := newNode()
	n.children[r] = c
	n.keys = append(n.keys, r)

	return c
}

// Trie stores a set of words.
type Trie struct {
	root  *node
	count int
}

// New returns a trie holding words. Empty words are skipped.
func New(words ...string) *Trie {
	t := &Trie{root: newNode()}
	for _, w := range words {
		t.Add(w)
	}

	return t
}

// Normalize trims and lower-cases w.
func Normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// Add stores w without emitting steps. It reports false for an empty or
// already stored word.
func (t *Trie) Add(w string) bool {
	w = Normalize(w)
	if w == "" {
		return false
	}
	n := t.root
	for _, r := range w {
		c, ok := n.child(r)
		if !ok {
			c = n.addChild(r)
		}
		n = c
	}
	if n.end {
		return false
	}
	n.end = true
	t.count++

	return true
}

// Contains reports whether w is stored.
func (t *Trie) Contains(w string) bool {
	n := t.find(Normalize(w))
	return n != nil && n.end
}

func (t *Trie) find(prefix string) *node {
	n := t.root
	for _, r := range prefix {
		c, ok := n.child(r)
		if !ok {
			return nil
		}
		n = c
	}

	return n
}

// Len returns the number of stored words.
func (t *Trie) Len() int { return t.count }

// Words returns every stored word in lexicographic order.
func (t *Trie) Words() []string {
	var out []string
	collect(t.root, "", func(w string) { out = append(out, w) })
	sort.Strings(out)

	return out
}

// collect walks n depth-first in child insertion order and reports every
// word below it.
func collect(n *node, prefix string, fn func(string)) {
	if n.end {
		fn(prefix)
	}
	for _, r := range n.keys {
		collect(n.children[r], prefix+string(r), fn)
	}
}

// Clone returns a deep copy of t.
func (t *Trie) Clone() *Trie {
	return &Trie{root: cloneNode(t.root), count: t.count}
}

func cloneNode(n *node) *node {
	c := &node{
		children: make(map[rune]*node, len(n.children)),
		keys:     append([]rune(nil), n.keys...),
		end:      n.end,
	}
	for r, ch := range n.children {
		c.children[r] = cloneNode(ch)
	}

	return c
}

// MarshalJSON encodes the trie as its sorted word list.
func (t *Trie) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Words []string `json:"words"`
	}{t.Words()})
}

// SampleWords returns the demonstration vocabulary.
func SampleWords() []string {
	return []string{
		"apple", "application", "apply", "appreciate", "approach",
		"banana", "band", "bandana", "bank", "banner",
		"cat", "car", "card", "care", "careful", "carry",
		"dog", "door", "down", "download", "dragon",
		"elephant", "email", "empty", "end", "energy",
		"fire", "fish", "flag", "flower", "food",
		"game", "garden", "gate", "gift", "girl",
		"house", "happy", "heart", "help", "home",
	}
}
