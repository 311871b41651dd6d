// SPDX-License-Identifier: MIT

package hashtable

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/katalvlaran/dsaviz/engine"
)

// Sentinel errors.
var (
	ErrBadSize       = errors.New("hashtable: table size must be positive")
	ErrUnknownPolicy = errors.New("hashtable: unknown collision policy")
	ErrEmptyKey      = errors.New("hashtable: empty key")
	ErrEmptyValue    = errors.New("hashtable: empty value")
	ErrNilTable      = errors.New("hashtable: table is nil")
	ErrUnknownDelete = errors.New("hashtable: unknown deletion mode")
	ErrFull          = errors.New("hashtable: no free slot for key")
)

// Policy selects the collision resolution strategy.
type Policy string

// Collision policies.
const (
	Chaining  Policy = "chaining"
	Linear    Policy = "linear"
	Quadratic Policy = "quadratic"
)

// ParsePolicy accepts a policy name, case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case Chaining, Linear, Quadratic:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Deletion selects how open-addressing tables delete keys.
type Deletion int

const (
	// DeleteTombstone marks the slot deleted; probes continue past it.
	DeleteTombstone Deletion = iota
	// DeleteScan empties the first slot holding the key, scanning 0..size-1.
	DeleteScan
)

// ParseDeletion accepts "tombstone" or "scan". Empty selects DeleteTombstone.
func ParseDeletion(s string) (Deletion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tombstone":
		return DeleteTombstone, nil
	case "scan":
		return DeleteScan, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDelete, s)
	}
}

// Option configures a Table.
type Option func(*Table)

// WithDeletion selects the open-addressing deletion mode.
func WithDeletion(d Deletion) Option {
	return func(t *Table) {
		t.deletion = d
	}
}

// Entry is one stored key/value pair. A tombstone keeps its slot occupied
// for probing but holds no key.
type Entry struct {
	Key       string `json:"key,omitempty"`
	Value     string `json:"value,omitempty"`
	Tombstone bool   `json:"tombstone,omitempty"`
}

// Table is a fixed-size hash table. Open-addressing buckets hold at most one
// entry.
type Table struct {
	policy     Policy
	deletion   Deletion
	buckets    [][]Entry
	count      int
	collisions int
}

// New returns an empty table with size buckets.
func New(size int, policy Policy, opts ...Option) (*Table, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %w: size=%d", engine.ErrInvalidInput, ErrBadSize, size)
	}
	p, err := ParsePolicy(string(policy))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, err)
	}
	t := &Table{policy: p, buckets: make([][]Entry, size)}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// Hash returns the home bucket of key in a table of the given size.
func Hash(key string, size int) int {
	var h int32
	for _, u := range utf16.Encode([]rune(key)) {
		h = h*31 + int32(u)
	}
	a := int64(h)
	if a < 0 {
		a = -a
	}

	return int(a % int64(size))
}

// Policy returns the collision policy.
func (t *Table) Policy() Policy { return t.policy }

// Size returns the number of buckets.
func (t *Table) Size() int { return len(t.buckets) }

// Len returns the number of stored keys.
func (t *Table) Len() int { return t.count }

// Collisions returns how many inserts collided.
func (t *Table) Collisions() int { return t.collisions }

// LoadFactor returns Len / Size.
func (t *Table) LoadFactor() float64 {
	return float64(t.count) / float64(len(t.buckets))
}

// Buckets returns a copy of every bucket.
func (t *Table) Buckets() [][]Entry {
	out := make([][]Entry, len(t.buckets))
	for i, b := range t.buckets {
		out[i] = append([]Entry(nil), b...)
	}

	return out
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	c := *t
	c.buckets = t.Buckets()

	return &c
}

// Put inserts or updates key without emitting steps. It reports the bucket
// used and false when an open-addressing table has no reachable slot.
func (t *Table) Put(key, value string) (int, bool) {
	res, _ := t.insert(key, value, discard())
	return res.Index, res.Inserted
}

// Get returns the value stored for key.
func (t *Table) Get(key string) (string, bool) {
	res, _ := t.search(key, discard())
	return res.Value, res.Found
}

// Remove deletes key without emitting steps.
func (t *Table) Remove(key string) bool {
	res, _ := t.remove(key, discard())
	return res.Found
}

// MarshalJSON encodes the table layout and statistics.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Policy     Policy    `json:"policy"`
		Buckets    [][]Entry `json:"buckets"`
		Len        int       `json:"len"`
		Collisions int       `json:"collisions"`
		LoadFactor float64   `json:"load_factor"`
	}{t.policy, t.buckets, t.count, t.collisions, t.LoadFactor()})
}

func (t *Table) probeIndex(home, i int) int {
	if t.policy == Quadratic {
		return (home + i*i) % len(t.buckets)
	}
	return (home + i) % len(t.buckets)
}
