// SPDX-License-Identifier: MIT

package hashtable

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dsaviz/engine"
)

// Payload describes one hash table step.
//
//	highlight  Index is the key's home bucket
//	probe      open addressing inspects slot Index on attempt Probe
//	compare    the key is compared with Other stored at Index
//	collision  Index is occupied by another key (or holds a chain)
//	place      the key was stored at Index (chain Position)
//	replace    the existing key at Index got Value
//	remove     the key was deleted from Index
//	found      Index and Value of the key
//	not-found / full / done
type Payload struct {
	Key      string `json:"key"`
	Value    string `json:"value,omitempty"`
	Index    int    `json:"index"`
	Probe    int    `json:"probe,omitempty"`
	Position int    `json:"position,omitempty"`
	Other    string `json:"other,omitempty"`
}

// Clone implements engine.Payload.
func (p Payload) Clone() engine.Payload { return p }

// OpResult is returned by every animated operation.
//   - Index: bucket of the key, -1 when not stored.
//   - Found: the key was present before the operation.
//   - Inserted: Insert stored or updated the key.
type OpResult struct {
	Table    *Table `json:"table"`
	Index    int    `json:"index"`
	Found    bool   `json:"found"`
	Inserted bool   `json:"inserted"`
	Value    string `json:"value,omitempty"`
}

// tracer publishes steps with running counters. Synchronous table methods
// use a tracer whose emit discards.
type tracer struct {
	emit func(engine.Kind, engine.Payload, engine.Metrics) error
	m    engine.Metrics
}

func discard() *tracer {
	return &tracer{emit: func(engine.Kind, engine.Payload, engine.Metrics) error { return nil }}
}

func (tr *tracer) step(kind engine.Kind, p Payload) error {
	return tr.emit(kind, p, tr.m)
}

func validate(t *Table, key string) error {
	if t == nil {
		return fmt.Errorf("%w: %w", engine.ErrInvalidInput, ErrNilTable)
	}
	if key == "" {
		return fmt.Errorf("%w: %w", engine.ErrInvalidInput, ErrEmptyKey)
	}

	return nil
}

func body(snap *Table, fn func(*Table, *tracer) (*OpResult, error)) engine.Body {
	return func(_ context.Context, e *engine.Emitter) (any, error) {
		return fn(snap, &tracer{emit: e.Emit, m: engine.Metrics{Collisions: snap.collisions}})
	}
}

// Insert returns a Body storing key=value in a clone of t.
func Insert(t *Table, key, value string) (engine.Body, error) {
	if err := validate(t, key); err != nil {
		return nil, err
	}
	if value == "" {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, ErrEmptyValue)
	}

	return body(t.Clone(), func(s *Table, tr *tracer) (*OpResult, error) {
		return s.insert(key, value, tr)
	}), nil
}

// Search returns a Body looking key up in a clone of t.
func Search(t *Table, key string) (engine.Body, error) {
	if err := validate(t, key); err != nil {
		return nil, err
	}

	return body(t.Clone(), func(s *Table, tr *tracer) (*OpResult, error) {
		return s.search(key, tr)
	}), nil
}

// Delete returns a Body removing key from a clone of t.
func Delete(t *Table, key string) (engine.Body, error) {
	if err := validate(t, key); err != nil {
		return nil, err
	}

	return body(t.Clone(), func(s *Table, tr *tracer) (*OpResult, error) {
		return s.remove(key, tr)
	}), nil
}

// insert stores key=value, emitting highlight, then policy-specific steps,
// then place/replace and done, or full.
func (t *Table) insert(key, value string, tr *tracer) (*OpResult, error) {
	home := Hash(key, len(t.buckets))
	if err := tr.step(engine.KindHighlight, Payload{Key: key, Index: home}); err != nil {
		return nil, err
	}
	if t.policy == Chaining {
		return t.insertChain(home, key, value, tr)
	}

	// 1) Walk the probe sequence until the key, a never-used slot or the cap.
	target, free := -1, -1
	for i := 0; i < len(t.buckets); i++ {
		idx := t.probeIndex(home, i)
		tr.m.Probes++
		if err := tr.step(engine.KindProbe, Payload{Key: key, Index: idx, Probe: i}); err != nil {
			return nil, err
		}
		b := t.buckets[idx]
		if len(b) == 0 {
			target = idx
			break
		}
		if b[0].Tombstone {
			if free < 0 {
				free = idx
			}
			continue
		}
		tr.m.Comparisons++
		if b[0].Key == key {
			t.buckets[idx][0].Value = value
			if err := tr.step(engine.KindReplace, Payload{Key: key, Value: value, Index: idx}); err != nil {
				return nil, err
			}
			return t.finish(tr, &OpResult{Index: idx, Found: true, Inserted: true, Value: value})
		}
		if err := tr.step(engine.KindCollision, Payload{Key: key, Index: idx, Probe: i, Other: b[0].Key}); err != nil {
			return nil, err
		}
	}

	// 2) Prefer the first tombstone seen on the way.
	if free >= 0 {
		target = free
	}
	if target < 0 {
		if err := tr.step(engine.KindFull, Payload{Key: key, Index: home}); err != nil {
			return nil, err
		}
		return &OpResult{Table: t, Index: -1}, nil
	}

	// 3) Store.
	if target != home {
		t.collisions++
		tr.m.Collisions = t.collisions
	}
	t.buckets[target] = []Entry{{Key: key, Value: value}}
	t.count++
	if err := tr.step(engine.KindPlace, Payload{Key: key, Value: value, Index: target}); err != nil {
		return nil, err
	}

	return t.finish(tr, &OpResult{Index: target, Inserted: true, Value: value})
}

func (t *Table) insertChain(home int, key, value string, tr *tracer) (*OpResult, error) {
	for pos, e := range t.buckets[home] {
		tr.m.Comparisons++
		if err := tr.step(engine.KindCompare, Payload{Key: key, Index: home, Position: pos, Other: e.Key}); err != nil {
			return nil, err
		}
		if e.Key == key {
			t.buckets[home][pos].Value = value
			if err := tr.step(engine.KindReplace, Payload{Key: key, Value: value, Index: home, Position: pos}); err != nil {
				return nil, err
			}
			return t.finish(tr, &OpResult{Index: home, Found: true, Inserted: true, Value: value})
		}
	}

	if len(t.buckets[home]) > 0 {
		t.collisions++
		tr.m.Collisions = t.collisions
		if err := tr.step(engine.KindCollision, Payload{Key: key, Index: home}); err != nil {
			return nil, err
		}
	}
	t.buckets[home] = append(t.buckets[home], Entry{Key: key, Value: value})
	t.count++
	pos := len(t.buckets[home]) - 1
	if err := tr.step(engine.KindPlace, Payload{Key: key, Value: value, Index: home, Position: pos}); err != nil {
		return nil, err
	}

	return t.finish(tr, &OpResult{Index: home, Inserted: true, Value: value})
}

// locate finds the slot (and chain position) holding key, emitting compare
// and probe steps on the way. It returns idx -1 when key is absent.
func (t *Table) locate(key string, tr *tracer) (idx, pos int, err error) {
	home := Hash(key, len(t.buckets))
	if err := tr.step(engine.KindHighlight, Payload{Key: key, Index: home}); err != nil {
		return -1, -1, err
	}

	if t.policy == Chaining {
		for pos, e := range t.buckets[home] {
			tr.m.Comparisons++
			if err := tr.step(engine.KindCompare, Payload{Key: key, Index: home, Position: pos, Other: e.Key}); err != nil {
				return -1, -1, err
			}
			if e.Key == key {
				return home, pos, nil
			}
		}
		return -1, -1, nil
	}

	for i := 0; i < len(t.buckets); i++ {
		idx := t.probeIndex(home, i)
		tr.m.Probes++
		if err := tr.step(engine.KindProbe, Payload{Key: key, Index: idx, Probe: i}); err != nil {
			return -1, -1, err
		}
		b := t.buckets[idx]
		if len(b) == 0 {
			return -1, -1, nil
		}
		if b[0].Tombstone {
			continue
		}
		tr.m.Comparisons++
		if err := tr.step(engine.KindCompare, Payload{Key: key, Index: idx, Probe: i, Other: b[0].Key}); err != nil {
			return -1, -1, err
		}
		if b[0].Key == key {
			return idx, 0, nil
		}
	}

	return -1, -1, nil
}

// search looks key up and ends with found or not-found.
func (t *Table) search(key string, tr *tracer) (*OpResult, error) {
	idx, pos, err := t.locate(key, tr)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		if err := tr.step(engine.KindNotFound, Payload{Key: key, Index: -1}); err != nil {
			return nil, err
		}
		return &OpResult{Table: t, Index: -1}, nil
	}

	v := t.buckets[idx][pos].Value
	if err := tr.step(engine.KindFound, Payload{Key: key, Value: v, Index: idx, Position: pos}); err != nil {
		return nil, err
	}

	return &OpResult{Table: t, Index: idx, Found: true, Value: v}, nil
}

// remove deletes key and ends with done, or not-found.
func (t *Table) remove(key string, tr *tracer) (*OpResult, error) {
	var idx, pos int
	var err error
	if t.policy != Chaining && t.deletion == DeleteScan {
		idx, err = t.scan(key, tr)
	} else {
		idx, pos, err = t.locate(key, tr)
	}
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		if err := tr.step(engine.KindNotFound, Payload{Key: key, Index: -1}); err != nil {
			return nil, err
		}
		return &OpResult{Table: t, Index: -1}, nil
	}

	v := t.buckets[idx][pos].Value
	switch {
	case t.policy == Chaining:
		b := t.buckets[idx]
		t.buckets[idx] = append(b[:pos:pos], b[pos+1:]...)
	case t.deletion == DeleteScan:
		t.buckets[idx] = nil
	default:
		t.buckets[idx] = []Entry{{Tombstone: true}}
	}
	t.count--
	if err := tr.step(engine.KindRemove, Payload{Key: key, Value: v, Index: idx, Position: pos}); err != nil {
		return nil, err
	}

	return t.finish(tr, &OpResult{Index: idx, Found: true, Value: v})
}

// scan finds key by inspecting slots 0..size-1 in order.
func (t *Table) scan(key string, tr *tracer) (int, error) {
	for i, b := range t.buckets {
		tr.m.Probes++
		if err := tr.step(engine.KindProbe, Payload{Key: key, Index: i, Probe: i}); err != nil {
			return -1, err
		}
		if len(b) > 0 && !b[0].Tombstone && b[0].Key == key {
			return i, nil
		}
	}

	return -1, nil
}

func (t *Table) finish(tr *tracer, res *OpResult) (*OpResult, error) {
	res.Table = t
	if err := tr.step(engine.KindDone, Payload{Key: "", Value: res.Value, Index: res.Index}); err != nil {
		return nil, err
	}

	return res, nil
}
