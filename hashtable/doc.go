// Package hashtable animates a string-keyed hash table under three collision
// policies: separate chaining, linear probing and quadratic probing.
//
// Hashing
//
//	Hash(key, size) folds the key's UTF-16 code units into a wrapping 32-bit
//	accumulator, h = h*31 + unit, and returns |h| mod size. The result is
//	stable across runs and platforms.
//
// Policies
//
//   - Chaining: each bucket is an unbounded list; inserting an existing key
//     updates it in place.
//   - Linear: slot (home + i) mod size for i = 0, 1, ...
//   - Quadratic: slot (home + i²) mod size for i = 0, 1, ...
//
// Open-addressing scans stop after size probes. An insert that finds no slot
// ends with a full step and leaves the table unchanged.
//
// Deletion
//
//	Open-addressing deletes leave a tombstone by default, so keys placed
//	further along a probe sequence stay reachable. WithDeletion(DeleteScan)
//	instead removes the first slot holding the key found by a scan over the
//	whole table, ignoring the probe sequence; later searches may then stop
//	early at the emptied slot.
//
// Counters
//
//	Collisions counts inserts that could not use their home slot (or joined a
//	non-empty chain), Probes counts inspected open-addressing slots and
//	Comparisons counts key comparisons.
package hashtable
