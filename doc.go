// Package permkit builds typed permission-bitmask kits: given an ordered list
// of named flags, and optionally named roles composed of those flags, [New]
// returns an immutable [Kit] bundling single-bit values per flag, precomputed
// role masks, and pure operations to set, clear, toggle, query, and serialize
// permission values.
//
// # Bit assignment
//
// The flag declared at index i is assigned bit i. Assignment is deterministic
// and order-dependent: the declared order is part of the kit's identity and
// must stay stable across releases when permission values are persisted
// externally.
//
// # Architecture boundaries
//
// This package is a pure in-memory data structure with no I/O. Callers own
// storage, serialization format choice, and enforcement points. The codec
// ([Permission.Bytes], [Permission.String], [Permission.Hex] and their
// inverses) exists so a value survives any integer- or text-capable medium
// unchanged, however many flags are declared.
//
// # What this package must NOT do
//
//   - Access databases, caches, or the network.
//   - Report unknown flag names as errors. Unknown names contribute no bits,
//     so stale stored names keep working as flag sets evolve.
//   - Mutate a Kit or a Permission after construction. Every operation
//     returns a new value, which is why a Kit is safe to share across
//     goroutines without synchronization.
package permkit
