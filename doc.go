// Package dataobject provides generic, reflection-based comparison,
// change-detection hashing and field copying between arbitrary flat data
// objects — values exposing only primitive, scalar and string-like
// properties. It targets the multi-tier chore of moving data between
// independently-defined representations (a persistence model and a view
// model, say) without bespoke copy/compare code per pair of types.
//
// Three entry points cover the surface:
//
//	CreateHash(v, opts...)        // stable digest of v's property values
//	IsEqualTo(self, other, opts...) // duck-typed equality via digests
//	CopyTo(self, other, opts...)  // two-phase property copy onto other
//
// Properties match by identical name, or through an explicit
// mapping.Table whose entries pair a source name with a target name and
// an optional value converter; an explicit mapping always overrides
// identity matching. A caller-supplied Exclusion predicate removes
// properties from consideration.
//
// The comparison path fails soft (an unresolvable or unconvertible
// property makes IsEqualTo return false) while the copy path fails hard
// with typed errors, and deliberately without rollback: a conversion
// failure mid-copy leaves the target partially written. See CopyTo for
// the exact contract.
//
// All state is call-local. The engine performs no synchronization of
// its own; concurrent copies into the same target race exactly as the
// caller's data model permits.
package dataobject
