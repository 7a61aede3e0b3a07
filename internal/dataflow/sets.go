// Package dataflow implements the analysis framework: small set
// utilities over variable names and Lines (C2), plus the
// reaching-definitions (C3), liveness (C4), and neededness (C5)
// engines that run over an ir.Body.
//
// Sets are backed by github.com/bits-and-blooms/bitset the way a
// sibling Go refactoring tool in this corpus backs its own
// reaching-definitions and liveness engines over a CFG: set equality,
// union, and subset become word-at-a-time bitset operations instead of
// map diffing, and every analysis here does nothing but build and
// compare sets at a fixed point.
//
// A bitset only makes sense over a dense integer universe, so each
// analysis run interns the names or Lines it sees into a *Universe as
// sets are built (Add assigns the next free index the first time a
// value appears); every NameSet/LineSet produced during that run shares
// the same Universe and is safe to Union, Subset, or Equal against any
// other set from the same run.
package dataflow

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"chocopyopt/internal/ir"
)

// Universe interns a value type T into dense bit indices.
type Universe[T comparable] struct {
	index   map[T]uint
	reverse []T
}

// NewUniverse builds an empty interner.
func NewUniverse[T comparable]() *Universe[T] {
	return &Universe[T]{index: make(map[T]uint)}
}

// Intern returns the bit index for v, assigning the next free index the
// first time v is seen.
func (u *Universe[T]) Intern(v T) uint {
	if i, ok := u.index[v]; ok {
		return i
	}
	i := uint(len(u.reverse))
	u.index[v] = i
	u.reverse = append(u.reverse, v)
	return i
}

// NameSet is a set of variable names.
type NameSet struct {
	universe *Universe[string]
	bits     *bitset.BitSet
}

// NewNameSet returns the empty set over universe.
func NewNameSet(universe *Universe[string]) NameSet {
	return NameSet{universe: universe, bits: &bitset.BitSet{}}
}

// Add returns a set with name added (NameSet is used as a value type;
// Add mutates and returns the same set for chaining, matching the
// small-set-utility style this corpus uses for register sets).
func (s NameSet) Add(name string) NameSet {
	s.bits.Set(s.universe.Intern(name))
	return s
}

// Contains reports whether name is in s.
func (s NameSet) Contains(name string) bool {
	if i, ok := s.universe.index[name]; ok {
		return s.bits.Test(i)
	}
	return false
}

// Union returns the union of s and other. Both must share a Universe.
func (s NameSet) Union(other NameSet) NameSet {
	return NameSet{universe: s.universe, bits: s.bits.Union(other.bits)}
}

// Equal reports set equality.
func (s NameSet) Equal(other NameSet) bool {
	return s.bits.Equal(other.bits)
}

// Subset reports whether every element of s is in other.
func (s NameSet) Subset(other NameSet) bool {
	return s.bits.DifferenceCardinality(other.bits) == 0
}

// Clone returns an independent copy of s.
func (s NameSet) Clone() NameSet {
	return NameSet{universe: s.universe, bits: s.bits.Clone()}
}

// Names returns the set's members, sorted for deterministic output.
func (s NameSet) Names() []string {
	names := make([]string, 0, s.bits.Count())
	for i, e := s.bits.NextSet(0); e; i, e = s.bits.NextSet(i + 1) {
		names = append(names, s.universe.reverse[i])
	}
	sort.Strings(names)
	return names
}

// LineSet is a set of ir.Lines, used by the reaching-definitions engine
// to record the definition sites that may reach a program point.
type LineSet struct {
	universe *Universe[ir.Line]
	bits     *bitset.BitSet
}

// NewLineSet returns the empty set over universe.
func NewLineSet(universe *Universe[ir.Line]) LineSet {
	return LineSet{universe: universe, bits: &bitset.BitSet{}}
}

// Add returns a set with l added.
func (s LineSet) Add(l ir.Line) LineSet {
	s.bits.Set(s.universe.Intern(l))
	return s
}

// Union returns the union of s and other.
func (s LineSet) Union(other LineSet) LineSet {
	return LineSet{universe: s.universe, bits: s.bits.Union(other.bits)}
}

// Equal reports set equality.
func (s LineSet) Equal(other LineSet) bool {
	return s.bits.Equal(other.bits)
}

// Subset reports whether every element of s is in other.
func (s LineSet) Subset(other LineSet) bool {
	return s.bits.DifferenceCardinality(other.bits) == 0
}

// Clone returns an independent copy of s.
func (s LineSet) Clone() LineSet {
	return LineSet{universe: s.universe, bits: s.bits.Clone()}
}

// Lines returns the set's members in bit-index order, i.e. the order in
// which the Universe first interned them.
func (s LineSet) Lines() []ir.Line {
	lines := make([]ir.Line, 0, s.bits.Count())
	for i, e := s.bits.NextSet(0); e; i, e = s.bits.NextSet(i + 1) {
		lines = append(lines, s.universe.reverse[i])
	}
	return lines
}
