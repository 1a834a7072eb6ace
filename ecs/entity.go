package ecs

import "fmt"

//go:generate go run ../internal/gen -out entity_generated.go

// ID is the set of entity identifier widths. An identifier packs an index into its
// low bits and a version (generation) counter into the bits above it.
// Instantiating a generic type with any other type fails to compile.
type ID interface {
	Entity16 | Entity32 | Entity64
	fmt.Stringer

	// IsNull reports whether the index bits hold the reserved null index.
	IsNull() bool

	traits() Traits
}

// Traits describes the bit layout of an identifier width.
type Traits struct {
	Bits         uint   // width of the identifier
	VersionBits  uint   // width of the version field
	IndexMask    uint64 // mask for the index bits, also the reserved null index
	VersionMask  uint64 // mask for the version after shifting
	VersionShift uint   // position of the lowest version bit
}

// MaxIndex returns the largest index a live entity may use.
func (t Traits) MaxIndex() uint64 {
	return t.IndexMask - 1
}

// TraitsOf returns the layout of identifier type E.
func TraitsOf[E ID]() Traits {
	var zero E
	return zero.traits()
}

// ToIntegral returns the raw value of e widened to 64 bits.
func ToIntegral[E ID](e E) uint64 {
	return uint64(e)
}

// MakeEntity packs index and version into an identifier of type E.
// Bits outside the index and version fields are dropped; nothing is validated.
func MakeEntity[E ID](index, version uint64) E {
	t := TraitsOf[E]()
	return E(index&t.IndexMask | (version&t.VersionMask)<<t.VersionShift)
}

// IsNull reports whether e compares equal to Null: its index bits equal the reserved
// null index. Version bits are ignored.
func IsNull[E ID](e E) bool {
	return e.IsNull()
}

// NullOf returns the concrete null identifier of type E: reserved index, version zero.
func NullOf[E ID]() E {
	return E(TraitsOf[E]().IndexMask)
}

// NullEntity is the type of Null. It carries no data and converts to any width.
type NullEntity struct{}

// Null stands for "no entity". Null == Null always holds; against a concrete
// identifier use IsNull or the identifier's IsNull method.
var Null NullEntity

func (NullEntity) String() string {
	return "null"
}

func indexBits[E ID](e E) uint64 {
	return uint64(e) & TraitsOf[E]().IndexMask
}

func versionBits[E ID](e E) uint64 {
	t := TraitsOf[E]()
	return (uint64(e) >> t.VersionShift) & t.VersionMask
}

// nextVersion returns e with its version advanced by one, wrapping at the mask.
func nextVersion[E ID](e E) E {
	return MakeEntity[E](indexBits(e), versionBits(e)+1)
}
