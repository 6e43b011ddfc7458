package table

// Rep is the contract for containers that behave as a total function from
// keys to values: At never fails for any key. Tabulation stays a per-type
// constructor, with the round-trip law that tabulating a container's At
// reproduces it, and the At of a tabulated function reproduces the
// function pointwise.
type Rep[K comparable, V any] interface {
	At(K) V
}

// Pair is a two-slot container keyed by bool, the smallest conforming Rep
// besides Table itself.
type Pair[V any] struct {
	F, T V
}

// TabulatePair builds a Pair from a function over bool.
func TabulatePair[V any](gen func(bool) V) Pair[V] {
	return Pair[V]{F: gen(false), T: gen(true)}
}

// At returns the slot selected by k.
func (p Pair[V]) At(k bool) V {
	if k {
		return p.T
	}
	return p.F
}
