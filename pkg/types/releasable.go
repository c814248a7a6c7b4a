package types

// Releasable defines reference-counted ownership of a value.
// Release reports whether the call dropped the last reference and destroyed the value.
type Releasable interface {
	Release() bool
	RefCount() int64
}

// Destroyer is a value whose teardown is driven by its owner.
type Destroyer interface {
	Destroy()
}
