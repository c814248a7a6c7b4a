package types

// Keyed defines a unique key for the value.
type Keyed interface {
	Key() uint64
}
