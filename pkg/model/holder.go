package model

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/zeebo/xxh3"
)

const (
	constructedFormat = "Constructor called with value: %d\n"
	displayFormat     = "Value: %d\n"
	destroyedFormat   = "Destructor called for value: %d\n"
)

// State is a lifecycle state of a Holder.
type State int32

const (
	Uninitialized State = iota
	Alive
	Destroyed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Alive:
		return "alive"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown(" + strconv.Itoa(int(s)) + ")"
	}
}

// Tracker observes lifecycle transitions of holders.
type Tracker interface {
	Constructed(h *Holder)
	Destroyed(h *Holder)
}

var lastID atomic.Uint64

// Holder carries one integer fixed at construction and reports its own
// construction, display and destruction to the output writer.
type Holder struct {
	id       uint64
	key      uint64
	value    int
	out      io.Writer
	trackers []Tracker
	state    atomic.Int32
}

type Option func(h *Holder)

// WithOutput redirects lifecycle lines (stdout by default).
func WithOutput(w io.Writer) Option {
	return func(h *Holder) {
		h.out = w
	}
}

// WithTrackers attaches lifecycle observers.
func WithTrackers(trackers ...Tracker) Option {
	return func(h *Holder) {
		h.trackers = append(h.trackers, trackers...)
	}
}

// WithID overrides the generated identifier.
func WithID(id uint64) Option {
	return func(h *Holder) {
		h.id = id
	}
}

// NewHolder constructs an alive Holder and emits the construction line.
func NewHolder(value int, opts ...Option) *Holder {
	h := &Holder{
		id:    lastID.Add(1),
		value: value,
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.key = xxh3.HashString("holder:" + strconv.FormatUint(h.id, 10))
	h.state.Store(int32(Alive))

	_, _ = fmt.Fprintf(h.out, constructedFormat, h.value)
	for _, t := range h.trackers {
		t.Constructed(h)
	}
	return h
}

func (h *Holder) ID() uint64 {
	return h.id
}

func (h *Holder) Key() uint64 {
	return h.key
}

func (h *Holder) Value() int {
	return h.value
}

func (h *Holder) State() State {
	return State(h.state.Load())
}

func (h *Holder) IsAlive() bool {
	return h.State() == Alive
}

// Display emits the stored value. Must not be called once the holder is destroyed.
func (h *Holder) Display() {
	if state := h.State(); state != Alive {
		panic("model: display on a " + state.String() + " holder")
	}
	_, _ = fmt.Fprintf(h.out, displayFormat, h.value)
}

// Destroy is invoked by the owner that drops the last reference.
// Only the first call emits the destruction line; later calls are no-ops.
func (h *Holder) Destroy() {
	if !h.state.CompareAndSwap(int32(Alive), int32(Destroyed)) {
		return
	}
	_, _ = fmt.Fprintf(h.out, destroyedFormat, h.value)
	for _, t := range h.trackers {
		t.Destroyed(h)
	}
}
