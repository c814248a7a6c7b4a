package owner

// Kind names an ownership strategy.
type Kind string

const (
	Exclusive Kind = "exclusive"
	Shared    Kind = "shared"
)

// Observer is notified when owners acquire and drop references.
// refs is the reference count after the transition.
type Observer interface {
	Acquired(kind Kind, refs int64)
	Released(kind Kind, refs int64, destroyed bool)
}

type noopObserver struct{}

func (noopObserver) Acquired(Kind, int64)       {}
func (noopObserver) Released(Kind, int64, bool) {}

type options struct {
	observer Observer
}

type Option func(o *options)

// WithObserver attaches an Observer to the owner and every alias made from it.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

func newOptions(opts []Option) options {
	o := options{observer: noopObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// noCopy may be embedded into structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
