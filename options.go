package automaton

type options struct {
	logger Logger

	// determinization
	noEmpty    bool
	onlyFinals bool
	noUnmapped bool
	workLimit  int
}

// Option configures a single algorithm call. Options that do not apply to an algorithm are ignored.
type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{
		logger: nopLogger{},
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithLogger injects a progress logger. The default discards everything.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l == nil {
			l = nopLogger{}
		}
		o.logger = l
	}
}

// WithNoEmpty keeps the empty subset out of a determinized automaton; transitions that would
// lead to it stay undefined.
func WithNoEmpty() Option {
	return func(o *options) {
		o.noEmpty = true
	}
}

// WithOnlyFinals restricts a determinized automaton to the subsets lying on a path from the
// initial subset to a final one.
func WithOnlyFinals() Option {
	return func(o *options) {
		o.onlyFinals = true
	}
}

// WithNoUnmapped leaves target letters that have no source preimage without transitions
// instead of sending them to the empty subset.
func WithNoUnmapped() Option {
	return func(o *options) {
		o.noUnmapped = true
	}
}

// WithWorkLimit caps the number of subsets the powerset construction may discover.
// Zero or a negative value means no limit.
func WithWorkLimit(limit int) Option {
	return func(o *options) {
		o.workLimit = limit
	}
}
