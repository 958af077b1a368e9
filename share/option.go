package share

type Options struct {
	documentOrder bool
	skipInvalid   bool
	dedup         bool
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	return opts
}

// DocumentOrderOption selects the first k records as they appear in the document
// instead of the k smallest abscissas.
func DocumentOrderOption() Option {
	return func(o *Options) {
		o.documentOrder = true
	}
}

// SkipInvalidOption drops records whose value does not decode instead of failing.
func SkipInvalidOption() Option {
	return func(o *Options) {
		o.skipInvalid = true
	}
}

// DedupOption drops records that repeat an abscissa with the same ordinate.
func DedupOption() Option {
	return func(o *Options) {
		o.dedup = true
	}
}
