package fixturekit

// Options carries the settings one build call resolved for itself. Generators
// receive the resolved set, so a factory can adjust its output to the
// effective copy or validation behavior when it needs to.
type Options struct {
	// DeepCopy reports whether container values returned by generators are
	// cloned before assignment.
	DeepCopy bool
	// SkipValidation reports whether registered validators are bypassed.
	SkipValidation bool
}

// Option overrides one setting on a single precedence layer. Options are
// accepted by New (constructor layer) and Build (per-call layer); the builder
// mutators DeepCopy and SkipValidation form the layer between them.
type Option func(*optionLayer)

// optionLayer holds one precedence layer of settings. A nil field means the
// layer leaves that setting untouched.
type optionLayer struct {
	deepCopy       *bool
	skipValidation *bool
}

// WithDeepCopy controls whether container values produced by generators are
// cloned before they are assigned into the result.
func WithDeepCopy(enabled bool) Option {
	return func(l *optionLayer) {
		l.deepCopy = &enabled
	}
}

// WithSkipValidation controls whether registered validators run after a build
// constructs its objects.
func WithSkipValidation(skip bool) Option {
	return func(l *optionLayer) {
		l.skipValidation = &skip
	}
}

func applyOptions(opts []Option) optionLayer {
	var l optionLayer
	for _, opt := range opts {
		if opt != nil {
			opt(&l)
		}
	}
	return l
}

// resolveOptions folds precedence layers over the package defaults. Layers
// are ordered lowest to highest precedence; a later layer's set fields win.
func resolveOptions(layers ...optionLayer) Options {
	resolved := packageDefaults()
	for _, l := range layers {
		if l.deepCopy != nil {
			resolved.DeepCopy = *l.deepCopy
		}
		if l.skipValidation != nil {
			resolved.SkipValidation = *l.skipValidation
		}
	}
	return resolved
}
