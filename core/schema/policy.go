package schema

import "strings"

// NameNormalizer maps a raw column or key name to its canonical form.
type NameNormalizer func(name string) string

// KindResolver picks the kind of a column that both sides know about.
type KindResolver func(before, after Kind) Kind

// UpperCase is the default NameNormalizer: surrounding blanks are trimmed and the
// name is upper-cased, making matching case-insensitive.
func UpperCase(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// CaseSensitive only trims blanks.
func CaseSensitive(name string) string {
	return strings.TrimSpace(name)
}

// AfterWins is the default KindResolver. The after schema is the evolved structure.
func AfterWins(before, after Kind) Kind {
	if after != KindUnknown {
		return after
	}
	return before
}

// BeforeWins prefers the before schema's kind.
func BeforeWins(before, after Kind) Kind {
	if before != KindUnknown {
		return before
	}
	return after
}

type options struct {
	normalize NameNormalizer
	resolve   KindResolver
}

// Option customizes Reconcile.
type Option func(*options)

// WithNormalizer replaces the name normalization policy.
func WithNormalizer(n NameNormalizer) Option {
	return func(o *options) {
		if n != nil {
			o.normalize = n
		}
	}
}

// WithKindResolver replaces the kind conflict policy.
func WithKindResolver(r KindResolver) Option {
	return func(o *options) {
		if r != nil {
			o.resolve = r
		}
	}
}
