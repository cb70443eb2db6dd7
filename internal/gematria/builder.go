package gematria

import (
	"fmt"

	"github.com/ashmulev/gematria/internal/cache"
	"github.com/ashmulev/gematria/internal/method"
)

// Builder assembles a Context. The zero value is not usable; start from
// NewBuilder, which applies the defaults (standard method, nikkud excluded
// from sums, vowelized variants distinct, cache disabled).
type Builder struct {
	method      method.Method
	methodName  string
	countNikkud bool
	distinct    bool
	enableCache bool
}

// NewBuilder creates a builder with default configuration.
func NewBuilder() *Builder {
	return &Builder{
		method:   method.Default,
		distinct: true,
	}
}

// WithMethod sets the calculation method.
func (b *Builder) WithMethod(m method.Method) *Builder {
	b.method = m
	b.methodName = ""
	return b
}

// WithMethodName sets the calculation method by name. The name is resolved
// during Build; an unrecognized name fails construction.
func (b *Builder) WithMethodName(name string) *Builder {
	b.methodName = name
	return b
}

// WithNikkud controls whether vowel marks contribute to word values.
func (b *Builder) WithNikkud(count bool) *Builder {
	b.countNikkud = count
	return b
}

// WithDistinctVowelizations controls whether words differing only in nikkud
// are distinct for grouping.
func (b *Builder) WithDistinctVowelizations(distinct bool) *Builder {
	b.distinct = distinct
	return b
}

// WithCache enables caching of calculated values.
func (b *Builder) WithCache(enable bool) *Builder {
	b.enableCache = enable
	return b
}

// Build validates the configuration and returns an immutable Context.
func (b *Builder) Build() (*Context, error) {
	m := b.method
	if b.methodName != "" {
		parsed, err := method.Parse(b.methodName)
		if err != nil {
			return nil, err
		}
		m = parsed
	}
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %q", method.ErrUnknown, m)
	}

	var store cache.Store
	if b.enableCache {
		store = cache.NewMemory()
	}

	return &Context{
		method:      m,
		countNikkud: b.countNikkud,
		distinct:    b.distinct,
		store:       store,
	}, nil
}
