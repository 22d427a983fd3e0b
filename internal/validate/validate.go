// Package validate checks a built schema for the structural rules the schema
// builder does not enforce: root types, directive definitions, and the
// fields, interfaces, members and values of every named type.
package validate

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/hanpama/sdlcheck/internal/eventbus"
	"github.com/hanpama/sdlcheck/internal/events"
	"github.com/hanpama/sdlcheck/internal/runid"
	"github.com/hanpama/sdlcheck/internal/schema"
)

type check func(*validationContext)

// Validator runs the schema checks and memoizes their results per schema.
// It is safe for concurrent use.
type Validator struct {
	cache  Cache
	logger *zap.Logger
	bus    *eventbus.Bus
	group  singleflight.Group
	checks []check
}

// Option configures a Validator.
type Option func(*Validator)

// WithCache replaces the default LRU cache.
func WithCache(c Cache) Option {
	return func(v *Validator) { v.cache = c }
}

// WithLogger logs one debug line per run to l.
func WithLogger(l *zap.Logger) Option {
	return func(v *Validator) { v.logger = l }
}

// WithEventBus publishes ValidationStart and ValidationFinish events on b.
func WithEventBus(b *eventbus.Bus) Option {
	return func(v *Validator) { v.bus = b }
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		logger: zap.NewNop(),
		checks: []check{validateRootTypes, validateDirectives, validateTypes},
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.cache == nil {
		c, err := NewLRUCache(DefaultCacheSize)
		if err != nil {
			panic(err)
		}
		v.cache = c
	}
	return v
}

// Validate returns the diagnostics for s. A schema without diagnostics yields
// an empty slice. Repeated calls with the same schema return the same slice
// without running the checks again. Validate panics if s is nil.
func (v *Validator) Validate(s *schema.Schema) []*Diagnostic {
	return v.ValidateContext(context.Background(), s)
}

// ValidateContext is Validate with a context for the published events.
func (v *Validator) ValidateContext(ctx context.Context, s *schema.Schema) []*Diagnostic {
	if s == nil {
		panic("validate: expected a schema, got <nil>")
	}

	ctx, id := runid.NewContext(ctx)
	start := time.Now()
	eventbus.Publish(ctx, v.bus, events.ValidationStart{Types: len(s.Types), Directives: len(s.Directives)})

	diags, cached := v.cache.Get(s)
	if !cached {
		diags = v.runOnce(s)
	}

	elapsed := time.Since(start)
	v.logger.Debug("schema validated",
		zap.String("run_id", id),
		zap.Int("diagnostics", len(diags)),
		zap.Bool("cached", cached),
		zap.Duration("duration", elapsed),
	)
	eventbus.Publish(ctx, v.bus, events.ValidationFinish{Diagnostics: len(diags), Cached: cached, Duration: elapsed})
	return diags
}

// runOnce collapses concurrent first runs for the same schema into one.
func (v *Validator) runOnce(s *schema.Schema) []*Diagnostic {
	key := fmt.Sprintf("%p", s)
	res, _, _ := v.group.Do(key, func() (any, error) {
		if diags, ok := v.cache.Get(s); ok {
			return diags, nil
		}
		diags := v.run(s)
		v.cache.Add(s, diags)
		return diags, nil
	})
	return res.([]*Diagnostic)
}

func (v *Validator) run(s *schema.Schema) []*Diagnostic {
	c := newValidationContext(s)
	for _, check := range v.checks {
		check(c)
	}
	return c.drain()
}

// AssertValid returns a ValidationError listing every diagnostic of s, or
// nil when s is valid.
func (v *Validator) AssertValid(s *schema.Schema) error {
	if diags := v.Validate(s); len(diags) > 0 {
		return ValidationError(diags)
	}
	return nil
}

var defaultValidator = New()

// Validate validates s with a shared Validator.
func Validate(s *schema.Schema) []*Diagnostic { return defaultValidator.Validate(s) }

// AssertValid asserts s is valid with a shared Validator.
func AssertValid(s *schema.Schema) error { return defaultValidator.AssertValid(s) }
