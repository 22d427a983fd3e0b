package validate

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/hanpama/sdlcheck/internal/schema"
)

// DefaultCacheSize is the number of schemas whose results are kept by New.
const DefaultCacheSize = 128

// Cache stores validation results keyed by schema identity. Implementations
// must be safe for concurrent use.
type Cache interface {
	Get(s *schema.Schema) ([]*Diagnostic, bool)
	Add(s *schema.Schema, diagnostics []*Diagnostic)
}

type lruCache struct {
	lru *lru.Cache
}

// NewLRUCache returns a Cache holding the results of the size most recently
// used schemas.
func NewLRUCache(size int) (Cache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &lruCache{lru: c}, nil
}

func (c *lruCache) Get(s *schema.Schema) ([]*Diagnostic, bool) {
	v, ok := c.lru.Get(s)
	if !ok {
		return nil, false
	}
	diags, ok := v.([]*Diagnostic)
	return diags, ok
}

func (c *lruCache) Add(s *schema.Schema, diagnostics []*Diagnostic) {
	c.lru.Add(s, diagnostics)
}

// NoCache disables memoization.
type NoCache struct{}

func (NoCache) Get(*schema.Schema) ([]*Diagnostic, bool) { return nil, false }
func (NoCache) Add(*schema.Schema, []*Diagnostic)        {}
