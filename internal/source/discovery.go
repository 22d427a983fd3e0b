package source

import (
	"context"
	"fmt"
	"time"

	"github.com/hanpama/sdlcheck/internal/eventbus"
	"github.com/hanpama/sdlcheck/internal/events"
	language "github.com/hanpama/sdlcheck/internal/language"
	"github.com/hanpama/sdlcheck/internal/schema"
)

// Discovery lists and reads SDL documents.
type Discovery interface {
	// List returns document names in load order.
	List(ctx context.Context) ([]string, error)
	Read(ctx context.Context, name string) (string, error)
}

// Sources reads every document listed by d.
func Sources(ctx context.Context, d Discovery) ([]*language.Source, error) {
	names, err := d.List(ctx)
	if err != nil {
		return nil, err
	}
	sources := make([]*language.Source, 0, len(names))
	for _, name := range names {
		content, err := d.Read(ctx, name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, &language.Source{Name: name, Input: content})
	}
	return sources, nil
}

// Load reads every document from d and builds a schema from them. A
// SchemaLoaded event is published on bus whether or not loading succeeds.
func Load(ctx context.Context, d Discovery, bus *eventbus.Bus, opts ...schema.Option) (*schema.Schema, error) {
	start := time.Now()
	s, files, err := load(ctx, d, opts)
	eventbus.Publish(ctx, bus, events.SchemaLoaded{
		Files:    files,
		Duration: time.Since(start),
		Err:      err,
	})
	return s, err
}

func load(ctx context.Context, d Discovery, opts []schema.Option) (*schema.Schema, int, error) {
	sources, err := Sources(ctx, d)
	if err != nil {
		return nil, 0, err
	}
	if len(sources) == 0 {
		return nil, 0, fmt.Errorf("no schema documents found")
	}
	s, err := schema.BuildFromSDL(sources, opts...)
	return s, len(sources), err
}
