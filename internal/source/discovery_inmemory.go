package source

import (
	"context"
	"fmt"
)

// Document is a named in-memory SDL document.
type Document struct {
	Name    string
	Content string
}

// InMemoryDiscovery implements Discovery over documents held in memory.
type InMemoryDiscovery struct {
	names    []string
	contents map[string]string
}

// NewInMemoryDiscovery lists docs in the given order. A later document
// with the same name replaces the earlier content.
func NewInMemoryDiscovery(docs ...Document) *InMemoryDiscovery {
	d := &InMemoryDiscovery{contents: make(map[string]string)}
	for _, doc := range docs {
		if _, ok := d.contents[doc.Name]; !ok {
			d.names = append(d.names, doc.Name)
		}
		d.contents[doc.Name] = doc.Content
	}
	return d
}

// List implements Discovery.
func (d *InMemoryDiscovery) List(ctx context.Context) ([]string, error) {
	return append([]string(nil), d.names...), nil
}

// Read implements Discovery.
func (d *InMemoryDiscovery) Read(ctx context.Context, name string) (string, error) {
	content, ok := d.contents[name]
	if !ok {
		return "", fmt.Errorf("schema document %q not found", name)
	}
	return content, nil
}
