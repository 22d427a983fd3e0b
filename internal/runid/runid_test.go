package runid

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestContextRoundTrip(t *testing.T) {
	ctx, id := NewContext(context.Background())
	got, ok := FromContext(ctx)
	if !ok || got != id {
		t.Fatalf("expected %s from context, got %s ok=%v", id, got, ok)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a UUID, got %q: %v", id, err)
	}
	if _, ok := FromContext(context.Background()); ok {
		t.Fatalf("unexpected id in empty context")
	}
}

func TestIDsAreUnique(t *testing.T) {
	_, a := NewContext(context.Background())
	_, b := NewContext(context.Background())
	if a == b {
		t.Fatalf("expected distinct ids, got %s twice", a)
	}
}
