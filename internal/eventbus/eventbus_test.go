package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type ping struct{ n int }

type pong struct{}

func TestPublishDispatchesByType(t *testing.T) {
	b := New()
	var got []int
	Subscribe(b, func(_ context.Context, e ping) { got = append(got, e.n) })
	Subscribe(b, func(_ context.Context, e ping) { got = append(got, e.n*10) })
	Subscribe(b, func(context.Context, pong) { t.Fatal("unexpected pong") })

	Publish(context.Background(), b, ping{n: 1})
	require.Equal(t, []int{1, 10}, got)
}

func TestUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	b := New()
	var calls []string
	handler := func(name string) Handler[ping] {
		return func(context.Context, ping) { calls = append(calls, name) }
	}
	unsubA := Subscribe(b, handler("a"))
	Subscribe(b, handler("b"))

	unsubA()
	unsubA()
	Publish(context.Background(), b, ping{})
	require.Equal(t, []string{"b"}, calls)
}

func TestNilBus(t *testing.T) {
	var b *Bus
	unsub := Subscribe(b, func(context.Context, ping) { t.Fatal("unexpected call") })
	Publish(context.Background(), b, ping{})
	unsub()
}

func TestHandlerContext(t *testing.T) {
	type key struct{}
	b := New()
	var got any
	Subscribe(b, func(ctx context.Context, _ pong) { got = ctx.Value(key{}) })
	Publish(context.WithValue(context.Background(), key{}, "v"), b, pong{})
	require.Equal(t, "v", got)
}
