// Package realtime is the subscription abstraction the chat views use
// instead of wiring their own timers. The only transport the backend offers
// is interval re-fetching, so every tick replaces the subscriber's state
// wholesale; the subscribe/unsubscribe surface keeps the transport swappable
// if the backend ever grows a push channel.
package realtime

import (
	"context"
	"time"
)

// DefaultInterval matches the 5 second polling cadence of the web client.
const DefaultInterval = 5 * time.Second

// Subscribe fetches immediately and then once per interval until ctx is
// cancelled or the returned unsubscribe function is called. Results that
// arrive after unsubscribe are discarded, so a slow response cannot update a
// torn-down subscriber. In-flight fetches are cancelled through the derived
// context.
func Subscribe[T any](ctx context.Context, interval time.Duration, fetch func(context.Context) (T, error), onUpdate func(T), onError func(error)) (unsubscribe func()) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(ctx)

	deliver := func() {
		value, err := fetch(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onUpdate(value)
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		deliver()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deliver()
			}
		}
	}()

	return cancel
}
