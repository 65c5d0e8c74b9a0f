// Package health checks that the service's backing store answers queries.
package health

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
)

const probeTimeout = 3 * time.Second

// Checker reports whether a dependency is usable.
type Checker interface {
	Check(ctx context.Context) error
}

// SpannerProbe runs SELECT 1 against a Spanner database.
type SpannerProbe struct {
	client *spanner.Client
}

// NewSpannerProbe creates a probe for client.
func NewSpannerProbe(client *spanner.Client) *SpannerProbe {
	return &SpannerProbe{client: client}
}

// Check returns nil when Spanner answers within the probe timeout.
func (p *SpannerProbe) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	iter := p.client.Single().Query(ctx, spanner.Statement{SQL: "SELECT 1"})
	defer iter.Stop()

	if _, err := iter.Next(); err != nil {
		return fmt.Errorf("spanner probe failed: %w", err)
	}
	return nil
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(ctx context.Context) error

// Check calls f.
func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}
