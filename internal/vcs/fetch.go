package vcs

import (
	"context"
	"fmt"

	"github.com/chmouel/lazyhg/internal/panel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Fetch runs binary once per panel, in display order, and returns the
// captured texts. The first command that cannot be started aborts the fetch.
func Fetch(ctx context.Context, runner Runner, binary string) (*panel.Registry, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "vcs.fetch", trace.WithAttributes(
		attribute.String("vcs.binary", binary),
	))
	defer span.End()

	texts := make(map[panel.ID]string, len(panel.All()))
	for _, id := range panel.All() {
		out, err := runner.Run(ctx, binary, id.Args()...)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "fetch failed")
			return nil, fmt.Errorf("fetch %s panel: %w", id.Title(), err)
		}
		texts[id] = out
	}
	return panel.NewRegistry(texts), nil
}
