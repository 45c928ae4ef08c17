package calc

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/bigmod/internal/bigint"
	"github.com/agbru/bigmod/internal/metrics"
)

// Instrumented decorates an Operation with tracing, metrics and debug logging.
// Cancellation is checked before the wrapped operation runs; engine
// operations themselves are not interruptible.
type Instrumented struct {
	core Operation
}

// NewInstrumented wraps core. It panics if core is nil.
func NewInstrumented(core Operation) *Instrumented {
	if core == nil {
		panic("calc: the wrapped Operation cannot be nil")
	}
	return &Instrumented{core: core}
}

// Name returns the name of the wrapped operation.
func (o *Instrumented) Name() string { return o.core.Name() }

// Arity returns the arity of the wrapped operation.
func (o *Instrumented) Arity() string { return o.core.Arity() }

// Unwrap returns the wrapped operation.
func (o *Instrumented) Unwrap() Operation { return o.core }

// Apply runs the wrapped operation inside a span and records its outcome.
func (o *Instrumented) Apply(ctx context.Context, in Operands) (result bigint.BigInt, err error) {
	name := o.core.Name()
	ctx, span := otel.Tracer("bigmod").Start(ctx, "calc."+name)
	defer span.End()
	span.SetAttributes(
		attribute.String("operation", name),
		attribute.Int("base", in.A.Base()),
		attribute.Int("size", in.A.Size()),
	)

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := metrics.StatusSuccess
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			status = metrics.StatusCanceled
		case err != nil:
			status = metrics.StatusError
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		metrics.Observe(name, status, duration)

		log.Debug().
			Str("operation", name).
			Float64("duration", duration).
			Str("status", status).
			Err(err).
			Msg("operation completed")
	}()

	if err := ctx.Err(); err != nil {
		return bigint.BigInt{}, err
	}
	return o.core.Apply(ctx, in)
}
