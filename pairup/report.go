package pairup

import (
	"context"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/dkooll/gophx/pairup"

const (
	rowsKey  = attribute.Key("pairup.rows")
	scoreKey = attribute.Key("pairup.score")
)

// Report holds both scores computed over one parsed input.
type Report struct {
	Rows       int
	Difference uint64
	Similarity uint64
}

// Evaluate validates the lists and runs both scorers concurrently. The
// scorers only read the lists, so they share them without copying.
func Evaluate(ctx context.Context, left, right []uint32) (Report, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "pairup.evaluate", trace.WithAttributes(rowsKey.Int(len(left))))
	defer span.End()

	if err := ValidateLists(left, right); err != nil {
		return Report{}, fail(span, err)
	}
	if err := ctx.Err(); err != nil {
		return Report{}, fail(span, err)
	}

	report := Report{Rows: len(left)}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		score, err := traced(gctx, tracer, "pairup.difference", len(left), func() uint64 {
			return DifferenceScore(left, right)
		})
		report.Difference = score
		return err
	})
	g.Go(func() error {
		score, err := traced(gctx, tracer, "pairup.similarity", len(left), func() uint64 {
			return SimilarityScore(left, right)
		})
		report.Similarity = score
		return err
	})
	if err := g.Wait(); err != nil {
		return Report{}, fail(span, err)
	}
	return report, nil
}

func traced(ctx context.Context, tracer trace.Tracer, name string, rows int, score func() uint64) (uint64, error) {
	_, span := tracer.Start(ctx, name, trace.WithAttributes(rowsKey.Int(rows)))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return 0, fail(span, err)
	}
	v := score()
	span.SetAttributes(scoreKey.Int64(scoreAttr(v)))
	return v, nil
}

// scoreAttr clamps a score to the int64 range attributes can carry.
func scoreAttr(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
