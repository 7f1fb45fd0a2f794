package scene

import (
	"context"
	"encoding/binary"
	"math"
	"runtime"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zeusync/linal/pkg/vector"
)

// Result summarizes one pipeline run.
type Result struct {
	RunID    string
	Points   []vector.Point2D
	Centroid vector.Point2D
	Min, Max vector.Point2D
}

// chunkSize is the number of points handed to a single worker.
const chunkSize = 256

// Run compiles the pipeline and applies it to every point, chunking
// the work across GOMAXPROCS workers. Each run carries a fresh run ID
// in its log fields.
func Run(ctx context.Context, logger *zap.Logger, cfg *Config) (*Result, error) {
	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID), zap.String("scene", cfg.Name))

	m, err := cfg.Compile()
	if err != nil {
		return nil, err
	}

	pts := cfg.points()
	out := make([]vector.Point2D, len(pts))

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for lo := 0; lo < len(pts); lo += chunkSize {
		lo, hi := lo, min(lo+chunkSize, len(pts))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				out[i] = m.MulVec(pts[i])
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	if cfg.Dedupe {
		deduped := dedupe(out)
		logger.Debug("deduped points",
			zap.Int("before", len(out)),
			zap.Int("after", len(deduped)),
		)
		out = deduped
	}

	res := &Result{RunID: runID, Points: out}
	res.Centroid, res.Min, res.Max = stats(out)

	logger.Info("pipeline complete",
		zap.Int("points_in", len(pts)),
		zap.Int("points_out", len(out)),
		zap.Int("steps", len(cfg.Steps)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

// quantum bounds how close two coordinates may be before the dedupe
// stage treats them as equal.
const quantum = 1e-9

// digest hashes the quantized coordinates of p.
func digest(p vector.Point2D) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(int64(math.Round(p.X/quantum))))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(math.Round(p.Y/quantum))))
	return xxhash.Sum64(buf[:])
}

// dedupe drops points that quantize to a coordinate pair already seen,
// keeping first occurrences in order.
func dedupe(pts []vector.Point2D) []vector.Point2D {
	seen := make(map[uint64]struct{}, len(pts))
	kept := make([]vector.Point2D, 0, len(pts))
	for _, p := range pts {
		d := digest(p)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		kept = append(kept, p)
	}
	return kept
}

// stats returns the centroid and axis-aligned bounds of pts.
func stats(pts []vector.Point2D) (centroid, lo, hi vector.Point2D) {
	if len(pts) == 0 {
		return
	}
	sum := vector.Vec2{}
	lo, hi = pts[0], pts[0]
	for _, p := range pts {
		sum = sum.Add(p)
		lo = vector.V2(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y))
		hi = vector.V2(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y))
	}
	centroid = sum.Div(vector.Scalar(len(pts)))
	return
}
