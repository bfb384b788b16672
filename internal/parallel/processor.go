package parallel

import (
	"context"

	"github.com/swrast/swrast/internal/rlog"
)

// ProcessorPool is the per-draw-call concurrency unit described in spec
// §9: draw, blit, and clear all fan out across a fixed worker count and
// block until every worker's share of the phase has completed, before
// the next phase (or the next draw call) begins. Overlapping primitives
// within one phase may race on shared framebuffer state (spec §5); the
// barrier only orders phases against each other, not primitives within
// a phase.
//
// Each phase's jobs run on WorkerPool's own work-stealing queues via
// ExecuteAllCtx, which also carries first-error capture and
// cooperative ctx-cancellation, so the pool is the one scheduler for
// both plain and fallible batches rather than a second concurrency
// mechanism layered on top of it.
type ProcessorPool struct {
	pool *WorkerPool
}

// NewProcessorPool creates a ProcessorPool backed by a WorkerPool sized
// to workers (<=0 selects GOMAXPROCS, spec §4.11's num_threads default).
func NewProcessorPool(workers int) *ProcessorPool {
	return &ProcessorPool{pool: NewWorkerPool(workers)}
}

// NumThreads reports the worker count (spec §4.11 num_threads()).
func (p *ProcessorPool) NumThreads() int { return p.pool.Workers() }

// Close shuts down the underlying pool.
func (p *ProcessorPool) Close() { p.pool.Close() }

// DispatchVertex runs one job per row band of the draw call's vertex
// batch (vertex fetch, shading, clip, cull, bin) and blocks until all
// bands finish, returning the first error encountered (if any band's
// job can fail; most vertex jobs never return an error and jobs are
// free to return nil).
func (p *ProcessorPool) DispatchVertex(ctx context.Context, jobs []func(ctx context.Context) error) error {
	return p.dispatch(ctx, jobs)
}

// DispatchFragment runs one job per screen-space row band during
// rasterization/fragment shading and blocks until all bands finish.
func (p *ProcessorPool) DispatchFragment(ctx context.Context, jobs []func(ctx context.Context) error) error {
	return p.dispatch(ctx, jobs)
}

// DispatchBlit runs one job per texel range of a blit operation (spec
// §4.10) and blocks until all ranges finish.
func (p *ProcessorPool) DispatchBlit(ctx context.Context, jobs []func(ctx context.Context) error) error {
	return p.dispatch(ctx, jobs)
}

// DispatchClear runs one job per texel range of a clear operation and
// blocks until all ranges finish.
func (p *ProcessorPool) DispatchClear(ctx context.Context, jobs []func(ctx context.Context) error) error {
	return p.dispatch(ctx, jobs)
}

// dispatch is the shared barrier: jobs run across the pool's
// work-stealing queues and the first non-nil error (if any) is returned
// once every job has finished or ctx is cancelled.
func (p *ProcessorPool) dispatch(ctx context.Context, jobs []func(ctx context.Context) error) error {
	if len(jobs) == 0 {
		return nil
	}

	err := p.pool.ExecuteAllCtx(ctx, jobs)
	if err != nil {
		rlog.Get().Error("parallel: phase job failed", "error", err, "jobs", rlog.FormatCount(len(jobs)))
	}
	return err
}
