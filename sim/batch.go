package sim

import (
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pthm-cable/obeh/config"
)

// BatchOptions controls a batch run.
type BatchOptions struct {
	Trials        int
	Seed          int64 // trial i runs on Seed+i
	Workers       int   // concurrent trials, <= 1 runs sequentially
	ProgressEvery int   // OnProgress fires every N completions and on the last one
	OnProgress    func(Progress)
}

// Progress is a snapshot of a running batch.
type Progress struct {
	Done      int
	Total     int
	Elapsed   time.Duration
	MeanTicks float64 // over completed trials
	MeanOBEH  float64 // over completed trials
}

// Percent returns completion in [0, 100].
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 100
	}
	return float64(p.Done) / float64(p.Total) * 100
}

// Rate returns completed trials per second.
func (p Progress) Rate() float64 {
	sec := p.Elapsed.Seconds()
	if sec <= 0 {
		return 0
	}
	return float64(p.Done) / sec
}

// ETA estimates the time left at the current rate.
func (p Progress) ETA() time.Duration {
	rate := p.Rate()
	if rate <= 0 {
		return 0
	}
	return time.Duration(float64(p.Total-p.Done) / rate * float64(time.Second))
}

// progressTracker accumulates running sums as trials complete.
type progressTracker struct {
	mu       sync.Mutex
	opts     BatchOptions
	start    time.Time
	done     int
	sumTicks float64
	sumOBEH  float64
}

func (pt *progressTracker) complete(r Result) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	pt.done++
	pt.sumTicks += float64(r.Ticks)
	pt.sumOBEH += r.OBEH

	if pt.opts.OnProgress == nil {
		return
	}
	if pt.done%pt.opts.ProgressEvery != 0 && pt.done != pt.opts.Trials {
		return
	}
	pt.opts.OnProgress(Progress{
		Done:      pt.done,
		Total:     pt.opts.Trials,
		Elapsed:   time.Since(pt.start),
		MeanTicks: pt.sumTicks / float64(pt.done),
		MeanOBEH:  pt.sumOBEH / float64(pt.done),
	})
}

// RunBatch runs opts.Trials independent trials and returns their results
// in trial order. Each trial owns its generator, so the result list does
// not depend on the worker count.
func RunBatch(cfg *config.Config, opts BatchOptions) []Result {
	if opts.Trials <= 0 {
		return nil
	}
	if opts.ProgressEvery <= 0 {
		opts.ProgressEvery = max(1, cfg.Batch.ProgressEvery)
	}
	workers := max(1, opts.Workers)

	results := make([]Result, opts.Trials)
	tracker := &progressTracker{opts: opts, start: time.Now()}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < opts.Trials; i++ {
		i := i
		g.Go(func() error {
			r := RunTrial(cfg, opts.Seed+int64(i))
			results[i] = r
			tracker.complete(r)
			return nil
		})
	}
	// Trials cannot fail.
	_ = g.Wait()

	return results
}
