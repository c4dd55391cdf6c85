package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/momentics/constvec"
	"github.com/momentics/constvec/control"
	"github.com/momentics/constvec/internal/concurrency"
)

// sample carries a checksum so readers can spot a partially written slot.
type sample struct {
	id  uint64
	sum uint64
}

func newSample(pusher, seq int) sample {
	id := uint64(pusher)<<32 | uint64(seq)
	return sample{id: id, sum: ^id * 0x9e3779b97f4a7c15}
}

func (s sample) intact() bool { return s.sum == ^s.id*0x9e3779b97f4a7c15 }

// report summarizes one stress round.
type report struct {
	Capacity    int64
	Attempts    int64
	Pushed      int64
	Rejected    int64
	Len         int64
	Destroyed   int64
	TornReads   int64
	ReaderScans int64
	Duplicates  int64
	Canceled    bool
	Elapsed     time.Duration
}

// check verifies the container invariants observed during the round.
func (r report) check() error {
	var errs []error
	if r.TornReads != 0 {
		errs = append(errs, fmt.Errorf("%d torn reads", r.TornReads))
	}
	if r.Duplicates != 0 {
		errs = append(errs, fmt.Errorf("%d duplicated values", r.Duplicates))
	}
	if r.Pushed != r.Len {
		errs = append(errs, fmt.Errorf("pushed %d but len %d", r.Pushed, r.Len))
	}
	if r.Destroyed != r.Len {
		errs = append(errs, fmt.Errorf("destroyed %d but len %d", r.Destroyed, r.Len))
	}
	if r.Pushed+r.Rejected != r.Attempts {
		errs = append(errs, fmt.Errorf("pushed %d + rejected %d != attempts %d", r.Pushed, r.Rejected, r.Attempts))
	}
	if !r.Canceled && r.Pushed != min(r.Attempts, r.Capacity) {
		errs = append(errs, fmt.Errorf("pushed %d, want %d", r.Pushed, min(r.Attempts, r.Capacity)))
	}
	return errors.Join(errs...)
}

func (r report) fields() []zap.Field {
	return []zap.Field{
		zap.Int64("capacity", r.Capacity),
		zap.Int64("attempts", r.Attempts),
		zap.Int64("pushed", r.Pushed),
		zap.Int64("rejected", r.Rejected),
		zap.Int64("destroyed", r.Destroyed),
		zap.Int64("reader_scans", r.ReaderScans),
		zap.Int64("torn_reads", r.TornReads),
		zap.Bool("canceled", r.Canceled),
		zap.Duration("elapsed", r.Elapsed),
	}
}

// runRound hammers one ConstVec with cfg.Pushers pushers and cfg.Readers
// readers, then releases it and reports what was observed.
func runRound(ctx context.Context, cfg stressConfig, log *zap.Logger, reg *control.MetricsRegistry) report {
	var destroyed atomic.Int64
	v := constvec.New[sample](cfg.Capacity, constvec.WithTeardown(func(*sample) {
		destroyed.Add(1)
	}))

	var (
		rep               report
		attempts, pushed  atomic.Int64
		rejected          atomic.Int64
		torn, scans       atomic.Int64
		pushWG, readersWG sync.WaitGroup
	)
	rep.Capacity = int64(cfg.Capacity)
	start := time.Now()
	done := make(chan struct{})

	for k := 0; k < cfg.Pushers; k++ {
		pushWG.Add(1)
		go func(k int) {
			defer pushWG.Done()
			if cfg.Pin {
				cpu := concurrency.PreferredCPU(k)
				if err := concurrency.PinCurrentThread(cpu); err != nil {
					log.Debug("pin pusher", zap.Int("pusher", k), zap.Int("cpu", cpu), zap.Error(err))
				} else {
					defer concurrency.UnpinCurrentThread()
				}
			}
			for i := 0; i < cfg.PerPusher; i++ {
				if i&255 == 0 && ctx.Err() != nil {
					return
				}
				attempts.Add(1)
				if err := v.Push(newSample(k, i)); err != nil {
					rejected.Add(1)
					continue
				}
				pushed.Add(1)
			}
		}(k)
	}

	for r := 0; r < cfg.Readers; r++ {
		readersWG.Add(1)
		go func() {
			defer readersWG.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				n := v.Len()
				for i := 0; i < n; i++ {
					p, err := v.Get(i)
					if err != nil || !p.intact() {
						torn.Add(1)
					}
				}
				scans.Add(1)
				runtime.Gosched()
			}
		}()
	}

	pushWG.Wait()
	close(done)
	readersWG.Wait()

	seen := make(map[uint64]struct{}, v.Len())
	for it := v.Iter(); ; {
		p, ok := it.Next()
		if !ok {
			break
		}
		if _, dup := seen[p.id]; dup {
			rep.Duplicates++
		}
		seen[p.id] = struct{}{}
	}

	rep.Len = int64(v.Len())
	reg.Observe("stress.vec", v)
	v.Release()

	rep.Attempts = attempts.Load()
	rep.Pushed = pushed.Load()
	rep.Rejected = rejected.Load()
	rep.TornReads = torn.Load()
	rep.ReaderScans = scans.Load()
	rep.Destroyed = destroyed.Load()
	rep.Canceled = ctx.Err() != nil
	rep.Elapsed = time.Since(start)
	return rep
}

// run executes cfg.Rounds rounds and stops at the first invariant violation.
func run(ctx context.Context, cfg stressConfig, log *zap.Logger, reg *control.MetricsRegistry) error {
	for round := 1; round <= cfg.Rounds; round++ {
		rep := runRound(ctx, cfg, log, reg)
		log.Info("stress round complete", append([]zap.Field{zap.Int("round", round)}, rep.fields()...)...)
		reg.Set("stress.rounds", int64(round))
		if err := rep.check(); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		if rep.Canceled {
			return ctx.Err()
		}
	}
	return nil
}
