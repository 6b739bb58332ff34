package infra

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	mem "wanderly/pkg/memcache"
)

// SweepReport counts what one janitor pass removed.
type SweepReport struct {
	PurgedMessages int64
	SweptEntries   int
	Errors         []string
}

// PurgeFunc deletes transcript messages created before cutoff.
type PurgeFunc func(ctx context.Context, cutoff time.Time) (int64, error)

// Janitor periodically trims assistant transcripts past their retention
// window and sweeps expired generation cache entries.
type Janitor struct {
	cron      *cron.Cron
	retention time.Duration
	purge     PurgeFunc
	cache     mem.GenerationCache
	now       func() time.Time
}

func NewJanitor(schedule string, retention time.Duration, purge PurgeFunc, cache mem.GenerationCache) (*Janitor, error) {
	j := &Janitor{
		cron:      cron.New(),
		retention: retention,
		purge:     purge,
		cache:     cache,
		now:       time.Now,
	}
	if _, err := j.cron.AddFunc(schedule, func() { j.RunOnce() }); err != nil {
		return nil, fmt.Errorf("invalid janitor schedule %q: %w", schedule, err)
	}
	return j, nil
}

func (j *Janitor) Start() {
	j.cron.Start()
	log.Printf("Janitor started, transcript retention %s", j.retention)
}

// Stop halts scheduling and waits for a running pass to finish or ctx to end.
func (j *Janitor) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// RunOnce runs a pass with its own one minute deadline.
func (j *Janitor) RunOnce() SweepReport {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	return j.Run(ctx)
}

func (j *Janitor) Run(ctx context.Context) SweepReport {
	var report SweepReport
	if j.purge != nil && j.retention > 0 {
		cutoff := j.now().Add(-j.retention)
		n, err := j.purge(ctx, cutoff)
		if err != nil {
			log.Printf("Transcript purge failed: %v", err)
			report.Errors = append(report.Errors, "transcript purge failed")
		} else {
			report.PurgedMessages = n
			if n > 0 {
				log.Printf("Purged %d transcript messages older than %s", n, cutoff.Format(time.RFC3339))
			}
		}
	}
	if j.cache != nil {
		n, err := j.cache.Sweep(ctx)
		if err != nil {
			log.Printf("Generation cache sweep failed: %v", err)
			report.Errors = append(report.Errors, "generation cache sweep failed")
		} else {
			report.SweptEntries = n
			if n > 0 {
				log.Printf("Swept %d expired generation cache entries", n)
			}
		}
	}
	return report
}
