// Package bench drives a BloomFilter with generated items and measures its observed
// false positive rate and per-operation latency.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/rag-nar1/sized-bloom/filter"
	"github.com/rag-nar1/sized-bloom/filter/bloom"
)

// checkEvery is how many items pass between context checks.
const checkEvery = 4096

type Report struct {
	Config Config
	Filter *bloom.BloomFilter

	Inserted       uint64
	Distinct       uint64
	FalseNegatives uint64
	Queries        uint64
	FalsePositives uint64

	InsertTime   time.Duration
	ContainsTime time.Duration
}

// FalsePositiveRate is the observed rate over the fresh query items.
func (r *Report) FalsePositiveRate() float64 {
	if r.Queries == 0 {
		return 0
	}
	return float64(r.FalsePositives) / float64(r.Queries)
}

func (r *Report) InsertNsOp() float64 {
	return nsPerOp(r.InsertTime, r.Inserted)
}

func (r *Report) ContainsNsOp() float64 {
	return nsPerOp(r.ContainsTime, r.Queries)
}

func nsPerOp(d time.Duration, n uint64) float64 {
	if n == 0 {
		return 0
	}
	return float64(d.Nanoseconds()) / float64(n)
}

// Run builds a filter from cfg, inserts cfg.MaxItems generated items, re-checks every one
// of them and then probes cfg.Queries items that were never inserted.
func Run(ctx context.Context, cfg Config, log logr.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h, err := filter.LookupHash(cfg.Hash)
	if err != nil {
		return nil, err
	}
	bf, err := bloom.New(cfg.FalsePositiveRate, cfg.MaxItems, bloom.WithHash(h), bloom.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("creating filter: %w", err)
	}

	r := &Report{Config: cfg, Filter: bf}
	gen := NewGenerator(cfg.Generator, cfg.Seed, cfg.ItemLength)

	inserted := make(map[string]struct{}, cfg.MaxItems)
	items := make([][]byte, cfg.MaxItems)
	for i := range items {
		items[i] = gen.Next()
		inserted[string(items[i])] = struct{}{}
	}

	log.Info("inserting", "items", cfg.MaxItems, "width", bf.Width(), "hashCount", bf.HashCount())
	start := time.Now()
	for i, item := range items {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		bf.Insert(item)
	}
	r.InsertTime = time.Since(start)
	r.Inserted = bf.ItemCount()
	r.Distinct = uint64(len(inserted))

	for i, item := range items {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if !bf.Contains(item) {
			r.FalseNegatives++
		}
	}
	if r.FalseNegatives > 0 {
		log.Error(nil, "false negatives observed", "count", r.FalseNegatives)
	}

	// short random items can exhaust the space of fresh values
	queries := make([][]byte, 0, cfg.Queries)
	maxAttempts := 4*cfg.Queries + checkEvery
	for attempt := uint64(0); uint64(len(queries)) < cfg.Queries && attempt < maxAttempts; attempt++ {
		item := gen.Next()
		if _, ok := inserted[string(item)]; ok {
			continue
		}
		queries = append(queries, item)
	}

	if uint64(len(queries)) < cfg.Queries {
		log.Info("fewer fresh query items than requested", "requested", cfg.Queries, "found", len(queries))
	}
	log.Info("querying", "items", len(queries))
	start = time.Now()
	for i, item := range queries {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if bf.Contains(item) {
			r.FalsePositives++
		}
	}
	r.ContainsTime = time.Since(start)
	r.Queries = uint64(len(queries))

	log.Info("benchmark finished",
		"falsePositiveRate", r.FalsePositiveRate(),
		"insertNsOp", r.InsertNsOp(), "containsNsOp", r.ContainsNsOp())
	return r, nil
}
