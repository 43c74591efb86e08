// Copyright 2024-2026 The Adaptrie Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/adaptrie/adaptrie/trie"
)

// Logger is the logging surface used by the runner.
type Logger interface {
	Noticef(format string, v ...any)
	Debugf(format string, v ...any)
}

// Config describes a benchmark run.
type Config struct {
	Keys    int
	KeyLen  int
	Keyset  Keyset
	Workers int
	// Rounds repeats each variant, every round on a fresh trie.
	Rounds int
	Seed   int64
	// Variants defaults to all three granularities.
	Variants []trie.Granularity
	// Progress is the minimum interval between progress lines.
	Progress time.Duration
}

// Result is the outcome of one variant and round.
type Result struct {
	Variant   trie.Granularity `json:"variant"`
	Round     int              `json:"round"`
	Keys      int              `json:"keys"`
	Distinct  int              `json:"distinct"`
	Insert    time.Duration    `json:"insert_ns"`
	Serialize time.Duration    `json:"serialize_ns"`
	JSONBytes int              `json:"json_bytes"`
	Digest    uint64           `json:"digest"`
	Stats     trie.Stats       `json:"stats"`
}

type job struct {
	variant trie.Granularity
	round   int
}

// Runner executes a Config. Each job builds its own trie, so jobs run on
// separate goroutines without sharing state.
type Runner struct {
	cfg      Config
	log      Logger
	progress *rate.Limiter
}

// NewRunner validates cfg, fills in defaults and returns a runner.
func NewRunner(cfg Config, l Logger) (*Runner, error) {
	if cfg.Keys <= 0 {
		return nil, ErrNoKeys
	}
	if cfg.KeyLen == 0 {
		cfg.KeyLen = DefaultKeyLen
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Rounds <= 0 {
		cfg.Rounds = 1
	}
	if len(cfg.Variants) == 0 {
		cfg.Variants = []trie.Granularity{trie.Bytes, trie.Nibbles, trie.Bits}
	}
	if cfg.Progress <= 0 {
		cfg.Progress = time.Second
	}
	return &Runner{
		cfg:      cfg,
		log:      l,
		progress: rate.NewLimiter(rate.Every(cfg.Progress), 1),
	}, nil
}

// Config returns the effective configuration.
func (r *Runner) Config() Config { return r.cfg }

// Run generates the keys once and inserts them into a fresh trie per variant
// and round. Results are ordered by variant, then round.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	recs, err := Generate(r.cfg.Keyset, r.cfg.Keys, r.cfg.KeyLen, r.cfg.Seed)
	if err != nil {
		return nil, err
	}
	r.debugf("bench: generated %d %s keys", len(recs), r.cfg.Keyset)

	jobs := make(chan job)
	var (
		mu       sync.Mutex
		results  []Result
		firstErr error
		wg       sync.WaitGroup
	)

	workers := min(r.cfg.Workers, len(r.cfg.Variants)*r.cfg.Rounds)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := r.runJob(ctx, j, recs)
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else {
					results = append(results, res)
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for round := 1; round <= r.cfg.Rounds; round++ {
		for _, g := range r.cfg.Variants {
			select {
			case jobs <- job{variant: g, round: round}:
			case <-ctx.Done():
				break feed
			}
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Variant != results[j].Variant {
			return results[i].Variant < results[j].Variant
		}
		return results[i].Round < results[j].Round
	})
	return results, nil
}

func (r *Runner) runJob(ctx context.Context, j job, recs []Record) (Result, error) {
	tr := trie.New[string](j.variant)
	res := Result{Variant: j.variant, Round: j.round, Keys: len(recs)}

	start := time.Now()
	for i, rec := range recs {
		if i&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			if i > 0 && r.progress.Allow() {
				r.noticef("bench: %s round %d inserted %d/%d keys", j.variant, j.round, i, len(recs))
			}
		}
		tr.Insert(rec.Key, rec.Summary)
	}
	res.Insert = time.Since(start)

	start = time.Now()
	b, err := json.Marshal(tr.Serialize())
	if err != nil {
		return res, fmt.Errorf("serialize %s trie: %w", j.variant, err)
	}
	res.Serialize = time.Since(start)
	res.JSONBytes = len(b)
	res.Distinct = tr.Size()
	res.Digest = tr.Digest()
	res.Stats = tr.Stats()

	r.debugf("bench: %s round %d done in %v", j.variant, j.round, res.Insert)
	return res, nil
}

func (r *Runner) noticef(format string, v ...any) {
	if r.log != nil {
		r.log.Noticef(format, v...)
	}
}

func (r *Runner) debugf(format string, v ...any) {
	if r.log != nil {
		r.log.Debugf(format, v...)
	}
}
