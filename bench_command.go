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

package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/nats-io/nuid"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/adaptrie/adaptrie/bench"
	"github.com/adaptrie/adaptrie/trie"
)

type benchCmd struct {
	g        *globals
	keys     int
	keyLen   int
	keyset   string
	workers  int
	rounds   int
	seed     int64
	db       string
	variants []string
}

func configureBenchCommand(app *kingpin.Application, g *globals) {
	c := &benchCmd{g: g}
	b := app.Command("bench", "Insert generated keys into every trie variant and report timings").Action(c.benchAction)
	b.Flag("keys", "Number of keys to insert").Short('n').IntVar(&c.keys)
	b.Flag("key-len", "Length of oid keys in bytes").IntVar(&c.keyLen)
	b.Flag("keyset", "Key generator (oid, uuid, nuid)").StringVar(&c.keyset)
	b.Flag("workers", "Concurrent workers, defaults to GOMAXPROCS").Short('w').IntVar(&c.workers)
	b.Flag("rounds", "Runs per variant").Short('r').IntVar(&c.rounds)
	b.Flag("seed", "Seed for reproducible keys").Int64Var(&c.seed)
	b.Flag("db", "Record results into an sqlite database").PlaceHolder("FILE").StringVar(&c.db)
	b.Flag("variant", "Restrict to a variant, may be repeated").Short('v').StringsVar(&c.variants)
}

// config merges the flags that were given over the configuration file.
func (c *benchCmd) config() (bench.Config, error) {
	cfg := c.g.opts.BenchConfig()
	if c.keys > 0 {
		cfg.Keys = c.keys
	}
	if c.keyLen > 0 {
		cfg.KeyLen = c.keyLen
	}
	if c.keyset != "" {
		ks, err := bench.ParseKeyset(c.keyset)
		if err != nil {
			return cfg, err
		}
		cfg.Keyset = ks
	}
	if c.workers > 0 {
		cfg.Workers = c.workers
	}
	if c.rounds > 0 {
		cfg.Rounds = c.rounds
	}
	if c.seed != 0 {
		cfg.Seed = c.seed
	}
	for _, v := range c.variants {
		g, err := trie.ParseGranularity(v)
		if err != nil {
			return cfg, err
		}
		cfg.Variants = append(cfg.Variants, g)
	}
	return cfg, nil
}

func (c *benchCmd) benchAction(_ *kingpin.ParseContext) error {
	cfg, err := c.config()
	kingpin.FatalIfError(err, "invalid bench options")

	runner, err := bench.NewRunner(cfg, c.g.log)
	kingpin.FatalIfError(err, "invalid bench options")
	cfg = runner.Config()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c.g.log.Noticef("Inserting %s %s keys into %d variant(s), %d round(s), %d worker(s)",
		humanize.Comma(int64(cfg.Keys)), cfg.Keyset, len(cfg.Variants), cfg.Rounds, cfg.Workers)

	started := time.Now()
	results, err := runner.Run(ctx)
	kingpin.FatalIfError(err, "bench failed")
	c.g.log.Noticef("Bench finished in %v", time.Since(started).Round(time.Millisecond))

	if err := bench.Report(os.Stdout, results); err != nil {
		return err
	}

	db := c.db
	if db == "" {
		db = c.g.opts.Bench.DB
	}
	if db == "" {
		return nil
	}
	rec, err := bench.OpenRecorder(db)
	kingpin.FatalIfError(err, "could not open results database")
	defer rec.Close()

	run := nuid.Next()
	err = rec.Record(run, cfg, started, results)
	kingpin.FatalIfError(err, "could not record results")
	c.g.log.Noticef("Recorded run %s into %s", run, db)
	return nil
}
