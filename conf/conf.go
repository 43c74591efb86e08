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

// Package conf loads the TOML configuration of the adaptrie tool.
package conf

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/adaptrie/adaptrie/bench"
	"github.com/adaptrie/adaptrie/export"
	"github.com/adaptrie/adaptrie/trie"
)

// ErrInvalidOption is returned when a setting is out of range.
var ErrInvalidOption = errors.New("invalid option")

// Options is the complete tool configuration. Zero values mean "use the
// default", command line flags take precedence over the file.
type Options struct {
	Variant  string       `toml:"variant"`
	Format   string       `toml:"format"`
	Compress string       `toml:"compress"`
	Log      LogOptions   `toml:"log"`
	Bench    BenchOptions `toml:"bench"`
	Repl     ReplOptions  `toml:"repl"`
}

// LogOptions configures the logger.
type LogOptions struct {
	File   string `toml:"file"`
	Time   bool   `toml:"time"`
	UTC    bool   `toml:"utc"`
	Debug  bool   `toml:"debug"`
	Trace  bool   `toml:"trace"`
	Colors bool   `toml:"colors"`
	PID    bool   `toml:"pid"`
}

// BenchOptions configures the bench command.
type BenchOptions struct {
	Keys    int    `toml:"keys"`
	KeyLen  int    `toml:"key_len"`
	Keyset  string `toml:"keyset"`
	Workers int    `toml:"workers"`
	Rounds  int    `toml:"rounds"`
	Seed    int64  `toml:"seed"`
	DB      string `toml:"db"`
}

// ReplOptions configures the interactive session.
type ReplOptions struct {
	History string `toml:"history"`
	Prompt  string `toml:"prompt"`
}

// Default returns the built in configuration.
func Default() *Options {
	return &Options{
		Variant:  "byte",
		Format:   "json",
		Compress: "none",
		Log:      LogOptions{Time: true, Colors: true},
		Bench: BenchOptions{
			Keys:   1_000,
			KeyLen: bench.DefaultKeyLen,
			Keyset: "oid",
			Rounds: 1,
			Seed:   1,
		},
		Repl: ReplOptions{Prompt: "adaptrie> "},
	}
}

// Parse decodes TOML data over the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Options, error) {
	opts := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(opts); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidOption, sme.String())
		}
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// ProcessConfigFile reads and validates the configuration file at path.
func ProcessConfigFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	opts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	return opts, nil
}

// Validate checks every named setting resolves and every count is in range.
func (o *Options) Validate() error {
	if _, err := trie.ParseGranularity(o.Variant); err != nil {
		return err
	}
	if _, err := export.ParseFormat(o.Format); err != nil {
		return err
	}
	if _, err := export.ParseCompression(o.Compress); err != nil {
		return err
	}
	if _, err := bench.ParseKeyset(o.Bench.Keyset); err != nil {
		return err
	}
	b := o.Bench
	switch {
	case b.Keys <= 0:
		return fmt.Errorf("%w: bench.keys must be positive, got %d", ErrInvalidOption, b.Keys)
	case b.KeyLen < 0 || b.KeyLen > 64:
		return fmt.Errorf("%w: bench.key_len must be between 0 and 64, got %d", ErrInvalidOption, b.KeyLen)
	case b.Workers < 0:
		return fmt.Errorf("%w: bench.workers can not be negative, got %d", ErrInvalidOption, b.Workers)
	case b.Rounds < 0:
		return fmt.Errorf("%w: bench.rounds can not be negative, got %d", ErrInvalidOption, b.Rounds)
	}
	return nil
}

// Granularity resolves Variant. Only valid after Validate.
func (o *Options) Granularity() trie.Granularity {
	g, _ := trie.ParseGranularity(o.Variant)
	return g
}

// OutputFormat resolves Format. Only valid after Validate.
func (o *Options) OutputFormat() export.Format {
	f, _ := export.ParseFormat(o.Format)
	return f
}

// Compression resolves Compress. Only valid after Validate.
func (o *Options) Compression() export.Compression {
	c, _ := export.ParseCompression(o.Compress)
	return c
}

// BenchConfig converts the bench settings into a runner configuration.
func (o *Options) BenchConfig() bench.Config {
	ks, _ := bench.ParseKeyset(o.Bench.Keyset)
	return bench.Config{
		Keys:    o.Bench.Keys,
		KeyLen:  o.Bench.KeyLen,
		Keyset:  ks,
		Workers: o.Bench.Workers,
		Rounds:  o.Bench.Rounds,
		Seed:    o.Bench.Seed,
	}
}
