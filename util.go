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
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/adaptrie/adaptrie/conf"
	"github.com/adaptrie/adaptrie/export"
	"github.com/adaptrie/adaptrie/logger"
	"github.com/adaptrie/adaptrie/trie"
)

var errNoKey = errors.New("empty key")

// globals holds the settings shared by every command.
type globals struct {
	config  string
	debug   bool
	trace   bool
	logFile string

	opts *conf.Options
	log  *logger.Logger
}

func configureGlobals(app *kingpin.Application) *globals {
	g := &globals{}
	app.Flag("config", "TOML configuration file").Short('c').PlaceHolder("FILE").ExistingFileVar(&g.config)
	app.Flag("debug", "Enable debug logging").Short('D').BoolVar(&g.debug)
	app.Flag("trace", "Enable trace logging, includes trie structure changes").Short('V').BoolVar(&g.trace)
	app.Flag("log", "Write log output to a file").PlaceHolder("FILE").StringVar(&g.logFile)
	app.PreAction(g.setup)
	return g
}

// setup loads the configuration and builds the logger before any command runs.
func (g *globals) setup(_ *kingpin.ParseContext) (err error) {
	if g.config != "" {
		g.opts, err = conf.ProcessConfigFile(g.config)
		if err != nil {
			return err
		}
	} else {
		g.opts = conf.Default()
	}

	lo := &g.opts.Log
	if g.debug {
		lo.Debug = true
	}
	if g.trace {
		lo.Trace = true
	}
	if g.logFile != "" {
		lo.File = g.logFile
	}

	if lo.File != "" {
		g.log = logger.NewFileLogger(lo.File, lo.Time, lo.Debug, lo.Trace, lo.PID, logger.LogUTC(lo.UTC))
	} else {
		colors := lo.Colors && readline.IsTerminal(int(os.Stderr.Fd()))
		g.log = logger.NewStdLogger(lo.Time, lo.Debug, lo.Trace, colors, lo.PID, logger.LogUTC(lo.UTC))
	}
	g.log.Debugf("Configuration: variant=%s format=%s compress=%s", g.opts.Variant, g.opts.Format, g.opts.Compress)
	return nil
}

func (g *globals) close() {
	if g.log != nil {
		g.log.Close()
	}
}

// variant resolves a --variant flag, falling back to the configuration.
func (g *globals) variant(flag string) (trie.Granularity, error) {
	if flag == "" {
		return g.opts.Granularity(), nil
	}
	return trie.ParseGranularity(flag)
}

func (g *globals) format(flag string) (export.Format, error) {
	if flag == "" {
		return g.opts.OutputFormat(), nil
	}
	return export.ParseFormat(flag)
}

func (g *globals) compression(flag string) (export.Compression, error) {
	if flag == "" {
		return g.opts.Compression(), nil
	}
	return export.ParseCompression(flag)
}

// newTrie creates a trie that traces structural changes through the logger.
func (g *globals) newTrie(v trie.Granularity) *trie.Trie[string] {
	return trie.New[string](v, trie.WithLogger(g.log), trie.WithKeyCache(256))
}

// parsePair splits "key=value". A line without "=" is a key with an empty value.
func parsePair(s string, hexKeys bool) ([]byte, string, error) {
	k, v, _ := strings.Cut(s, "=")
	if k == "" {
		return nil, "", fmt.Errorf("%w in %q", errNoKey, s)
	}
	if !hexKeys {
		return []byte(k), v, nil
	}
	key, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(k), "0x"))
	if err != nil {
		return nil, "", fmt.Errorf("invalid hex key %q: %w", k, err)
	}
	return key, v, nil
}

// readPairs reads one pair per line, skipping blank lines and # comments.
func readPairs(r io.Reader, hexKeys bool, f func(key []byte, value string)) (int, error) {
	sc := bufio.NewScanner(r)
	var n, line int
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		k, v, err := parsePair(s, hexKeys)
		if err != nil {
			return n, fmt.Errorf("line %d: %w", line, err)
		}
		f(k, v)
		n++
	}
	return n, sc.Err()
}
