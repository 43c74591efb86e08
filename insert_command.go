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
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/adaptrie/adaptrie/export"
	"github.com/adaptrie/adaptrie/trie"
)

type insertCmd struct {
	g        *globals
	variant  string
	format   string
	compress string
	hexKeys  bool
	out      string
	pairs    []string
}

func configureInsertCommand(app *kingpin.Application, g *globals) {
	c := &insertCmd{g: g}
	ins := app.Command("insert", "Insert key=value pairs and print the resulting trie").Alias("add").Action(c.insertAction)
	ins.Arg("pairs", "key=value pairs, read from stdin when omitted").StringsVar(&c.pairs)
	ins.Flag("variant", "Key granularity (byte, nibble, bit)").Short('v').StringVar(&c.variant)
	ins.Flag("format", "Output format (json, proto, text, dump)").Short('f').StringVar(&c.format)
	ins.Flag("compress", "Output compression (none, s2)").StringVar(&c.compress)
	ins.Flag("hex", "Keys are hex encoded").Short('x').BoolVar(&c.hexKeys)
	ins.Flag("out", "Write output to a file").Short('o').PlaceHolder("FILE").StringVar(&c.out)
}

func (c *insertCmd) insertAction(_ *kingpin.ParseContext) error {
	v, err := c.g.variant(c.variant)
	kingpin.FatalIfError(err, "invalid variant")
	f, err := c.g.format(c.format)
	kingpin.FatalIfError(err, "invalid format")
	alg, err := c.g.compression(c.compress)
	kingpin.FatalIfError(err, "invalid compression")

	tr, err := c.build(v, os.Stdin)
	kingpin.FatalIfError(err, "could not read keys")

	b, err := export.Bytes(tr, f, alg)
	kingpin.FatalIfError(err, "could not render trie")

	if c.out == "" {
		_, err = os.Stdout.Write(b)
		return err
	}
	err = os.WriteFile(c.out, b, 0644)
	kingpin.FatalIfError(err, "could not write %s", c.out)
	c.g.log.Noticef("Wrote %s to %s (%s, %v)", humanize.IBytes(uint64(len(b))), c.out, f, alg)
	return nil
}

// build inserts the pairs given on the command line, or those read from in
// when there are none.
func (c *insertCmd) build(v trie.Granularity, in io.Reader) (*trie.Trie[string], error) {
	tr := c.g.newTrie(v)
	var n int
	if len(c.pairs) == 0 {
		var err error
		n, err = readPairs(in, c.hexKeys, tr.Insert)
		if err != nil {
			return nil, err
		}
	} else {
		for _, p := range c.pairs {
			k, val, err := parsePair(p, c.hexKeys)
			if err != nil {
				return nil, err
			}
			tr.Insert(k, val)
			n++
		}
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: no pairs given", errNoKey)
	}
	c.g.log.Debugf("Inserted %s pairs, %s distinct keys into %s trie",
		humanize.Comma(int64(n)), humanize.Comma(int64(tr.Size())), v)
	return tr, nil
}
