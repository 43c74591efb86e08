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
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/adaptrie/adaptrie/export"
	"github.com/adaptrie/adaptrie/trie"
)

type demoCmd struct {
	g       *globals
	variant string
	format  string
}

func configureDemoCommand(app *kingpin.Application, g *globals) {
	c := &demoCmd{g: g}
	demo := app.Command("demo", "Insert the demonstration key and print the trie").Action(c.demoAction)
	demo.Flag("variant", "Key granularity (byte, nibble, bit)").Short('v').StringVar(&c.variant)
	demo.Flag("format", "Output format (json, proto, text, dump)").Short('f').Default("dump").StringVar(&c.format)
}

func (c *demoCmd) demoAction(_ *kingpin.ParseContext) error {
	v, err := c.g.variant(c.variant)
	kingpin.FatalIfError(err, "invalid variant")
	f, err := c.g.format(c.format)
	kingpin.FatalIfError(err, "invalid format")

	return c.run(os.Stdout, v, f)
}

func (c *demoCmd) run(w io.Writer, v trie.Granularity, f export.Format) error {
	tr := c.g.newTrie(v)
	tr.Insert([]byte{1, 2, 3, 4}, "Commit Message")
	c.g.log.Noticef("Demo %s trie holds %s key", tr.Granularity(), humanize.Comma(int64(tr.Size())))
	return export.Render(w, tr, f)
}
