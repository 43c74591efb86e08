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
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/adaptrie/adaptrie/export"
)

type showCmd struct {
	g    *globals
	file string
}

func configureShowCommand(app *kingpin.Application, g *globals) {
	c := &showCmd{g: g}
	show := app.Command("show", "Print a file written by insert --out, decompressing it if needed").Action(c.showAction)
	show.Arg("file", "Output file of the insert command").Required().ExistingFileVar(&c.file)
}

func (c *showCmd) showAction(_ *kingpin.ParseContext) error {
	b, err := os.ReadFile(c.file)
	kingpin.FatalIfError(err, "could not read %s", c.file)

	out, err := export.Open(b)
	kingpin.FatalIfError(err, "could not decode %s", c.file)

	c.g.log.Debugf("Read %d bytes from %s, %d after decoding", len(b), c.file, len(out))
	_, err = os.Stdout.Write(out)
	return err
}
