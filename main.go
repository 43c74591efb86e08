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

	_ "go.uber.org/automaxprocs"
	"gopkg.in/alecthomas/kingpin.v2"
)

var version = "development"

func main() {
	app := kingpin.New("adaptrie", "Adaptive byte keyed trie tool")
	app.Author("The Adaptrie Authors")
	app.Version(version)
	app.HelpFlag.Short('h')

	g := configureGlobals(app)
	configureDemoCommand(app, g)
	configureInsertCommand(app, g)
	configureShowCommand(app, g)
	configureBenchCommand(app, g)
	configureReplCommand(app, g)

	kingpin.MustParse(app.Parse(os.Args[1:]))
	g.close()
}
