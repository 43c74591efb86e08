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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/adaptrie/adaptrie/export"
	"github.com/adaptrie/adaptrie/trie"
)

var errUnknownCommand = errors.New("unknown command")

const replHelp = `Commands:
  insert KEY [VALUE...]  # Insert a key, the rest of the line is the value
  dump                   # Print the node tree
  json | proto | text    # Print the serialized trie
  digest                 # Print the structure digest
  stats                  # Print node and child array statistics
  size                   # Print the number of keys
  reset                  # Start over with an empty trie
  help                   # This message
  quit                   # Leave
`

type replCmd struct {
	g       *globals
	variant string
	hexKeys bool
}

func configureReplCommand(app *kingpin.Application, g *globals) {
	c := &replCmd{g: g}
	repl := app.Command("repl", "Interactive session against a single trie").Alias("shell").Action(c.replAction)
	repl.Flag("variant", "Key granularity (byte, nibble, bit)").Short('v').StringVar(&c.variant)
	repl.Flag("hex", "Keys are hex encoded").Short('x').BoolVar(&c.hexKeys)
}

func (c *replCmd) replAction(_ *kingpin.ParseContext) error {
	if c.variant == "" && readline.IsTerminal(int(os.Stdin.Fd())) {
		err := survey.AskOne(&survey.Select{
			Message: "Key granularity",
			Options: []string{trie.Bytes.String(), trie.Nibbles.String(), trie.Bits.String()},
			Default: c.g.opts.Granularity().String(),
			Help:    "Keys are split into bytes, 4 bit nibbles or single bits. Settable using --variant",
		}, &c.variant)
		kingpin.FatalIfError(err, "invalid input")
	}
	v, err := c.g.variant(c.variant)
	kingpin.FatalIfError(err, "invalid variant")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          c.g.opts.Repl.Prompt,
		HistoryFile:     c.g.opts.Repl.History,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	kingpin.FatalIfError(err, "could not start readline")
	defer rl.Close()

	s := &session{g: c.g, variant: v, hexKeys: c.hexKeys, out: rl.Stdout()}
	s.reset()
	fmt.Fprintf(s.out, "%s trie, type help for commands\n", v)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		quit, err := s.exec(line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// session is the state of one interactive run.
type session struct {
	g       *globals
	variant trie.Granularity
	hexKeys bool
	out     io.Writer
	tr      *trie.Trie[string]
}

func (s *session) reset() {
	s.tr = s.g.newTrie(s.variant)
}

// exec runs one command line and reports whether the session should end.
func (s *session) exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		_, err := io.WriteString(s.out, replHelp)
		return false, err
	case "insert", "i", "add":
		if len(fields) < 2 {
			return false, fmt.Errorf("%w: insert KEY [VALUE...]", errNoKey)
		}
		key, _, err := parsePair(fields[1], s.hexKeys)
		if err != nil {
			return false, err
		}
		before := s.tr.Size()
		s.tr.Insert(key, strings.Join(fields[2:], " "))
		if s.tr.Size() > before {
			fmt.Fprintf(s.out, "added %s\n", s.tr.Encoder().Format(s.tr.Encoder().Encode(key)))
		} else {
			fmt.Fprintf(s.out, "updated %s\n", s.tr.Encoder().Format(s.tr.Encoder().Encode(key)))
		}
		return false, nil
	case "dump":
		return false, export.Render(s.out, s.tr, export.FormatDump)
	case "json", "proto", "text":
		f, err := export.ParseFormat(cmd)
		if err != nil {
			return false, err
		}
		return false, export.Render(s.out, s.tr, f)
	case "digest":
		_, err := fmt.Fprintf(s.out, "%016x\n", s.tr.Digest())
		return false, err
	case "size":
		_, err := fmt.Fprintf(s.out, "%s\n", humanize.Comma(int64(s.tr.Size())))
		return false, err
	case "stats":
		return false, printStats(s.out, s.tr.Stats())
	case "reset":
		s.reset()
		_, err := fmt.Fprintf(s.out, "empty %s trie\n", s.variant)
		return false, err
	default:
		return false, fmt.Errorf("%w %q, type help for commands", errUnknownCommand, fields[0])
	}
}

func printStats(w io.Writer, st trie.Stats) error {
	_, err := fmt.Fprintf(w, "        Keys: %s\n       Nodes: %s\n    Branches: %s\n      Arrays: %s\n       Slots: %s of %s (%.1f%%)\n   Max Depth: %d\n",
		humanize.Comma(int64(st.Keys)),
		humanize.Comma(int64(st.Nodes)),
		humanize.Comma(int64(st.Branches)),
		humanize.Comma(int64(st.Arrays)),
		humanize.Comma(int64(st.UsedSlots)),
		humanize.Comma(int64(st.Slots)),
		st.Fill()*100,
		st.MaxDepth,
	)
	return err
}
