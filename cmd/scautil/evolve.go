// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-soundchange"
	"github.com/ianlewis/go-soundchange/corpus"
	"github.com/ianlewis/go-soundchange/corpus/sqlite"
	"github.com/ianlewis/go-soundchange/internal/folding"
)

var evolveCommand = &cli.Command{
	Name:  "evolve",
	Usage: "Apply sound change rules to every word in the corpus",
	Description: `Apply an ordered rule set to every word in the corpus, overwriting each
word's term in place. Preview the rule set on a representative word with
'apply' first; there is no undo.`,
	Flags: ruleFlags,
	Action: func(c *cli.Context) error {
		rules, err := rulesFromFlags(c)
		if err != nil {
			return err
		}

		path, err := corpusPath(c)
		if err != nil {
			return err
		}
		store, err := sqlite.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScautil, err)
		}
		defer store.Close()

		engine := soundchange.New(&soundchange.Options{
			Folder: folding.Term,
		})

		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
		defer stop()

		changed, err := corpus.Evolve(ctx, store, engine, rules)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScautil, err)
		}

		fmt.Fprintf(c.App.Writer, "%d words changed\n", changed)
		return nil
	},
}
