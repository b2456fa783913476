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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-soundchange/corpus"
	"github.com/ianlewis/go-soundchange/corpus/sqlite"
)

var wordsCommand = &cli.Command{
	Name:  "words",
	Usage: "Manage the word corpus",
	Subcommands: []*cli.Command{
		wordsListCommand,
		wordsImportCommand,
		wordsExportCommand,
	},
}

var wordsListCommand = &cli.Command{
	Name:  "list",
	Usage: "List words in the corpus",
	Action: func(c *cli.Context) error {
		store, err := openCorpusStore(c)
		if err != nil {
			return err
		}
		defer store.Close()

		words, err := store.ListWords(c.Context)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScautil, err)
		}

		tbl := table.New("TERM", "POS", "DEFINITION").WithWriter(c.App.Writer)
		for _, w := range words {
			tbl.AddRow(w.Term, w.PartOfSpeech, w.Definition)
		}
		tbl.Print()
		return nil
	},
}

var wordsImportCommand = &cli.Command{
	Name:      "import",
	Usage:     "Import a JSON word list into the corpus",
	ArgsUsage: "FILE",
	Description: `Import a JSON word list. Files compressed with gzip (.gz) or dictzip
(.dz) are decompressed transparently.`,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected a single FILE argument", ErrFlagParse)
		}

		store, err := openCorpusStore(c)
		if err != nil {
			return err
		}
		defer store.Close()

		added, err := corpus.ImportFile(c.Context, store, c.Args().Get(0))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScautil, err)
		}

		fmt.Fprintf(c.App.Writer, "%d words imported\n", added)
		return nil
	},
}

var wordsExportCommand = &cli.Command{
	Name:      "export",
	Usage:     "Export the corpus as a JSON word list",
	ArgsUsage: "[FILE]",
	Action: func(c *cli.Context) error {
		if c.NArg() > 1 {
			return fmt.Errorf("%w: expected at most one FILE argument", ErrFlagParse)
		}

		store, err := openCorpusStore(c)
		if err != nil {
			return err
		}
		defer store.Close()

		if c.NArg() == 1 {
			if err := corpus.ExportFile(c.Context, store, c.Args().Get(0)); err != nil {
				return fmt.Errorf("%w: %w", ErrScautil, err)
			}
			return nil
		}
		if err := corpus.Export(c.Context, store, c.App.Writer); err != nil {
			return fmt.Errorf("%w: %w", ErrScautil, err)
		}
		return nil
	},
}

func openCorpusStore(c *cli.Context) (*sqlite.Store, error) {
	path, err := corpusPath(c)
	if err != nil {
		return nil, err
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScautil, err)
	}
	return store, nil
}
