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
	"strconv"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-soundchange/preset"
)

var presetCommand = &cli.Command{
	Name:  "preset",
	Usage: "Manage saved rule presets",
	Subcommands: []*cli.Command{
		presetListCommand,
		presetShowCommand,
		presetSaveCommand,
		presetRemoveCommand,
	},
}

var presetListCommand = &cli.Command{
	Name:  "list",
	Usage: "List saved presets",
	Action: func(c *cli.Context) error {
		store, err := openPresetStore(c)
		if err != nil {
			return err
		}

		tbl := table.New("NAME", "RULES").WithWriter(c.App.Writer)
		for _, p := range store.List() {
			tbl.AddRow(p.Name, strconv.Itoa(len(p.Rules)))
		}
		tbl.Print()
		return nil
	},
}

var presetShowCommand = &cli.Command{
	Name:      "show",
	Usage:     "Show a preset's rules",
	ArgsUsage: "NAME",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected a single NAME argument", ErrFlagParse)
		}

		store, err := openPresetStore(c)
		if err != nil {
			return err
		}
		p, err := store.Get(c.Args().Get(0))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScautil, err)
		}

		tbl := table.New("#", "FIND", "REPLACE").WithWriter(c.App.Writer)
		for i, rule := range p.Rules {
			tbl.AddRow(strconv.Itoa(i), rule.Find, rule.Replace)
		}
		tbl.Print()
		return nil
	},
}

var presetSaveCommand = &cli.Command{
	Name:      "save",
	Usage:     "Save a rule set as a named preset",
	ArgsUsage: "NAME",
	Flags:     ruleFlags,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected a single NAME argument", ErrFlagParse)
		}
		name := c.Args().Get(0)

		rules, err := rulesFromFlags(c)
		if err != nil {
			return err
		}

		store, err := openPresetStore(c)
		if err != nil {
			return err
		}
		if err := store.Save(preset.New(name, rules)); err != nil {
			return fmt.Errorf("%w: %w", ErrScautil, err)
		}

		fmt.Fprintf(c.App.Writer, "saved preset %q (%d rules)\n", name, len(rules))
		return nil
	},
}

var presetRemoveCommand = &cli.Command{
	Name:      "rm",
	Usage:     "Delete a saved preset",
	ArgsUsage: "NAME",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected a single NAME argument", ErrFlagParse)
		}
		name := c.Args().Get(0)

		store, err := openPresetStore(c)
		if err != nil {
			return err
		}
		if err := store.Delete(name); err != nil {
			return fmt.Errorf("%w: %w", ErrScautil, err)
		}

		fmt.Fprintf(c.App.Writer, "deleted preset %q\n", name)
		return nil
	},
}

func openPresetStore(c *cli.Context) (*preset.Store, error) {
	path, err := presetsPath(c)
	if err != nil {
		return nil, err
	}
	store, err := preset.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScautil, err)
	}
	return store, nil
}
