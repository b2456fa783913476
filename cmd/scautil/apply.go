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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-soundchange"
	"github.com/ianlewis/go-soundchange/internal/folding"
)

var applyCommand = &cli.Command{
	Name:      "apply",
	Usage:     "Apply sound change rules to a word",
	ArgsUsage: "WORD",
	Description: `Apply an ordered rule set to a single word and print the result.

Rules are applied in order; each rule rewrites the output of the previous
one. Invalid patterns are skipped with a warning.`,
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "print the word after each rule",
			Aliases: []string{"v"},
		},
	}, ruleFlags...),
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected a single WORD argument", ErrFlagParse)
		}
		word := c.Args().Get(0)

		rules, err := rulesFromFlags(c)
		if err != nil {
			return err
		}

		engine := soundchange.New(&soundchange.Options{
			Folder: folding.Term,
		})

		if c.Bool("verbose") {
			current := word
			for i, rule := range rules {
				next := engine.Apply(current, []soundchange.Rule{rule})
				if next != current {
					fmt.Fprintf(c.App.Writer, "%3d  %s >> %s\t%s\n", i, rule.Find, rule.Replace, next)
				}
				current = next
			}
		}

		result := engine.ApplyResult(word, rules)
		for _, i := range result.Skipped {
			fmt.Fprintf(os.Stderr, "warning: skipping rule %d: invalid pattern %q\n", i, rules[i].Find)
		}
		if result.Applied == 0 {
			fmt.Fprintln(os.Stderr, "warning: no rules matched; word is unchanged")
		}

		fmt.Fprintln(c.App.Writer, result.Output)
		return nil
	},
}
