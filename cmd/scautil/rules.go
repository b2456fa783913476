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
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-soundchange"
	"github.com/ianlewis/go-soundchange/preset"
)

// ruleSeparator separates the find pattern from the replacement in a
// --rule flag value.
const ruleSeparator = ">>"

// ruleFlags are the flags shared by commands that take a rule set.
var ruleFlags = []cli.Flag{
	&cli.StringSliceFlag{
		Name:    "rule",
		Usage:   "append the rule `FIND>>REPLACE`",
		Aliases: []string{"r"},
	},
	&cli.StringFlag{
		Name:  "rules-file",
		Usage: "append rules from the JSON `FILE`",
	},
	&cli.StringFlag{
		Name:  "preset",
		Usage: "append rules from the saved preset `NAME`",
	},
}

// rulesFromFlags assembles the rule set from the --preset, --rules-file and
// --rule flags, in that order.
func rulesFromFlags(c *cli.Context) ([]soundchange.Rule, error) {
	var rules []soundchange.Rule

	if name := c.String("preset"); name != "" {
		path, err := presetsPath(c)
		if err != nil {
			return nil, err
		}
		store, err := preset.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScautil, err)
		}
		p, err := store.Get(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScautil, err)
		}
		rules = append(rules, p.RuleSet()...)
	}

	if path := c.String("rules-file"); path != "" {
		fileRules, err := readRulesFile(path)
		if err != nil {
			return nil, err
		}
		rules = append(rules, fileRules...)
	}

	for _, s := range c.StringSlice("rule") {
		rule, err := parseRule(s)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no rules given", ErrFlagParse)
	}

	return rules, nil
}

// parseRule parses a FIND>>REPLACE flag value.
func parseRule(s string) (soundchange.Rule, error) {
	find, replace, ok := strings.Cut(s, ruleSeparator)
	if !ok {
		return soundchange.Rule{}, fmt.Errorf("%w: %q", ErrRuleSyntax, s)
	}
	return soundchange.Rule{
		Find:    find,
		Replace: replace,
	}, nil
}

// readRulesFile reads an ordered JSON list of {find, replace} objects.
func readRulesFile(path string) ([]soundchange.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", ErrScautil, path, err)
	}
	var rules []soundchange.Rule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %w", ErrScautil, path, err)
	}
	return rules, nil
}
