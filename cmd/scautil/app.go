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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-soundchange/internal/config"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrScautil is a parent error for all command errors.
var ErrScautil = errors.New("scautil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrScautil)

// ErrRuleSyntax indicates a malformed --rule flag value.
var ErrRuleSyntax = fmt.Errorf("%w: rules must be of the form FIND>>REPLACE", ErrScautil)

//nolint:gochecknoinits // init needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name
	// argument but we don't use commands.
	//
	// This is done because `scautil --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func newScautilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Apply sound changes to conlang dictionary words.",
		Description: strings.Join([]string{
			"Sound change applier written in Go.",
			"http://github.com/ianlewis/go-soundchange",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "presets",
				Usage:   "preset store `FILE`",
				Aliases: []string{"p"},
			},
			&cli.StringFlag{
				Name:    "corpus",
				Usage:   "word corpus database `FILE`",
				Aliases: []string{"c"},
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       "2025 Ian Lewis",
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			applyCommand,
			evolveCommand,
			presetCommand,
			wordsCommand,
		},
	}
}

// presetsPath resolves the preset store path from flags, the environment,
// and the platform default, in that order.
func presetsPath(c *cli.Context) (string, error) {
	if path := c.String("presets"); path != "" {
		return path, nil
	}
	cfg, err := config.ParseEnv()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrScautil, err)
	}
	if cfg.PresetsPath != "" {
		return cfg.PresetsPath, nil
	}
	return filepath.Join(defaultDataDir(), "presets.json"), nil
}

// corpusPath resolves the word corpus database path from flags, the
// environment, and the platform default, in that order.
func corpusPath(c *cli.Context) (string, error) {
	if path := c.String("corpus"); path != "" {
		return path, nil
	}
	cfg, err := config.ParseEnv()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrScautil, err)
	}
	if cfg.CorpusPath != "" {
		return cfg.CorpusPath, nil
	}
	dir := defaultDataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating data directory: %w", ErrScautil, err)
	}
	return filepath.Join(dir, "corpus.db"), nil
}
