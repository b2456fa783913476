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

package soundchange

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"golang.org/x/text/transform"
)

// TermHolder is implemented by values holding a mutable word term. Batch
// application rewrites terms in place through this interface.
type TermHolder interface {
	// GetTerm returns the current term.
	GetTerm() string

	// SetTerm replaces the term.
	SetTerm(term string)
}

// Options are options for an Engine.
type Options struct {
	// Folder returns a [transform.Transformer] that normalizes input words
	// (e.g. Unicode normalization, whitespace folding) before rules are
	// applied.
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for an Engine.
var DefaultOptions = &Options{
	Folder: func() transform.Transformer {
		return transform.Nop
	},
}

// Result describes the outcome of applying a rule set to a word.
type Result struct {
	// Output is the transformed word.
	Output string

	// Applied is the number of rules that matched and rewrote the word. A
	// zero value means no rule fired and Output equals the input word.
	Applied int

	// Skipped holds the indices of rules whose find pattern failed to
	// compile. Skipped rules leave the word unchanged.
	Skipped []int
}

// Engine applies ordered rule sets to words. Application is deterministic:
// the same word and rules always produce the same output. The zero value is
// not usable; use New.
//
// An Engine caches compiled patterns and is safe for concurrent use.
type Engine struct {
	foldTransformer func() transform.Transformer

	mu      sync.Mutex
	cache   map[string]*regexp.Regexp
	invalid map[string]bool
}

// New returns a new Engine with the given options. Passing nil options uses
// DefaultOptions.
func New(options *Options) *Engine {
	e := &Engine{
		foldTransformer: DefaultOptions.Folder,
		cache:           map[string]*regexp.Regexp{},
		invalid:         map[string]bool{},
	}
	if options != nil && options.Folder != nil {
		e.foldTransformer = options.Folder
	}
	return e
}

// Apply transforms word through rules in order and returns the final word.
// Disabled rules (empty find pattern) and rules whose pattern does not
// compile are skipped; a malformed rule never blocks the rest of the
// pipeline. Use ApplyResult to observe skipped rules.
func (e *Engine) Apply(word string, rules []Rule) string {
	return e.ApplyResult(word, rules).Output
}

// ApplyResult transforms word through rules in order. Each rule rewrites
// all non-overlapping matches of its find pattern against the output of the
// previous rule, so rules compose sequentially.
func (e *Engine) ApplyResult(word string, rules []Rule) *Result {
	result := &Result{}

	current := word
	if folded, _, err := transform.String(e.foldTransformer(), word); err == nil {
		current = folded
	}

	for i, rule := range rules {
		if rule.Find == "" {
			// Disabled rule.
			continue
		}
		re := e.compile(rule.Find)
		if re == nil {
			result.Skipped = append(result.Skipped, i)
			continue
		}
		if !re.MatchString(current) {
			continue
		}
		current = re.ReplaceAllString(current, rule.Replace)
		result.Applied++
	}

	result.Output = current
	return result
}

// ApplyBatch transforms every word in words through rules, overwriting each
// term in place. Words share no state so they are processed independently;
// ctx is checked between words so a batch over a large corpus can be
// canceled cooperatively. It returns the number of terms that changed.
func (e *Engine) ApplyBatch(ctx context.Context, words []TermHolder, rules []Rule) (int, error) {
	var changed int
	for _, w := range words {
		if err := ctx.Err(); err != nil {
			return changed, fmt.Errorf("applying rules: %w", err)
		}
		term := w.GetTerm()
		out := e.Apply(term, rules)
		w.SetTerm(out)
		if out != term {
			changed++
		}
	}
	return changed, nil
}

// compile returns the compiled pattern or nil if the pattern is invalid.
// Results are cached either way so a batch compiles each pattern once.
func (e *Engine) compile(pattern string) *regexp.Regexp {
	e.mu.Lock()
	defer e.mu.Unlock()

	if re, ok := e.cache[pattern]; ok {
		return re
	}
	if e.invalid[pattern] {
		return nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		e.invalid[pattern] = true
		return nil
	}
	e.cache[pattern] = re
	return re
}

// Apply transforms word through rules using a default Engine. See
// [Engine.Apply].
func Apply(word string, rules []Rule) string {
	return New(nil).Apply(word, rules)
}
