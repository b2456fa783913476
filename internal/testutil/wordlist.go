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

// Package testutil provides test fixture helpers.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// MakeWordListOptions are options for MakeTempWordList.
type MakeWordListOptions struct {
	// Name is the file name of the word list. Defaults to 'words.json', or
	// 'words.json.gz'/'words.json.dz' when compression is requested.
	Name string

	// Gzip indicates that the word list should be compressed with gzip.
	Gzip bool

	// DictZip indicates that the word list should be compressed with
	// dictzip.
	DictZip bool
}

func (o *MakeWordListOptions) name() string {
	if o != nil && o.Name != "" {
		return o.Name
	}
	switch {
	case o != nil && o.Gzip:
		return "words.json.gz"
	case o != nil && o.DictZip:
		return "words.json.dz"
	default:
		return "words.json"
	}
}

// MakeTempWordList writes data to a temporary word list file and returns
// its path. The file is removed when the test completes.
func MakeTempWordList(t *testing.T, data []byte, opts *MakeWordListOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), opts.name())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch {
	case opts != nil && opts.Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case opts != nil && opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}
