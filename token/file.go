/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"encoding/json"
	"fmt"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// File is a parsed token file: token names mapped to records in source order.
type File struct {
	// Name is the file name the tokens were loaded from (e.g., "color-palette.json").
	Name string

	tokens *orderedmap.OrderedMap[string, *Record]
}

// NewFile creates an empty token file.
func NewFile(name string) *File {
	return &File{Name: name, tokens: orderedmap.New[string, *Record]()}
}

// DecodeFile decodes JSON data into a File, preserving key order.
func DecodeFile(name string, data []byte) (*File, error) {
	f := NewFile(name)
	if err := json.Unmarshal(data, f.tokens); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, name, err)
	}
	for tokenName, rec := range f.All() {
		if rec == nil {
			return nil, fmt.Errorf("%w: %s: token %q is null", ErrMalformed, name, tokenName)
		}
	}
	return f, nil
}

// Set adds or replaces a token. New names are appended.
func (f *File) Set(name string, rec *Record) {
	f.tokens.Set(name, rec)
}

// Get returns the record for name.
func (f *File) Get(name string) (*Record, bool) {
	return f.tokens.Get(name)
}

// Len returns the number of tokens in the file.
func (f *File) Len() int {
	return f.tokens.Len()
}

// All iterates over tokens in source order.
func (f *File) All() iter.Seq2[string, *Record] {
	return func(yield func(string, *Record) bool) {
		for pair := f.tokens.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}
