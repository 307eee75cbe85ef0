/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "errors"

// Sentinel errors for token pipeline operations.
var (
	// ErrMissingFile indicates a token file could not be read.
	ErrMissingFile = errors.New("token file not found")

	// ErrMalformed indicates a token file is not a valid token mapping.
	ErrMalformed = errors.New("malformed token file")

	// ErrUnknownVariant indicates a sets mapping contains an unrecognized key.
	ErrUnknownVariant = errors.New("unknown token variant")

	// ErrCircularReference indicates a circular reference was detected.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrStale indicates generated output on disk differs from the token source.
	ErrStale = errors.New("generated output is out of date")
)
