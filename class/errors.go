/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package class

import "errors"

// Sentinel errors for class parsing and generation.
var (
	// ErrInvalidBraces indicates a literal value with a missing or
	// misplaced curly brace.
	ErrInvalidBraces = errors.New("invalid braces")

	// ErrValueMissing indicates a class without a value whose property is
	// not a registered value-less declaration.
	ErrValueMissing = errors.New("value missing")
)
