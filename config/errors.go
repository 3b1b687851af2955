/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import "errors"

// Sentinel errors for configuration loading.
var (
	// ErrInvalidConfig indicates a config file that parsed but failed validation.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidDeclarations indicates a declaration body that is not valid CSS.
	ErrInvalidDeclarations = errors.New("invalid declarations")
)
