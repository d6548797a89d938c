// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrEmptySecret = errors.New("sealing secret is empty")
	ErrCannotOpen  = errors.New("sealed value cannot be opened")
)
