// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import "errors"

var (
	// ErrUnrecognizedDecision is returned by a Classifier whose upstream
	// reply is none of log, warn or block.
	ErrUnrecognizedDecision = errors.New("unrecognized security decision")
)
