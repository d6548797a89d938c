// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import "context"

// Classifier asks for a security decision about one request.
type Classifier interface {
	Classify(ctx context.Context, info RequestInfo) (Decision, error)
}
