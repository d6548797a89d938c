// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import "strings"

// Decision is the policy applied to one request.
type Decision string

const (
	DecisionLog   Decision = "log"
	DecisionWarn  Decision = "warn"
	DecisionBlock Decision = "block"
)

// ParseDecision normalizes a classifier reply. Case, surrounding
// whitespace, quotes and trailing punctuation are ignored.
func ParseDecision(s string) (Decision, bool) {
	s = strings.ToLower(strings.Trim(strings.TrimSpace(s), "`'\"“”.。!！"))
	switch d := Decision(strings.TrimSpace(s)); d {
	case DecisionLog, DecisionWarn, DecisionBlock:
		return d, true
	default:
		return "", false
	}
}

// Source tells how a Verdict was reached.
type Source string

const (
	SourceWhitelist  Source = "whitelist"
	SourceBan        Source = "ban"
	SourceCache      Source = "cache"
	SourceClassifier Source = "classifier"
	SourceFallback   Source = "fallback"
)

// Verdict is the outcome of Gate.Check.
type Verdict struct {
	Decision Decision
	Source   Source
	// Banned is set when this verdict started a ban.
	Banned bool
}

// Allowed reports whether the request may reach the handler.
func (v Verdict) Allowed() bool {
	return v.Decision != DecisionBlock
}

// RequestInfo is what the classifier sees of a request.
type RequestInfo struct {
	IP            string
	Method        string
	Path          string
	UserAgent     string
	ContentLength int64
}

type cacheKey struct {
	ip, method, path, userAgent string
}

func (r RequestInfo) cacheKey() cacheKey {
	return cacheKey{ip: r.IP, method: r.Method, path: r.Path, userAgent: r.UserAgent}
}
