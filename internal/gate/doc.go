// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gate decides whether an inbound HTTP request may proceed.
//
// A [Gate] keeps one ban record per client IP. Each request is either
// whitelisted by path prefix, rejected because the IP is banned, or sent to
// a [Classifier] which answers log, warn or block. Every block increments
// the IP's counter; reaching the threshold bans the IP for a fixed
// duration, during which the classifier is not called at all.
//
// Classifier failures fall back to log unless the gate is configured to
// fail closed. Log and warn verdicts may be cached per request shape; block
// verdicts never are.
package gate
