// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
)

type banRecord struct {
	blocks      int
	bannedUntil time.Time
}

type cachedDecision struct {
	decision Decision
	expires  time.Time
}

// Gate holds the per-IP ban table and the decision cache. It is safe for
// concurrent use.
type Gate struct {
	classifier Classifier

	whitelist        []string
	threshold        int
	banDuration      time.Duration
	failClosed       bool
	resetOnBanExpiry bool
	cacheTTL         time.Duration

	now func() time.Time

	mu    sync.Mutex
	bans  map[string]*banRecord
	cache map[cacheKey]cachedDecision

	logger *logger.Logger
}

// New builds a Gate from its configuration section.
func New(classifier Classifier, cfg config.Gate, log *logger.Logger) *Gate {
	return &Gate{
		classifier:       classifier,
		whitelist:        append([]string(nil), cfg.Whitelist...),
		threshold:        cfg.BlockThreshold,
		banDuration:      cfg.BanDuration,
		failClosed:       cfg.FailClosed,
		resetOnBanExpiry: cfg.ResetOnBanExpiry,
		cacheTTL:         cfg.DecisionCacheTTL,
		now:              time.Now,
		bans:             make(map[string]*banRecord),
		cache:            make(map[cacheKey]cachedDecision),
		logger:           log.Component("gate"),
	}
}

// Check runs the state machine for one request. A banned IP is rejected
// on every path, whitelisted ones included.
func (g *Gate) Check(ctx context.Context, info RequestInfo) Verdict {
	if g.isBanned(info.IP) {
		return Verdict{Decision: DecisionBlock, Source: SourceBan}
	}

	if g.isWhitelisted(info.Path) {
		return Verdict{Decision: DecisionLog, Source: SourceWhitelist}
	}

	if decision, ok := g.cached(info); ok {
		return Verdict{Decision: decision, Source: SourceCache}
	}

	decision, err := g.classifier.Classify(ctx, info)
	if err != nil {
		g.logger.Err(err).
			Str("func", "*Gate.Check").
			Str("ip", info.IP).
			Str("path", info.Path).
			Bool("fail_closed", g.failClosed).
			Msg("classifier failed, applying fallback decision")

		if g.failClosed {
			return Verdict{Decision: DecisionBlock, Source: SourceFallback}
		}
		return Verdict{Decision: DecisionLog, Source: SourceFallback}
	}

	if decision == DecisionBlock {
		return Verdict{Decision: DecisionBlock, Source: SourceClassifier, Banned: g.recordBlock(info.IP)}
	}

	g.remember(info, decision)
	return Verdict{Decision: decision, Source: SourceClassifier}
}

// Sweep lifts expired bans, drops idle ban records and expired cache
// entries. It returns the number of entries removed.
func (g *Gate) Sweep() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	removed := 0

	for ip, rec := range g.bans {
		g.expireBan(rec, now)
		if rec.blocks == 0 && rec.bannedUntil.IsZero() {
			delete(g.bans, ip)
			removed++
		}
	}

	for key, entry := range g.cache {
		if !now.Before(entry.expires) {
			delete(g.cache, key)
			removed++
		}
	}

	return removed
}

// BannedUntil returns the ban expiry of ip, or the zero time when ip is not
// banned.
func (g *Gate) BannedUntil(ip string) time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.bans[ip]
	if !ok || !g.now().Before(rec.bannedUntil) {
		return time.Time{}
	}
	return rec.bannedUntil
}

func (g *Gate) isWhitelisted(path string) bool {
	for _, prefix := range g.whitelist {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (g *Gate) isBanned(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.bans[ip]
	if !ok {
		return false
	}

	now := g.now()
	if now.Before(rec.bannedUntil) {
		return true
	}
	g.expireBan(rec, now)
	return false
}

// expireBan moves an expired record back to Clear. The block counter is
// kept unless resetOnBanExpiry is set. Callers hold g.mu.
func (g *Gate) expireBan(rec *banRecord, now time.Time) {
	if rec.bannedUntil.IsZero() || now.Before(rec.bannedUntil) {
		return
	}
	rec.bannedUntil = time.Time{}
	if g.resetOnBanExpiry {
		rec.blocks = 0
	}
}

// recordBlock counts a block for ip and reports whether it started a ban.
func (g *Gate) recordBlock(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.bans[ip]
	if !ok {
		rec = &banRecord{}
		g.bans[ip] = rec
	}

	rec.blocks++
	if rec.blocks < g.threshold {
		return false
	}

	rec.bannedUntil = g.now().Add(g.banDuration)
	g.logger.Warn().
		Str("func", "*Gate.recordBlock").
		Str("ip", ip).
		Int("blocks", rec.blocks).
		Time("banned_until", rec.bannedUntil).
		Msg("ip banned")

	return true
}

func (g *Gate) cached(info RequestInfo) (Decision, bool) {
	if g.cacheTTL <= 0 {
		return "", false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.cache[info.cacheKey()]
	if !ok {
		return "", false
	}
	if !g.now().Before(entry.expires) {
		delete(g.cache, info.cacheKey())
		return "", false
	}
	return entry.decision, true
}

func (g *Gate) remember(info RequestInfo, decision Decision) {
	if g.cacheTTL <= 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.cache[info.cacheKey()] = cachedDecision{decision: decision, expires: g.now().Add(g.cacheTTL)}
}
