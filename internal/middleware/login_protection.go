// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/olegiv/folio/internal/i18n"
	"github.com/olegiv/folio/internal/metrics"
)

// maxLockout caps the doubling lockout.
const maxLockout = 24 * time.Hour

// LoginProtectionConfig holds configuration for login protection.
// Zero fields take the defaults noted on each.
type LoginProtectionConfig struct {
	// IPRateLimit is login POSTs per second per IP (0.5).
	IPRateLimit float64
	// IPBurst is the burst allowed per IP (5).
	IPBurst int
	// MaxFailedAttempts within AttemptWindow locks the account (5).
	MaxFailedAttempts int
	// LockoutDuration is the first lockout; each further one doubles (15m).
	LockoutDuration time.Duration
	// AttemptWindow is how long failures are counted together (15m).
	AttemptWindow time.Duration
}

func (c LoginProtectionConfig) withDefaults() LoginProtectionConfig {
	if c.IPRateLimit <= 0 {
		c.IPRateLimit = 0.5
	}
	if c.IPBurst <= 0 {
		c.IPBurst = 5
	}
	if c.MaxFailedAttempts <= 0 {
		c.MaxFailedAttempts = 5
	}
	if c.LockoutDuration <= 0 {
		c.LockoutDuration = 15 * time.Minute
	}
	if c.AttemptWindow <= 0 {
		c.AttemptWindow = 15 * time.Minute
	}
	return c
}

// LoginProtection throttles login POSTs per IP and locks admin accounts
// after repeated failures. State is in memory and per process.
type LoginProtection struct {
	cfg        LoginProtectionConfig
	ipLimiters *limiterCache[string]
	now        func() time.Time

	mu       sync.Mutex
	accounts map[string]*accountState

	stop     chan struct{}
	stopOnce sync.Once
}

// accountState tracks failures of one account, keyed by normalized email.
type accountState struct {
	failures    int
	firstFailed time.Time
	lockedUntil time.Time
	lockouts    int
}

// FailResult is the outcome of recording a failed login.
type FailResult struct {
	// Locked is set when this failure locked the account.
	Locked bool
	// LockedFor is the length of that lockout.
	LockedFor time.Duration
	// Remaining is the number of failures left before a lockout.
	Remaining int
}

// NewLoginProtection creates login protection and starts its cleanup
// goroutine, which runs until Close.
func NewLoginProtection(cfg LoginProtectionConfig) *LoginProtection {
	cfg = cfg.withDefaults()
	lp := &LoginProtection{
		cfg:        cfg,
		ipLimiters: newLimiterCache[string](cfg.IPRateLimit, cfg.IPBurst),
		now:        time.Now,
		accounts:   make(map[string]*accountState),
		stop:       make(chan struct{}),
	}
	go lp.cleanupLoop(10 * time.Minute)
	return lp
}

// Close stops the cleanup goroutine.
func (lp *LoginProtection) Close() {
	lp.stopOnce.Do(func() { close(lp.stop) })
}

func accountKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// lockoutFor returns the length of lockout number n (0-based): base doubled
// n times, capped at maxLockout.
func lockoutFor(base time.Duration, n int) time.Duration {
	d := base
	for range n {
		d *= 2
		if d >= maxLockout {
			return maxLockout
		}
	}
	return min(d, maxLockout)
}

// AllowIP reports whether a login POST from ip is within its rate limit.
func (lp *LoginProtection) AllowIP(ip string) bool {
	return lp.ipLimiters.get(ip).Allow()
}

// Locked reports whether email is locked and for how much longer.
func (lp *LoginProtection) Locked(email string) (bool, time.Duration) {
	lp.mu.Lock()
	defer lp.mu.Unlock()

	st, ok := lp.accounts[accountKey(email)]
	if !ok {
		return false, 0
	}
	if left := st.lockedUntil.Sub(lp.now()); left > 0 {
		return true, left
	}
	return false, 0
}

// Fail records a failed login for email. Failures older than the attempt
// window are forgotten; reaching MaxFailedAttempts locks the account.
func (lp *LoginProtection) Fail(email string) FailResult {
	key := accountKey(email)
	now := lp.now()

	lp.mu.Lock()
	defer lp.mu.Unlock()

	st, ok := lp.accounts[key]
	if !ok {
		st = &accountState{}
		lp.accounts[key] = st
	}
	if st.failures == 0 || now.Sub(st.firstFailed) > lp.cfg.AttemptWindow {
		st.failures = 0
		st.firstFailed = now
	}
	st.failures++

	if st.failures < lp.cfg.MaxFailedAttempts {
		return FailResult{Remaining: lp.cfg.MaxFailedAttempts - st.failures}
	}

	d := lockoutFor(lp.cfg.LockoutDuration, st.lockouts)
	st.lockedUntil = now.Add(d)
	st.lockouts++
	st.failures = 0

	slog.Warn("account locked after failed logins",
		"category", "auth",
		"email", key,
		"lockouts", st.lockouts,
		"duration", d,
	)
	return FailResult{Locked: true, LockedFor: d}
}

// Succeed forgets the failures and lockout history of email.
func (lp *LoginProtection) Succeed(email string) {
	lp.mu.Lock()
	delete(lp.accounts, accountKey(email))
	lp.mu.Unlock()
}

// Remaining returns how many failures email has left before a lockout.
func (lp *LoginProtection) Remaining(email string) int {
	lp.mu.Lock()
	defer lp.mu.Unlock()

	st, ok := lp.accounts[accountKey(email)]
	if !ok || st.failures == 0 || lp.now().Sub(st.firstFailed) > lp.cfg.AttemptWindow {
		return lp.cfg.MaxFailedAttempts
	}
	return max(lp.cfg.MaxFailedAttempts-st.failures, 0)
}

func (lp *LoginProtection) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			lp.removeStale()
		case <-lp.stop:
			return
		}
	}
}

// removeStale drops accounts that are neither locked nor inside their
// attempt window, and resets the IP limiters once there are too many.
func (lp *LoginProtection) removeStale() {
	if lp.ipLimiters.clearIfExceeds(10000) {
		slog.Info("cleared login IP rate limiters")
	}

	now := lp.now()
	lp.mu.Lock()
	for key, st := range lp.accounts {
		if now.After(st.lockedUntil) && now.Sub(st.firstFailed) > lp.cfg.AttemptWindow {
			delete(lp.accounts, key)
		}
	}
	lp.mu.Unlock()
}

// Middleware rejects login POSTs over the per-IP rate with 429.
func (lp *LoginProtection) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			ip := GetClientIP(r)
			if !lp.AllowIP(ip) {
				slog.Warn("login rate limit exceeded", "category", "auth", "ip", ip)
				metrics.ObserveLogin(metrics.LoginThrottled)
				http.Error(w, i18n.T(GetLang(r.Context()).String(), "auth.rate_limit"), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
