// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveLogin(t *testing.T) {
	before := testutil.ToFloat64(LoginAttempts.WithLabelValues(LoginFailure))
	ObserveLogin(LoginFailure)
	ObserveLogin(LoginFailure)
	after := testutil.ToFloat64(LoginAttempts.WithLabelValues(LoginFailure))
	assert.Equal(t, before+2, after)
}

func TestObserveWrite(t *testing.T) {
	okBefore := testutil.ToFloat64(ContentWrites.WithLabelValues("blog", "save", "ok"))
	errBefore := testutil.ToFloat64(ContentWrites.WithLabelValues("blog", "save", "error"))

	ObserveWrite("blog", "save", nil)
	ObserveWrite("blog", "save", errors.New("boom"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ContentWrites.WithLabelValues("blog", "save", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(ContentWrites.WithLabelValues("blog", "save", "error")))
}

func TestObserveCache(t *testing.T) {
	hits := testutil.ToFloat64(CacheLookups.WithLabelValues("sitemap.xml", "hit"))
	misses := testutil.ToFloat64(CacheLookups.WithLabelValues("sitemap.xml", "miss"))

	ObserveCache("sitemap.xml", true)
	ObserveCache("sitemap.xml", false)
	ObserveCache("sitemap.xml", false)

	assert.Equal(t, hits+1, testutil.ToFloat64(CacheLookups.WithLabelValues("sitemap.xml", "hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(CacheLookups.WithLabelValues("sitemap.xml", "miss")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	ObserveLogin(LoginSuccess)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "folio_auth_login_attempts_total"))
}
