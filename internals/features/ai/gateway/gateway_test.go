// file: internals/features/ai/gateway/gateway_test.go
package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Model = "gemini-1.5-flash"
	cfg.BaseURL = baseURL
	cfg.BaseDelay = 5 * time.Millisecond
	cfg.AttemptTimeout = 2 * time.Second
	return cfg
}

func geminiBody(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + quoteJSON(text) + `}]},"finishReason":"STOP"}]}`
}

func quoteJSON(s string) string {
	out := `"`
	for _, r := range s {
		switch r {
		case '"':
			out += `\"`
		case '\\':
			out += `\\`
		case '\n':
			out += `\n`
		default:
			out += string(r)
		}
	}
	return out + `"`
}

func TestGenerate_RetryThenSuccess(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(geminiBody(`{"rekomendasi":"tingkatkan kehadiran siswa"}`)))
	}))
	defer srv.Close()

	gw := New(testConfig(srv.URL))
	res, err := gw.Generate(context.Background(), "analisis kehadiran")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Attempts)
	assert.True(t, res.IsJSON())
	assert.Equal(t, "tingkatkan kehadiran siswa", res.Parsed["rekomendasi"])
}

func TestGenerate_AllAttemptsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	gw := New(testConfig(srv.URL))
	_, err := gw.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 percobaan")
}

func TestGenerate_RateLimitFailsFast(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(geminiBody("ok")))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.RequestsPerMinute = 2
	gw := New(cfg)

	for i := 0; i < 2; i++ {
		_, err := gw.Generate(context.Background(), "prompt")
		require.NoError(t, err)
	}
	_, err := gw.Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGenerate_RawFallbackOnNonJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(geminiBody("Siswa perlu pendampingan belajar tambahan.")))
	}))
	defer srv.Close()

	gw := New(testConfig(srv.URL))
	res, err := gw.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.False(t, res.IsJSON())
	assert.Equal(t, "Siswa perlu pendampingan belajar tambahan.", res.Raw)
}

func TestGenerate_StripsCodeFence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(geminiBody("```json\n{\"prioritas\":\"high\"}\n```")))
	}))
	defer srv.Close()

	gw := New(testConfig(srv.URL))
	res, err := gw.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	require.True(t, res.IsJSON())
	assert.Equal(t, "high", res.Parsed["prioritas"])
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
}
