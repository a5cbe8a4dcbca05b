package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uakit/pkg/clientip"
	"github.com/dmitrymomot/uakit/pkg/ratelimiter"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
}

func TestMiddleware_Limits(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, newFakeClock(), ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Minute})
	h := ratelimiter.Middleware(b, ratelimiter.ByClientIP())(okHandler())

	send := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/useragent", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := send("192.0.2.1:1234")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))

	rec = send("192.0.2.1:5678")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = send("192.0.2.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = send("192.0.2.2:1234")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_DeniedHandler(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, newFakeClock(), ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
	h := ratelimiter.Middleware(b, ratelimiter.ByHeader("X-API-Key"),
		ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, _ *http.Request, res *ratelimiter.Result) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("slow down"))
		}),
	)(okHandler())

	for _, want := range []int{http.StatusOK, http.StatusTeapot} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-API-Key", "k1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code)
	}
}

func TestMiddleware_EmptyKeySkips(t *testing.T) {
	t.Parallel()

	b, store := newBucket(t, newFakeClock(), ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
	h := ratelimiter.Middleware(b, ratelimiter.ByHeader("X-API-Key"))(okHandler())

	for range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
	assert.Equal(t, 0, store.Len())
}

type failingStore struct{}

func (failingStore) ConsumeTokens(context.Context, string, int, ratelimiter.Config) (int, time.Time, error) {
	return 0, time.Time{}, ratelimiter.ErrStoreUnavailable
}

func (failingStore) Reset(context.Context, string) error { return errors.New("unavailable") }

func TestMiddleware_StoreFailureFailsOpen(t *testing.T) {
	t.Parallel()

	b, err := ratelimiter.NewBucket(failingStore{}, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	require.NoError(t, err)

	h := ratelimiter.Middleware(b, ratelimiter.ByClientIP())(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestKeyFuncs(t *testing.T) {
	t.Parallel()

	t.Run("client ip from context", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(clientip.WithContext(req.Context(), "203.0.113.9"))
		assert.Equal(t, "ip:203.0.113.9", ratelimiter.ByClientIP()(req))
	})

	t.Run("client ip from request", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "198.51.100.7:443"
		assert.Equal(t, "ip:198.51.100.7", ratelimiter.ByClientIP()(req))
	})

	t.Run("device type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", chromeUA)
		assert.Equal(t, "device:"+useragent.DeviceTypeDesktop, ratelimiter.ByDeviceType()(req))

		bot := httptest.NewRequest(http.MethodGet, "/", nil)
		bot = bot.WithContext(useragent.WithContext(bot.Context(), useragent.Parse("Googlebot/2.1")))
		assert.Equal(t, "device:"+useragent.DeviceTypeBot, ratelimiter.ByDeviceType()(bot))
	})

	t.Run("composite", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "198.51.100.7:443"
		req.Header.Set("User-Agent", chromeUA)

		key := ratelimiter.Composite(ratelimiter.ByClientIP(), ratelimiter.ByHeader("X-API-Key"), ratelimiter.ByDeviceType())(req)
		assert.Equal(t, "ip:198.51.100.7:device:desktop", key)

		empty := ratelimiter.Composite(ratelimiter.ByHeader("X-API-Key"))(req)
		assert.Empty(t, empty)
	})

	t.Run("composite hashes long keys", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-API-Key", strings.Repeat("k", 100))

		fn := ratelimiter.Composite(ratelimiter.ByHeader("X-API-Key"))
		key := fn(req)
		assert.LessOrEqual(t, len(key), 13)
		assert.Equal(t, key, fn(req))
	})
}
