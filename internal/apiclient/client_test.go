package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/enjaz/internal/session"
)

// recordingSleeper captures backoff delays instead of waiting.
type recordingSleeper struct {
	delays []time.Duration
}

func (r *recordingSleeper) sleep(ctx context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return ctx.Err()
}

func newTestClient(t *testing.T, url string, opts ...Option) (*Client, *recordingSleeper) {
	t.Helper()
	sleeper := &recordingSleeper{}
	opts = append([]Option{withSleeper(sleeper.sleep)}, opts...)
	return New(url, session.NewStore(""), opts...), sleeper
}

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/projects", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Empty(t, r.Header.Get("Authorization"), "no token, no auth header")
		json.NewEncoder(w).Encode([]map[string]string{{"id": "P-1"}})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	var out []map[string]string
	require.NoError(t, c.Get(context.Background(), "/projects", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "P-1", out[0]["id"])
}

func TestBearerTokenAttachedWhenPresent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-42", r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	sess := session.NewStore("")
	require.NoError(t, sess.SetToken("tok-42"))
	c := New(srv.URL, sess, withSleeper((&recordingSleeper{}).sleep))
	require.NoError(t, c.Get(context.Background(), "/work-items", nil))
}

func TestRetry_503TwiceThenSuccess(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "WI-1"})
	}))
	defer srv.Close()

	c, sleeper := newTestClient(t, srv.URL)
	var out map[string]string
	require.NoError(t, c.Get(context.Background(), "/work-items/WI-1", &out))

	assert.Equal(t, int32(3), attempts.Load(), "exactly 2 retries after the first attempt")
	require.Len(t, sleeper.delays, 2)
	assert.Equal(t, DefaultBaseDelay, sleeper.delays[0])
	assert.GreaterOrEqual(t, sleeper.delays[1], 2*sleeper.delays[0],
		"second retry delay must be at least double the first")
}

func TestRetry_ExhaustionSurfacesTypedError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, sleeper := newTestClient(t, srv.URL)
	err := c.Get(context.Background(), "/projects", nil)
	require.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, int32(1+DefaultMaxRetries), attempts.Load())
	assert.Len(t, sleeper.delays, DefaultMaxRetries)
}

func TestRetry_TransportErrorIsRetried(t *testing.T) {
	c, sleeper := newTestClient(t, "http://127.0.0.1:1") // nothing listening
	err := c.Get(context.Background(), "/projects", nil)
	require.ErrorIs(t, err, ErrRetryExhausted)
	assert.Len(t, sleeper.delays, DefaultMaxRetries)
}

func TestConflict_FailsImmediatelyWithoutRetry(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	c, sleeper := newTestClient(t, srv.URL)
	err := c.Put(context.Background(), "/projects/P-1", map[string]int{"version": 3}, nil)
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, int32(1), attempts.Load(), "409 must never be retried")
	assert.Empty(t, sleeper.delays)
}

func TestAuthExpired_ClearsSessionAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sess := session.NewStore("")
	require.NoError(t, sess.SetToken("stale"))
	require.NoError(t, sess.SetCurrentUserID("U-1"))

	hookFired := false
	c := New(srv.URL, sess,
		withSleeper((&recordingSleeper{}).sleep),
		WithAuthExpiredHook(func() { hookFired = true }))

	err := c.Get(context.Background(), "/users/me", nil)
	require.ErrorIs(t, err, ErrAuthExpired)
	assert.True(t, hookFired)
	assert.Empty(t, sess.Token(), "session must be cleared on 401")
	assert.Empty(t, sess.CurrentUserID())
}

func TestTerminal4xx_PassesServerMessageThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "dueDate is required"})
	}))
	defer srv.Close()

	c, sleeper := newTestClient(t, srv.URL)
	err := c.Post(context.Background(), "/work-items", map[string]string{}, nil)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.Code)
	assert.Equal(t, "dueDate is required", statusErr.Message)
	assert.Empty(t, sleeper.delays, "4xx is terminal")
}

func TestTerminal4xx_GenericMessageWhenBodyUnparseable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	err := c.Get(context.Background(), "/projects/nope", nil)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Contains(t, statusErr.Error(), "404")
}

func TestCancellation_NeverRetried(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		close(started)
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	c, sleeper := newTestClient(t, srv.URL)
	err := c.Get(ctx, "/projects", nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), attempts.Load())
	assert.Empty(t, sleeper.delays, "cancellation must not trigger backoff")
}

func TestPost_SendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Crane inspection", body["title"])
		json.NewEncoder(w).Encode(map[string]string{"id": "WI-9", "title": body["title"]})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	var out map[string]string
	require.NoError(t, c.Post(context.Background(), "/work-items", map[string]string{"title": "Crane inspection"}, &out))
	assert.Equal(t, "WI-9", out["id"])
}
