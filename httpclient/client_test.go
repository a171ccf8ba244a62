package httpclient

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckResponse(t *testing.T) {
	t.Run("success passes through", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		resp, err := New(0).R().Post(srv.URL)
		require.NoError(t, err)
		assert.NoError(t, CheckResponse("wordpress", resp))
	})

	t.Run("non-2xx becomes StatusError with truncated body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(strings.Repeat("x", 2000)))
		}))
		defer srv.Close()

		resp, err := New(0).R().Post(srv.URL)
		require.NoError(t, err)

		err = CheckResponse("socialbee", resp)
		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "socialbee", se.Service)
		assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
		assert.Len(t, se.Body, maxErrorBody)
		assert.Contains(t, err.Error(), "unexpected status 401")
	})

	t.Run("nil response", func(t *testing.T) {
		assert.Error(t, CheckResponse("wordpress", nil))
	})
}

func TestNew_DoesNotRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	resp, err := New(0).R().Post(srv.URL)
	require.NoError(t, err)
	assert.Error(t, CheckResponse("wordpress", resp))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	// "é" is two bytes; an odd cut lands inside it.
	s := strings.Repeat("é", 10)

	out := truncate(s, 5)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "éé", out)

	assert.Equal(t, "abc", truncate("abc", 5))
}

func TestCheckResponse_MultibyteBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("x" + strings.Repeat("é", 600)))
	}))
	defer srv.Close()

	resp, err := New(0).R().Post(srv.URL)
	require.NoError(t, err)

	var se *StatusError
	require.True(t, errors.As(CheckResponse("wordpress", resp), &se))
	assert.True(t, utf8.ValidString(se.Body))
	assert.LessOrEqual(t, len(se.Body), maxErrorBody)
}
