package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wolfhunt/communication"
	"wolfhunt/game"
	"wolfhunt/searcher"

	"github.com/stretchr/testify/require"
)

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, communication.FindMovePath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAgentServer(t *testing.T) {
	h := NewAgentServer(searcher.NewDriver(searcher.New())).Handler()

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("finds a legal move", func(t *testing.T) {
		rec := post(t, h, `{"board":"WWWWWWWWWWWWWWW......HHH.","role":"hunter","max_depth":2,"time_limit_ms":200}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp communication.FindMoveResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.True(t, resp.Found)
		require.NotNil(t, resp.Move)
		require.True(t, game.IsLegal(game.NewBoard(), game.HunterRole, *resp.Move))
	})

	t.Run("no move", func(t *testing.T) {
		rec := post(t, h, `{"board":"..........................HHH.","role":"wolf","max_depth":2}`)
		require.Equal(t, http.StatusBadRequest, rec.Code, "Malformed board should be rejected")

		rec = post(t, h, `{"board":".....................HHH.","role":"wolf","max_depth":2}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp communication.FindMoveResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.False(t, resp.Found)
		require.Nil(t, resp.Move)
	})

	t.Run("bad requests", func(t *testing.T) {
		for _, body := range []string{
			`not json`,
			`{"board":"WWWWWWWWWWWWWWW......HHH.","role":"bear"}`,
			`{"board":"WWWWWWWWWWWWWWW......HHH.","role":"wolf","max_depth":99}`,
			`{"board":"WWWWWWWWWWWWWWW......HHH.","role":"wolf","difficulty":"extreme"}`,
		} {
			rec := post(t, h, body)
			require.Equal(t, http.StatusBadRequest, rec.Code, body)
			var e communication.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&e))
			require.NotEmpty(t, e.Error)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, communication.FindMovePath, nil))
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestListenAndServe(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewAgentServer(searcher.NewDriver(searcher.New())).ListenAndServe(ctx, addr)
	}()

	require.Eventually(t, func() bool {
		res, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		res.Body.Close()
		return res.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		require.FailNow(t, "server did not shut down")
	}
}
