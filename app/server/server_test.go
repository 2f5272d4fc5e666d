package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/appearance/app/enum"
	"github.com/umputun/appearance/app/server/mocks"
	"github.com/umputun/appearance/app/store"
)

func newSwitcher() *mocks.SwitcherMock {
	return &mocks.SwitcherMock{
		CurrentFunc: func() (enum.Mode, error) { return enum.ModeDark, nil },
		SetFunc:     func(context.Context, enum.Mode, enum.Method) error { return nil },
		ToggleFunc:  func(context.Context, enum.Method) (enum.Mode, error) { return enum.ModeLight, nil },
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func TestServer_Ping(t *testing.T) {
	srv := New(newSwitcher(), Config{Version: "test"})
	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestServer_HandleCurrent(t *testing.T) {
	t.Run("current mode", func(t *testing.T) {
		sw := newSwitcher()
		srv := New(sw, Config{Version: "test"})

		req := httptest.NewRequest(http.MethodGet, "/mode", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "dark", decode(t, rec)["mode"])
		assert.Len(t, sw.CurrentCalls(), 1)
	})

	t.Run("read failure", func(t *testing.T) {
		sw := newSwitcher()
		sw.CurrentFunc = func() (enum.Mode, error) { return enum.ModeAuto, errors.New("defaults missing") }
		srv := New(sw, Config{Version: "test"})

		req := httptest.NewRequest(http.MethodGet, "/mode", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "failed to read mode", decode(t, rec)["error"])
	})
}

func TestServer_HandleSet(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		cfgMethod  enum.Method
		wantCode   int
		wantMode   enum.Mode
		wantMethod enum.Method
	}{
		{name: "dark with default method", path: "/mode/dark", wantCode: http.StatusOK,
			wantMode: enum.ModeDark, wantMethod: enum.MethodCommand},
		{name: "mixed case mode and method", path: "/mode/Light?method=Event", wantCode: http.StatusOK,
			wantMode: enum.ModeLight, wantMethod: enum.MethodEvent},
		{name: "auto with configured method", path: "/mode/auto", cfgMethod: enum.MethodEvent, wantCode: http.StatusOK,
			wantMode: enum.ModeAuto, wantMethod: enum.MethodEvent},
		{name: "query overrides configured method", path: "/mode/dark?method=command", cfgMethod: enum.MethodEvent,
			wantCode: http.StatusOK, wantMode: enum.ModeDark, wantMethod: enum.MethodCommand},
		{name: "invalid mode", path: "/mode/sepia", wantCode: http.StatusBadRequest},
		{name: "blank mode", path: "/mode/%20", wantCode: http.StatusBadRequest},
		{name: "invalid method", path: "/mode/dark?method=telepathy", wantCode: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sw := newSwitcher()
			srv := New(sw, Config{Version: "test", Method: tc.cfgMethod})

			req := httptest.NewRequest(http.MethodPut, tc.path, http.NoBody)
			rec := httptest.NewRecorder()
			srv.routes().ServeHTTP(rec, req)

			require.Equal(t, tc.wantCode, rec.Code, rec.Body.String())
			if tc.wantCode != http.StatusOK {
				assert.Empty(t, sw.SetCalls())
				return
			}
			require.Len(t, sw.SetCalls(), 1)
			assert.Equal(t, tc.wantMode, sw.SetCalls()[0].Mode)
			assert.Equal(t, tc.wantMethod, sw.SetCalls()[0].Method)
			assert.Equal(t, tc.wantMode.String(), decode(t, rec)["mode"])
		})
	}

	t.Run("set failure", func(t *testing.T) {
		sw := newSwitcher()
		sw.SetFunc = func(context.Context, enum.Mode, enum.Method) error { return errors.New("not authorized") }
		srv := New(sw, Config{Version: "test"})

		req := httptest.NewRequest(http.MethodPut, "/mode/dark", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Len(t, sw.SetCalls(), 1, "no retry")
	})
}

func TestServer_HandleToggle(t *testing.T) {
	t.Run("changed", func(t *testing.T) {
		sw := newSwitcher()
		srv := New(sw, Config{Version: "test"})

		req := httptest.NewRequest(http.MethodPost, "/toggle?method=event", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, "light", resp["mode"])
		assert.Equal(t, true, resp["changed"])
		require.Len(t, sw.ToggleCalls(), 1)
		assert.Equal(t, enum.MethodEvent, sw.ToggleCalls()[0].Method)
	})

	t.Run("auto is not changed", func(t *testing.T) {
		sw := newSwitcher()
		sw.ToggleFunc = func(context.Context, enum.Method) (enum.Mode, error) { return enum.ModeAuto, nil }
		srv := New(sw, Config{Version: "test"})

		req := httptest.NewRequest(http.MethodPost, "/toggle", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, "auto", resp["mode"])
		assert.Equal(t, false, resp["changed"])
	})

	t.Run("invalid method", func(t *testing.T) {
		sw := newSwitcher()
		srv := New(sw, Config{Version: "test"})

		req := httptest.NewRequest(http.MethodPost, "/toggle?method=bad", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, sw.ToggleCalls())
	})

	t.Run("toggle failure", func(t *testing.T) {
		sw := newSwitcher()
		sw.ToggleFunc = func(context.Context, enum.Method) (enum.Mode, error) {
			return enum.ModeDark, errors.New("interpreter missing")
		}
		srv := New(sw, Config{Version: "test"})

		req := httptest.NewRequest(http.MethodPost, "/toggle", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("get is not allowed", func(t *testing.T) {
		srv := New(newSwitcher(), Config{Version: "test"})
		req := httptest.NewRequest(http.MethodGet, "/toggle", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestServer_HandleHistory(t *testing.T) {
	dark := enum.ModeDark
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	hist := &mocks.HistoryMock{ListFunc: func(_ context.Context, limit int) ([]store.Transition, error) {
		return []store.Transition{
			{ID: "2", From: &dark, To: enum.ModeLight, Method: enum.MethodEvent, CreatedAt: ts.Add(time.Minute)},
			{ID: "1", To: enum.ModeDark, Method: enum.MethodCommand, Error: "boom", CreatedAt: ts},
		}[:min(limit, 2)], nil
	}}

	t.Run("journal disabled", func(t *testing.T) {
		srv := New(newSwitcher(), Config{Version: "test"})
		req := httptest.NewRequest(http.MethodGet, "/history", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list with limit", func(t *testing.T) {
		srv := New(newSwitcher(), Config{Version: "test"})
		srv.SetHistory(hist)

		req := httptest.NewRequest(http.MethodGet, "/history?limit=2", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "dark", resp[0]["from"])
		assert.Equal(t, "light", resp[0]["to"])
		assert.Equal(t, "event", resp[0]["method"])
		assert.NotContains(t, resp[1], "from")
		assert.Equal(t, "boom", resp[1]["error"])
		assert.Equal(t, 2, hist.ListCalls()[len(hist.ListCalls())-1].Limit)
	})

	t.Run("empty list renders empty array", func(t *testing.T) {
		srv := New(newSwitcher(), Config{Version: "test"})
		srv.SetHistory(&mocks.HistoryMock{ListFunc: func(context.Context, int) ([]store.Transition, error) { return nil, nil }})

		req := httptest.NewRequest(http.MethodGet, "/history", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("invalid limit", func(t *testing.T) {
		srv := New(newSwitcher(), Config{Version: "test"})
		srv.SetHistory(hist)
		for _, v := range []string{"abc", "-1"} {
			req := httptest.NewRequest(http.MethodGet, "/history?limit="+v, http.NoBody)
			rec := httptest.NewRecorder()
			srv.routes().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code, v)
		}
	})

	t.Run("list failure", func(t *testing.T) {
		srv := New(newSwitcher(), Config{Version: "test"})
		srv.SetHistory(&mocks.HistoryMock{ListFunc: func(context.Context, int) ([]store.Transition, error) {
			return nil, errors.New("db closed")
		}})

		req := httptest.NewRequest(http.MethodGet, "/history", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_Limits(t *testing.T) {
	srv := New(newSwitcher(), Config{})
	assert.Equal(t, int64(64*1024), srv.bodySizeLimit())
	assert.Equal(t, int64(100), srv.requestsPerSec())
	assert.Equal(t, 5*time.Second, srv.shutdownTimeout())

	srv = New(newSwitcher(), Config{BodySizeLimit: 1024, RequestsPerSec: 10, ShutdownTimeout: time.Second})
	assert.Equal(t, int64(1024), srv.bodySizeLimit())
	assert.Equal(t, int64(10), srv.requestsPerSec())
	assert.Equal(t, time.Second, srv.shutdownTimeout())
}

func TestServer_Run(t *testing.T) {
	port := freePort(t)
	srv := New(newSwitcher(), Config{Address: fmt.Sprintf("127.0.0.1:%d", port), ReadTimeout: time.Second, Version: "test"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/mode", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:gosec // test url
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}
