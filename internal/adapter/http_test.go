// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-client-panel/internal/config"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/utils"
)

// newTestBinClient создаёт httpBinClient, направленный на тестовый сервер
func newTestBinClient(t *testing.T, serverURL string) *httpBinClient {
	t.Helper()
	c, err := NewHTTPBinClient(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return c.(*httpBinClient)
}

func binIDFromPath(t *testing.T, path string) string {
	t.Helper()
	id, ok := strings.CutPrefix(path, "/api/bins/")
	require.True(t, ok, "unexpected path %s", path)
	return id
}

// ── CreateBin ───────────────────────────────────────────────────────────────

func TestCreateBin_Success(t *testing.T) {
	var gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotID = binIDFromPath(t, r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"data": "blob"}, body)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	id, err := newTestBinClient(t, srv.URL).CreateBin(context.Background(), "blob")

	require.NoError(t, err)
	assert.Equal(t, gotID, id)
	assert.True(t, utils.IsValidBinID(id))
}

func TestCreateBin_RetriesOnConflictWithFreshID(t *testing.T) {
	var ids []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, binIDFromPath(t, r.URL.Path))
		if len(ids) < 3 {
			w.WriteHeader(http.StatusConflict)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	id, err := newTestBinClient(t, srv.URL).CreateBin(context.Background(), "blob")

	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.Equal(t, ids[2], id)
	assert.NotEqual(t, ids[0], ids[1])
	assert.NotEqual(t, ids[1], ids[2])
}

func TestCreateBin_GivesUpAfterThreeConflicts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	_, err := newTestBinClient(t, srv.URL).CreateBin(context.Background(), "blob")

	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, int32(createAttempts), calls.Load())
}

func TestCreateBin_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestBinClient(t, srv.URL).CreateBin(context.Background(), "blob")
	require.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestCreateBin_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestBinClient(t, url).CreateBin(context.Background(), "blob")
	require.ErrorIs(t, err, ErrRemoteUnavailable)
}

// ── GetBin ──────────────────────────────────────────────────────────────────

func TestGetBin(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr error
	}{
		{name: "success", status: http.StatusOK, body: `{"data":"blob"}`, want: "blob"},
		{name: "not found", status: http.StatusNotFound, body: "not found", wantErr: ErrNotFound},
		{name: "empty data", status: http.StatusOK, body: `{"data":""}`, wantErr: ErrInvalidFormat},
		{name: "non-string data", status: http.StatusOK, body: `{"data":{"clients":[]}}`, wantErr: ErrInvalidFormat},
		{name: "missing data", status: http.StatusOK, body: `{"record":"x"}`, wantErr: ErrInvalidFormat},
		{name: "not json", status: http.StatusOK, body: `<html>`, wantErr: ErrInvalidFormat},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: ErrRemoteUnavailable},
		{name: "bad request", status: http.StatusBadRequest, body: "invalid id", wantErr: ErrBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/bins/abc12345", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			got, err := newTestBinClient(t, srv.URL).GetBin(context.Background(), "abc12345")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── UpdateBin ───────────────────────────────────────────────────────────────

func TestUpdateBin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/bins/abc12345", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "blob2", body["data"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestBinClient(t, srv.URL).UpdateBin(context.Background(), "abc12345", "blob2"))
}

func TestUpdateBin_PayloadTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	err := newTestBinClient(t, srv.URL).UpdateBin(context.Background(), "abc12345", "blob2")
	require.ErrorIs(t, err, ErrPayloadTooLarge)
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "  https://bins.example.com  ", want: "https://bins.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewBinClient_Selection(t *testing.T) {
	ctx := context.Background()

	c, err := NewBinClient(ctx, config.Adapter{HTTPAddress: "http://localhost:1", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &httpBinClient{}, c)
	assert.True(t, c.Configured())

	c, err = NewBinClient(ctx, config.Adapter{S3: config.S3{Bucket: "bins", Region: "us-east-1", AccessKey: "a", SecretKey: "s"}}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &s3BinClient{}, c)

	c, err = NewBinClient(ctx, config.Adapter{}, logger.Nop())
	require.NoError(t, err)
	assert.False(t, c.Configured())
}

func TestDisabledBinClient(t *testing.T) {
	ctx := context.Background()
	c := NewDisabledBinClient()

	_, err := c.CreateBin(ctx, "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = c.GetBin(ctx, "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, c.UpdateBin(ctx, "x", "y"), ErrNotConfigured)
}
