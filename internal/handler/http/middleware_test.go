package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/calmora/internal/app"
	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/mock"
	"github.com/MKhiriev/calmora/internal/service"
	"github.com/MKhiriev/calmora/internal/utils"
)

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
		wantSame       bool
	}{
		{name: "incoming id is reused", requestTraceID: "my-custom-trace-id", wantSame: true},
		{name: "missing id is generated", requestTraceID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/session-status", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			if tt.wantSame {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.Contains(t, buf.String(), `"trace_id":"`+got+`"`)
		})
	}
}

// ---- withLogging ----

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteMessage(w, "hi", http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, req)

	out := buf.String()
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"uri":"/register"`)
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"size":16`)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 3, w.size)
	assert.Equal(t, http.StatusOK, rr.Code)
}

// ---- withGZip ----

func TestWithGZip_CompressesResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteMessage(w, strings.Repeat("calm ", 100), http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/session-status", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), "calm calm")
}

func TestWithGZip_PlainWithoutAcceptEncoding(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain"))
	})

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rr.Body.String())
}

func TestWithGZip_InflatesRequest(t *testing.T) {
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte(`{"message":"hi"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = string(b)
	})

	req := httptest.NewRequest(http.MethodPost, "/chat", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	withGZip(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"message":"hi"}`, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(http.NotFoundHandler()).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ---- withSession / requireSession ----

func newMockedHandler(t *testing.T) (*Handler, *mock.MockAuthService) {
	t.Helper()
	auth := mock.NewMockAuthService(gomock.NewController(t))
	return &Handler{services: &service.Services{AuthService: auth}, logger: logger.Nop()}, auth
}

func TestWithSession(t *testing.T) {
	tests := []struct {
		name      string
		cookie    *http.Cookie
		setup     func(auth *mock.MockAuthService)
		wantEmail string
	}{
		{
			name: "no cookie",
		},
		{
			name:   "known session",
			cookie: &http.Cookie{Name: sessionCookieName, Value: "sid"},
			setup: func(auth *mock.MockAuthService) {
				auth.EXPECT().SessionEmail(gomock.Any(), "sid").Return("ann@example.com", nil)
			},
			wantEmail: "ann@example.com",
		},
		{
			name:   "unknown session",
			cookie: &http.Cookie{Name: sessionCookieName, Value: "stale"},
			setup: func(auth *mock.MockAuthService) {
				auth.EXPECT().SessionEmail(gomock.Any(), "stale").Return("", service.ErrUnauthorized)
			},
		},
		{
			name:   "store failure",
			cookie: &http.Cookie{Name: sessionCookieName, Value: "sid"},
			setup: func(auth *mock.MockAuthService) {
				auth.EXPECT().SessionEmail(gomock.Any(), "sid").Return("", errors.New("boom"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, auth := newMockedHandler(t)
			if tt.setup != nil {
				tt.setup(auth)
			}

			var gotEmail string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotEmail, _ = utils.GetSessionEmailFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/session-status", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			h.withSession(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.wantEmail, gotEmail)
		})
	}
}

func TestRequireSession(t *testing.T) {
	h, _ := newMockedHandler(t)
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rr := httptest.NewRecorder()
	h.requireSession(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/chat", nil))
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, app.MsgUnauthorized, message(t, rr))

	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req = req.WithContext(context.WithValue(req.Context(), utils.SessionEmailCtxKey, "ann@example.com"))
	h.requireSession(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, called)
}

func TestLogout_StoreFailure(t *testing.T) {
	h, auth := newMockedHandler(t)
	auth.EXPECT().Logout(gomock.Any(), "sid").Return(errors.New("boom"))

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sid"})
	rr := httptest.NewRecorder()
	h.logout(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, app.MsgInternalServerError, message(t, rr))
}
