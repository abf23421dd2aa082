package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/calmora/internal/config"
	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/utils"
	"github.com/MKhiriev/calmora/models"
)

const traceIDHeader = "X-Trace-ID"

// Endpoint paths of the Calmora service.
const (
	pathSessionStatus = "/session-status"
	pathLogin         = "/login"
	pathRegister      = "/register"
	pathLogout        = "/logout"
	pathChat          = "/chat"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of
// [ServerAdapter]. It normalises adapterCfg.HTTPAddress, applies the request
// timeout (zero means none) and attaches jar so the session cookie travels
// with every call.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, jar http.CookieJar, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, jar)
	traceIDs := utils.NewUUIDGenerator()

	client.
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader(traceIDHeader, traceIDs.Generate())
			return nil
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			log.Debug().
				Str("method", resp.Request.Method).
				Str("path", resp.Request.URL).
				Str("trace_id", resp.Request.Header.Get(traceIDHeader)).
				Int("status", resp.StatusCode()).
				Dur("duration", resp.Time()).
				Msg("remote call completed")
			return nil
		}).
		OnError(func(r *resty.Request, err error) {
			log.Debug().
				Err(err).
				Str("method", r.Method).
				Str("path", r.URL).
				Str("trace_id", r.Header.Get(traceIDHeader)).
				Msg("remote call failed")
		})

	return &httpServerAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SessionStatus implements [ServerAdapter] via GET /session-status.
func (h *httpServerAdapter) SessionStatus(ctx context.Context) (models.SessionStatus, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(pathSessionStatus)
	if err != nil {
		return models.SessionStatus{}, transportError("session-status", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionStatus{}, err
	}

	var status models.SessionStatus
	if err = decodeBody(resp, &status); err != nil {
		return models.SessionStatus{}, err
	}

	return status, nil
}

// Login implements [ServerAdapter] via POST /login. The session cookie set by
// the response is stored by the jar; the body is not inspected.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(pathLogin)
	if err != nil {
		return transportError("login", err)
	}

	return mapHTTPError(resp)
}

// Register implements [ServerAdapter] via POST /register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegistrationRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(pathRegister)
	if err != nil {
		return transportError("register", err)
	}

	return mapHTTPError(resp)
}

// Logout implements [ServerAdapter] via POST /logout and returns the
// confirmation text verbatim.
func (h *httpServerAdapter) Logout(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Post(pathLogout)
	if err != nil {
		return "", transportError("logout", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var msg models.MessageResponse
	if err = decodeBody(resp, &msg); err != nil {
		return "", err
	}

	return msg.Text(), nil
}

// Chat implements [ServerAdapter] via POST /chat. A 2xx body without a
// message is malformed.
func (h *httpServerAdapter) Chat(ctx context.Context, message string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChatRequest{Message: message}).
		Post(pathChat)
	if err != nil {
		return "", transportError("chat", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var reply models.MessageResponse
	if err = decodeBody(resp, &reply); err != nil {
		return "", err
	}
	if reply.Message == nil {
		return "", fmt.Errorf("%w: chat reply without message", ErrTransport)
	}

	return *reply.Message, nil
}

func transportError(op string, err error) error {
	if errors.Is(err, ErrTransport) {
		return err
	}
	return fmt.Errorf("%w: %s request: %w", ErrTransport, op, err)
}
