package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"blogclient/internal/domain"

	"github.com/google/uuid"
)

// Gateway talks to the blog API. It owns no state beyond the HTTP
// client; credentials travel on the transport (cookie jar / auth
// header) outside this package's concern. Implements
// domain.PostGateway and domain.AuthGateway.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a gateway with a tuned HTTP transport.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Gateway {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

// do issues one request and decodes a 2xx body into out when out is
// non-nil. Non-2xx responses come back as decoded remote errors.
func (g *Gateway) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrAPIUnavailable, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.ErrorContext(ctx, "request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err)
		return fmt.Errorf("%w: %w", domain.ErrAPIUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		remoteErr := decodeRemoteError(resp)
		g.logger.WarnContext(ctx, "request rejected",
			"method", method,
			"path", path,
			"request_id", requestID,
			"status", resp.StatusCode)
		return remoteErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decoding response: %w", domain.ErrAPIUnavailable, err)
		}
	}
	return nil
}

// errorBody is the API's failure envelope: either message alone or a
// list of field errors.
type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   []struct {
		Message string `json:"message"`
	} `json:"error"`
}

func decodeRemoteError(resp *http.Response) error {
	remote := &domain.RemoteError{StatusCode: resp.StatusCode}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		remote.Status = body.Status
		for _, fieldErr := range body.Error {
			remote.Messages = append(remote.Messages, fieldErr.Message)
		}
		if len(remote.Messages) == 0 && body.Message != "" {
			remote.Messages = []string{body.Message}
		}
	}
	if len(remote.Messages) == 0 {
		remote.Messages = []string{http.StatusText(resp.StatusCode)}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", domain.ErrUnauthenticated, remote)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", domain.ErrForbidden, remote)
	}
	return remote
}
