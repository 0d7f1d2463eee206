package backend

import (
	"context"
	"errors"
	"fmt"
	"gamerbot/internal/core/domain"
	"gamerbot/internal/core/port"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const (
	memePath    = "/meme"
	refreshPath = "/refresh"
	backlogPath = "/backlog/"

	memeField    = "Meme"
	messageField = "message"

	unauthorizedTemplate = "Get error %d, unauthorized. Message contents: ```javascript\n%s\n```"
	apiErrorTemplate     = "Get error %d. Message contents: ```javascript\n%s\n```"
)

// Client talks to the gamerbot backend API. Every request is authorized with the bearer token the
// client was created with.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	recorder   port.Recorder
}

// NewClient creates a backend client. recorder may be nil. The default http.Client is used, so
// requests are only bounded by the context they run with.
func NewClient(baseURL, token string, recorder port.Recorder) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: http.DefaultClient,
		recorder:   recorder,
	}
}

func (c *Client) RandomMeme(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, memePath, memePath, nil)
	if err != nil {
		return "", err
	}

	return extractField(body, memeField)
}

func (c *Client) AddGame(ctx context.Context, user, game string) (string, error) {
	return c.backlog(ctx, http.MethodPost, user, url.Values{
		"game":   {game},
		"status": {string(domain.Unplayed)},
	})
}

func (c *Client) UpdateStatus(ctx context.Context, user, game string, status domain.BacklogStatus) (string, error) {
	return c.backlog(ctx, http.MethodPut, user, url.Values{
		"game":   {game},
		"status": {string(status)},
	})
}

func (c *Client) View(ctx context.Context, user, game string) (string, error) {
	return c.backlog(ctx, http.MethodGet, user, url.Values{
		"game": {game},
	})
}

func (c *Client) Refresh(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, refreshPath, refreshPath, nil)
	return err
}

func (c *Client) backlog(ctx context.Context, method, user string, form url.Values) (string, error) {
	body, err := c.do(ctx, method, backlogPath+url.PathEscape(user), backlogPath+"{user}", form)
	if err != nil {
		return "", err
	}

	return extractField(body, messageField)
}

// do executes a request and returns the body of a 200 response. Any other outcome is returned as a
// *domain.CommandError carrying the reply text. route is the path label used for metrics.
func (c *Client) do(ctx context.Context, method, path, route string, form url.Values) ([]byte, error) {
	var payload io.Reader
	if form != nil {
		payload = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("error creating backend request")
		return nil, domain.NewTransportError(fmt.Errorf("error creating backend request: %w", err))
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	l := log.With().Str("method", method).Str("path", path).Logger()

	requestID, err := uuid.NewV4()
	if err == nil {
		req.Header.Set("X-Request-Id", requestID.String())
		l = l.With().Str("requestId", requestID.String()).Logger()
	}

	l.Debug().Msg("sending backend request")

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.record(method, route, 0)
		return nil, domain.NewTransportError(fmt.Errorf("error executing backend request: %w", err))
	}

	defer res.Body.Close()

	c.record(method, route, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, domain.NewTransportError(fmt.Errorf("error reading backend response: %w", err))
	}

	l.Debug().Int("status", res.StatusCode).Bytes("body", body).Msg("backend response")

	switch res.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusUnauthorized:
		return nil, &domain.CommandError{
			Kind:    domain.KindUnauthorized,
			Message: fmt.Sprintf(unauthorizedTemplate, res.StatusCode, strings.TrimSpace(string(body))),
		}
	default:
		return nil, &domain.CommandError{
			Kind:    domain.KindAPI,
			Message: fmt.Sprintf(apiErrorTemplate, res.StatusCode, strings.TrimSpace(string(body))),
		}
	}
}

func (c *Client) record(method, route string, status int) {
	if c.recorder != nil {
		c.recorder.BackendRequest(method, route, status)
	}
}

func extractField(body []byte, field string) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", domain.NewTransportError(errors.New("backend response is not valid JSON"))
	}

	result := gjson.GetBytes(body, field)
	if !result.Exists() {
		return "", domain.NewTransportError(fmt.Errorf("backend response is missing field %q", field))
	}

	return result.String(), nil
}
