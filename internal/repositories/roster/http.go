package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// PlayerIDPlaceholder is replaced with the escaped player ID in HTTPConfig.URL
const PlayerIDPlaceholder = "{player_id}"

const (
	defaultHTTPTimeout = 10 * time.Second
	maxResponseBytes   = 4 << 20
)

type httpRepository struct {
	url    string
	client *http.Client
}

// HTTPConfig contains configuration for the remote roster API repository.
type HTTPConfig struct {
	// URL of the character endpoint. May contain PlayerIDPlaceholder.
	URL string
	// HTTPClient defaults to a client with a ten second timeout
	HTTPClient *http.Client
}

// Validate validates the HTTPConfig.
func (cfg *HTTPConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("url", cfg.URL, vb)
	if cfg.URL != "" {
		u, err := url.Parse(strings.ReplaceAll(cfg.URL, PlayerIDPlaceholder, "player"))
		if err != nil || u.Scheme == "" || u.Host == "" {
			vb.Field("url", "must be an absolute URL")
		}
	}
	return vb.Build()
}

// NewHTTP creates a roster repository backed by the remote character API.
// The API answers GET with {"body": {"characters": [...]}} and accepts
// POST {"characters": [...]}.
func NewHTTP(cfg *HTTPConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &httpRepository{
		url:    cfg.URL,
		client: client,
	}, nil
}

type remoteLoadResponse struct {
	Body *struct {
		Characters []*charsheet.Character `json:"characters"`
	} `json:"body"`
}

type remoteSaveRequest struct {
	Characters []*charsheet.Character `json:"characters"`
}

func (r *httpRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	endpoint := r.endpoint(input.PlayerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build roster request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach roster API")
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var decoded remoteLoadResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&decoded); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode roster API response")
	}

	if decoded.Body == nil || decoded.Body.Characters == nil {
		slog.InfoContext(ctx, "roster API returned no characters",
			"player_id", input.PlayerID)
		return &LoadOutput{Characters: []*charsheet.Character{}}, nil
	}

	slog.DebugContext(ctx, "loaded roster from API",
		"player_id", input.PlayerID,
		"count", len(decoded.Body.Characters))

	return &LoadOutput{Characters: decoded.Body.Characters}, nil
}

func (r *httpRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	payload, err := json.Marshal(remoteSaveRequest{Characters: nonNil(input.Characters)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roster")
	}

	endpoint := r.endpoint(input.PlayerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build roster request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach roster API")
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if err := checkStatus(resp); err != nil {
		slog.ErrorContext(ctx, "roster API rejected save",
			"player_id", input.PlayerID,
			"status", resp.StatusCode)
		return nil, err
	}

	slog.DebugContext(ctx, "saved roster to API",
		"player_id", input.PlayerID,
		"count", len(input.Characters))

	// the API does not report a save time
	return &SaveOutput{}, nil
}

func (r *httpRepository) endpoint(playerID string) string {
	return strings.ReplaceAll(r.url, PlayerIDPlaceholder, url.PathEscape(playerID))
}

// checkStatus turns a non-2xx response into an Unavailable error. The code
// the status would map to is kept as metadata.
func checkStatus(resp *http.Response) error {
	upstream := errors.CodeFromHTTPStatus(resp.StatusCode)
	if upstream == errors.CodeOK {
		return nil
	}

	return errors.Unavailablef("roster API returned %s", resp.Status).
		WithMeta("http_status", resp.StatusCode).
		WithMeta("upstream_code", upstream.String())
}
