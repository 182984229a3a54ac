package heygen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"videoserver/internal/domain"
	"videoserver/internal/infra"
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = errors.New("heygen: api key is required")

// Options configures the HeyGen API client.
type Options struct {
	APIKey         string
	BaseURL        string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls to the HeyGen video API. Callers treat every
// failure mode the same way: no usable upstream data for this attempt.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger
}

type statusPayload struct {
	Status   string  `json:"status"`
	VideoURL *string `json:"video_url"`
	URL      *string `json:"url"`
	Progress *int    `json:"progress"`
	Error    *struct {
		Code    *string `json:"code"`
		Message *string `json:"message"`
		Detail  *string `json:"detail"`
	} `json:"error"`
}

type statusResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    *statusPayload `json:"data"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.heygen.com"
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// VideoStatus fetches the current status of one video. Context deadlines,
// transport errors, non-2xx responses, and undecodable bodies all surface as
// errors.
func (c *Client) VideoStatus(ctx context.Context, videoID string) (*domain.UpstreamStatus, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, errors.New("heygen: video id is required")
	}

	query := url.Values{}
	query.Set("video_id", videoID)
	endpoint := c.baseURL + "/v1/video_status.get?" + query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("heygen: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("heygen: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("heygen: read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("heygen: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded statusResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("heygen: decode response: %w", err)
	}

	// Some responses wrap the payload in "data", older ones put it at the
	// top level.
	payload := decoded.Data
	if payload == nil {
		var flat statusPayload
		if err := json.Unmarshal(raw, &flat); err != nil {
			return nil, fmt.Errorf("heygen: decode payload: %w", err)
		}
		payload = &flat
	}

	result := &domain.UpstreamStatus{
		Status:   strings.TrimSpace(payload.Status),
		VideoURL: payload.VideoURL,
		Progress: payload.Progress,
	}
	if result.VideoURL == nil {
		result.VideoURL = payload.URL
	}
	if payload.Error != nil {
		result.ErrorCode = payload.Error.Code
		result.ErrorMessage = payload.Error.Message
		result.ErrorDetail = payload.Error.Detail
	}

	c.logger.Debug().
		Str("video_id", videoID).
		Str("status", result.Status).
		Msg("heygen: video status fetched")

	return result, nil
}
