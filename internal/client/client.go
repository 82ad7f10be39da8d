// Package client talks to the remote report-generation endpoint.
//
// One submission produces exactly one POST; failures are surfaced as
// TransportError or MalformedResponseError and are never retried
// automatically.
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkorolev/leadflow/internal/model"
	"github.com/pkorolev/leadflow/internal/util"
)

// Client submits leads to the report-generation endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	maxBytes   int64
}

// New creates a Client from configuration.
func New(cfg *model.Config) *Client {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	timeout := cfg.API.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		endpoint:  cfg.API.Endpoint,
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
	}
}

// reportResponse is the expected success body shape.
type reportResponse struct {
	FullReport string `json:"full_report"`
}

// Generate posts the submission and returns the generated report.
func (c *Client) Generate(ctx context.Context, sub model.Submission) (*model.Report, error) {
	payload, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	maxBytes := c.maxBytes
	if maxBytes <= 0 {
		maxBytes = 2_000_000
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}

	var parsed reportResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &MalformedResponseError{Reason: "invalid JSON"}
	}
	if strings.TrimSpace(parsed.FullReport) == "" {
		return nil, &MalformedResponseError{Reason: "missing full_report field"}
	}

	return &model.Report{
		Subject:     sub.Subject(),
		FullReport:  parsed.FullReport,
		GeneratedAt: time.Now().UTC(),
		Source:      model.SourceRemote,
	}, nil
}
