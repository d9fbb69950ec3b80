// Package hub is the HTTP adapter for the public disclosure registry.
package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/polifund_ledger/internal/middleware"
)

const maxErrorBody = 2048

// Config holds the Hub endpoint and credentials.
type Config struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
	Timeout      time.Duration
}

// Client talks JSON to the Hub API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ portsrepo.HubGateway = (*Client)(nil)

// NewClient builds a Hub client. When a token URL and client id are set,
// requests carry an OAuth2 client-credentials token.
func NewClient(ctx context.Context, cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	base := &http.Client{Timeout: timeout}

	httpClient := base
	if cfg.TokenURL != "" && cfg.ClientID != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
		httpClient = cc.Client(context.WithValue(ctx, oauth2.HTTPClient, base))
		httpClient.Timeout = timeout
	}
	return &Client{baseURL: strings.TrimRight(cfg.BaseURL, "/"), httpClient: httpClient}
}

type pushJournalsRequest struct {
	Journals []domain.HubJournal `json:"journals"`
}

// UpsertLedgerSummary overwrites the Hub's ledger record.
func (c *Client) UpsertLedgerSummary(ctx context.Context, summary domain.LedgerSummary) error {
	path := "/api/v1/ledgers/" + url.PathEscape(summary.LedgerSourceID)
	return c.do(ctx, http.MethodPut, path, summary, nil)
}

// PushJournals sends one batch of journal payloads.
func (c *Client) PushJournals(ctx context.Context, ledgerSourceID string, journals []domain.HubJournal) (*domain.HubBatchResult, error) {
	path := "/api/v1/ledgers/" + url.PathEscape(ledgerSourceID) + "/journals/batch"
	var result domain.HubBatchResult
	if err := c.do(ctx, http.MethodPost, path, pushJournalsRequest{Journals: journals}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	if c.baseURL == "" {
		return apperrors.NewSyncTransportError("hub base URL is not configured", nil)
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode hub request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build hub request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logger := middleware.GetLoggerFromCtx(ctx)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewSyncTransportError(fmt.Sprintf("hub request %s %s failed", method, path), err)
	}
	defer resp.Body.Close()
	logger.Debug("Hub request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return apperrors.NewSyncTransportError(
			fmt.Sprintf("hub returned %d for %s %s", resp.StatusCode, method, path),
			errors.New(strings.TrimSpace(string(snippet))),
		)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewSyncTransportError("hub returned an unreadable response", err)
	}
	return nil
}
