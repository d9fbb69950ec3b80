package hub_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/polifund_ledger/internal/adapters/hub"
	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
)

func TestClient_UpsertLedgerSummary(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody domain.LedgerSummary
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.EscapedPath(), r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := hub.NewClient(context.Background(), hub.Config{BaseURL: srv.URL + "/"})
	err := client.UpsertLedgerSummary(context.Background(), domain.LedgerSummary{
		LedgerSourceID: "organization:org-1",
		TotalIncome:    10000,
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/v1/ledgers/organization:org-1", gotPath)
	assert.Equal(t, int64(10000), gotBody.TotalIncome)
}

func TestClient_PushJournals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/ledgers/election:e-1/journals/batch", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body struct {
			Journals []domain.HubJournal `json:"journals"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Journals, 1)
		_ = json.NewEncoder(w).Encode(domain.HubBatchResult{
			Created: 1,
			Results: []domain.HubItemResult{{JournalSourceID: body.Journals[0].JournalSourceID, Status: domain.HubItemCreated}},
		})
	}))
	defer srv.Close()

	client := hub.NewClient(context.Background(), hub.Config{BaseURL: srv.URL})
	res, err := client.PushJournals(context.Background(), "election:e-1", []domain.HubJournal{{JournalSourceID: "j-1"}})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, "j-1", res.Results[0].JournalSourceID)
}

func TestClient_NonSuccessIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := hub.NewClient(context.Background(), hub.Config{BaseURL: srv.URL})
	_, err := client.PushJournals(context.Background(), "organization:o-1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSyncTransport)
	assert.Equal(t, http.StatusBadGateway, apperrors.StatusCode(err))
	assert.Contains(t, err.Error(), "maintenance")
}

func TestClient_MissingBaseURL(t *testing.T) {
	client := hub.NewClient(context.Background(), hub.Config{})

	err := client.UpsertLedgerSummary(context.Background(), domain.LedgerSummary{LedgerSourceID: "organization:o-1"})

	assert.ErrorIs(t, err, apperrors.ErrSyncTransport)
}

func TestClient_ClientCredentials(t *testing.T) {
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/api/v1/ledgers/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := hub.NewClient(context.Background(), hub.Config{
		BaseURL:      srv.URL,
		TokenURL:     srv.URL + "/oauth/token",
		ClientID:     "ledger",
		ClientSecret: "secret",
	})
	for i := 0; i < 2; i++ {
		require.NoError(t, client.UpsertLedgerSummary(context.Background(), domain.LedgerSummary{LedgerSourceID: "organization:o-1"}))
	}
	assert.Equal(t, 1, tokenCalls)
}
