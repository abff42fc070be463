package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClient_RequiresBothFields(t *testing.T) {
	if c := NewClient("", "key"); c != nil {
		t.Error("client created without a base URL")
	}
	if c := NewClient("https://example.com", ""); c != nil {
		t.Error("client created without an API key")
	}
	if c := NewClient("  ", "  "); c != nil {
		t.Error("client created from whitespace-only fields")
	}
	if c := NewClient("https://example.com/", "key"); c == nil {
		t.Error("valid inputs produced a nil client")
	}
}

func TestFetchAccounts_ParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/accounts" {
			t.Errorf("path = %q, want /v1/accounts", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"score": 718,
			"accounts": [
				{"account_id": "acc-1", "display_name": "Chase Freedom", "balance": 2400, "credit_limit": 8000, "opened_months": 36}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	resp, err := c.FetchAccounts(context.Background())
	if err != nil {
		t.Fatalf("FetchAccounts: %v", err)
	}
	if resp.Score != 718 {
		t.Errorf("Score = %d, want 718", resp.Score)
	}
	if len(resp.Accounts) != 1 {
		t.Fatalf("got %d accounts, want 1", len(resp.Accounts))
	}
	acc := resp.Accounts[0]
	if acc.AccountID != "acc-1" || acc.DisplayName != "Chase Freedom" {
		t.Errorf("account identity = %q/%q, want acc-1/Chase Freedom", acc.AccountID, acc.DisplayName)
	}
	if acc.Balance != 2400 || acc.CreditLimit != 8000 {
		t.Errorf("balance/limit = %.0f/%.0f, want 2400/8000", acc.Balance, acc.CreditLimit)
	}
}

func TestFetchAccounts_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "key")
			if _, err := c.FetchAccounts(context.Background()); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFetchAccounts_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key")
	if _, err := c.FetchAccounts(context.Background()); err == nil {
		t.Fatal("expected an error for a 502 response")
	}
}

func TestFetchAccounts_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key")
	if _, err := c.FetchAccounts(context.Background()); err == nil {
		t.Fatal("expected a parse error for a malformed body")
	}
}
