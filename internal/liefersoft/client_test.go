package liefersoft

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func newTestClient(baseURL string) *Client {
	return New(Config{
		BaseURL:   baseURL,
		Login:     "partner",
		Password:  "secret",
		CompanyID: "42",
	}, zap.NewNop().Sugar())
}

func TestForwardOrder(t *testing.T) {
	var gotAuth string
	var gotLogin map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			json.NewDecoder(r.Body).Decode(&gotLogin)
			json.NewEncoder(w).Encode(map[string]string{"accessToken": "tok-123"})
		case "/orders":
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]string{"orderId": "L-1"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	result, err := client.ForwardOrder(context.Background(), json.RawMessage(`{"items":[]}`))
	if err != nil {
		t.Fatalf("ForwardOrder() error = %v", err)
	}

	if gotLogin["login"] != "partner" || gotLogin["companyId"] != "42" {
		t.Errorf("login payload = %v", gotLogin)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("authorization header = %q", gotAuth)
	}

	data, ok := result.Data.(map[string]any)
	if !ok || data["orderId"] != "L-1" {
		t.Errorf("result data = %v", result.Data)
	}
}

func TestForwardOrderWrapsNonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			json.NewEncoder(w).Encode(map[string]string{"accessToken": "tok"})
			return
		}
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	result, err := client.ForwardOrder(context.Background(), json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("ForwardOrder() error = %v", err)
	}

	data, ok := result.Data.(map[string]string)
	if !ok || data["raw"] != "OK" {
		t.Errorf("result data = %v", result.Data)
	}
}

func TestForwardOrderUpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			json.NewEncoder(w).Encode(map[string]string{"accessToken": "tok"})
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"bad order"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.ForwardOrder(context.Background(), json.RawMessage(`{}`))

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("ForwardOrder() error = %v, want UpstreamError", err)
	}
	if upstream.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", upstream.StatusCode)
	}
}

func TestForwardOrderLoginFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"rejected credentials", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"nope"}`))
		}},
		{"missing token", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := newTestClient(srv.URL)
			_, err := client.ForwardOrder(context.Background(), json.RawMessage(`{}`))
			if err == nil {
				t.Fatal("ForwardOrder() expected error")
			}

			// login failures must not carry the partner status to the client
			var upstream *UpstreamError
			if errors.As(err, &upstream) {
				t.Errorf("login failure surfaced as upstream error: %v", err)
			}
		})
	}
}
