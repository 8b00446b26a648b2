package payload_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ivco-ai/blogsync/internal/config"
	"github.com/ivco-ai/blogsync/internal/payload"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *payload.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return payload.NewClient(config.Config{
		URL:      server.URL + "/",
		Email:    "admin@example.com",
		Password: "secret",
	}, nil)
}

func TestClientLoginSetsToken(t *testing.T) {
	var authHeader string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/login":
			var creds payload.Credentials
			if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
				t.Errorf("decode credentials: %v", err)
			}
			if creds.Email != "admin@example.com" || creds.Password != "secret" {
				t.Errorf("unexpected credentials %+v", creds)
			}
			io.WriteString(w, `{"token":"abc123","user":{"id":1}}`)
		case "/api/posts":
			authHeader = r.Header.Get("Authorization")
			io.WriteString(w, `{"docs":[]}`)
		default:
			http.NotFound(w, r)
		}
	})

	ctx := context.Background()
	if err := client.Login(ctx); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if _, _, err := client.FindOne(ctx, payload.CollectionPosts, "slug", "x"); err != nil {
		t.Fatalf("FindOne returned error: %v", err)
	}
	if authHeader != "JWT abc123" {
		t.Fatalf("authorization header mismatch, got %q", authHeader)
	}
}

func TestClientLoginWithoutToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"message":"ok"}`)
	})
	if err := client.Login(context.Background()); err == nil {
		t.Fatalf("expected error when response has no token")
	}
}

func TestClientLoginUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"errors":[{"message":"bad credentials"}]}`)
	})

	err := client.Login(context.Background())
	var apiErr *payload.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Path != "/api/users/login" {
		t.Fatalf("unexpected APIError %+v", apiErr)
	}
}

func TestClientFindOne(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/tags" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("limit") != "1" {
			t.Errorf("expected limit=1, got %q", q.Get("limit"))
		}
		switch q.Get("where[slug][equals]") {
		case "dcf":
			io.WriteString(w, `{"docs":[{"id":42,"slug":"dcf"}],"totalDocs":1}`)
		default:
			io.WriteString(w, `{"docs":[],"totalDocs":0}`)
		}
	})

	ctx := context.Background()

	id, found, err := client.FindOne(ctx, payload.CollectionTags, "slug", "dcf")
	if err != nil || !found || id != 42 {
		t.Fatalf("expected id 42, got id=%d found=%v err=%v", id, found, err)
	}

	_, found, err = client.FindOne(ctx, payload.CollectionTags, "slug", "missing")
	if err != nil || found {
		t.Fatalf("expected not found, got found=%v err=%v", found, err)
	}
}

func TestClientCreate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/tags" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type mismatch, got %q", ct)
		}
		var tag payload.Tag
		if err := json.NewDecoder(r.Body).Decode(&tag); err != nil {
			t.Errorf("decode tag: %v", err)
		}
		if tag.Slug != "dcf" || tag.Name != "DCF" {
			t.Errorf("unexpected tag %+v", tag)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"doc":{"id":7,"slug":"dcf"},"message":"created"}`)
	})

	id, err := client.Create(context.Background(), payload.CollectionTags, payload.Tag{Name: "DCF", Slug: "dcf"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != 7 {
		t.Fatalf("id mismatch, got %d", id)
	}
}

func TestClientCreateErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "errors array", status: http.StatusOK, body: `{"errors":[{"message":"slug must be unique"}]}`},
		{name: "missing id", status: http.StatusCreated, body: `{"message":"created"}`},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})
			if _, err := client.Create(context.Background(), payload.CollectionPosts, payload.Post{}); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
