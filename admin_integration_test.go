package admindata_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	admindata "github.com/goliatone/go-admin-data"
)

func testToken(t *testing.T, expiry time.Time) string {
	t.Helper()
	header, _ := json.Marshal(map[string]any{"alg": "HS256", "typ": "JWT"})
	claims, _ := json.Marshal(map[string]any{
		"sub":   "u-1",
		"email": "ops@example.com",
		"exp":   expiry.Unix(),
	})
	return base64.RawURLEncoding.EncodeToString(header) + "." +
		base64.RawURLEncoding.EncodeToString(claims) + "." +
		base64.RawURLEncoding.EncodeToString([]byte("sig"))
}

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "hunter22" {
			http.Error(w, `{"error":"bad credentials"}`, http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": testToken(t, time.Now().Add(time.Hour)),
		})
	})
	mux.HandleFunc("/api/v1/blogs", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			http.Error(w, `{"error":"unauthenticated"}`, http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"blogs": []any{
				map[string]any{"blog_id": "b-1", "title": "First", "status": "Draft"},
				map[string]any{"blog_id": "b-2", "title": "Second", "status": "Published"},
			},
			"total": 2,
		})
	})
	mux.HandleFunc("/api/v1/blogs/b-1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			// Blog writes travel as multipart form data.
			if err := r.ParseMultipartForm(32 << 20); err != nil {
				http.Error(w, `{"error":"bad payload"}`, http.StatusBadRequest)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"blog": map[string]any{"blog_id": "b-1", "status": r.FormValue("status")},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"blog": map[string]any{"blog_id": "b-1", "title": "First", "status": "Draft"},
		})
	})
	mux.HandleFunc("/api/v1/subscribers", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"subscribers": []any{
				map[string]any{"email": "a@example.com", "status": "active"},
			},
			"total": 1,
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newModule(t *testing.T, backendURL string) *admindata.Module {
	t.Helper()

	cfg := admindata.DefaultConfig()
	cfg.BaseURL = backendURL
	cfg.Settings.RecordID = "s-1"
	cfg.Watchdog.Enabled = false
	cfg.Logging.Provider = "noop"

	module, err := admindata.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { module.Close() })
	return module
}

func TestModuleLoginAndList(t *testing.T) {
	ctx := context.Background()
	module := newModule(t, newBackend(t).URL)

	if module.Auth().Check(ctx) {
		t.Fatalf("Check() = true before login")
	}

	result, err := module.Auth().Login(ctx, "ops@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !result.Success {
		t.Fatalf("Login() rejected: %s", result.Message)
	}
	if !module.Auth().Check(ctx) {
		t.Fatalf("Check() = false after login")
	}

	list, err := module.Blogs().GetList(ctx, admindata.ListParams{
		Pagination: admindata.Pagination{Page: 1, PerPage: 10},
	})
	if err != nil {
		t.Fatalf("GetList() error = %v", err)
	}
	if list.Total != 2 || len(list.Data) != 2 {
		t.Fatalf("list = %d/%d, want 2/2", len(list.Data), list.Total)
	}
	if list.Data[0].ID("blog_id") != "b-1" {
		t.Fatalf("first record id = %q", list.Data[0].ID("blog_id"))
	}
}

func TestModulePublishCommand(t *testing.T) {
	ctx := context.Background()
	module := newModule(t, newBackend(t).URL)

	if _, err := module.Auth().Login(ctx, "ops@example.com", "hunter22"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if err := module.Publish(ctx, "blogs", "b-1"); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
}

func TestModuleExportSubscribers(t *testing.T) {
	ctx := context.Background()
	module := newModule(t, newBackend(t).URL)

	buf := &bytes.Buffer{}
	if err := module.ExportSubscribers(ctx, buf); err != nil {
		t.Fatalf("ExportSubscribers() error = %v", err)
	}

	rows, err := csv.NewReader(buf).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	if rows[1][0] != "a@example.com" {
		t.Fatalf("row = %v", rows[1])
	}
}

func TestModuleIdentityAfterLogin(t *testing.T) {
	ctx := context.Background()
	module := newModule(t, newBackend(t).URL)

	if _, err := module.Auth().Login(ctx, "ops@example.com", "hunter22"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	identity, err := module.Auth().Identity(ctx)
	if err != nil {
		t.Fatalf("Identity() error = %v", err)
	}
	if identity.Subject != "u-1" || identity.Email != "ops@example.com" {
		t.Fatalf("identity = %+v", identity)
	}
}

func TestModuleGenericResourceFallback(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/webhooks", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data":  []any{map[string]any{"id": "w-1"}},
			"total": 1,
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	module := newModule(t, server.URL)
	result, err := module.Resource("webhooks").GetList(ctx, admindata.ListParams{})
	if err != nil {
		t.Fatalf("GetList() error = %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("Total = %d, want 1", result.Total)
	}
}
