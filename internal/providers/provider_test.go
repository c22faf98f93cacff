package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
	"github.com/goliatone/go-admin-data/schemas"
)

func newTestClient(t *testing.T, handler http.Handler) (*rest.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	endpoints := rest.NewEndpoints(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "api",
				BaseURL: server.URL,
				Paths: map[string]string{
					"collection": "/api/v1/:resource",
					"record":     "/api/v1/:resource/:id",
					"login":      "/api/v1/auth/login",
				},
			},
		},
	})
	return rest.NewClient(endpoints, nil), server
}

func TestBlogCreateMultipart(t *testing.T) {
	var (
		gotPath        string
		gotContentType string
		gotSlug        string
		gotTags        []string
		gotFileName    string
	)

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("ParseMultipartForm() error = %v", err)
		}
		gotSlug = r.FormValue("slug")
		if err := json.Unmarshal([]byte(r.FormValue("tags")), &gotTags); err != nil {
			t.Fatalf("tags field is not JSON: %v", err)
		}
		if _, header, err := r.FormFile("cover_image"); err == nil {
			gotFileName = header.Filename
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"blog": map[string]any{"blog_id": "b-1", "title": "Launch Day"},
		})
	}))

	provider := NewBlog(client, nil)
	record, err := provider.Create(context.Background(), map[string]any{
		"title":   "Launch Day",
		"content": "All the details of the launch, at length.",
		"status":  "Draft",
		"author":  "ops",
		"tags":    []string{"go", "release"},
		"cover_image": &interfaces.FileUpload{
			Name:        "cover.png",
			ContentType: "image/png",
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if gotPath != "/api/v1/blogs" {
		t.Fatalf("path = %q, want /api/v1/blogs", gotPath)
	}
	if gotContentType == "" || gotContentType == "application/json" {
		t.Fatalf("expected multipart content type, got %q", gotContentType)
	}
	if gotSlug != "launch-day" {
		t.Fatalf("slug = %q, want launch-day", gotSlug)
	}
	if len(gotTags) != 2 {
		t.Fatalf("tags = %v, want 2 entries", gotTags)
	}
	if gotFileName != "cover.png" {
		t.Fatalf("file name = %q, want cover.png", gotFileName)
	}
	if record.ID("blog_id") != "b-1" {
		t.Fatalf("record id = %q, want b-1", record.ID("blog_id"))
	}
}

func TestSettingSingletonAndRemap(t *testing.T) {
	var (
		gotPath    string
		gotPayload map[string]any
	)

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Method == http.MethodPut {
			if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
				t.Fatalf("decode payload: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"setting": map[string]any{
				"setting_id":       "s-1",
				"facebook_link":    "https://facebook.com/acme",
				"maintenance_mode": true,
			},
		})
	}))

	provider := NewSetting(client, "s-1", nil)

	record, err := provider.Update(context.Background(), "ignored-id", map[string]any{
		"facebook_url":    "https://facebook.com/acme",
		"maintenace_mode": true,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if gotPath != "/api/v1/settings/s-1" {
		t.Fatalf("path = %q, want singleton id to win", gotPath)
	}
	if gotPayload["facebook_link"] != "https://facebook.com/acme" {
		t.Fatalf("outbound remap missing, payload = %v", gotPayload)
	}
	if _, ok := gotPayload["facebook_url"]; ok {
		t.Fatalf("client key leaked to backend: %v", gotPayload)
	}
	if gotPayload["maintenance_mode"] != true {
		t.Fatalf("maintenance_mode = %v, want true", gotPayload["maintenance_mode"])
	}

	if record["facebook_url"] != "https://facebook.com/acme" {
		t.Fatalf("inbound remap missing, record = %v", record)
	}
	if _, ok := record["facebook_link"]; ok {
		t.Fatalf("backend key leaked to client: %v", record)
	}
	if record["maintenace_mode"] != true {
		t.Fatalf("maintenace_mode = %v, want true", record["maintenace_mode"])
	}
}

func TestSettingMaintenanceModeRoundTrip(t *testing.T) {
	var gotPayload map[string]any

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
				t.Fatalf("decode payload: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"setting": map[string]any{
				"setting_id":       "s-1",
				"site_name":        "Acme",
				"maintenance_mode": true,
			},
		})
	}))

	input := schemas.SettingInput{SiteName: "Acme", MaintenanceMode: true}
	if err := input.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	provider := NewSetting(client, "s-1", nil)
	record, err := provider.Update(context.Background(), "", input.Values())
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if gotPayload["maintenance_mode"] != true {
		t.Fatalf("maintenance_mode = %v, want true", gotPayload["maintenance_mode"])
	}
	if _, ok := gotPayload["maintenace_mode"]; ok {
		t.Fatalf("client key leaked to backend: %v", gotPayload)
	}

	raw, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var rehydrated schemas.SettingInput
	if err := json.Unmarshal(raw, &rehydrated); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !rehydrated.MaintenanceMode {
		t.Fatalf("maintenance mode lost on read, record = %v", record)
	}
}

func TestGalleryCreateCarriesCaptionAndSortOrder(t *testing.T) {
	var gotForm map[string][]string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("ParseMultipartForm() error = %v", err)
		}
		gotForm = r.MultipartForm.Value
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"gallery_image": map[string]any{"gallery_id": "g-1"},
		})
	}))

	input := schemas.GalleryInput{
		Title:     "Launch",
		Caption:   "Doors opening",
		Status:    "Published",
		SortOrder: 3,
		Image:     &schemas.FileUpload{Name: "door.png", ContentType: "image/png"},
	}
	if err := input.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	provider := NewGallery(client, nil)
	if _, err := provider.Create(context.Background(), input.Values()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if got := gotForm["caption"]; len(got) != 1 || got[0] != "Doors opening" {
		t.Fatalf("caption = %v, want [Doors opening]", got)
	}
	if got := gotForm["sort_order"]; len(got) != 1 || got[0] != "3" {
		t.Fatalf("sort_order = %v, want [3]", got)
	}
}

func TestRegistryFallsBackToGeneric(t *testing.T) {
	var gotPath string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data":  []any{map[string]any{"id": "1"}},
			"total": 1,
		})
	}))

	registry := NewRegistry(client, "s-1", nil)
	if registry.Registered("webhooks") {
		t.Fatalf("webhooks should not have a custom provider")
	}

	result, err := registry.Resolve("webhooks").GetList(context.Background(), interfaces.ListParams{})
	if err != nil {
		t.Fatalf("GetList() error = %v", err)
	}
	if gotPath != "/api/v1/webhooks" {
		t.Fatalf("path = %q, want /api/v1/webhooks", gotPath)
	}
	if result.Total != 1 {
		t.Fatalf("Total = %d, want 1", result.Total)
	}
}

func TestReadOnlyProvidersRejectWrites(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
	}))

	contacts := NewContact(client, nil)
	if _, err := contacts.Create(context.Background(), map[string]any{"name": "x"}); !errors.Is(err, ErrWriteUnsupported) {
		t.Fatalf("contacts Create error = %v, want ErrWriteUnsupported", err)
	}

	users := NewUsers(client, nil)
	if _, err := users.Update(context.Background(), "u-1", map[string]any{}); !errors.Is(err, ErrWriteUnsupported) {
		t.Fatalf("users Update error = %v, want ErrWriteUnsupported", err)
	}
	if _, err := users.DeleteOne(context.Background(), "u-1"); !errors.Is(err, ErrDeleteUnsupported) {
		t.Fatalf("users DeleteOne error = %v, want ErrDeleteUnsupported", err)
	}
}

func TestGetListPassesQueryThrough(t *testing.T) {
	var gotQuery map[string][]string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"faqs": []any{}, "total": 0})
	}))

	provider := NewFAQ(client, nil)
	_, err := provider.GetList(context.Background(), interfaces.ListParams{
		Pagination: interfaces.Pagination{Page: 2, PerPage: 5},
		Sort:       interfaces.Sort{Field: "question", Order: interfaces.SortDescending},
		Filters: []interfaces.Filter{
			{Field: "status", Operator: interfaces.FilterOperatorEquals, Value: "Published"},
		},
	})
	if err != nil {
		t.Fatalf("GetList() error = %v", err)
	}

	if got := gotQuery["_start"]; len(got) != 1 || got[0] != "5" {
		t.Fatalf("_start = %v, want [5]", got)
	}
	if got := gotQuery["_order"]; len(got) != 1 || got[0] != "DESC" {
		t.Fatalf("_order = %v, want [DESC]", got)
	}
	if got := gotQuery["status"]; len(got) != 1 || got[0] != "Published" {
		t.Fatalf("status = %v, want [Published]", got)
	}
}

func TestNotFoundSurfacesWrappedError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"missing"}`, http.StatusNotFound)
	}))

	provider := NewFAQ(client, nil)
	_, err := provider.GetOne(context.Background(), "nope")
	if err == nil {
		t.Fatalf("expected error for 404")
	}
	var statusErr *rest.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError in chain, got %v", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("StatusCode = %d, want 404", statusErr.StatusCode)
	}
}
