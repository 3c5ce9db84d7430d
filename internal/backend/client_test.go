package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"promoadmin/internal/structs"
	"promoadmin/pkg/logger"
)

type testConfig struct {
	strings map[string]string
}

func (c *testConfig) Get(key string) interface{}          { return nil }
func (c *testConfig) GetBool(key string) bool             { return false }
func (c *testConfig) GetInt(key string) int               { return 0 }
func (c *testConfig) GetString(key string) string         { return c.strings[key] }
func (c *testConfig) GetStringSlice(key string) []string  { return nil }
func (c *testConfig) GetDuration(key string) time.Duration { return 0 }

func newTestClient(baseURL string) Client {
	return New(Params{
		Logger: logger.New("error"),
		Config: &testConfig{strings: map[string]string{
			"backend.base_url":   baseURL,
			"backend.api_prefix": "/api",
		}},
	})
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/users/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not carry a bearer token")
		}

		var creds structs.LoginDraft
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("decode credentials: %v", err)
		}
		if creds.Username != "jane" || creds.Password != "secret1" {
			t.Errorf("unexpected credentials %+v", creds)
		}

		json.NewEncoder(w).Encode(structs.LoginResponse{AccessToken: "tok-123", Role: structs.RoleAdmin})
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL).Login(context.Background(), structs.LoginDraft{Username: "jane", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken != "tok-123" || resp.Role != structs.RoleAdmin {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestUpdateUser_OmitsBlankPassword(t *testing.T) {
	var body []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/admins/7" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("unexpected authorization header %q", got)
		}
		body, _ = io.ReadAll(r.Body)
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	user := structs.User{Id: 7, FirstName: "Jane", Username: "janedoe"}
	if _, err := newTestClient(srv.URL).UpdateUser(context.Background(), "tok", 7, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(string(body), "password") {
		t.Fatalf("blank password must be dropped from the payload: %s", body)
	}
}

func TestCreatePromotion_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/promotions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("name"); got != "Summer Sale" {
			t.Errorf("unexpected name %q", got)
		}
		if got := r.FormValue("startDate"); got != "2025-06-01" {
			t.Errorf("unexpected startDate %q", got)
		}
		if got := r.FormValue("endDate"); got != "2025-06-30" {
			t.Errorf("unexpected endDate %q", got)
		}

		file, header, err := r.FormFile("banner")
		if err != nil {
			t.Fatalf("banner part missing: %v", err)
		}
		defer file.Close()
		if header.Filename != "banner.png" {
			t.Errorf("unexpected filename %q", header.Filename)
		}
		content, _ := io.ReadAll(file)
		if string(content) != "png-bytes" {
			t.Errorf("unexpected file content %q", content)
		}

		json.NewEncoder(w).Encode(structs.Promotion{Id: 3, Name: "Summer Sale"})
	}))
	defer srv.Close()

	created, err := newTestClient(srv.URL).CreatePromotion(context.Background(), "tok", structs.PromotionUpload{
		Name:       "Summer Sale",
		StartDate:  "2025-06-01",
		EndDate:    "2025-06-30",
		Banner:     strings.NewReader("png-bytes"),
		BannerName: "banner.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Id != 3 {
		t.Fatalf("unexpected promotion %+v", created)
	}
}

func TestUpdatePromotion_NoBannerPart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if _, _, err := r.FormFile("banner"); err == nil {
			t.Error("a bannerless update must not send a file part")
		}
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).UpdatePromotion(context.Background(), "tok", 3, structs.PromotionUpload{
		Name:      "Summer Sale",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSend_DecodesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Validation failed","errors":{"username":"already exists"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateUser(context.Background(), "tok", structs.User{Username: "janedoe"})

	var apiErr *structs.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "Validation failed" {
		t.Fatalf("unexpected APIError %+v", apiErr)
	}
	if apiErr.Fields["username"] != "already exists" {
		t.Fatalf("field errors lost: %+v", apiErr.Fields)
	}
}

func TestDeleteUser(t *testing.T) {
	var gotPath, gotMethod string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := newTestClient(srv.URL).DeleteUser(context.Background(), "tok", 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/admins/9" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestBannerURL(t *testing.T) {
	c := newTestClient("http://localhost:8080")

	cases := []struct{ in, want string }{
		{"", ""},
		{"/uploads/banner.png", "http://localhost:8080/uploads/banner.png"},
		{"uploads/banner.png", "http://localhost:8080/uploads/banner.png"},
		{"https://cdn.example.com/banner.png", "https://cdn.example.com/banner.png"},
	}

	for _, tc := range cases {
		if got := c.BannerURL(tc.in); got != tc.want {
			t.Errorf("BannerURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
