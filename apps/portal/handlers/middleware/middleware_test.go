package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"promoadmin/internal/responses"
	"promoadmin/internal/structs"
	"promoadmin/pkg/logger"
	"promoadmin/pkg/reply"
)

func init() {
	gin.SetMode(gin.TestMode)
	reply.New(reply.Params{Logger: logger.New("error")})
}

type stubSessions struct {
	get func(ctx context.Context, id string) (structs.Session, error)
}

func (s *stubSessions) Create(ctx context.Context, sess structs.Session) (string, error) {
	return "", nil
}

func (s *stubSessions) Get(ctx context.Context, id string) (structs.Session, error) {
	return s.get(ctx, id)
}

func (s *stubSessions) Destroy(ctx context.Context, id string) error {
	return nil
}

type stubConfig struct{}

func (stubConfig) Get(key string) interface{}           { return nil }
func (stubConfig) GetBool(key string) bool              { return false }
func (stubConfig) GetInt(key string) int                { return 0 }
func (stubConfig) GetString(key string) string          { return "portal_session" }
func (stubConfig) GetStringSlice(key string) []string   { return nil }
func (stubConfig) GetDuration(key string) time.Duration { return 0 }

func newTestMiddleware(sessions *stubSessions) Middleware {
	return NewMiddleware(Params{
		Logger:   logger.New("error"),
		Config:   stubConfig{},
		Sessions: sessions,
	})
}

func pageRequest(t *testing.T, m Middleware, role, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	r := gin.New()
	r.GET("/dashboard", m.PageAuth(role), func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok {
			t.Error("session missing from guarded request")
		}
		c.String(http.StatusOK, sess.Username)
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "portal_session", Value: cookie})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPageAuth_NoCookieRedirects(t *testing.T) {
	m := newTestMiddleware(&stubSessions{
		get: func(ctx context.Context, id string) (structs.Session, error) {
			t.Error("the store must not be hit without a cookie")
			return structs.Session{}, structs.ErrSessionNotFound
		},
	})

	w := pageRequest(t, m, structs.RoleAdmin, "")
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != LoginPath {
		t.Fatalf("expected redirect to %s, got %q", LoginPath, got)
	}
}

func TestPageAuth_RoleMismatchRedirects(t *testing.T) {
	m := newTestMiddleware(&stubSessions{
		get: func(ctx context.Context, id string) (structs.Session, error) {
			return structs.Session{Role: structs.RoleUser, Username: "jane"}, nil
		},
	})

	w := pageRequest(t, m, structs.RoleAdmin, "sess-1")
	if w.Code != http.StatusFound {
		t.Fatalf("a USER session must not reach an ADMIN page, got %d", w.Code)
	}
}

func TestPageAuth_MatchingRolePasses(t *testing.T) {
	m := newTestMiddleware(&stubSessions{
		get: func(ctx context.Context, id string) (structs.Session, error) {
			if id != "sess-1" {
				t.Errorf("unexpected session id %q", id)
			}
			return structs.Session{Role: structs.RoleAdmin, Username: "jane"}, nil
		},
	})

	w := pageRequest(t, m, structs.RoleAdmin, "sess-1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "jane" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestAPIAuth_MissingSession(t *testing.T) {
	m := newTestMiddleware(&stubSessions{
		get: func(ctx context.Context, id string) (structs.Session, error) {
			return structs.Session{}, structs.ErrSessionNotFound
		},
	})

	r := gin.New()
	r.GET("/api/v1/users", m.APIAuth(), func(c *gin.Context) {
		t.Error("handler must not run without a session")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: "stale"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != responses.UnauthorizedCode {
		t.Fatalf("expected %d, got %d", responses.UnauthorizedCode, w.Code)
	}

	var resp structs.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if resp.Status != responses.Unauthorized.Status {
		t.Fatalf("unexpected envelope %+v", resp)
	}
}

func TestAPIAuth_LiveSessionPasses(t *testing.T) {
	m := newTestMiddleware(&stubSessions{
		get: func(ctx context.Context, id string) (structs.Session, error) {
			return structs.Session{Token: "tok", Role: structs.RoleUser}, nil
		},
	})

	r := gin.New()
	r.GET("/api/v1/promotions", m.APIAuth(), func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok || sess.Token != "tok" {
			t.Errorf("session not carried through, got %+v ok=%v", sess, ok)
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/promotions", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: "sess-1"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
