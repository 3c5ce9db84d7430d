package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"promoadmin/internal/responses"
	"promoadmin/internal/session"
	"promoadmin/internal/structs"
	"promoadmin/pkg/config"
	"promoadmin/pkg/logger"
	"promoadmin/pkg/reply"
)

var (
	Module = fx.Provide(NewMiddleware)
)

const (
	sessionCtxKey = "portal_session"
	LoginPath     = "/users/login"
)

type (
	Middleware interface {
		Ctx() gin.HandlerFunc
		PageAuth(role string) gin.HandlerFunc
		APIAuth() gin.HandlerFunc
	}

	Params struct {
		fx.In

		Logger   logger.Logger
		Config   config.IConfig
		Sessions session.Service
	}

	mw struct {
		logger   logger.Logger
		cookie   string
		sessions session.Service
	}
)

func NewMiddleware(params Params) Middleware {
	return &mw{
		logger:   params.Logger,
		cookie:   params.Config.GetString("session.cookie"),
		sessions: params.Sessions,
	}
}

func (m *mw) Ctx() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := m.logger.Context(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// PageAuth guards an HTML page behind a role. A missing session or a
// role mismatch redirects to the login page instead of answering JSON.
func (m *mw) PageAuth(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := m.load(c)
		if err != nil || sess.Role != role {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set(sessionCtxKey, sess)
		c.Next()
	}
}

// APIAuth guards the portal JSON API: any live session passes, the
// backend enforces the real authorization.
func (m *mw) APIAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := m.load(c)
		if err != nil {
			response := responses.Unauthorized

			c.Abort()
			reply.Json(c.Request.Context(), c.Writer, responses.UnauthorizedCode, &response)
			return
		}

		c.Set(sessionCtxKey, sess)
		c.Next()
	}
}

func (m *mw) load(c *gin.Context) (structs.Session, error) {
	ctx := c.Request.Context()

	id, err := c.Cookie(m.cookie)
	if err != nil {
		return structs.Session{}, structs.ErrSessionNotFound
	}

	sess, err := m.sessions.Get(ctx, id)
	if err != nil {
		if err != structs.ErrSessionNotFound {
			m.logger.Error(ctx, " err on sessions.Get", zap.Error(err))
		}
		return structs.Session{}, err
	}

	return sess, nil
}

// SessionFrom returns the session a guard middleware stored on the
// request.
func SessionFrom(c *gin.Context) (structs.Session, bool) {
	v, ok := c.Get(sessionCtxKey)
	if !ok {
		return structs.Session{}, false
	}

	sess, ok := v.(structs.Session)
	return sess, ok
}
