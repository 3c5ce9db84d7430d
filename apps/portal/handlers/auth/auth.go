package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"promoadmin/internal/backend"
	"promoadmin/internal/forms"
	"promoadmin/internal/responses"
	"promoadmin/internal/session"
	"promoadmin/internal/structs"
	"promoadmin/pkg/config"
	"promoadmin/pkg/logger"
	"promoadmin/pkg/reply"
	"promoadmin/pkg/utils"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		Login(c *gin.Context)
		Logout(c *gin.Context)
		Register(c *gin.Context)
	}

	Params struct {
		fx.In

		Logger   logger.Logger
		Config   config.IConfig
		Backend  backend.Client
		Sessions session.Service
	}

	handler struct {
		logger   logger.Logger
		cookie   string
		backend  backend.Client
		sessions session.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:   p.Logger,
		cookie:   p.Config.GetString("session.cookie"),
		backend:  p.Backend,
		sessions: p.Sessions,
	}
}

// Login validates the credentials draft, exchanges it with the backend
// and opens a server-side session. The payload tells the page which
// dashboard the role lands on.
func (h *handler) Login(c *gin.Context) {
	var (
		response structs.Response
		request  structs.LoginDraft
		ctx      = c.Request.Context()
	)

	defer reply.Json(ctx, c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	if errs := forms.ValidateLogin(request); len(errs) > 0 {
		response = responses.Success
		response.Payload = forms.Outcome{Message: forms.FixErrorsMessage, Errors: errs}
		return
	}

	login, err := h.backend.Login(ctx, request)
	if err != nil {
		response = responses.Success
		response.Payload = forms.Outcome{Message: loginError(err)}
		return
	}

	if utils.StrEmpty(login.AccessToken) {
		response = responses.Success
		response.Payload = forms.Outcome{Message: "Login failed"}
		return
	}

	id, err := h.sessions.Create(ctx, structs.Session{
		Token:    login.AccessToken,
		Role:     login.Role,
		Username: request.Username,
	})
	if err != nil {
		h.logger.Error(ctx, " err on sessions.Create", zap.Error(err))
		response = responses.InternalErr
		return
	}

	c.SetCookie(h.cookie, id, 0, "/", "", false, true)

	response = responses.Success
	response.Payload = forms.Outcome{
		Success:  true,
		Redirect: structs.DashboardPath(login.Role),
	}
}

func loginError(err error) string {
	var apiErr *structs.APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return "Login failed"
}

func (h *handler) Logout(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(ctx, c.Writer, http.StatusOK, &response)

	if id, err := c.Cookie(h.cookie); err == nil {
		if err := h.sessions.Destroy(ctx, id); err != nil {
			h.logger.Warn(ctx, " err on sessions.Destroy", zap.Error(err))
		}
	}
	c.SetCookie(h.cookie, "", -1, "/", "", false, true)

	response = responses.Success
}

// Register runs the user validator with the role pinned to USER and
// posts the record unauthenticated.
func (h *handler) Register(c *gin.Context) {
	var (
		response structs.Response
		request  structs.UserDraft
		ctx      = c.Request.Context()
	)

	defer reply.Json(ctx, c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	request.Existing = false
	request.Role = structs.RoleUser

	outcome := forms.Submit(ctx, forms.ValidateUser(request),
		func(ctx context.Context) error {
			_, err := h.backend.CreateUser(ctx, "", request.Record())
			return err
		},
		"Registration successful! Redirecting to login...",
		loginPath,
	)

	response = responses.Success
	response.Payload = outcome
}

const loginPath = "/users/login"
