package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"promoadmin/apps/portal/handlers/middleware"
	"promoadmin/internal/backend"
	"promoadmin/internal/forms"
	"promoadmin/internal/responses"
	"promoadmin/internal/structs"
	"promoadmin/pkg/logger"
	"promoadmin/pkg/reply"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		CreateUser(c *gin.Context)
		GetListUser(c *gin.Context)
		GetByIDUser(c *gin.Context)
		UpdateUser(c *gin.Context)
		DeleteUser(c *gin.Context)
	}

	Params struct {
		fx.In

		Logger  logger.Logger
		Backend backend.Client
	}

	handler struct {
		logger  logger.Logger
		backend backend.Client
	}
)

func New(p Params) Handler {
	return &handler{
		logger:  p.Logger,
		backend: p.Backend,
	}
}

func (h *handler) CreateUser(c *gin.Context) {
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

	sess, _ := middleware.SessionFrom(c)
	request.Existing = false
	if request.Role == "" {
		request.Role = structs.RoleUser
	}

	outcome := forms.Submit(ctx, forms.ValidateUser(request),
		func(ctx context.Context) error {
			_, err := h.backend.CreateUser(ctx, sess.Token, request.Record())
			return err
		},
		"User created successfully!",
		structs.DashboardPath(structs.RoleAdmin),
	)

	response = responses.Success
	response.Payload = outcome
}

// GetListUser degrades to an empty list when the backend fetch fails;
// the failure is logged, never surfaced to the table.
func (h *handler) GetListUser(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(ctx, c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)

	list, err := h.backend.ListUsers(ctx, sess.Token)
	if err != nil {
		h.logger.Error(ctx, " err on backend.ListUsers", zap.Error(err))
		list = []structs.User{}
	}
	if list == nil {
		list = []structs.User{}
	}

	response = responses.Success
	response.Payload = list
}

func (h *handler) GetByIDUser(c *gin.Context) {
	var (
		response structs.Response
		idStr    = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(ctx, c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	id := cast.ToInt64(idStr)

	user, err := h.backend.GetUser(ctx, sess.Token, id)
	if err != nil {
		var apiErr *structs.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, " err on backend.GetUser", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = user
}

// UpdateUser leaves the password out of the payload when the draft's
// password is blank; json omitempty drops the field entirely.
func (h *handler) UpdateUser(c *gin.Context) {
	var (
		response structs.Response
		request  structs.UserDraft
		idStr    = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(ctx, c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	sess, _ := middleware.SessionFrom(c)
	id := cast.ToInt64(idStr)
	request.Existing = true

	outcome := forms.Submit(ctx, forms.ValidateUser(request),
		func(ctx context.Context) error {
			_, err := h.backend.UpdateUser(ctx, sess.Token, id, request.Record())
			return err
		},
		"User updated successfully!",
		structs.DashboardPath(structs.RoleAdmin),
	)

	response = responses.Success
	response.Payload = outcome
}

// DeleteUser relays the backend verdict; the page only drops the row on
// a success envelope, a failure is logged and the row stays.
func (h *handler) DeleteUser(c *gin.Context) {
	var (
		response structs.Response
		idStr    = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(ctx, c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	id := cast.ToInt64(idStr)

	err := h.backend.DeleteUser(ctx, sess.Token, id)
	if err != nil {
		h.logger.Error(ctx, " err on backend.DeleteUser", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
}
