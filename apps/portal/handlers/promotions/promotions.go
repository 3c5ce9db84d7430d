package promotions

import (
	"context"
	"errors"
	"mime/multipart"
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
		CreatePromotion(c *gin.Context)
		GetListPromotion(c *gin.Context)
		GetByIDPromotion(c *gin.Context)
		UpdatePromotion(c *gin.Context)
		DeletePromotion(c *gin.Context)
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

// CreatePromotion reads the multipart form, validates the draft with the
// banner mandatory, and forwards the upload to the backend. The redirect
// after success follows the session's role.
func (h *handler) CreatePromotion(c *gin.Context) {
	h.submit(c, false)
}

// UpdatePromotion re-reads the multipart form; a missing banner part
// keeps the stored image server-side.
func (h *handler) UpdatePromotion(c *gin.Context) {
	h.submit(c, true)
}

func (h *handler) submit(c *gin.Context, existing bool) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(ctx, c.Writer, http.StatusOK, &response)

	draft := structs.PromotionDraft{
		Name:      c.PostForm("name"),
		StartDate: c.PostForm("startDate"),
		EndDate:   c.PostForm("endDate"),
		Existing:  existing,
	}

	fileHeader, err := c.FormFile("banner")
	if err != nil && err != http.ErrMissingFile {
		h.logger.Warn(ctx, " error parse multipart form", zap.Error(err))
		response = responses.BadRequest
		return
	}
	draft.HasBanner = fileHeader != nil

	sess, _ := middleware.SessionFrom(c)

	var (
		successMsg = "Promotion created successfully!"
		id         int64
	)
	if existing {
		successMsg = "Promotion updated successfully!"
		id = cast.ToInt64(c.Param("id"))
	}

	outcome := forms.Submit(ctx, forms.ValidatePromotion(draft),
		func(ctx context.Context) error {
			return h.send(ctx, sess.Token, id, draft, fileHeader, existing)
		},
		successMsg,
		structs.DashboardPath(sess.Role),
	)

	response = responses.Success
	response.Payload = outcome
}

func (h *handler) send(ctx context.Context, token string, id int64, draft structs.PromotionDraft, fileHeader *multipart.FileHeader, existing bool) error {
	up := structs.PromotionUpload{
		Name:      draft.Name,
		StartDate: draft.StartDate,
		EndDate:   draft.EndDate,
	}

	if fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return err
		}
		defer file.Close()

		up.Banner = file
		up.BannerName = fileHeader.Filename
	}

	if existing {
		_, err := h.backend.UpdatePromotion(ctx, token, id, up)
		return err
	}
	_, err := h.backend.CreatePromotion(ctx, token, up)
	return err
}

// GetListPromotion rewrites banner paths to absolute backend URLs so the
// table can render previews directly. A failed fetch degrades to an
// empty list, logged only.
func (h *handler) GetListPromotion(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(ctx, c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)

	list, err := h.backend.ListPromotions(ctx, sess.Token)
	if err != nil {
		h.logger.Error(ctx, " err on backend.ListPromotions", zap.Error(err))
		list = []structs.Promotion{}
	}
	if list == nil {
		list = []structs.Promotion{}
	}

	for i := range list {
		list[i].BannerImageUrl = h.backend.BannerURL(list[i].BannerImageUrl)
	}

	response = responses.Success
	response.Payload = list
}

func (h *handler) GetByIDPromotion(c *gin.Context) {
	var (
		response structs.Response
		idStr    = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(ctx, c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	id := cast.ToInt64(idStr)

	promotion, err := h.backend.GetPromotion(ctx, sess.Token, id)
	if err != nil {
		var apiErr *structs.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, " err on backend.GetPromotion", zap.Error(err))
		response = responses.InternalErr
		return
	}

	promotion.BannerImageUrl = h.backend.BannerURL(promotion.BannerImageUrl)

	response = responses.Success
	response.Payload = promotion
}

func (h *handler) DeletePromotion(c *gin.Context) {
	var (
		response structs.Response
		idStr    = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(ctx, c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	id := cast.ToInt64(idStr)

	err := h.backend.DeletePromotion(ctx, sess.Token, id)
	if err != nil {
		h.logger.Error(ctx, " err on backend.DeletePromotion", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
}
