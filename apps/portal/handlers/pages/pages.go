package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"promoadmin/apps/portal/handlers/middleware"
	"promoadmin/internal/backend"
	"promoadmin/internal/session"
	"promoadmin/internal/structs"
	"promoadmin/pkg/config"
	"promoadmin/pkg/logger"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		Root(c *gin.Context)
		LoginPage(c *gin.Context)
		RegisterPage(c *gin.Context)
		AdminDashboard(c *gin.Context)
		UserDashboard(c *gin.Context)
		CreateUserPage(c *gin.Context)
		EditUserPage(c *gin.Context)
		CreatePromotionPage(c *gin.Context)
		EditPromotionPage(c *gin.Context)
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

func (h *handler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

// LoginPage destroys any session still attached to the browser before
// rendering, so a stale login never leaks into a fresh attempt.
func (h *handler) LoginPage(c *gin.Context) {
	ctx := c.Request.Context()

	if id, err := c.Cookie(h.cookie); err == nil {
		if err := h.sessions.Destroy(ctx, id); err != nil {
			h.logger.Warn(ctx, " err on sessions.Destroy", zap.Error(err))
		}
		c.SetCookie(h.cookie, "", -1, "/", "", false, true)
	}

	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *handler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (h *handler) AdminDashboard(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Username": sess.Username,
	})
}

func (h *handler) UserDashboard(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)

	c.HTML(http.StatusOK, "user_dashboard.html", gin.H{
		"Username": sess.Username,
	})
}

func (h *handler) CreateUserPage(c *gin.Context) {
	c.HTML(http.StatusOK, "user_form.html", gin.H{
		"Record": structs.User{Role: structs.RoleUser},
	})
}

// EditUserPage fetches the full record before rendering the form.
func (h *handler) EditUserPage(c *gin.Context) {
	var (
		ctx = c.Request.Context()
		id  = cast.ToInt64(c.Param("id"))
	)

	sess, _ := middleware.SessionFrom(c)

	user, err := h.backend.GetUser(ctx, sess.Token, id)
	if err != nil {
		h.logger.Error(ctx, " err on backend.GetUser", zap.Error(err))
		c.Redirect(http.StatusFound, structs.DashboardPath(sess.Role))
		return
	}
	user.Password = ""

	c.HTML(http.StatusOK, "user_form.html", gin.H{
		"Record":   user,
		"Existing": true,
	})
}

func (h *handler) CreatePromotionPage(c *gin.Context) {
	c.HTML(http.StatusOK, "promotion_form.html", gin.H{
		"Record": structs.Promotion{},
	})
}

func (h *handler) EditPromotionPage(c *gin.Context) {
	var (
		ctx = c.Request.Context()
		id  = cast.ToInt64(c.Param("id"))
	)

	sess, _ := middleware.SessionFrom(c)

	promotion, err := h.backend.GetPromotion(ctx, sess.Token, id)
	if err != nil {
		h.logger.Error(ctx, " err on backend.GetPromotion", zap.Error(err))
		c.Redirect(http.StatusFound, structs.DashboardPath(sess.Role))
		return
	}
	promotion.BannerImageUrl = h.backend.BannerURL(promotion.BannerImageUrl)

	c.HTML(http.StatusOK, "promotion_form.html", gin.H{
		"Record":   promotion,
		"Existing": true,
	})
}
