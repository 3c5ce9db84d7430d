package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"promoadmin/apps/portal/handlers/auth"
	"promoadmin/apps/portal/handlers/middleware"
	"promoadmin/apps/portal/handlers/pages"
	"promoadmin/apps/portal/handlers/promotions"
	"promoadmin/apps/portal/handlers/users"
	"promoadmin/internal/structs"
	"promoadmin/pkg/config"
	"promoadmin/pkg/logger"
)

var Module = fx.Options(
	fx.Invoke(
		NewRouter,
	),
)

type Params struct {
	fx.In

	middleware.Middleware
	Lifecycle  fx.Lifecycle
	Config     config.IConfig
	Logger     logger.Logger
	Auth       auth.Handler
	Pages      pages.Handler
	Users      users.Handler
	Promotions promotions.Handler
}

func NewRouter(params Params) {
	r := gin.New()
	r.Use(params.Ctx(), gin.Logger(), gin.Recovery())
	r.LoadHTMLGlob("templates/*")

	// Pages
	r.GET("/", params.Pages.Root)
	r.GET("/users/login", params.Pages.LoginPage)
	r.GET("/admins", params.Pages.RegisterPage)
	r.GET("/admins/dashboard", params.PageAuth(structs.RoleAdmin), params.Pages.AdminDashboard)
	r.GET("/users/dashboard", params.PageAuth(structs.RoleUser), params.Pages.UserDashboard)
	r.GET("/create-user", params.PageAuth(structs.RoleAdmin), params.Pages.CreateUserPage)
	r.GET("/edit-user/:id", params.PageAuth(structs.RoleAdmin), params.Pages.EditUserPage)
	r.GET("/create-promotion", params.PageAuth(structs.RoleAdmin), params.Pages.CreatePromotionPage)
	r.GET("/edit-promotion/:id", params.PageAuth(structs.RoleAdmin), params.Pages.EditPromotionPage)

	baseUrl := "/api/v1"
	out := r.Group(baseUrl)

	authGroup := out.Group("/auth")
	{
		authGroup.POST("/login", params.Auth.Login)
		authGroup.POST("/logout", params.Auth.Logout)
		authGroup.POST("/register", params.Auth.Register)
	}

	api := r.Group(baseUrl)
	api.Use(params.APIAuth())

	userGroup := api.Group("/users")
	{
		userGroup.POST("/", params.Users.CreateUser)
		userGroup.GET("/", params.Users.GetListUser)
		userGroup.GET("/:id", params.Users.GetByIDUser)
		userGroup.PUT("/:id", params.Users.UpdateUser)
		userGroup.DELETE("/:id", params.Users.DeleteUser)
	}

	promotionGroup := api.Group("/promotions")
	{
		promotionGroup.POST("/", params.Promotions.CreatePromotion)
		promotionGroup.GET("/", params.Promotions.GetListPromotion)
		promotionGroup.GET("/:id", params.Promotions.GetByIDPromotion)
		promotionGroup.PUT("/:id", params.Promotions.UpdatePromotion)
		promotionGroup.DELETE("/:id", params.Promotions.DeletePromotion)
	}

	server := http.Server{
		Addr: params.Config.GetString("server.port"),
		Handler: cors.New(cors.Options{
			AllowedHeaders:   []string{"*"},
			AllowedOrigins:   params.Config.GetStringSlice("cors.allowed_origins"),
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}).Handler(r),
	}

	params.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Starting application")
				go func() {
					if err := server.ListenAndServe(); err != nil {
						params.Logger.Error(ctx, "Err on ListenAndServe", zap.Error(err))
					}
				}()

				params.Logger.Info(ctx, "Application starting on port", zap.String("port", params.Config.GetString("server.port")))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Application stopped")
				return server.Shutdown(ctx)
			},
		},
	)
}
