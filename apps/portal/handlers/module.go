package handlers

import (
	"go.uber.org/fx"

	"promoadmin/apps/portal/handlers/auth"
	"promoadmin/apps/portal/handlers/middleware"
	"promoadmin/apps/portal/handlers/pages"
	"promoadmin/apps/portal/handlers/promotions"
	"promoadmin/apps/portal/handlers/users"
)

var Module = fx.Options(
	middleware.Module,
	auth.Module,
	pages.Module,
	users.Module,
	promotions.Module,
)
