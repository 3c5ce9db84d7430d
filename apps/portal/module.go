package portal

import (
	"go.uber.org/fx"

	"promoadmin/apps/portal/handlers"
)

var Module = fx.Options(
	handlers.Module,
)
