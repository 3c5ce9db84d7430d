package internal

import (
	"go.uber.org/fx"

	"promoadmin/internal/backend"
	"promoadmin/internal/session"
)

var Module = fx.Options(
	backend.Module,
	session.Module,
)
