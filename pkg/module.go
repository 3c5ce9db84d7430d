package pkg

import (
	"go.uber.org/fx"

	"promoadmin/pkg/config"
	"promoadmin/pkg/logger"
	"promoadmin/pkg/redis"
	"promoadmin/pkg/reply"
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	reply.Module,
	redis.Module,
)
