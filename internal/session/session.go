package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"promoadmin/internal/structs"
	"promoadmin/pkg/config"
	"promoadmin/pkg/logger"
	"promoadmin/pkg/redis"
	"promoadmin/pkg/utils"
)

var (
	Module = fx.Provide(New)
)

const keyPrefix = "session:"

type (
	Service interface {
		Create(ctx context.Context, sess structs.Session) (string, error)
		Get(ctx context.Context, id string) (structs.Session, error)
		Destroy(ctx context.Context, id string) error
	}

	Params struct {
		fx.In

		Logger logger.Logger
		Config config.IConfig
		Redis  redis.Client
	}

	service struct {
		logger logger.Logger
		config config.IConfig
		redis  redis.Client
	}
)

func New(p Params) Service {
	return &service{
		logger: p.Logger,
		config: p.Config,
		redis:  p.Redis,
	}
}

// Create persists the session and returns its id. The lifetime follows
// the access token's exp claim when the token carries one, otherwise the
// configured TTL.
func (s *service) Create(ctx context.Context, sess structs.Session) (string, error) {
	id := uuid.NewString()

	ttl := s.config.GetDuration("session.ttl")
	if exp, err := utils.TokenExpiry(sess.Token); err == nil {
		if remaining := time.Until(exp); remaining > 0 {
			ttl = remaining
		}
	}

	ok, err := s.redis.SaveObj(ctx, keyPrefix+id, sess, ttl)
	if err != nil {
		s.logger.Error(ctx, " err on redis.SaveObj", zap.Error(err))
		return "", err
	}
	if !ok {
		return "", errors.New("session id collision")
	}

	return id, nil
}

func (s *service) Get(ctx context.Context, id string) (structs.Session, error) {
	var sess structs.Session

	if utils.StrEmpty(id) {
		return sess, structs.ErrSessionNotFound
	}

	err := s.redis.FindObj(ctx, keyPrefix+id, &sess)
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return sess, structs.ErrSessionNotFound
		}
		s.logger.Error(ctx, " err on redis.FindObj", zap.Error(err))
		return sess, err
	}

	return sess, nil
}

func (s *service) Destroy(ctx context.Context, id string) error {
	if utils.StrEmpty(id) {
		return nil
	}
	return s.redis.Delete(ctx, keyPrefix+id)
}
