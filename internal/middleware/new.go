package middleware

import (
	"trello-sheets-sync/config"
	"trello-sheets-sync/pkg/log"
)

type Middleware struct {
	l       log.Logger
	secret  string
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.TriggerConfig) Middleware {
	return Middleware{
		l:       l,
		secret:  cfg.Secret,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
