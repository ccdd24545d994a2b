package app

import (
	"strings"
	"time"

	"github.com/grapplelog/grapplelog-backend/internal/platform/envutil"
	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
)

type Config struct {
	ServiceName    string
	Environment    string
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	AllowOrigins   []string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := envutil.Str("JWT_SECRET_KEY", "defaultsecret")
	if jwtSecretKey == "defaultsecret" {
		log.Warn("JWT_SECRET_KEY not set, using insecure default")
	}
	accessTokenTTLSeconds := envutil.Int("ACCESS_TOKEN_TTL", 3600)

	var origins []string
	for _, o := range strings.Split(envutil.Str("CORS_ALLOW_ORIGINS", ""), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		ServiceName:    envutil.Str("SERVICE_NAME", "grapplelog-backend"),
		Environment:    envutil.Str("ENVIRONMENT", "development"),
		JWTSecretKey:   jwtSecretKey,
		AccessTokenTTL: time.Duration(accessTokenTTLSeconds) * time.Second,
		AllowOrigins:   origins,
	}
}
