package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/config"
)

// New builds the application logger: JSON in production, console output otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)

	switch cfg.Env {
	case "production":
		log, err = zap.NewProduction()
	case "test":
		return zap.NewNop(), nil
	default:
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return log.Named("flagquiz").With(zap.String("env", cfg.Env)), nil
}
