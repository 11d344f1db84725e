package error

import (
	"movie_vault/configs"
	"movie_vault/pkg/logger"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

func SaveError(message string, err error) {
	if configs.GetConfigs().PrintErrors {
		logger.L().Error(message, zap.Error(err))
	}

	if err == nil {
		sentry.CaptureMessage(message)
	} else {
		sentry.CaptureException(err)
	}
}
