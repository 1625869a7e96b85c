package logger

import (
	"os"

	"go.uber.org/zap"
)

// New uygulama genelinde kullanılan zap logger'ı oluşturur
func New() *zap.Logger {
	if os.Getenv("APP_ENV") == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
