package testutil

import (
	"io"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0, "text")
}
