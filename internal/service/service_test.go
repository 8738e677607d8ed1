package service

import (
	"testing"
	"time"

	"github.com/wb-go/wbf/logger"
)

var testNow = time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}
