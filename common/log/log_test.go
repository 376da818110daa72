package log

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogger(t *testing.T) {
	defer Sync()
	SetLevel(zapcore.DebugLevel)
	Info("Testing", zap.String("component", "log"))
	Debug("Testing")
	Warn("Testing")
	Error("Testing")
	With(zap.Int("n", 1)).Info("Testing")
	defer func() {
		if err := recover(); err != nil {
			Debug("logPanic recover")
		}
	}()
	Panic("Testing")
}
