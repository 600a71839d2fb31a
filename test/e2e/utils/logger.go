package utils

import (
	"strconv"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// NewLogger builds the development-mode logger of the suites. TEST_LOG_LEVEL
// follows the zap convention, negative values enable debug output.
func NewLogger() logr.Logger {
	level, err := strconv.Atoi(GetEnvWithDefault("TEST_LOG_LEVEL", "0"))
	ExpectNoError(err)
	return zap.New(
		zap.UseDevMode(true),
		zap.Level(zapcore.Level(level)),
	)
}
