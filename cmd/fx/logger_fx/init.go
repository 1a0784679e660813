package logger_fx

import (
	"go.uber.org/fx"
	"famboard/pkg/logger"
)

var Module = fx.Provide(
	logger.NewLogger)
