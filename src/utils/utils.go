package utils

import (
	"log/slog"
	"ontap-models/src/interfaces"
	"ontap-models/src/logging"
)

var config interfaces.ConfigModule
var utilsLogger *slog.Logger

func Setup(logManagerModule logging.LogManagerModule, configModule interfaces.ConfigModule) {
	utilsLogger = logManagerModule.CreateLogger("utils")
	config = configModule
}

func Pointer[T any](value T) *T {
	return &value
}
