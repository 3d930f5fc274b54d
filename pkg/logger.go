package giga

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger logs to stderr and, when Log.File is set, also writes JSON
// lines to a rotated log file.
func NewLogger(config Config) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Log.Level)); err != nil {
		return nil, NewErr(BadRequest, "log level: %v", err)
	}
	console := zap.NewDevelopmentEncoderConfig()
	console.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(console), zapcore.Lock(os.Stderr), level),
	}
	if config.Log.File != "" {
		hook := &lumberjack.Logger{
			Filename:   config.Log.File,
			MaxSize:    config.Log.MaxSizeMB,
			MaxAge:     config.Log.MaxAgeDays,
			MaxBackups: config.Log.MaxBackups,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(hook), level))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}
