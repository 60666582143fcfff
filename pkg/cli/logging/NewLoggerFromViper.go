// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLoggerFromViper returns a new logger from the viper configuration.
func NewLoggerFromViper(v *viper.Viper) (*zap.SugaredLogger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if v.GetBool(FlagVerbose) {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	encoding := v.GetString(FlagInfoFormat)

	var encoderConfig zapcore.EncoderConfig
	if encoding == FormatJSON {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "ts"
		encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	} else {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.CallerKey = ""
		encoderConfig.StacktraceKey = ""
	}

	c := zap.Config{
		Level:             level,
		Encoding:          encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       []string{v.GetString(FlagInfoDestination)},
		ErrorOutputPaths:  []string{v.GetString(FlagErrorDestination)},
		DisableCaller:     true,
		DisableStacktrace: true,
	}

	logger, err := c.Build()
	if err != nil {
		return nil, errors.Wrap(err, "error building logger")
	}

	return logger.Sugar(), nil
}
