// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

import (
	"github.com/pkg/errors"
)

const (
	FlagErrorDestination = "error-destination"
	FlagInfoDestination  = "info-destination"
	FlagInfoFormat       = "info-format"
	FlagVerbose          = "verbose"
	FlagTime             = "time"

	FormatConsole = "console"
	FormatJSON    = "json"

	DefaultFormat           = FormatConsole
	DefaultInfoDestination  = "stdout"
	DefaultErrorDestination = "stderr"
)

var (
	Formats = []string{FormatConsole, FormatJSON}
)

var (
	ErrMissingInfoDestination  = errors.New("info destination cannot be blank")
	ErrMissingErrorDestination = errors.New("error destination cannot be blank")
)
