// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

import (
	"strings"

	"github.com/spf13/pflag"
)

// InitLoggingFlags initializes the logging flags.
func InitLoggingFlags(flag *pflag.FlagSet) {
	flag.Bool(FlagTime, false, "print timing output to info log")

	flag.BoolP(FlagVerbose, "v", false, "print verbose output")

	flag.String(FlagInfoDestination, DefaultInfoDestination, "destination for info logs as a path, stdout, or stderr")
	flag.String(FlagInfoFormat, DefaultFormat, "log format: "+strings.Join(Formats, ", "))

	flag.String(FlagErrorDestination, DefaultErrorDestination, "destination for internal logger errors as a path, stdout, or stderr")
}
