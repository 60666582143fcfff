// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

import (
	"strings"

	"github.com/spf13/pflag"
)

// InitOutputFlags initializes the output flags.
func InitOutputFlags(flag *pflag.FlagSet, defaultOutputFormat string) {
	flag.StringP(FlagOutputFormat, "o", defaultOutputFormat, "the output format: "+strings.Join(Formats, ", "))
}
