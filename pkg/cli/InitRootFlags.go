// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cli

import (
	"github.com/spf13/pflag"

	"github.com/spatialcurrent/render-latlon/pkg/cli/aws"
	"github.com/spatialcurrent/render-latlon/pkg/cli/logging"
	"github.com/spatialcurrent/render-latlon/pkg/cli/setup"
)

// InitRootFlags initializes the root flags.
func InitRootFlags(flag *pflag.FlagSet) {
	aws.InitAwsFlags(flag)
	logging.InitLoggingFlags(flag)

	flag.StringArrayP(setup.FlagConfigUri, "", []string{}, "the uri(s) to the config file, local paths or s3://bucket/key")
}
