// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package plan

import (
	"github.com/spf13/pflag"

	"github.com/spatialcurrent/render-latlon/pkg/cli/bbox"
	"github.com/spatialcurrent/render-latlon/pkg/cli/output"
	"github.com/spatialcurrent/render-latlon/pkg/cli/tiles"
)

// InitPlanFlags initializes the plan flags.
func InitPlanFlags(flag *pflag.FlagSet) {
	bbox.InitBBoxFlags(flag)
	tiles.InitTilesFlags(flag)
	output.InitOutputFlags(flag, output.DefaultOutputFormat)
}
