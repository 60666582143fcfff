// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package render

import (
	"github.com/spf13/pflag"

	"github.com/spatialcurrent/render-latlon/pkg/cli/bbox"
	"github.com/spatialcurrent/render-latlon/pkg/cli/tiles"
)

// InitRenderFlags initializes the render flags.
func InitRenderFlags(flag *pflag.FlagSet) {
	bbox.InitBBoxFlags(flag)
	tiles.InitTilesFlags(flag)
	flag.Bool(FlagDryRun, false, "print the render_list commands, but do not run them")
	flag.Duration(FlagTimeout, 0, "if not zero, then sets the timeout for the whole render")
}
