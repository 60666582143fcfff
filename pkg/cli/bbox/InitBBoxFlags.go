// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package bbox

import (
	"github.com/spf13/pflag"
)

// InitBBoxFlags initializes the bounding box and zoom range flags.
func InitBBoxFlags(flag *pflag.FlagSet) {
	flag.StringP(FlagUpperLeft, "u", "", "upper-left coordinates in \"lat,lon\" format")
	flag.StringP(FlagLowerRight, "l", "", "lower-right coordinates in \"lat,lon\" format")
	flag.IntP(FlagMinZoom, "z", 0, "minimum zoom level")
	flag.IntP(FlagMaxZoom, "Z", 0, "maximum zoom level (inclusive)")
}
