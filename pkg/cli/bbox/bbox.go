// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package bbox

const (
	FlagUpperLeft  = "upper-left"
	FlagLowerRight = "lower-right"
	FlagMinZoom    = "min-zoom"
	FlagMaxZoom    = "max-zoom"
)
