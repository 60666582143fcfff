// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package bbox

import (
	"github.com/spf13/viper"

	rerrors "github.com/spatialcurrent/render-latlon/pkg/errors"
)

// CheckBBoxConfig checks that the bounding box and zoom range are set.
// The values themselves are validated when the plan is built.
func CheckBBoxConfig(v *viper.Viper) error {
	for _, name := range []string{FlagUpperLeft, FlagLowerRight} {
		if len(v.GetString(name)) == 0 {
			return &rerrors.ErrMissingRequiredParameter{Name: name}
		}
	}
	for _, name := range []string{FlagMinZoom, FlagMaxZoom} {
		if !v.IsSet(name) {
			return &rerrors.ErrMissingRequiredParameter{Name: name}
		}
	}
	return nil
}
