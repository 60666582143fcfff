// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

import (
	"github.com/spf13/viper"

	rerrors "github.com/spatialcurrent/render-latlon/pkg/errors"
)

// CheckOutputConfig checks the output configuration.
func CheckOutputConfig(v *viper.Viper) error {
	format := v.GetString(FlagOutputFormat)
	for _, f := range Formats {
		if format == f {
			return nil
		}
	}
	return &rerrors.ErrInvalidParameter{Name: FlagOutputFormat, Value: format}
}
