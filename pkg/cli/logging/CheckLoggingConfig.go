// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

import (
	"github.com/spf13/viper"

	rerrors "github.com/spatialcurrent/render-latlon/pkg/errors"
)

// CheckLoggingConfig checks the logging configuration.
func CheckLoggingConfig(v *viper.Viper) error {
	if len(v.GetString(FlagInfoDestination)) == 0 {
		return ErrMissingInfoDestination
	}
	if len(v.GetString(FlagErrorDestination)) == 0 {
		return ErrMissingErrorDestination
	}
	format := v.GetString(FlagInfoFormat)
	for _, f := range Formats {
		if format == f {
			return nil
		}
	}
	return &rerrors.ErrInvalidParameter{Name: FlagInfoFormat, Value: format}
}
