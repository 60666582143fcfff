// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"bytes"

	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// MergeConfig merges a config from the given uri into the Viper config.
// The format is derived from the file extension.  Compressed configs are not supported.
func MergeConfig(v *viper.Viper, configUri string, s3Client s3iface.S3API) error {

	_, configFormat, compression := SplitNameFormatCompression(configUri)
	if len(compression) > 0 {
		return errors.New("cannot have compression for config uri " + configUri)
	}
	if len(configFormat) == 0 {
		return errors.New("cannot determine format for config uri " + configUri)
	}

	v.SetConfigType(configFormat)

	configBytes, err := ReadResource(&ReadResourceInput{
		Uri:      configUri,
		S3Client: s3Client,
	})
	if err != nil {
		return err
	}

	if len(configBytes) > 0 {
		err = v.MergeConfig(bytes.NewReader(configBytes))
		if err != nil {
			return errors.Wrapf(err, "error merging config from uri %q", configUri)
		}
	}

	return nil
}
