// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/spf13/viper"
)

// MergeConfigs merges an array of config from the given uris into the Viper config.
// Later configs override earlier ones.
func MergeConfigs(v *viper.Viper, configUris []string, s3Client s3iface.S3API) error {
	for _, configUri := range configUris {
		if err := MergeConfig(v, configUri, s3Client); err != nil {
			return err
		}
	}
	return nil
}
