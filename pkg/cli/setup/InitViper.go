// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package setup

import (
	"strings"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/render-latlon/pkg/config"
	"github.com/spatialcurrent/render-latlon/pkg/util"
)

// InitViper binds the command flags and environment variables to a new viper
// and merges the config files listed by the config-uri flag.
// Flags take precedence over environment variables, which take precedence over config files.
func InitViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()

	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, errors.Wrap(err, "error binding flags")
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // set environment variables to overwrite config

	configUris := v.GetStringSlice(FlagConfigUri)
	if len(configUris) == 0 {
		return v, nil
	}

	var s3Client s3iface.S3API
	if util.HasS3Uri(configUris) {
		awsConfig := &config.AWS{}
		config.LoadConfigFromViper(awsConfig, v)
		awsSession, err := session.NewSessionWithOptions(awsConfig.SessionOptions())
		if err != nil {
			return nil, errors.Wrap(err, "error connecting to AWS")
		}
		s3Client = s3.New(awsSession)
	}

	err = util.MergeConfigs(v, configUris, s3Client)
	if err != nil {
		return nil, errors.Wrap(err, "error merging config")
	}

	return v, nil
}
