// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package aws

import (
	"github.com/spf13/pflag"
)

// InitAwsFlags initializes the AWS flags used to read configuration from S3.
func InitAwsFlags(flag *pflag.FlagSet) {
	flag.StringP(FlagAwsProfile, "", "", "AWS Profile")
	flag.StringP(FlagAwsDefaultRegion, "", "", "AWS Default Region")
	flag.StringP(FlagAwsRegion, "", "", "AWS Region")
	flag.StringP(FlagAwsAccessKeyId, "", "", "AWS Access Key ID")
	flag.StringP(FlagAwsSecretAccessKey, "", "", "AWS Secret Access Key")
	flag.StringP(FlagAwsSessionToken, "", "", "AWS Session Token")
}
