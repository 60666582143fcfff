// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package aws

const (
	FlagAwsProfile         = "aws-profile"
	FlagAwsDefaultRegion   = "aws-default-region"
	FlagAwsRegion          = "aws-region"
	FlagAwsAccessKeyId     = "aws-access-key-id"
	FlagAwsSecretAccessKey = "aws-secret-access-key"
	FlagAwsSessionToken    = "aws-session-token"
)
