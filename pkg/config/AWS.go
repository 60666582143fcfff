// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package config

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
)

type AWS struct {
	Profile         string `viper:"aws-profile"`
	DefaultRegion   string `viper:"aws-default-region"`
	Region          string `viper:"aws-region"`
	AccessKeyId     string `viper:"aws-access-key-id"`
	SecretAccessKey string `viper:"aws-secret-access-key"`
	SessionToken    string `viper:"aws-session-token"`
}

func (a *AWS) Config() aws.Config {
	region := a.Region
	if len(region) == 0 {
		region = a.DefaultRegion
	}

	// https://docs.aws.amazon.com/sdk-for-go/api/aws/#Config
	c := aws.Config{
		MaxRetries: aws.Int(3),
	}
	if len(region) > 0 {
		c.Region = aws.String(region)
	}

	// Without static credentials, the SDK falls back to the environment,
	// the shared credentials file, and EC2 instance roles.
	if len(a.AccessKeyId) > 0 && len(a.SecretAccessKey) > 0 {
		c.Credentials = credentials.NewStaticCredentials(
			a.AccessKeyId,
			a.SecretAccessKey,
			a.SessionToken)
	}

	return c
}

func (a *AWS) SessionOptions() session.Options {
	return session.Options{
		Config:            a.Config(),
		Profile:           a.Profile,
		SharedConfigState: session.SharedConfigEnable,
	}
}

func (a *AWS) Map() map[string]interface{} {
	return map[string]interface{}{
		"Profile":         a.Profile,
		"DefaultRegion":   a.DefaultRegion,
		"Region":          a.Region,
		"AccessKeyId":     a.AccessKeyId,
		"SecretAccessKey": redact(a.SecretAccessKey),
		"SessionToken":    redact(a.SessionToken),
	}
}

func redact(s string) string {
	if len(s) == 0 {
		return ""
	}
	return "********"
}
