// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	SchemeS3 = "s3://"
)

// SplitS3Uri splits a uri in the form "s3://bucket/key" into bucket and key.
func SplitS3Uri(uri string) (string, string, error) {
	if !strings.HasPrefix(uri, SchemeS3) {
		return "", "", errors.Errorf("uri %q is not an s3 uri", uri)
	}
	parts := strings.SplitN(uri[len(SchemeS3):], "/", 2)
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) == 0 {
		return "", "", errors.Errorf("invalid s3 uri %q, expecting s3://bucket/key", uri)
	}
	return parts[0], parts[1], nil
}
