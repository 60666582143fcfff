// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"strings"
)

// HasS3Uri returns true if any of the uris points to S3.
func HasS3Uri(uris []string) bool {
	for _, uri := range uris {
		if strings.HasPrefix(uri, SchemeS3) {
			return true
		}
	}
	return false
}
