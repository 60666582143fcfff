// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitNameFormatCompression(t *testing.T) {
	testCases := []struct {
		in          string
		name        string
		format      string
		compression string
	}{
		{"config.yaml", "config", "yaml", ""},
		{"/etc/render-latlon/config.yml", "/etc/render-latlon/config", "yaml", ""},
		{"config.json", "config", "json", ""},
		{"config.json.gz", "config", "json", "gzip"},
		{"config.toml", "config", "toml", ""},
		{"config.properties", "config", "properties", ""},
		{"s3://bucket/render.hcl", "s3://bucket/render", "hcl", ""},
		{"config", "config", "", ""},
		{"config.txt", "config", "", ""},
	}
	for _, tc := range testCases {
		name, format, compression := SplitNameFormatCompression(tc.in)
		assert.Equal(t, tc.name, name, tc.in)
		assert.Equal(t, tc.format, format, tc.in)
		assert.Equal(t, tc.compression, compression, tc.in)
	}
}

func TestSplitS3Uri(t *testing.T) {
	bucket, key, err := SplitS3Uri("s3://tiles-config/render/config.yaml")
	assert.NoError(t, err)
	assert.Equal(t, "tiles-config", bucket)
	assert.Equal(t, "render/config.yaml", key)

	for _, uri := range []string{"s3://bucket", "s3://bucket/", "s3:///key", "/tmp/config.yaml"} {
		_, _, err := SplitS3Uri(uri)
		assert.Error(t, err, uri)
	}
}

func TestHasS3Uri(t *testing.T) {
	assert.False(t, HasS3Uri([]string{}))
	assert.False(t, HasS3Uri([]string{"config.yaml"}))
	assert.True(t, HasS3Uri([]string{"config.yaml", "s3://bucket/config.yaml"}))
}
