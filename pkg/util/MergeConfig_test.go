// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockS3Client struct {
	s3iface.S3API
	objects map[string]string
}

func (m *mockS3Client) GetObject(input *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
	body, ok := m.objects[aws.StringValue(input.Bucket)+"/"+aws.StringValue(input.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: ioutil.NopCloser(strings.NewReader(body))}, nil
}

func TestMergeConfigs(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.json")
	require.NoError(t, os.WriteFile(first, []byte("tile-dir: /var/lib/mod_tile\nmin-zoom: 10\nmax-zoom: 12\n"), 0600))
	require.NoError(t, os.WriteFile(second, []byte(`{"max-zoom": 14, "map-name": "osm"}`), 0600))

	v := viper.New()
	require.NoError(t, MergeConfigs(v, []string{first, second}, nil))
	assert.Equal(t, "/var/lib/mod_tile", v.GetString("tile-dir"))
	assert.Equal(t, 10, v.GetInt("min-zoom"))
	assert.Equal(t, 14, v.GetInt("max-zoom"))
	assert.Equal(t, "osm", v.GetString("map-name"))
}

func TestMergeConfigS3(t *testing.T) {
	client := &mockS3Client{objects: map[string]string{
		"tiles/render.yaml": "threads: 8\n",
	}}
	v := viper.New()
	require.NoError(t, MergeConfig(v, "s3://tiles/render.yaml", client))
	assert.Equal(t, 8, v.GetInt("threads"))

	err := MergeConfig(viper.New(), "s3://tiles/missing.yaml", client)
	assert.Error(t, err)

	err = MergeConfig(viper.New(), "s3://tiles/render.yaml", nil)
	assert.Error(t, err)
}

func TestMergeConfigInvalid(t *testing.T) {
	assert.Error(t, MergeConfig(viper.New(), "config.yaml.gz", nil))
	assert.Error(t, MergeConfig(viper.New(), "config", nil))
	assert.Error(t, MergeConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"), nil))
}
