// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/render-latlon/pkg/renderlist"
)

func TestLoadConfigFromViper(t *testing.T) {
	v := viper.New()
	v.Set("upper-left", "10,-10")
	v.Set("lower-right", "-10,10")
	v.Set("min-zoom", 10)
	v.Set("max-zoom", "12")
	v.Set("tile-dir", "/var/lib/mod_tile")
	v.Set("map-name", "osm")
	v.Set("threads", 4)
	v.Set("render-command", "render_list")
	v.Set("timeout", "1m")
	v.Set("aws-region", "us-east-1")

	c := NewRenderConfig()
	LoadConfigFromViper(c, v)

	assert.Equal(t, "10,-10", c.UpperLeft)
	assert.Equal(t, "-10,10", c.LowerRight)
	assert.Equal(t, 10, c.MinZoom)
	assert.Equal(t, 12, c.MaxZoom)
	assert.Equal(t, "/var/lib/mod_tile", c.TileDir)
	assert.Equal(t, "osm", c.MapName)
	assert.Equal(t, 4, c.Threads)
	assert.Equal(t, time.Minute, c.Timeout)
	assert.Equal(t, "us-east-1", c.AWS.Region)

	assert.Equal(t, renderlist.Options{
		Executable: "render_list",
		TileDir:    "/var/lib/mod_tile",
		MapName:    "osm",
		Threads:    4,
		All:        true,
	}, c.Options())
}

func TestRenderOptionsDefaultExecutable(t *testing.T) {
	c := NewRenderConfig()
	c.Executable = ""
	c.TileDir = "/tiles"
	assert.Equal(t, renderlist.DefaultExecutable, c.Options().Executable)
}

func TestPrintConfigRedactsSecrets(t *testing.T) {
	c := NewRenderConfig()
	c.AWS.SecretAccessKey = "secret"
	buf := &bytes.Buffer{}
	require.NoError(t, PrintConfig(buf, c))
	assert.Contains(t, buf.String(), "Configuration:")
	assert.Contains(t, buf.String(), "TileDir:")
	assert.NotContains(t, buf.String(), "secret\n")
}
