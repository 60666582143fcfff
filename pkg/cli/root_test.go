// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/spatialcurrent/render-latlon/pkg/errors"
	"github.com/spatialcurrent/render-latlon/pkg/geo"
	"github.com/spatialcurrent/render-latlon/pkg/renderlist"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("main", "abc123")
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func infoLog(t *testing.T) string {
	return filepath.Join(t.TempDir(), "info.log")
}

func TestPlanText(t *testing.T) {
	out, err := execute(t, "plan", "-u", "10,-10", "-l", "-10,10", "-z", "3", "-Z", "4", "-t", "/tiles", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t,
		"render_list -a -x 3 -y 3 -X 4 -Y 4 -z 3 -Z 3 -t /tiles -n 2\n"+
			"render_list -a -x 7 -y 7 -X 8 -Y 8 -z 4 -Z 4 -t /tiles -n 2\n",
		out)
}

func TestPlanInvalidBoundingBox(t *testing.T) {
	_, err := execute(t, "plan", "-u", "-10,10", "-l", "10,-10", "-z", "3", "-Z", "4", "-t", "/tiles")
	require.Error(t, err)
	var bboxErr *geo.ErrInvalidBoundingBox
	assert.True(t, errors.As(err, &bboxErr))
}

func TestPlanInvalidCoordinates(t *testing.T) {
	_, err := execute(t, "plan", "-u", "91,-10", "-l", "-10,10", "-z", "3", "-Z", "4", "-t", "/tiles")
	require.Error(t, err)
	var rangeErr *geo.ErrRange
	assert.True(t, errors.As(err, &rangeErr))

	_, err = execute(t, "plan", "-u", "north,-10", "-l", "-10,10", "-z", "3", "-Z", "4", "-t", "/tiles")
	require.Error(t, err)
	var parseErr *geo.ErrParse
	assert.True(t, errors.As(err, &parseErr))
}

func TestPlanMissingParameter(t *testing.T) {
	_, err := execute(t, "plan", "-l", "-10,10", "-z", "3", "-Z", "4", "-t", "/tiles")
	require.Error(t, err)
	assert.Equal(t, &rerrors.ErrMissingRequiredParameter{Name: "upper-left"}, errors.Cause(err))

	_, err = execute(t, "plan", "-u", "10,-10", "-l", "-10,10", "-Z", "4", "-t", "/tiles")
	require.Error(t, err)
	assert.Equal(t, &rerrors.ErrMissingRequiredParameter{Name: "min-zoom"}, errors.Cause(err))
}

func TestPlanConfigUri(t *testing.T) {
	p := filepath.Join(t.TempDir(), "render.yaml")
	require.NoError(t, os.WriteFile(p, []byte(strings.Join([]string{
		"upper-left: \"10,-10\"",
		"lower-right: \"-10,10\"",
		"min-zoom: 4",
		"max-zoom: 4",
		"tile-dir: /tiles",
		"map-name: osm",
	}, "\n")), 0600))

	out, err := execute(t, "plan", "--config-uri", p)
	require.NoError(t, err)
	assert.Equal(t, "render_list -a -m osm -x 7 -y 7 -X 8 -Y 8 -z 4 -Z 4 -t /tiles\n", out)

	// flags override config files
	out, err = execute(t, "plan", "--config-uri", p, "-m", "hillshade")
	require.NoError(t, err)
	assert.Equal(t, "render_list -a -m hillshade -x 7 -y 7 -X 8 -Y 8 -z 4 -Z 4 -t /tiles\n", out)
}

func TestPlanEnvironment(t *testing.T) {
	t.Setenv("MAP_NAME", "osm")
	out, err := execute(t, "plan", "-u", "10,-10", "-l", "-10,10", "-z", "4", "-Z", "4", "-t", "/tiles")
	require.NoError(t, err)
	assert.Equal(t, "render_list -a -m osm -x 7 -y 7 -X 8 -Y 8 -z 4 -Z 4 -t /tiles\n", out)
}

func TestRenderMissingTileDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	_, err := execute(t, "render", "-u", "10,-10", "-l", "-10,10", "-z", "3", "-Z", "4", "-t", missing, "--info-destination", infoLog(t))
	require.Error(t, err)
	assert.Equal(t, &rerrors.ErrDirectoryNotFound{Path: missing}, errors.Cause(err))
}

func TestRenderDryRun(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "render", "-u", "10,-10", "-l", "-10,10", "-z", "3", "-Z", "4", "-t", dir, "--dry-run", "--info-destination", infoLog(t))
	require.NoError(t, err)
	assert.Equal(t,
		"render_list -a -x 3 -y 3 -X 4 -Y 4 -z 3 -Z 3 -t "+dir+"\n"+
			"render_list -a -x 7 -y 7 -X 8 -Y 8 -z 4 -Z 4 -t "+dir+"\n",
		out)
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh is not available")
	}
	p := filepath.Join(t.TempDir(), "render_list")
	require.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return p
}

func TestRender(t *testing.T) {
	script := writeScript(t, `echo "render_list $*"`)
	dir := t.TempDir()
	log := infoLog(t)
	out, err := execute(t, "render", "-u", "10,-10", "-l", "-10,10", "-z", "3", "-Z", "4", "-t", dir, "-m", "osm",
		"--render-command", script, "--info-destination", log, "--info-format", "json")
	require.NoError(t, err)
	assert.Equal(t,
		"render_list -a -m osm -x 3 -y 3 -X 4 -Y 4 -z 3 -Z 3 -t "+dir+"\n"+
			"render_list -a -m osm -x 7 -y 7 -X 8 -Y 8 -z 4 -Z 4 -t "+dir+"\n",
		out)

	b, err := os.ReadFile(log)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Running: "+script+" -a -m osm")
}

func TestRenderFailure(t *testing.T) {
	script := writeScript(t, "exit 1")
	_, err := execute(t, "render", "-u", "10,-10", "-l", "-10,10", "-z", "3", "-Z", "4", "-t", t.TempDir(),
		"--render-command", script, "--info-destination", infoLog(t))
	require.Error(t, err)
	assert.Equal(t, &renderlist.ErrRenderFailed{Zoom: 3, ExitCode: 1}, errors.Cause(err))
}

func TestRenderTimeout(t *testing.T) {
	script := writeScript(t, "exec sleep 30")
	_, err := execute(t, "render", "-u", "10,-10", "-l", "-10,10", "-z", "3", "-Z", "4", "-t", t.TempDir(),
		"--render-command", script, "--timeout", "300ms", "--info-destination", infoLog(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render exceeded timeout 300ms")
	assert.NotEqual(t, renderlist.ErrInterrupted, errors.Cause(err))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Branch: main")
	assert.Contains(t, out, "Commit: abc123")
}
