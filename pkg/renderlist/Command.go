// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package renderlist

import (
	"strconv"
	"strings"

	"github.com/spatialcurrent/render-latlon/pkg/geo"
)

// Command is a single render_list invocation for one zoom level.
type Command struct {
	Zoom    int           `json:"zoom" yaml:"zoom"`
	Range   geo.TileRange `json:"range" yaml:"range"`
	Options Options       `json:"-" yaml:"-"`
}

// Name returns the executable, defaulting to render_list.
func (c *Command) Name() string {
	if len(c.Options.Executable) == 0 {
		return DefaultExecutable
	}
	return c.Options.Executable
}

// Args returns the arguments passed to the executable.
func (c *Command) Args() []string {
	args := make([]string, 0, 20)
	if c.Options.All {
		args = append(args, "-a")
	}
	if len(c.Options.MapName) > 0 {
		args = append(args, "-m", c.Options.MapName)
	}
	args = append(args,
		"-x", strconv.Itoa(c.Range.MinX),
		"-y", strconv.Itoa(c.Range.MinY),
		"-X", strconv.Itoa(c.Range.MaxX),
		"-Y", strconv.Itoa(c.Range.MaxY),
		"-z", strconv.Itoa(c.Zoom),
		"-Z", strconv.Itoa(c.Zoom),
		"-t", c.Options.TileDir,
	)
	if c.Options.Threads > 0 {
		args = append(args, "-n", strconv.Itoa(c.Options.Threads))
	}
	return args
}

// String returns the command line.
func (c *Command) String() string {
	return c.Name() + " " + strings.Join(c.Args(), " ")
}
