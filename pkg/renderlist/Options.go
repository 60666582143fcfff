// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package renderlist

import (
	"github.com/pkg/errors"
)

// Options are the render_list settings shared by every zoom level.
// MapName and Threads are optional and are left out of the command when zero.
type Options struct {
	Executable string `json:"executable" yaml:"executable"`
	TileDir    string `json:"tileDir" yaml:"tileDir"`
	MapName    string `json:"mapName,omitempty" yaml:"mapName,omitempty"`
	Threads    int    `json:"threads,omitempty" yaml:"threads,omitempty"`
	All        bool   `json:"all" yaml:"all"`
}

// NewOptions returns options rendering all tiles with the default executable.
func NewOptions(tileDir string) Options {
	return Options{
		Executable: DefaultExecutable,
		TileDir:    tileDir,
		All:        true,
	}
}

// Validate returns an error if the options cannot produce a command.
func (o Options) Validate() error {
	if len(o.TileDir) == 0 {
		return ErrMissingTileDir
	}
	if o.Threads < 0 {
		return errors.Errorf("invalid thread count %d, must be greater than or equal to 0", o.Threads)
	}
	return nil
}
