// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package renderlist builds and runs one render_list invocation per zoom level.
package renderlist

import (
	"github.com/pkg/errors"
)

const (
	DefaultExecutable = "render_list"
)

var (
	ErrInterrupted    = errors.New("render interrupted")
	ErrMissingTileDir = errors.New("tile directory cannot be blank")
)
