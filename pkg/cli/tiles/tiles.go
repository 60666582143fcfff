// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package tiles

const (
	FlagTileDir       = "tile-dir"
	FlagMapName       = "map-name"
	FlagThreads       = "threads"
	FlagRenderCommand = "render-command"
)
