// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package setup holds the configuration steps shared by the render and plan commands.
package setup

const (
	FlagConfigUri = "config-uri"
)
