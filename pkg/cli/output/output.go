// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

const (
	FlagOutputFormat = "output-format"

	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"

	DefaultOutputFormat = FormatText
)

var (
	Formats = []string{FormatText, FormatJSON, FormatYAML}
)
