// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"path/filepath"
	"strings"
)

// SplitNameFormatCompression splits a config filename into it's basename, format, and compression.
//  - *.json => ("*", "json", "") // JSON File
//  - *.json.gz => ("*", "json", "gzip") // gzip-compressed JSON file
//  - *.yaml, *.yml => ("*", "yaml", "") // YAML file
//  - *.toml => ("*", "toml", "") // TOML file
//  - *.hcl, *.tf => ("*", "hcl", "") // HCL file
//  - *.properties, *.props, *.prop => ("*", "properties", "") // Java properties file
//  - *.env => ("*", "dotenv", "") // dotenv file
//  - *.ini => ("*", "ini", "") // INI file
func SplitNameFormatCompression(p string) (string, string, string) {

	compression := ""

	ext := filepath.Ext(p)

	if len(ext) == 0 {
		return p, "", ""
	}

	switch ext {
	case ".gz":
		compression = "gzip"
	case ".sz":
		compression = "snappy"
	case ".bz2":
		compression = "bzip2"
	case ".zip":
		compression = "zip"
	}

	if len(compression) > 0 {
		p = p[:len(p)-len(ext)]
		ext = filepath.Ext(p)
	}

	if len(ext) == 0 {
		return p, "", compression
	}

	p = p[:len(p)-len(ext)]

	switch strings.ToLower(ext) {
	case ".json":
		return p, "json", compression
	case ".yaml", ".yml":
		return p, "yaml", compression
	case ".toml":
		return p, "toml", compression
	case ".hcl", ".tf":
		return p, "hcl", compression
	case ".properties", ".props", ".prop":
		return p, "properties", compression
	case ".env":
		return p, "dotenv", compression
	case ".ini":
		return p, "ini", compression
	}

	return p, "", compression
}
