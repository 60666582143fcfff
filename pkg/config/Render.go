// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package config

import (
	"reflect"
	"time"

	"github.com/spatialcurrent/render-latlon/pkg/renderlist"
)

// Render is the configuration of the render and plan commands.
type Render struct {
	AWS              *AWS          `map:"AWS"`
	UpperLeft        string        `viper:"upper-left" map:"UpperLeft"`
	LowerRight       string        `viper:"lower-right" map:"LowerRight"`
	MinZoom          int           `viper:"min-zoom" map:"MinZoom"`
	MaxZoom          int           `viper:"max-zoom" map:"MaxZoom"`
	TileDir          string        `viper:"tile-dir" map:"TileDir"`
	MapName          string        `viper:"map-name" map:"MapName"`
	Threads          int           `viper:"threads" map:"Threads"`
	Executable       string        `viper:"render-command" map:"Executable"`
	DryRun           bool          `viper:"dry-run" map:"DryRun"`
	OutputFormat     string        `viper:"output-format" map:"OutputFormat"`
	InfoDestination  string        `viper:"info-destination" map:"InfoDestination"`
	InfoFormat       string        `viper:"info-format" map:"InfoFormat"`
	ErrorDestination string        `viper:"error-destination" map:"ErrorDestination"`
	Time             bool          `viper:"time" map:"Time"`
	Timeout          time.Duration `viper:"timeout" map:"Timeout"`
	Verbose          bool          `viper:"verbose" map:"Verbose"`
}

func NewRenderConfig() *Render {
	return &Render{
		AWS:              &AWS{},
		UpperLeft:        "",
		LowerRight:       "",
		MinZoom:          0,
		MaxZoom:          0,
		TileDir:          "",
		MapName:          "",
		Threads:          0,
		Executable:       renderlist.DefaultExecutable,
		DryRun:           false,
		OutputFormat:     "",
		InfoDestination:  "",
		InfoFormat:       "",
		ErrorDestination: "",
		Time:             false,
		Timeout:          0 * time.Second,
		Verbose:          false,
	}
}

// Options returns the render_list options for the configuration.
func (r *Render) Options() renderlist.Options {
	opts := renderlist.NewOptions(r.TileDir)
	if len(r.Executable) > 0 {
		opts.Executable = r.Executable
	}
	opts.MapName = r.MapName
	opts.Threads = r.Threads
	return opts
}

func (r *Render) Map() map[string]interface{} {
	m := map[string]interface{}{}
	v := reflect.ValueOf(r)
	t := v.Type()

	if t.Kind() == reflect.Ptr {
		v = v.Elem()
		t = v.Type()
	}

	for i := 0; i < v.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("map"); len(tag) > 0 && tag != "-" {
			fieldValue := v.Field(i).Interface()
			if fieldMap, ok := fieldValue.(mapper); ok {
				m[tag] = fieldMap.Map()
			} else {
				m[tag] = fieldValue
			}
		}
	}
	return m
}
