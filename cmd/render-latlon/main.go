// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// render-latlon runs render_list once per zoom level for the tiles covering a bounding box.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/spatialcurrent/render-latlon/pkg/cli"
	"github.com/spatialcurrent/render-latlon/pkg/renderlist"
)

const (
	exitCodeOK        = 0
	exitCodeError     = 1
	exitCodeInterrupt = 130
)

var gitBranch string
var gitCommit string

// exitCode returns the process status for the error returned by the command tree.
func exitCode(err error) int {
	if err == nil {
		return exitCodeOK
	}
	if errors.Cause(err) == renderlist.ErrInterrupted {
		return exitCodeInterrupt
	}
	return exitCodeError
}

func main() {
	err := cli.Execute(gitBranch, gitCommit)
	code := exitCode(err)
	switch code {
	case exitCodeOK:
		return
	case exitCodeInterrupt:
		fmt.Fprintln(os.Stderr, "Caught interrupt, killed render_list")
	default:
		fmt.Fprintln(os.Stderr, "ERROR: "+err.Error())
	}
	os.Exit(code)
}
