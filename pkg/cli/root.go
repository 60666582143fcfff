// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spatialcurrent/render-latlon/pkg/cli/plan"
	"github.com/spatialcurrent/render-latlon/pkg/cli/render"
	"github.com/spatialcurrent/render-latlon/pkg/cli/version"
)

// NewRootCommand returns the render-latlon command with all subcommands.
func NewRootCommand(gitBranch string, gitCommit string) *cobra.Command {

	//
	// Root Command
	//

	var rootCmd = &cobra.Command{
		Use:   "render-latlon",
		Short: "render_list based on lat/lon coordinates",
		Long: `render-latlon pre-renders mod_tile tiles for a bounding box given as upper-left and lower-right "lat,lon" coordinates.
For each zoom level in the requested range, the bounding box is projected to a tile range and render_list is run once.`,
		SilenceErrors: true,
	}
	InitRootFlags(rootCmd.PersistentFlags())

	//
	// Completion Command
	//

	completionCommandLong := ""
	if _, err := os.Stat("/etc/bash_completion.d/"); !os.IsNotExist(err) {
		completionCommandLong = "To install completion scripts run:\nrender-latlon completion > /etc/bash_completion.d/render-latlon"
	} else {
		if _, err := os.Stat("/usr/local/etc/bash_completion.d/"); !os.IsNotExist(err) {
			completionCommandLong = "To install completion scripts run:\nrender-latlon completion > /usr/local/etc/bash_completion.d/render-latlon"
		} else {
			completionCommandLong = "To install completion scripts run:\nrender-latlon completion > .../bash_completion.d/render-latlon"
		}
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long:  completionCommandLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		},
	})

	rootCmd.AddCommand(version.NewCommand(&version.NewCommandInput{
		GitBranch: gitBranch,
		GitCommit: gitCommit,
	}))

	//
	// Render Command
	//

	rootCmd.AddCommand(render.NewCommand())

	//
	// Plan Command
	//

	rootCmd.AddCommand(plan.NewCommand())

	return rootCmd
}

// Execute handles command line calls to render-latlon.
func Execute(gitBranch string, gitCommit string) error {
	return NewRootCommand(gitBranch, gitCommit).Execute()
}
