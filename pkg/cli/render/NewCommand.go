// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package render

import (
	"github.com/spf13/cobra"
)

// NewCommand returns a new instance of the render command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          CliUse,
		Short:        CliShort,
		Long:         CliLong,
		RunE:         renderFunction,
		SilenceUsage: SilenceUsage,
	}
	InitRenderFlags(cmd.Flags())
	return cmd
}
