// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package plan

import (
	"github.com/spf13/cobra"
)

// NewCommand returns a new instance of the plan command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          CliUse,
		Short:        CliShort,
		Long:         CliLong,
		RunE:         planFunction,
		SilenceUsage: SilenceUsage,
	}
	InitPlanFlags(cmd.Flags())
	return cmd
}
