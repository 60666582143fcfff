// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package plan

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/render-latlon/pkg/cli/output"
	"github.com/spatialcurrent/render-latlon/pkg/cli/setup"
)

const (
	CliUse       = "plan"
	CliShort     = "print the render_list commands and tile ranges for a bounding box"
	CliLong      = "print the render_list commands and tile ranges for a bounding box, one per zoom level, without running them"
	SilenceUsage = true
)

func planFunction(cmd *cobra.Command, args []string) error {

	v, err := setup.InitViper(cmd)
	if err != nil {
		return errors.Wrap(err, "error initializing configuration")
	}

	err = CheckPlanConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with configuration")
	}

	planConfig, err := setup.LoadRenderConfig(v)
	if err != nil {
		return errors.Wrap(err, "error loading configuration")
	}

	p, err := setup.NewPlan(planConfig)
	if err != nil {
		return errors.Wrap(err, "error creating render plan")
	}

	err = WritePlan(cmd.OutOrStdout(), p, v.GetString(output.FlagOutputFormat))
	if err != nil {
		return errors.Wrap(err, "error writing plan")
	}

	return nil
}
