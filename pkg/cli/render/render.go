// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package render

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/render-latlon/pkg/cli/logging"
	"github.com/spatialcurrent/render-latlon/pkg/cli/setup"
	"github.com/spatialcurrent/render-latlon/pkg/config"
	"github.com/spatialcurrent/render-latlon/pkg/renderlist"
)

const (
	CliUse       = "render"
	CliShort     = "render the tiles of a bounding box with render_list"
	CliLong      = "render the tiles of a bounding box with render_list, running one render_list process per zoom level from min-zoom to max-zoom"
	SilenceUsage = true
)

const (
	FlagDryRun  = "dry-run"
	FlagTimeout = "timeout"
)

func renderFunction(cmd *cobra.Command, args []string) error {

	v, err := setup.InitViper(cmd)
	if err != nil {
		return errors.Wrap(err, "error initializing configuration")
	}

	verbose := v.GetBool(logging.FlagVerbose)

	if verbose {
		if err := config.PrintViperSettings(cmd.OutOrStdout(), v); err != nil {
			return err
		}
	}

	err = CheckRenderConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with configuration")
	}

	renderConfig, err := setup.LoadRenderConfig(v)
	if err != nil {
		return errors.Wrap(err, "error loading configuration")
	}

	if verbose {
		if err := config.PrintConfig(cmd.OutOrStdout(), renderConfig); err != nil {
			return err
		}
	}

	logger, err := logging.NewLoggerFromViper(v)
	if err != nil {
		return errors.Wrap(err, "error creating logger")
	}
	defer logger.Sync()

	plan, err := setup.NewPlan(renderConfig)
	if err != nil {
		return errors.Wrap(err, "error creating render plan")
	}

	if renderConfig.DryRun {
		for _, c := range plan.Commands {
			fmt.Fprintln(cmd.OutOrStdout(), c.String())
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runCtx := ctx
	if renderConfig.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, renderConfig.Timeout)
		defer cancel()
	}

	start := time.Now()
	if renderConfig.Time {
		logger.Infow("started", "ts", start.Format(time.RFC3339), "zoomLevels", len(plan.Commands), "tiles", plan.Count())
	}

	err = renderlist.Execute(runCtx, &renderlist.ExecuteInput{
		Plan: plan,
		Runner: &renderlist.ExecRunner{
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
			Logger: logger,
		},
		Logger: logger,
	})
	if err != nil {
		if errors.Cause(err) == renderlist.ErrInterrupted && ctx.Err() == nil {
			return errors.Errorf("render exceeded timeout %v", renderConfig.Timeout)
		}
		return err
	}

	if renderConfig.Time {
		end := time.Now()
		logger.Infow("ended", "ts", end.Format(time.RFC3339), "duration", end.Sub(start).String())
	}

	return nil
}
