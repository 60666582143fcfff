// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package renderlist

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type ExecuteInput struct {
	Plan   *Plan
	Runner Runner
	Logger *zap.SugaredLogger
}

// Execute runs the commands of the plan one at a time in zoom order.
// It stops at the first failure.  If the context is cancelled, it returns ErrInterrupted.
func Execute(ctx context.Context, input *ExecuteInput) error {
	logger := input.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	for _, c := range input.Plan.Commands {
		if ctx.Err() != nil {
			return ErrInterrupted
		}

		logger.Infow("Running: "+c.String(), "zoom", c.Zoom, "tiles", c.Range.Count())

		start := time.Now()
		err := input.Runner.Run(ctx, c)
		if err != nil {
			if errors.Cause(err) == ErrInterrupted {
				logger.Warnw("caught interrupt, killed render", "zoom", c.Zoom)
				return ErrInterrupted
			}
			return errors.Wrapf(err, "error rendering zoom level %d", c.Zoom)
		}

		logger.Infow("rendered zoom level", "zoom", c.Zoom, "duration", time.Since(start).String())
	}

	return nil
}
