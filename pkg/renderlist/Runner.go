// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package renderlist

import (
	"bufio"
	"context"
	"io"
	"os/exec"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxLineSize = 1024 * 1024
)

// Runner runs a single render command to completion.
type Runner interface {
	Run(ctx context.Context, c *Command) error
}

// ExecRunner runs render commands as child processes.
// Output is copied line by line to Stdout and Stderr as it is produced.
// Cancelling the context kills the child process.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.SugaredLogger
}

func (r *ExecRunner) Run(ctx context.Context, c *Command) error {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	cmd := exec.CommandContext(ctx, c.Name(), c.Args()...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "error creating stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return errors.Wrap(err, "error creating stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			return ErrInterrupted
		}
		return errors.Wrapf(err, "error starting %q", c.Name())
	}

	var g errgroup.Group
	g.Go(func() error {
		return drain(stdout, r.Stdout, func(line string) {
			logger.Debugw(line, "zoom", c.Zoom, "stream", "stdout")
		})
	})
	g.Go(func() error {
		return drain(stderr, r.Stderr, func(line string) {
			logger.Debugw(line, "zoom", c.Zoom, "stream", "stderr")
		})
	})
	drainErr := g.Wait()

	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		return ErrInterrupted
	}

	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			return &ErrRenderFailed{Zoom: c.Zoom, ExitCode: exitErr.ExitCode()}
		}
		return errors.Wrapf(waitErr, "error waiting for %q", c.Name())
	}

	if drainErr != nil {
		return errors.Wrap(drainErr, "error reading render output")
	}

	return nil
}

// drain copies lines from r to w until r is closed.
// drain logs and copies r line by line.  After an error the rest of r is
// discarded so the child never blocks on a full pipe.
func drain(r io.Reader, w io.Writer, log func(line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	var err error
	for scanner.Scan() {
		line := scanner.Text()
		log(line)
		if w != nil {
			if _, werr := io.WriteString(w, line+"\n"); werr != nil {
				err = errors.Wrap(werr, "error writing output")
				break
			}
		}
	}
	if err == nil {
		err = scanner.Err()
	}
	if err != nil {
		_, _ = io.Copy(io.Discard, r)
	}
	return err
}
