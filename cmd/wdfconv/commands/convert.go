// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/wdfconv/cmd/wdfconv/opts"
	"github.com/walteh/wdfconv/pkg/config"
	"github.com/walteh/wdfconv/pkg/log"
	"github.com/walteh/wdfconv/pkg/operation"
	"github.com/walteh/wdfconv/pkg/text"
	"github.com/walteh/wdfconv/pkg/wdf"
	"gitlab.com/tozd/go/errors"
)

type convertFlags struct {
	source      string
	destination string
	strict      bool
	noPrompt    bool
}

// NewConvertCmd creates a new convert command
func NewConvertCmd(o *opts.RootOpts) *cobra.Command {
	var f convertFlags

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert every .wdf file in a directory to .txt",
		Long: `Convert writes a tab-separated .txt file for each .wdf file found directly
inside the source directory. It will:
1. Resolve directories from flags, saved preferences or a prompt
2. Convert files one at a time, reporting progress per file
3. Keep going when a single file fails
4. Stop at the next file boundary on Ctrl-C`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), o, f)
		},
	}

	cmd.Flags().StringVarP(&f.source, "source", "s", "", "directory containing .wdf files")
	cmd.Flags().StringVarP(&f.destination, "destination", "o", "", "directory for the .txt output")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "exit non-zero when any file fails")
	cmd.Flags().BoolVar(&f.noPrompt, "no-prompt", false, "never prompt; use flags and saved preferences only")

	return cmd
}

func runConvert(ctx context.Context, o *opts.RootOpts, f convertFlags) error {
	job, err := resolveJob(ctx, o, f)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// a second interrupt falls through to the default handler
		<-ctx.Done()
		stop()
	}()

	converter, err := operation.New(operation.Options{
		Decoder: wdf.NewDecoder(),
		Encoder: text.NewTabularEncoder(),
	})
	if err != nil {
		return errors.Errorf("creating converter: %w", err)
	}

	console := log.New(o.Console)
	recorder := operation.NewRecorder()
	runner := operation.NewRunner(converter, recorder)

	console.Header(fmt.Sprintf("%s → %s", job.SourceDirectory, job.DestinationDirectory))
	runner.Start(ctx, job)

	// Render from this goroutine while the run records events
	recorder.Follow(ctx, runner.Done(), console)
	outcome := runner.Wait()

	zerolog.Ctx(ctx).Debug().Str("run_id", runner.RunID()).Stringer("outcome", outcome).Msg("convert finished")
	return exitFor(outcome, recorder.FailedFiles(), f.strict)
}

// resolveJob picks the directories and remembers them when they changed
func resolveJob(ctx context.Context, o *opts.RootOpts, f convertFlags) (operation.Job, error) {
	prefs, err := o.Store.Load(ctx)
	if err != nil {
		o.UserLogger.LogValidation(false, "Ignoring unreadable preferences", err)
		prefs = &config.Preferences{}
	}

	source, err := resolveDirectory(o, f.source, prefs.SourceDirectory, "Source directory", "--source", f.noPrompt)
	if err != nil {
		return operation.Job{}, err
	}
	destination, err := resolveDirectory(o, f.destination, prefs.DestinationDirectory, "Destination directory", "--destination", f.noPrompt)
	if err != nil {
		return operation.Job{}, err
	}

	if source != prefs.SourceDirectory || destination != prefs.DestinationDirectory {
		prefs.SourceDirectory = source
		prefs.DestinationDirectory = destination
		if err := o.Store.Save(ctx, prefs); err != nil {
			o.UserLogger.LogValidation(false, "Could not save preferences", err)
		} else {
			o.UserLogger.LogChange(fmt.Sprintf("Remembered %s", prefs))
		}
	}

	return operation.Job{
		SourceDirectory:      source,
		DestinationDirectory: destination,
	}, nil
}

// resolveDirectory prefers the flag, then asks the user with the stored value
// as the default. With noPrompt the stored value is used as is.
func resolveDirectory(o *opts.RootOpts, flagValue, stored, label, flagName string, noPrompt bool) (string, error) {
	if flagValue != "" {
		return filepath.Clean(flagValue), nil
	}
	if noPrompt {
		if stored == "" {
			return "", errors.Errorf("%s is required: pass %s", strings.ToLower(label), flagName)
		}
		return stored, nil
	}

	dir, err := o.UserLogger.PromptDirectory(label, stored)
	if err != nil {
		return "", err
	}
	return filepath.Clean(dir), nil
}

// exitFor maps a run outcome to the command result
func exitFor(outcome operation.Outcome, failed []string, strict bool) error {
	switch outcome.Kind {
	case operation.OutcomeCompleted:
		if strict && len(failed) > 0 {
			return &ExitError{
				Code: ExitFailure,
				Err:  errors.Errorf("%d files failed to convert: %s", len(failed), strings.Join(failed, ", ")),
			}
		}
		return nil
	case operation.OutcomeCancelled:
		return &ExitError{Code: ExitCancelled, Err: errors.New("conversion cancelled")}
	}

	err := outcome.Err
	if err == nil {
		err = errors.Errorf("conversion ended without a result: %s", outcome.Kind)
	}
	return &ExitError{Code: ExitFailure, Err: err}
}
