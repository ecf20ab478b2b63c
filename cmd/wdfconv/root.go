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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/wdfconv/cmd/wdfconv/opts"
	"github.com/walteh/wdfconv/pkg/config"
	"github.com/walteh/wdfconv/pkg/log"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	prefsFile string
	debugLog  bool
)

// newRootOpts fills o once flags are parsed
func newRootOpts(ctx context.Context, o *opts.RootOpts) error {
	store, err := config.NewFileStore(prefsFile)
	if err != nil {
		return errors.Errorf("opening preferences: %w", err)
	}

	o.PrefsPath = prefsFile
	o.Store = store
	o.UserLogger = log.NewUserLogger(ctx)
	o.Console = os.Stdout
	return nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	defaultPrefs, err := config.DefaultPath()
	if err != nil {
		defaultPrefs = config.DefaultFilename
	}
	cmd.PersistentFlags().StringVar(&prefsFile, "prefs", defaultPrefs, "preferences file path (.yaml, .json or .hcl)")
	cmd.PersistentFlags().BoolVarP(&debugLog, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags. Diagnostics go to stderr;
// user-facing output is printed by the console observer.
func setupLogging() zerolog.Logger {
	level := zerolog.ErrorLevel
	if debugLog {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger
}
