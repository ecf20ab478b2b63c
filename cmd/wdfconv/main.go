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

	"github.com/spf13/cobra"
	"github.com/walteh/wdfconv/cmd/wdfconv/commands"
	"github.com/walteh/wdfconv/cmd/wdfconv/opts"
	"github.com/walteh/wdfconv/pkg/log"
	"gitlab.com/tozd/go/errors"
)

func main() {
	// Setup logging
	logger := setupLogging()
	ctx := logger.WithContext(context.Background())

	// Create user logger
	userLogger := log.NewUserLogger(ctx)

	// Filled in once flags are parsed
	rootOpts := &opts.RootOpts{}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "wdfconv",
		Short: "Batch convert Renishaw .wdf spectra to tab-separated text",
		Long: `wdfconv converts every .wdf spectrum file in a directory into a .txt file
with a "Raman Shift (cm⁻¹)" and an "Intensity (a.u.)" column. The last
directories used are remembered between runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging()
			cmd.SetContext(logger.WithContext(cmd.Context()))
			return newRootOpts(cmd.Context(), rootOpts)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewConvertCmd(rootOpts),
		commands.NewPrefsCmd(rootOpts),
		newVersionCmd(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(reportError(userLogger, err))
	}
}

// reportError prints err and returns the process exit code
func reportError(userLogger *log.UserLogger, err error) int {
	var exitErr *commands.ExitError
	if !errors.As(err, &exitErr) {
		userLogger.LogValidation(false, "Command failed", err)
		return commands.ExitFailure
	}

	if exitErr.Code == commands.ExitCancelled {
		userLogger.LogValidation(false, exitErr.Error(), nil)
	} else {
		userLogger.LogValidation(false, "Command failed", exitErr.Err)
	}
	return exitErr.Code
}
