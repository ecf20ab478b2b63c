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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/wdfconv/cmd/wdfconv/opts"
	"github.com/walteh/wdfconv/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// NewPrefsCmd creates a new prefs command
func NewPrefsCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the remembered directories",
	}

	cmd.AddCommand(
		newPrefsShowCmd(o),
		newPrefsSetCmd(o),
	)

	return cmd
}

func newPrefsShowCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := o.Store.Load(cmd.Context())
			if err != nil {
				return errors.Errorf("loading preferences: %w", err)
			}

			return o.UserLogger.LogTable([][]string{
				{"Key", "Value"},
				{config.KeySource, prefs.SourceDirectory},
				{config.KeyDestination, prefs.DestinationDirectory},
				{"file", o.PrefsPath},
			})
		},
	}
}

func newPrefsSetCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one saved preference (source or destination)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			prefs, err := o.Store.Load(ctx)
			if err != nil {
				return errors.Errorf("loading preferences: %w", err)
			}
			if err := prefs.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := o.Store.Save(ctx, prefs); err != nil {
				return errors.Errorf("saving preferences: %w", err)
			}

			o.UserLogger.LogChange(fmt.Sprintf("Set %s to %q", args[0], args[1]))
			return nil
		},
	}
}
