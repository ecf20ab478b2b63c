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

package log

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// PromptFunc asks the user for a value, offering def as the default
type PromptFunc func(label, def string) (string, error)

// 📢 UserLogger provides user-friendly feedback and prompts
type UserLogger struct {
	log    zerolog.Logger // for debug/error logging
	out    io.Writer
	prompt PromptFunc
}

// 🎯 NewUserLogger creates a new user logger printing to stdout
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log:    *zerolog.Ctx(ctx),
		out:    os.Stdout,
		prompt: interactivePrompt,
	}
}

// WithWriter returns a copy printing to w
func (u *UserLogger) WithWriter(w io.Writer) *UserLogger {
	c := *u
	c.out = w
	return &c
}

// WithPrompt returns a copy asking questions through p
func (u *UserLogger) WithPrompt(p PromptFunc) *UserLogger {
	c := *u
	c.prompt = p
	return &c
}

func interactivePrompt(label, def string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultValue(def).Show(label)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).WithWriter(u.out).Println(description)
		u.log.Info().Msg(description)
		return
	}

	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(u.out).Println(description)
		pterm.Error.WithWriter(u.out).Println(err)
		u.log.Error().Err(err).Msg(description)
	} else {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(u.out).Println(description)
		u.log.Warn().Msg(description)
	}
}

// 📦 LogChange reports a change to stored settings
func (u *UserLogger) LogChange(description string) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).WithWriter(u.out).Println(description)
	u.log.Info().Msg(description)
}

// 📋 LogTable renders rows as a table; the first row is the header
func (u *UserLogger) LogTable(rows [][]string) error {
	if err := pterm.DefaultTable.WithHasHeader().WithWriter(u.out).WithData(rows).Render(); err != nil {
		return errors.Errorf("rendering table: %w", err)
	}
	return nil
}

// 📂 PromptDirectory asks for a directory, falling back to current when the
// answer is blank. An empty result is an error.
func (u *UserLogger) PromptDirectory(label, current string) (string, error) {
	answer, err := u.prompt(label, current)
	if err != nil {
		return "", errors.Errorf("prompting for %s: %w", strings.ToLower(label), err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = current
	}
	if answer == "" {
		return "", errors.Errorf("%s is required", strings.ToLower(label))
	}

	u.log.Debug().Str("label", label).Str("value", answer).Msg("directory selected")
	return answer, nil
}
