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
	"bytes"
	"context"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func newTestUserLogger(t *testing.T) (*UserLogger, *bytes.Buffer) {
	t.Helper()

	pterm.RawOutput = true
	t.Cleanup(func() { pterm.RawOutput = false })

	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	buf := &bytes.Buffer{}
	return NewUserLogger(ctx).WithWriter(buf), buf
}

func TestLogValidation(t *testing.T) {
	tests := []struct {
		name        string
		valid       bool
		description string
		err         error
		want        []string
	}{
		{
			name:        "valid",
			valid:       true,
			description: "preferences saved",
			want:        []string{"✅: preferences saved"},
		},
		{
			name:        "invalid_with_error",
			description: "conversion failed to start",
			err:         errors.New("source missing"),
			want:        []string{"❌: conversion failed to start", "source missing"},
		},
		{
			name:        "invalid_without_error",
			description: "nothing to do",
			want:        []string{"⚠️: nothing to do"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, buf := newTestUserLogger(t)
			user.LogValidation(tt.valid, tt.description, tt.err)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestLogTable(t *testing.T) {
	user, buf := newTestUserLogger(t)

	err := user.LogTable([][]string{
		{"Key", "Value"},
		{"source", "/data/raw"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "source")
	assert.Contains(t, buf.String(), "/data/raw")
}

func TestPromptDirectory(t *testing.T) {
	tests := []struct {
		name        string
		current     string
		answer      string
		promptErr   error
		want        string
		errContains string
	}{
		{
			name:   "uses_answer",
			answer: "  /data/raw  ",
			want:   "/data/raw",
		},
		{
			name:    "blank_keeps_current",
			current: "/data/previous",
			answer:  "",
			want:    "/data/previous",
		},
		{
			name:        "blank_without_current",
			errContains: "source directory is required",
		},
		{
			name:        "prompt_fails",
			promptErr:   errors.New("interrupted"),
			errContains: "prompting for source directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, _ := newTestUserLogger(t)

			var gotDefault string
			user = user.WithPrompt(func(label, def string) (string, error) {
				gotDefault = def
				return tt.answer, tt.promptErr
			})

			got, err := user.PromptDirectory("Source directory", tt.current)
			assert.Equal(t, tt.current, gotDefault, "current value should be offered as default")
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
