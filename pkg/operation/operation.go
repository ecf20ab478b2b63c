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

package operation

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/wdfconv/pkg/spectrum"
	"github.com/walteh/wdfconv/pkg/status"
	"github.com/walteh/wdfconv/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📎 File extensions handled by the default pipeline
const (
	SourceExtension = ".wdf"
	TargetExtension = ".txt"
)

// 📋 Job names the directories of one conversion run
type Job struct {
	SourceDirectory      string
	DestinationDirectory string
}

// 🖨️ Encoder renders a decoded record as file content
type Encoder interface {
	Encode(rec spectrum.Record) ([]byte, error)
}

// 🎯 Orchestrator runs a job to a terminal outcome. Run never returns before
// observer.OnFinished has been called with the returned outcome.
type Orchestrator interface {
	Run(ctx context.Context, job Job, observer Observer) Outcome
}

// 🔧 Options contains the collaborators of a Converter
type Options struct {
	// Decoder parses source files. Required.
	Decoder spectrum.Decoder
	// Encoder renders records. Defaults to text.TabularEncoder.
	Encoder Encoder
	// Enumerator lists source files. Defaults to SourceExtension matching.
	Enumerator Enumerator
	// Storage writes destination files. Defaults to status.Manager.
	Storage status.Storage
}

// 🔄 Converter converts every source file of a job, one at a time
type Converter struct {
	decoder    spectrum.Decoder
	encoder    Encoder
	enumerator Enumerator
	storage    status.Storage
}

var _ Orchestrator = (*Converter)(nil)

// 🏭 New creates a new converter with the given options
func New(opts Options) (*Converter, error) {
	if opts.Decoder == nil {
		return nil, errors.Errorf("decoder is required")
	}
	if opts.Encoder == nil {
		opts.Encoder = text.NewTabularEncoder()
	}
	if opts.Enumerator == nil {
		opts.Enumerator = NewExtensionEnumerator(SourceExtension)
	}
	if opts.Storage == nil {
		opts.Storage = status.NewManager()
	}
	return &Converter{
		decoder:    opts.Decoder,
		encoder:    opts.Encoder,
		enumerator: opts.Enumerator,
		storage:    opts.Storage,
	}, nil
}

// DestinationName maps a source file name to its converted name
func DestinationName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + TargetExtension
}

// 🏃 Run converts the files of job and reports to observer. Per-file failures
// are reported and skipped. Cancelling ctx stops the run before the next file.
func (c *Converter) Run(ctx context.Context, job Job, observer Observer) Outcome {
	if observer == nil {
		observer = nopObserver{}
	}

	logger := zerolog.Ctx(ctx).With().
		Str("source", job.SourceDirectory).
		Str("destination", job.DestinationDirectory).
		Logger()
	ctx = logger.WithContext(ctx)

	outcome := c.run(ctx, job, observer)
	logger.Debug().Stringer("outcome", outcome).Msg("run finished")
	observer.OnFinished(ctx, outcome)
	return outcome
}

func (c *Converter) run(ctx context.Context, job Job, observer Observer) Outcome {
	logger := zerolog.Ctx(ctx)

	files, err := c.prepare(ctx, job)
	if err != nil {
		logger.Warn().Err(err).Msg("conversion failed to start")
		return FailedToStart(err)
	}

	total := len(files)
	for i, name := range files {
		// Checkpoint: nothing of this file has been touched yet
		if ctx.Err() != nil {
			logger.Info().Int("completed", i).Int("total", total).Msg("conversion cancelled")
			return Cancelled()
		}

		if err := c.convertFile(ctx, job, name); err != nil {
			logger.Warn().Str("file", name).Err(err).Msg("file conversion failed")
			observer.OnError(ctx, name, err.Error())
		}
		observer.OnProgress(ctx, name, i+1, total)
	}

	return Completed()
}

// prepare validates the job and returns the files to convert
func (c *Converter) prepare(ctx context.Context, job Job) ([]string, error) {
	info, err := os.Stat(job.SourceDirectory)
	if err != nil {
		return nil, errors.Errorf("%w: %w", ErrInvalidSourceDirectory, err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%w: %s is not a directory", ErrInvalidSourceDirectory, job.SourceDirectory)
	}

	if err := c.storage.CreateDir(ctx, job.DestinationDirectory); err != nil {
		return nil, errors.Errorf("%w: %w", ErrDestinationUnwritable, err)
	}

	files, err := c.enumerator.Enumerate(ctx, job.SourceDirectory)
	if err != nil {
		return nil, errors.Errorf("%w: %w", ErrInvalidSourceDirectory, err)
	}
	if len(files) == 0 {
		return nil, errors.Errorf("%w in %s", ErrNoSourceFilesFound, job.SourceDirectory)
	}

	return files, nil
}

// 📄 convertFile decodes, encodes and writes a single file. Work already in
// progress is never interrupted by cancellation.
func (c *Converter) convertFile(ctx context.Context, job Job, name string) (err error) {
	stage := ErrDecode
	defer func() {
		if r := recover(); r != nil {
			err = newFileError(name, stage, errors.Errorf("panic: %v", r))
		}
	}()

	ctx = context.WithoutCancel(ctx)

	rec, err := c.decoder.Decode(ctx, filepath.Join(job.SourceDirectory, name))
	if err != nil {
		return newFileError(name, ErrDecode, err)
	}

	stage = ErrEncode
	content, err := c.encoder.Encode(rec)
	if err != nil {
		return newFileError(name, ErrEncode, err)
	}

	stage = ErrWrite
	dest := filepath.Join(job.DestinationDirectory, DestinationName(name))
	if err := c.storage.WriteFileAtomic(ctx, dest, content); err != nil {
		return newFileError(name, ErrWrite, err)
	}

	zerolog.Ctx(ctx).Debug().Str("file", name).Int("points", rec.Len()).Msg("converted file")
	return nil
}
