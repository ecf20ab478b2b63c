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
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes one orchestrator run at a time in the background. It is
// a reusable handle: a new run may start once the previous one has finished.
type Runner struct {
	orchestrator Orchestrator
	observer     Observer

	mu      sync.Mutex
	current *run
}

// run is the bookkeeping of one background execution
type run struct {
	id      string
	cancel  context.CancelFunc
	group   *errgroup.Group
	done    chan struct{}
	outcome Outcome
}

// 🏗️ NewRunner creates a new runner
func NewRunner(orchestrator Orchestrator, observer Observer) *Runner {
	return &Runner{
		orchestrator: orchestrator,
		observer:     observer,
	}
}

// ▶️ Start launches job in the background and returns true. If a run is
// already active the request is ignored and Start returns false. Cancelling
// ctx cancels the run the same way Cancel does.
func (r *Runner) Start(ctx context.Context, job Job) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.activeLocked() {
		zerolog.Ctx(ctx).Debug().Str("run_id", r.current.id).Msg("run already active, ignoring start")
		return false
	}

	id := uuid.NewString()
	logger := zerolog.Ctx(ctx).With().Str("run_id", id).Logger()
	runCtx, cancel := context.WithCancel(logger.WithContext(ctx))

	current := &run{
		id:     id,
		cancel: cancel,
		group:  &errgroup.Group{},
		done:   make(chan struct{}),
	}
	r.current = current

	logger.Debug().Msg("starting run")
	current.group.Go(func() error {
		defer close(current.done)
		defer cancel()
		current.outcome = r.orchestrator.Run(runCtx, job, r.observer)
		return nil
	})

	return true
}

// 🛑 Cancel asks the active run to stop at its next file boundary. It is safe
// to call any number of times, including when no run is active.
func (r *Runner) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil {
		r.current.cancel()
	}
}

// IsActive reports whether a run has started and not yet delivered its outcome
func (r *Runner) IsActive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeLocked()
}

func (r *Runner) activeLocked() bool {
	if r.current == nil {
		return false
	}
	select {
	case <-r.current.done:
		return false
	default:
		return true
	}
}

// ⏳ Wait blocks until the latest run finishes and returns its outcome. It
// returns the zero Outcome if nothing was ever started.
func (r *Runner) Wait() Outcome {
	r.mu.Lock()
	current := r.current
	r.mu.Unlock()

	if current == nil {
		return Outcome{}
	}
	_ = current.group.Wait()
	return current.outcome
}

// Done returns a channel closed when the latest run finishes
func (r *Runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return r.current.done
}

// RunID returns the id of the latest run, or "" if nothing was started
func (r *Runner) RunID() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return ""
	}
	return r.current.id
}
