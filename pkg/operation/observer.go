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
	"fmt"
)

// OutcomeKind is the terminal state of a run
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeCompleted
	OutcomeCancelled
	OutcomeFailedToStart
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCompleted:
		return "completed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailedToStart:
		return "failed to start"
	default:
		return "none"
	}
}

// 🏁 Outcome is delivered exactly once per run, after every other event.
// Err is set only for OutcomeFailedToStart and matches one of the startup errors.
type Outcome struct {
	Kind OutcomeKind
	Err  error
}

func Completed() Outcome { return Outcome{Kind: OutcomeCompleted} }

func Cancelled() Outcome { return Outcome{Kind: OutcomeCancelled} }

func FailedToStart(err error) Outcome { return Outcome{Kind: OutcomeFailedToStart, Err: err} }

func (o Outcome) String() string {
	if o.Err != nil {
		return fmt.Sprintf("%s: %v", o.Kind, o.Err)
	}
	return o.Kind.String()
}

// 👀 Observer receives the events of a run. All calls for one run come from
// the run goroutine, in file order, with OnFinished last.
type Observer interface {
	// OnProgress fires once per file reached, success or failure. completed is 1-based.
	OnProgress(ctx context.Context, filename string, completed, total int)
	// OnError fires before OnProgress for a file that failed. filename is empty
	// for errors that concern the whole job.
	OnError(ctx context.Context, filename, message string)
	// OnFinished fires exactly once with the terminal outcome.
	OnFinished(ctx context.Context, outcome Outcome)
}

// 📣 Observers fans every event out to each observer in order
type Observers []Observer

var _ Observer = Observers(nil)

func (o Observers) OnProgress(ctx context.Context, filename string, completed, total int) {
	for _, obs := range o {
		obs.OnProgress(ctx, filename, completed, total)
	}
}

func (o Observers) OnError(ctx context.Context, filename, message string) {
	for _, obs := range o {
		obs.OnError(ctx, filename, message)
	}
}

func (o Observers) OnFinished(ctx context.Context, outcome Outcome) {
	for _, obs := range o {
		obs.OnFinished(ctx, outcome)
	}
}

type nopObserver struct{}

func (nopObserver) OnProgress(context.Context, string, int, int) {}
func (nopObserver) OnError(context.Context, string, string)      {}
func (nopObserver) OnFinished(context.Context, Outcome)          {}
