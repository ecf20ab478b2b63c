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
	"time"
)

// EventType identifies an observer callback
type EventType string

const (
	EventProgress EventType = "progress"
	EventError    EventType = "error"
	EventFinished EventType = "finished"
)

// 📨 Event is one recorded observer callback
type Event struct {
	Seq       uint64
	Timestamp time.Time
	Type      EventType
	Filename  string
	Completed int
	Total     int
	Message   string
	Outcome   Outcome
}

// 📼 Recorder is an Observer that keeps the ordered event stream so pollers can
// catch up with Since or Follow. It is safe for concurrent readers while a run appends.
type Recorder struct {
	mu     sync.RWMutex
	seq    uint64
	events []Event
	notify chan struct{}
}

var _ Observer = (*Recorder)(nil)

// 🏭 NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{notify: make(chan struct{})}
}

func (r *Recorder) OnProgress(_ context.Context, filename string, completed, total int) {
	r.append(Event{Type: EventProgress, Filename: filename, Completed: completed, Total: total})
}

func (r *Recorder) OnError(_ context.Context, filename, message string) {
	r.append(Event{Type: EventError, Filename: filename, Message: message})
}

func (r *Recorder) OnFinished(_ context.Context, outcome Outcome) {
	r.append(Event{Type: EventFinished, Outcome: outcome})
}

func (r *Recorder) append(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	ev.Seq = r.seq
	ev.Timestamp = time.Now()
	r.events = append(r.events, ev)

	// Wake everyone blocked in Updates
	close(r.notify)
	r.notify = make(chan struct{})
}

// Events returns a copy of every recorded event
func (r *Recorder) Events() []Event {
	return r.Since(0)
}

// Since returns the events with a sequence number greater than seq
func (r *Recorder) Since(seq uint64) []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Sequence numbers are dense and start at 1
	if seq >= uint64(len(r.events)) {
		return []Event{}
	}
	out := make([]Event, len(r.events)-int(seq))
	copy(out, r.events[seq:])
	return out
}

// Updates returns a channel that is closed on the next recorded event
func (r *Recorder) Updates() <-chan struct{} {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.notify
}

// FailedFiles lists the files that produced an error event, in order
func (r *Recorder) FailedFiles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	files := []string{}
	for _, ev := range r.events {
		if ev.Type == EventError && ev.Filename != "" {
			files = append(files, ev.Filename)
		}
	}
	return files
}

// Outcome returns the recorded terminal outcome, if any
func (r *Recorder) Outcome() (Outcome, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n := len(r.events); n > 0 && r.events[n-1].Type == EventFinished {
		return r.events[n-1].Outcome, true
	}
	return Outcome{}, false
}

// Deliver replays ev on o
func (ev Event) Deliver(ctx context.Context, o Observer) {
	switch ev.Type {
	case EventProgress:
		o.OnProgress(ctx, ev.Filename, ev.Completed, ev.Total)
	case EventError:
		o.OnError(ctx, ev.Filename, ev.Message)
	case EventFinished:
		o.OnFinished(ctx, ev.Outcome)
	}
}

// 🔁 Follow replays recorded events on o from the calling goroutine, in order,
// until done is closed and every event recorded before that has been delivered.
func (r *Recorder) Follow(ctx context.Context, done <-chan struct{}, o Observer) {
	var seen uint64
	deliver := func() {
		for _, ev := range r.Since(seen) {
			ev.Deliver(ctx, o)
			seen = ev.Seq
		}
	}

	for {
		// Take the channel first so an event landing during delivery still wakes us
		updates := r.Updates()
		deliver()

		select {
		case <-updates:
		case <-done:
			deliver()
			return
		}
	}
}
