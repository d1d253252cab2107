// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package activity

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultInterval   = 1 * time.Second
	DefaultMaxRetries = 3
)

// FetchFunc re-fetches the current snapshot of an activity, typically by
// issuing the activity status query.
type FetchFunc func(activityID string) (*Activity, error)

// Poller re-fetches an activity at a fixed interval until a terminal
// status is observed or the retry ceiling is hit. It blocks the calling
// goroutine for its whole duration and performs no cancellation of its
// own; callers needing to abort must bound the underlying HTTP client
// with a timeout.
type Poller struct {
	Interval   time.Duration // delay before each status fetch
	MaxRetries int           // upper bound on status fetches
	Fetch      FetchFunc
}

// NewPoller creates a Poller with the default interval and retry ceiling.
func NewPoller(fetch FetchFunc) *Poller {
	return &Poller{
		Interval:   DefaultInterval,
		MaxRetries: DefaultMaxRetries,
		Fetch:      fetch,
	}
}

// Poll runs the polling loop starting from the supplied snapshot. A
// terminal initial snapshot is returned immediately without any fetch.
// Exhausting the retry ceiling is not an error: the last observed
// snapshot is returned with its non-terminal status intact, and the
// caller is expected to inspect it.
func (o *Poller) Poll(initial *Activity) (*Activity, error) {
	if initial == nil {
		return nil, errors.New("no activity snapshot supplied")
	}

	current := initial

	if current.Status.Terminal() {
		return current, nil
	}

	if o.Fetch == nil {
		return nil, errors.New("no fetch function supplied")
	}

	for attempt := 0; attempt < o.MaxRetries; attempt++ {
		time.Sleep(o.Interval)

		next, err := o.Fetch(current.ID)
		if err != nil {
			return nil, fmt.Errorf("activity status fetch failed: %w", err)
		}

		current = next

		if current.Status.Terminal() {
			break
		}
	}

	return current, nil
}
