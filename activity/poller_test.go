// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package activity

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusCreated.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConsensusNeeded.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusConsensusTimeout.Terminal())
}

func TestPoller_Poll_terminal_short_circuit(t *testing.T) {
	fetches := 0

	p := Poller{
		MaxRetries: 3,
		Fetch: func(string) (*Activity, error) {
			fetches++
			return nil, errors.New("must not be called")
		},
	}

	initial := &Activity{ID: uuid.NewString(), Status: StatusCompleted}

	final, err := p.Poll(initial)
	require.NoError(t, err)

	assert.Same(t, initial, final)
	assert.Equal(t, 0, fetches)
}

func TestPoller_Poll_retry_ceiling(t *testing.T) {
	fetches := 0
	id := uuid.NewString()

	p := Poller{
		MaxRetries: 3,
		Fetch: func(activityID string) (*Activity, error) {
			assert.Equal(t, id, activityID)
			fetches++
			return &Activity{ID: activityID, Status: StatusPending}, nil
		},
	}

	final, err := p.Poll(&Activity{ID: id, Status: StatusPending})
	require.NoError(t, err)

	// exhausting retries is not an error: the last non-terminal
	// snapshot is handed back to the caller
	assert.Equal(t, 3, fetches)
	assert.Equal(t, StatusPending, final.Status)
}

func TestPoller_Poll_stops_on_terminal(t *testing.T) {
	statuses := []Status{StatusPending, StatusFailed, StatusPending}
	fetches := 0

	p := Poller{
		MaxRetries: 3,
		Fetch: func(activityID string) (*Activity, error) {
			s := statuses[fetches]
			fetches++
			return &Activity{ID: activityID, Status: s}, nil
		},
	}

	final, err := p.Poll(&Activity{ID: uuid.NewString(), Status: StatusConsensusNeeded})
	require.NoError(t, err)

	assert.Equal(t, 2, fetches)
	assert.Equal(t, StatusFailed, final.Status)
}

func TestPoller_Poll_fetch_error(t *testing.T) {
	p := Poller{
		MaxRetries: 3,
		Fetch: func(string) (*Activity, error) {
			return nil, errors.New("boom")
		},
	}

	_, err := p.Poll(&Activity{ID: uuid.NewString(), Status: StatusPending})
	assert.EqualError(t, err, "activity status fetch failed: boom")
}

func TestPoller_Poll_nil_activity(t *testing.T) {
	p := NewPoller(func(string) (*Activity, error) { return nil, nil })

	expectedErr := `no activity snapshot supplied`

	_, err := p.Poll(nil)
	assert.EqualError(t, err, expectedErr)
}

func TestPoller_Poll_nil_fetch(t *testing.T) {
	p := Poller{MaxRetries: 1}

	expectedErr := `no fetch function supplied`

	_, err := p.Poll(&Activity{ID: uuid.NewString(), Status: StatusPending})
	assert.EqualError(t, err, expectedErr)
}
