package scheduler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"trial-match/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExpiryCloserRun(t *testing.T) {
	uc := mocks.NewMockCampaignUseCase(t)
	uc.EXPECT().CloseExpired(mock.Anything).Return([]int64{3, 4}, nil).Once()

	ids, err := NewExpiryCloser(uc, discardLogger()).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4}, ids)
}

func TestExpiryCloserRunError(t *testing.T) {
	uc := mocks.NewMockCampaignUseCase(t)
	boom := errors.New("db down")
	uc.EXPECT().CloseExpired(mock.Anything).Return(nil, boom).Once()

	_, err := NewExpiryCloser(uc, discardLogger()).Run(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	s := New(discardLogger())
	err := s.Add("noop", "every minute please", func(context.Context) error { return nil })
	assert.Error(t, err)
}

func TestSchedulerRunsJobs(t *testing.T) {
	s := New(discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ran := make(chan struct{}, 1)
	require.NoError(t, s.Add("tick", "@every 1s", func(context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	}))

	done := make(chan error)
	go func() { done <- s.Run(ctx) }()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
	cancel()
	require.NoError(t, <-done)
}

func TestFailedJobIsLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	uc := mocks.NewMockCampaignUseCase(t)
	uc.EXPECT().CloseExpired(mock.Anything).Return(nil, errors.New("db down")).Maybe()
	closer := NewExpiryCloser(uc, logger)

	s := New(logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ran := make(chan struct{}, 1)
	require.NoError(t, s.Add("close-expired", "@every 1s", func(ctx context.Context) error {
		defer func() {
			select {
			case ran <- struct{}{}:
			default:
			}
		}()
		_, err := closer.Run(ctx)
		return err
	}))

	done := make(chan error)
	go func() { done <- s.Run(ctx) }()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
	cancel()
	require.NoError(t, <-done)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, buf.String())
	assert.Contains(t, lines[0], `"level":"ERROR"`)
	assert.Contains(t, lines[0], `"msg":"job failed"`)
	assert.Contains(t, lines[0], "db down")
}
