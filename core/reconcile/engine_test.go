package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAll_PreservesOrderAndIsolatesFailures(t *testing.T) {
	jobs := []Job{
		{Name: "sw1", Run: func(ctx context.Context) (*Summary, error) {
			return &Summary{Host: "sw1", Interfaces: Counts{Inserted: 2}}, nil
		}},
		{Name: "sw2", Run: func(ctx context.Context) (*Summary, error) {
			return nil, errors.New("connection lost")
		}},
		{Name: "sw3", Run: func(ctx context.Context) (*Summary, error) {
			return &Summary{Host: "sw3", Macs: Counts{Updated: 1}}, nil
		}},
	}

	outcomes := RunAll(context.Background(), 2, jobs)
	require.Len(t, outcomes, 3)

	assert.Equal(t, "sw1", outcomes[0].Name)
	assert.NoError(t, outcomes[0].Err)
	assert.Equal(t, "sw1", outcomes[0].Summary.Host)

	assert.Equal(t, "sw2", outcomes[1].Name)
	assert.EqualError(t, outcomes[1].Err, "connection lost")
	assert.Nil(t, outcomes[1].Summary)

	assert.Equal(t, "sw3", outcomes[2].Summary.Host)

	report := NewReport(outcomes)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, Counts{Inserted: 2, Updated: 1}, report.Rows)
	assert.Equal(t, "connection lost", report.Outcomes[1].Error)
	assert.Empty(t, report.Outcomes[0].Error)
}

func TestRunAll_BoundsConcurrency(t *testing.T) {
	var running, peak int32
	jobs := make([]Job, 10)
	for i := range jobs {
		jobs[i] = Job{Name: fmt.Sprintf("sw%d", i), Run: func(ctx context.Context) (*Summary, error) {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return &Summary{}, nil
		}}
	}

	outcomes := RunAll(context.Background(), 3, jobs)
	assert.Len(t, outcomes, 10)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestRunAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	outcomes := RunAll(ctx, 1, []Job{{Name: "sw1", Run: func(ctx context.Context) (*Summary, error) {
		called = true
		return &Summary{}, nil
	}}})

	assert.False(t, called)
	assert.ErrorIs(t, outcomes[0].Err, context.Canceled)
}

func TestSummary_Total(t *testing.T) {
	s := Summary{
		Device:     Counts{Updated: 1},
		Interfaces: Counts{Inserted: 3, Updated: 1},
		Vlans:      Counts{Inserted: 2},
		Macs:       Counts{Inserted: 4},
		MacIPs:     Counts{Updated: 5},
	}
	assert.Equal(t, 16, s.Total())
}
