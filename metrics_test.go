// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecordCalls(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(m))

	srv := newConflictServer(t, 2)
	client := New(srv.URL, WithMetrics(m))
	_, err := client.SessionStats(context.Background())
	require.NoError(t, err)

	method := string(MethodSessionStats)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.attempts.WithLabelValues(method)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.conflicts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues(method, outcomeOK)))

	exhausted := newConflictServer(t, 100)
	_, err = New(exhausted.URL, WithMetrics(m)).SessionStats(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues(method, outcomeExhausted)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.calls))
}

func TestMetricsCountFailedResults(t *testing.T) {
	m := NewMetrics()
	srv := newConflictServer(t, 0, func(s *conflictServer) {
		s.reply = `{"arguments":{},"result":"port test failed"}`
	})
	_, err := New(srv.URL, WithMetrics(m)).PortTest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues(string(MethodPortTest), outcomeFailed)))
}
