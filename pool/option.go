// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pool

import (
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
)

type Option func(*Pool) error

// WithLogger attaches [log] to the pool. The default is [logging.NoLog].
func WithLogger(log logging.Logger) Option {
	return func(p *Pool) error {
		p.log = log
		return nil
	}
}

// WithMetrics registers the pool's operation counters on [r].
func WithMetrics(r prometheus.Registerer) Option {
	return func(p *Pool) error {
		m, err := newMetrics(r)
		if err != nil {
			return err
		}
		p.metrics = m
		return nil
	}
}
