// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pool

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	liquidityAdds    prometheus.Counter
	liquidityRemoves prometheus.Counter
	swaps            prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		liquidityAdds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pool",
			Name:      "liquidity_adds",
			Help:      "number of successful add liquidity calls",
		}),
		liquidityRemoves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pool",
			Name:      "liquidity_removes",
			Help:      "number of successful remove liquidity calls",
		}),
		swaps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pool",
			Name:      "swaps",
			Help:      "number of successful swaps",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.liquidityAdds),
		r.Register(m.liquidityRemoves),
		r.Register(m.swaps),
	)
	return m, errs.Err
}
