package common

import "github.com/prometheus/client_golang/prometheus"

const (
	HTTPRequestTotal           = "http_requests_total"
	HTTPRequestDurationSeconds = "http_request_duration_seconds"

	ChainCallTotal                 = "chain_call_total"
	BlockchainTransactionFailure   = "blockchain_transaction_failure"
	TransactionConfirmationSeconds = "transaction_confirmation_seconds"
	ChainBlockHeight               = "chain_block_height"
)

var (
	PromGauges = map[string]*prometheus.GaugeVec{
		ChainBlockHeight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: ChainBlockHeight,
			Help: "Latest block height reported by the chain node",
		}, []string{"chain"}),
	}

	PromCounters = map[string]*prometheus.CounterVec{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: HTTPRequestTotal,
			Help: "Count of all HTTP requests",
		}, []string{"method", "status_code"}),
		ChainCallTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: ChainCallTotal,
			Help: "Count of all JSON-RPC calls to the chain node",
		}, []string{"method", "result"}),
		BlockchainTransactionFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: BlockchainTransactionFailure,
			Help: "Count of all blockchain transaction failure",
		}, []string{"method", "reason"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: HTTPRequestDurationSeconds,
			Help: "Duration of all HTTP requests",
		}, []string{"method", "status_code"}),
		TransactionConfirmationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    TransactionConfirmationSeconds,
			Help:    "Time from submission to confirmation of server-signed transactions",
			Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 120},
		}, []string{"method", "result"}),
	}
)
