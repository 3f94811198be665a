package metric

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pax_requests_total",
			Help: "Total number of requests processed",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pax_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pax_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)

	packagesIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pax_signature_packages_total",
			Help: "Signature packages issued by the task master",
		},
		[]string{"kind", "valid"},
	)

	verificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pax_verification_failures_total",
			Help: "Signatures that did not recover to the task master",
		},
		[]string{"kind"},
	)

	reverts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pax_contract_reverts_total",
			Help: "TaskManager transactions rejected by the contract",
		},
		[]string{"method", "reason"},
	)
)

type Server struct {
	conf *Config
}

type Config struct {
	Port int `default:"4014"`
}

func New(conf *Config) *Server {
	if conf == nil {
		conf = &Config{}
		envconfig.MustProcess("metric", conf)
	}
	return &Server{conf: conf}
}

func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", s.conf.Port), mux)
}

// RecordRequest records a request metric
func RecordRequest(method, endpoint string, status int) {
	requestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
}

// RecordRequestDuration records the duration of a request
func RecordRequestDuration(method, endpoint string, duration time.Duration) {
	requestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordError records an error metric
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}

func RecordPackage(kind string, valid bool) {
	packagesIssued.WithLabelValues(kind, strconv.FormatBool(valid)).Inc()
}

func RecordVerificationFailure(kind string) {
	verificationFailures.WithLabelValues(kind).Inc()
}

// RecordRevert counts a contract rejection by method and revert reason.
func RecordRevert(method, reason string) {
	reverts.WithLabelValues(method, reason).Inc()
}
