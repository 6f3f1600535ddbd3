package metrics

import (
    "net/http"
    "time"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
    splitReqs = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "pdfsplit",
            Name:      "split_requests_total",
            Help:      "Total split requests by result (completed, parse_error, page_range_error, document_error, validation_error, rejected, error)",
        },
        []string{"result"},
    )

    splitDuration = prometheus.NewHistogram(
        prometheus.HistogramOpts{
            Namespace: "pdfsplit",
            Name:      "split_duration_seconds",
            Help:      "Duration of the parse+split+archive phase",
            Buckets:   prometheus.DefBuckets,
        },
    )

    documentsEmitted = prometheus.NewCounter(
        prometheus.CounterOpts{
            Namespace: "pdfsplit",
            Name:      "documents_emitted_total",
            Help:      "Total output sub-documents written into archives",
        },
    )

    pagesEmitted = prometheus.NewCounter(
        prometheus.CounterOpts{
            Namespace: "pdfsplit",
            Name:      "pages_emitted_total",
            Help:      "Total pages copied into output sub-documents",
        },
    )

    uploadBytes = prometheus.NewHistogram(
        prometheus.HistogramOpts{
            Namespace: "pdfsplit",
            Name:      "upload_bytes",
            Help:      "Size of uploaded source PDFs",
            Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
        },
    )
)

// Init registers collectors.
func Init() {
    prometheus.MustRegister(splitReqs, splitDuration, documentsEmitted, pagesEmitted, uploadBytes)
}

// Handler returns the http.Handler for /metrics
func Handler() http.Handler { return promhttp.Handler() }

func ObserveSplit(result string, dur time.Duration) {
    splitReqs.WithLabelValues(result).Inc()
    splitDuration.Observe(dur.Seconds())
}

func IncRequest(result string) { splitReqs.WithLabelValues(result).Inc() }

func AddEmitted(documents, pages int) {
    documentsEmitted.Add(float64(documents))
    pagesEmitted.Add(float64(pages))
}

func ObserveUploadSize(n int) { uploadBytes.Observe(float64(n)) }
