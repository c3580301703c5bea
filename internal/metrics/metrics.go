package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Результаты загрузки файлов
const (
	UploadOK       = "ok"
	UploadRejected = "rejected"
	UploadFailed   = "error"
)

// Итог обработки строки импорта характеристик
const (
	RowImported = "imported"
	RowUpdated  = "updated"
	RowSkipped  = "skipped"
)

var (
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moto_uploads_total",
		Help: "Uploaded files by category and result.",
	}, []string{"category", "result"})

	SpecImportRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moto_spec_import_rows_total",
		Help: "Spreadsheet spec rows processed by outcome.",
	}, []string{"outcome"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "moto_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Handler - обработчик /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
