package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetrics(t *testing.T) {
	Convey("Given a metrics set", t, func() {
		m := New()

		Convey("When requests are observed", func() {
			m.ObserveRequest("/pastes", http.MethodGet, http.StatusOK, 10*time.Millisecond)
			m.ObserveRequest("/pastes", http.MethodGet, http.StatusOK, 20*time.Millisecond)
			m.ObserveRequest("/pastes", http.MethodPost, http.StatusInternalServerError, time.Millisecond)

			Convey("Then they are counted per label set", func() {
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("/pastes", "GET", "200")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("/pastes", "POST", "500")), ShouldEqual, 1)
			})
		})

		Convey("When an operation fails", func() {
			m.OperationFailed("delete paste")

			Convey("Then the failure is counted", func() {
				So(testutil.ToFloat64(m.failedOperations.WithLabelValues("delete paste")), ShouldEqual, 1)
			})
		})

		Convey("When two sets are created", func() {
			Convey("Then they do not collide", func() {
				So(func() { New(); New() }, ShouldNotPanic)
			})
		})

		Convey("When the handler is scraped", func() {
			m.OperationFailed("get pastes")
			rec := httptest.NewRecorder()
			m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

			Convey("Then the exposition contains the collectors", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, `pastebin_failed_operations_total{operation="get pastes"} 1`)
			})
		})
	})
}
