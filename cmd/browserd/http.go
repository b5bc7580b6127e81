package main

import (
	"net/http"
	"time"

	"github.com/atheik/imagenet-browser/restserver"
	"github.com/atheik/imagenet-browser/taxonomy"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// serveHTTP runs the HTTP server on the specified local address.  This
// serves connections until ListenAndServe fails.  If reqLogger is not
// nil, every request gets a debug log line on the way in and another,
// with timing, on the way out.
func serveHTTP(store taxonomy.Store, laddr string, pageSize int, reqLogger *logrus.Logger) error {
	r := mux.NewRouter()
	restserver.PopulateRouter(r, store, pageSize)
	r.Handle("/metrics", promhttp.Handler())

	n := negroni.New(negroni.NewRecovery())
	if reqLogger != nil {
		n.Use(&requestLogger{logger: reqLogger})
	}
	n.UseHandler(r)
	return http.ListenAndServe(laddr, n)
}

// requestLogger is a negroni middleware that tags each request with a
// UUID and logs it coming and going.
type requestLogger struct {
	logger *logrus.Logger
}

func (l *requestLogger) ServeHTTP(w http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	entry := l.logger.WithFields(logrus.Fields{
		"id":     uuid.NewV4(),
		"method": req.Method,
		"url":    req.URL.String(),
		"remote": req.RemoteAddr,
	})
	entry.Debug("Request")
	start := time.Now()
	next(w, req)
	entry.WithField("duration", time.Since(start)).Debug("Response")
}
