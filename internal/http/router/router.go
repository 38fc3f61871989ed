// Package router assembles the ServeMux: the three resources, the
// readiness probe and the metrics endpoint, wrapped in the middleware chain.
package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aanand-mishra/academic-api/internal/entity"
	"github.com/aanand-mishra/academic-api/internal/http/handlers/classgroup"
	"github.com/aanand-mishra/academic-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/academic-api/internal/http/handlers/student"
	"github.com/aanand-mishra/academic-api/internal/http/handlers/subject"
	"github.com/aanand-mishra/academic-api/internal/http/middleware"
	"github.com/aanand-mishra/academic-api/internal/utils/response"
)

const readyTimeout = 2 * time.Second

type Deps struct {
	Log         *slog.Logger
	Students    resource.Service[entity.Student]
	Subjects    resource.Service[entity.Subject]
	ClassGroups resource.Service[entity.ClassGroup]

	// Ready reports whether the database answers. Used by GET /readyz.
	Ready func(ctx context.Context) error

	// Registry receives the HTTP metrics and is served at GET /metrics.
	Registry *prometheus.Registry
}

// Route table:
//
//	POST/GET            /student, /subject, /class-group
//	GET/PUT/DELETE      /student/{id}, /subject/{id}, /class-group/{id}
//	GET                 /readyz
//	GET                 /metrics
func New(d Deps) (http.Handler, error) {
	metrics, err := middleware.NewMetrics(d.Registry)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	student.Register(mux, d.Students)
	subject.Register(mux, d.Subjects)
	classgroup.Register(mux, d.ClassGroups)

	mux.HandleFunc("GET /readyz", readyz(d.Ready))
	mux.Handle("GET /metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))

	return middleware.Chain(mux,
		middleware.RequestID(),
		middleware.Logging(d.Log),
		metrics.Middleware(mux),
		middleware.Recover(d.Log),
	), nil
}

func readyz(ready func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := ready(ctx); err != nil {
			slog.Warn("readiness check failed", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusServiceUnavailable, response.GeneralError(err))
			return
		}
		response.WriteJSON(w, http.StatusOK, response.Response{Status: response.StatusOK})
	}
}
