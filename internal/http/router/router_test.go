package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aanand-mishra/academic-api/internal/entity"
	"github.com/aanand-mishra/academic-api/internal/service"
	"github.com/aanand-mishra/academic-api/internal/storage/orm"
	"github.com/aanand-mishra/academic-api/internal/types"
)

func newHandler(t *testing.T, ready func(context.Context) error) http.Handler {
	t.Helper()
	db, err := orm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), orm.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = orm.Close(db) })

	if ready == nil {
		ready = func(ctx context.Context) error { return orm.Ping(ctx, db) }
	}

	h, err := New(depsFor(db, ready))
	require.NoError(t, err)
	return h
}

func depsFor(db *gorm.DB, ready func(context.Context) error) Deps {
	return Deps{
		Log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Students:    service.New[entity.Student](types.KindStudent, orm.NewRepository[entity.Student](db)),
		Subjects:    service.New[entity.Subject](types.KindSubject, orm.NewRepository[entity.Subject](db)),
		ClassGroups: service.New[entity.ClassGroup](types.KindClassGroup, orm.NewRepository[entity.ClassGroup](db)),
		Ready:       ready,
		Registry:    prometheus.NewRegistry(),
	}
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestResourcesAreIndependent(t *testing.T) {
	h := newHandler(t, nil)

	for _, base := range []string{"/student", "/subject", "/class-group"} {
		rec := serve(h, http.MethodPost, base, `{"nome":"Primeiro"}`)
		require.Equal(t, http.StatusOK, rec.Code, base)
		// every table assigns its own ids
		assert.JSONEq(t, `{"id":1,"nome":"Primeiro"}`, rec.Body.String(), base)
	}

	rec := serve(h, http.MethodDelete, "/subject/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/student/1", "").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/class-group/1", "").Code)

	rec = serve(h, http.MethodGet, "/subject/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Subject with id 1 not found")
}

func TestRequestIDHeader(t *testing.T) {
	h := newHandler(t, nil)

	rec := serve(h, http.MethodGet, "/class-group", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestReadyz(t *testing.T) {
	rec := serve(newHandler(t, nil), http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	down := newHandler(t, func(context.Context) error { return errors.New("connection refused") })
	rec = serve(down, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newHandler(t, nil)
	serve(h, http.MethodGet, "/student", "")

	rec := serve(h, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/student",status="200"} 1`)
}

func TestMetricsIgnoreUnknownPaths(t *testing.T) {
	db, err := orm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), orm.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = orm.Close(db) })

	deps := depsFor(db, func(context.Context) error { return nil })
	h, err := New(deps)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		serve(h, http.MethodGet, fmt.Sprintf("/nope-%d/x", i), "")
	}
	serve(h, http.MethodGet, "/student/1", "")
	serve(h, http.MethodGet, "/student/2", "")

	// one series for all unknown paths, one for /student/{id}
	n, err := testutil.GatherAndCount(deps.Registry, "http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
