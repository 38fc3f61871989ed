// Package resource contains the HTTP handlers shared by every resource kind.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Each method returns a func(http.ResponseWriter, *http.Request) that
// closes over the service and the mapper pair. The factories run ONCE at
// startup; the returned handlers run on EVERY request:
//
//	h := resource.New(svc, mapper.StudentToEntity, mapper.StudentFromEntity)
//	h.Register(mux, "/student")
//
// D is the transfer model sent over the wire, E the persisted entity.
package resource

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aanand-mishra/academic-api/internal/entity"
	"github.com/aanand-mishra/academic-api/internal/mapper"
	"github.com/aanand-mishra/academic-api/internal/types"
	"github.com/aanand-mishra/academic-api/internal/utils/response"
)

// Service is what the handlers need from service.Service.
type Service[E any] interface {
	Kind() types.Kind
	Create(ctx context.Context, e E) (E, error)
	ListAll(ctx context.Context) ([]E, error)
	GetByID(ctx context.Context, id int64) (E, error)
	Update(ctx context.Context, id int64, changes E) (E, error)
	Delete(ctx context.Context, id int64) error
}

type Handlers[D any, E entity.Entity[E]] struct {
	svc        Service[E]
	toEntity   func(D) E
	fromEntity func(E) D
}

func New[D any, E entity.Entity[E]](svc Service[E], toEntity func(D) E, fromEntity func(E) D) *Handlers[D, E] {
	return &Handlers[D, E]{svc: svc, toEntity: toEntity, fromEntity: fromEntity}
}

// Register wires the five routes under base:
//
//	POST   base        → Create
//	GET    base        → GetList
//	GET    base/{id}   → GetByID
//	PUT    base/{id}   → Update
//	DELETE base/{id}   → Delete
func (h *Handlers[D, E]) Register(mux *http.ServeMux, base string) {
	mux.HandleFunc("POST "+base, h.Create())
	mux.HandleFunc("GET "+base, h.GetList())
	mux.HandleFunc("GET "+base+"/{id}", h.GetByID())
	mux.HandleFunc("PUT "+base+"/{id}", h.Update())
	mux.HandleFunc("DELETE "+base+"/{id}", h.Delete())
}

// ─────────────────────────────────────────────────────────────────────────────
// Create handles POST base
//
// Request body:  { "nome": "João" }   (an "id" is ignored)
// Response 200:  { "id": 1, "nome": "João" }
// ─────────────────────────────────────────────────────────────────────────────
func (h *Handlers[D, E]) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a record", h.kindAttr())

		dto, ok := decodeBody[D](w, r)
		if !ok {
			return
		}

		// New records never carry a client-supplied identity: start from
		// the zero entity and copy only the mutable fields.
		var blank E
		saved, err := h.svc.Create(r.Context(), blank.WithChanges(h.toEntity(dto)))
		if err != nil {
			h.fail(w, "error creating record", err)
			return
		}

		slog.Info("record created", h.kindAttr(), slog.Int64("id", saved.Identity()))
		response.WriteJSON(w, http.StatusOK, h.fromEntity(saved))
	}
}

// GetList handles GET base. An empty collection encodes to [].
func (h *Handlers[D, E]) GetList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing records", h.kindAttr())

		all, err := h.svc.ListAll(r.Context())
		if err != nil {
			h.fail(w, "error listing records", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, mapper.MapAll(all, h.fromEntity))
	}
}

func (h *Handlers[D, E]) GetByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		slog.Info("getting a record", h.kindAttr(), slog.Int64("id", id))

		e, err := h.svc.GetByID(r.Context(), id)
		if err != nil {
			h.fail(w, "error getting record", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, h.fromEntity(e))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT base/{id}
// Only "nome" is applied; the id in the body, if any, is ignored.
// ─────────────────────────────────────────────────────────────────────────────
func (h *Handlers[D, E]) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		slog.Info("updating a record", h.kindAttr(), slog.Int64("id", id))

		dto, ok := decodeBody[D](w, r)
		if !ok {
			return
		}

		updated, err := h.svc.Update(r.Context(), id, h.toEntity(dto))
		if err != nil {
			h.fail(w, "error updating record", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, h.fromEntity(updated))
	}
}

// Delete handles DELETE base/{id}. Success is a 200 with an empty body.
func (h *Handlers[D, E]) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		slog.Info("deleting a record", h.kindAttr(), slog.Int64("id", id))

		if err := h.svc.Delete(r.Context(), id); err != nil {
			h.fail(w, "error deleting record", err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func (h *Handlers[D, E]) kindAttr() slog.Attr {
	return slog.String("kind", string(h.svc.Kind()))
}

func (h *Handlers[D, E]) fail(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, h.kindAttr(), slog.String("error", err.Error()))
	response.WriteError(w, err)
}

// pathID parses the {id} segment. Writes a 400 and reports false when it
// is not an integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("invalid id: must be an integer")))
		return 0, false
	}
	return id, true
}

// decodeBody reads a JSON transfer model. Writes a 400 and reports false
// on an empty or malformed body.
func decodeBody[D any](w http.ResponseWriter, r *http.Request) (D, bool) {
	var dto D

	err := json.NewDecoder(r.Body).Decode(&dto)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("request body is empty")))
		return dto, false
	}
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return dto, false
	}

	return dto, true
}
