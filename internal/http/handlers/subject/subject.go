// Package subject exposes the Subject resource at /subject.
package subject

import (
	"net/http"

	"github.com/aanand-mishra/academic-api/internal/entity"
	"github.com/aanand-mishra/academic-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/academic-api/internal/mapper"
)

const BasePath = "/subject"

func Register(mux *http.ServeMux, svc resource.Service[entity.Subject]) {
	resource.New(svc, mapper.SubjectToEntity, mapper.SubjectFromEntity).Register(mux, BasePath)
}
