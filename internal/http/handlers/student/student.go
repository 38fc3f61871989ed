// Package student exposes the Student resource at /student.
package student

import (
	"net/http"

	"github.com/aanand-mishra/academic-api/internal/entity"
	"github.com/aanand-mishra/academic-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/academic-api/internal/mapper"
)

const BasePath = "/student"

func Register(mux *http.ServeMux, svc resource.Service[entity.Student]) {
	resource.New(svc, mapper.StudentToEntity, mapper.StudentFromEntity).Register(mux, BasePath)
}
