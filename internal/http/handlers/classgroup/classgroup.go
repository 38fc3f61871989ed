// Package classgroup exposes the ClassGroup resource at /class-group.
package classgroup

import (
	"net/http"

	"github.com/aanand-mishra/academic-api/internal/entity"
	"github.com/aanand-mishra/academic-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/academic-api/internal/mapper"
)

const BasePath = "/class-group"

func Register(mux *http.ServeMux, svc resource.Service[entity.ClassGroup]) {
	resource.New(svc, mapper.ClassGroupToEntity, mapper.ClassGroupFromEntity).Register(mux, BasePath)
}
