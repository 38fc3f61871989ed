// Package mapper converts between transfer models and persisted entities.
//
// There is one explicit function per direction and resource kind. Mapping
// never fails: a nil transfer id becomes the zero entity id (not stored
// yet), and an entity id always comes back as a non-nil pointer.
package mapper

import (
	"github.com/aanand-mishra/academic-api/internal/entity"
	"github.com/aanand-mishra/academic-api/internal/types"
)

// MapAll applies fn to every element of in. The result is never nil so
// an empty collection encodes to [] rather than null.
func MapAll[S, T any](in []S, fn func(S) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func idFromTransfer(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func idToTransfer(id int64) *int64 {
	return &id
}

func StudentToEntity(s types.Student) entity.Student {
	return entity.Student{ID: idFromTransfer(s.ID), Name: s.Name}
}

func StudentFromEntity(s entity.Student) types.Student {
	return types.Student{ID: idToTransfer(s.ID), Name: s.Name}
}

func SubjectToEntity(s types.Subject) entity.Subject {
	return entity.Subject{ID: idFromTransfer(s.ID), Name: s.Name}
}

func SubjectFromEntity(s entity.Subject) types.Subject {
	return types.Subject{ID: idToTransfer(s.ID), Name: s.Name}
}

func ClassGroupToEntity(c types.ClassGroup) entity.ClassGroup {
	return entity.ClassGroup{ID: idFromTransfer(c.ID), Name: c.Name}
}

func ClassGroupFromEntity(c entity.ClassGroup) types.ClassGroup {
	return types.ClassGroup{ID: idToTransfer(c.ID), Name: c.Name}
}
