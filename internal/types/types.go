// Package types holds the transfer models exchanged with API clients.
// Keeping them in one place prevents import cycles — handlers, mappers
// and the response helpers can all import types without depending on
// the storage layer.
package types

// Kind names a resource kind. It appears in not-found errors so the
// client can tell which collection the missing id belongs to.
type Kind string

const (
	KindStudent    Kind = "Student"
	KindSubject    Kind = "Subject"
	KindClassGroup Kind = "ClassGroup"
)

// Student is the wire form of a student record.
//
// Struct tags:
//
//	json:"id"   — pointer so a missing id decodes to nil and encodes as null.
//	json:"nome" — the API keeps the original Portuguese field name.
type Student struct {
	ID   *int64 `json:"id"`
	Name string `json:"nome"`
}

// Subject is the wire form of a subject (disciplina).
type Subject struct {
	ID   *int64 `json:"id"`
	Name string `json:"nome"`
}

// ClassGroup is the wire form of a class group (turma).
type ClassGroup struct {
	ID   *int64 `json:"id"`
	Name string `json:"nome"`
}
