// Package entity defines the persisted records owned by the storage layer.
//
// Each record has a generated integer primary key and a free-form name
// stored in the "nome" column. The three kinds are structurally identical
// but live in separate tables and never reference each other.
package entity

// Entity is the constraint shared by every persisted record.
//
// Identity returns the primary key, 0 meaning "not stored yet".
// WithChanges returns a copy of the receiver carrying the mutable fields
// of changes; the receiver's identity is always kept.
type Entity[E any] interface {
	Identity() int64
	WithChanges(changes E) E
}

type Student struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:nome"`
}

func (Student) TableName() string { return "students" }

func (s Student) Identity() int64 { return s.ID }

func (s Student) WithChanges(changes Student) Student {
	s.Name = changes.Name
	return s
}

type Subject struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:nome"`
}

func (Subject) TableName() string { return "subjects" }

func (s Subject) Identity() int64 { return s.ID }

func (s Subject) WithChanges(changes Subject) Subject {
	s.Name = changes.Name
	return s
}

type ClassGroup struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:nome"`
}

func (ClassGroup) TableName() string { return "class_groups" }

func (c ClassGroup) Identity() int64 { return c.ID }

func (c ClassGroup) WithChanges(changes ClassGroup) ClassGroup {
	c.Name = changes.Name
	return c
}

// All lists every model for auto-migration.
func All() []any {
	return []any{&Student{}, &Subject{}, &ClassGroup{}}
}
