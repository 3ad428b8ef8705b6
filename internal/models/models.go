package models

import (
	"github.com/okamoto/staff-records/internal/console"
)

// Kind identifies a menu-selectable record variant
type Kind int

const (
	KindTeacher Kind = iota + 1
	KindRegular
	KindCasual
	KindOfficer
)

// String returns the log name of the kind
func (k Kind) String() string {
	switch k {
	case KindTeacher:
		return "teacher"
	case KindRegular:
		return "regular_typist"
	case KindCasual:
		return "casual_typist"
	case KindOfficer:
		return "officer"
	default:
		return "unknown"
	}
}

// Record is a staff record that can be filled from and printed to a console.
// Input reads ancestor fields before the variant's own; Display prints the
// variant header followed by ancestor fields and then its own.
type Record interface {
	Kind() Kind
	Base() *Staff
	Input(c *console.Console)
	Display(c *console.Console)
}

// New creates an empty record of the given kind, or nil for an unknown kind
func New(kind Kind) Record {
	switch kind {
	case KindTeacher:
		return &Teacher{}
	case KindRegular:
		return &Regular{}
	case KindCasual:
		return &Casual{}
	case KindOfficer:
		return &Officer{}
	default:
		return nil
	}
}
