package services

import (
	"strings"

	"github.com/google/uuid"
)

type categoryRefKind int

const (
	categoryRefInvalid categoryRefKind = iota
	categoryRefByID
	categoryRefByName
)

// CategoryRef names a category either by an id the caller asserts exists,
// or by name (resolved personal-first, then predefined, else created).
// The zero value is invalid; build one through CategoryByID or
// CategoryByName so resolvers branch on an explicit variant instead of
// probing optional fields.
type CategoryRef struct {
	kind categoryRefKind
	id   uuid.UUID
	name string
}

func CategoryByID(id uuid.UUID) CategoryRef {
	return CategoryRef{kind: categoryRefByID, id: id}
}

func CategoryByName(name string) CategoryRef {
	return CategoryRef{kind: categoryRefByName, name: strings.TrimSpace(name)}
}

func (r CategoryRef) ByID() (uuid.UUID, bool) {
	return r.id, r.kind == categoryRefByID && r.id != uuid.Nil
}

func (r CategoryRef) ByName() (string, bool) {
	return r.name, r.kind == categoryRefByName && r.name != ""
}

func (r CategoryRef) Valid() bool {
	_, byID := r.ByID()
	_, byName := r.ByName()
	return byID || byName
}

// SkillRef is the caller-supplied technique reference: a skill name plus
// the category it lives in.
type SkillRef struct {
	Name     string
	Category CategoryRef
}

// StepInput is one ordered stage of the technique as submitted; position
// in the slice decides the persisted step number.
type StepInput struct {
	Intention string
	Details   []string
}

// UserSkillInput carries the per-user fields of one logging call.
type UserSkillInput struct {
	Note       string
	VideoURL   string
	Source     string
	IsFavorite bool
	Steps      []StepInput
}
