package domain

import "maps"

// Access levels stored on user records.
const (
	AccessUser  = "user"
	AccessAdmin = "admin"
)

// Well-known record keys.
const (
	FieldID       = "id"
	FieldUserID   = "userId"
	FieldPassword = "password"
	FieldAccess   = "access"
	FieldEmail    = "email"
	FieldTaskID   = "taskId"
	FieldPlaces   = "places"
)

// Record is one persisted resource: a flat mapping of field names to JSON
// scalar values, kept in the order-insensitive shape it is stored in.
type Record map[string]any

// String returns the named field when it holds a string, or "".
func (r Record) String(name string) string {
	s, _ := r[name].(string)
	return s
}

// ID returns the record's server-assigned identifier.
func (r Record) ID() string {
	return r.String(FieldID)
}

// Owner returns the userId the record was created under.
func (r Record) Owner() string {
	return r.String(FieldUserID)
}

// Clone returns a shallow copy. Records only hold scalars, so the copy is
// independent of the original.
func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}
	return maps.Clone(r)
}

// Without returns a copy with the named fields removed.
func (r Record) Without(names ...string) Record {
	out := r.Clone()
	for _, n := range names {
		delete(out, n)
	}
	return out
}

// Public strips fields that must never leave the process.
func (r Record) Public() Record {
	return r.Without(FieldPassword)
}

// IndexOf returns the position of the record with the given id, or -1.
func IndexOf(records []Record, id string) int {
	for i, rec := range records {
		if rec.ID() == id {
			return i
		}
	}
	return -1
}
