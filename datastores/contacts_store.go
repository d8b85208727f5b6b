package datastores

import (
	"context"
	"errors"
)

type Contact struct {
	ID      ContactID
	Name    string
	Phone   string
	Email   string
	Address string
}

// ContactPatch holds the fields of an update. A nil field is left unchanged,
// a non-nil empty field is applied as empty (except Phone, which is ignored
// when empty).
type ContactPatch struct {
	Phone   *string
	Email   *string
	Address *string
}

type ContactsStats struct {
	Total       int
	WithEmail   int
	WithAddress int
}

// ContactsStore keeps contacts ordered most-recently-added first, unique by
// case-insensitive name.
type ContactsStore interface {
	Add(context.Context, *Contact) (*Contact, error)
	Update(ctx context.Context, name string, patch *ContactPatch) (*Contact, error)
	Delete(ctx context.Context, name string) error
	Search(ctx context.Context, query string) ([]*Contact, error)
	List(context.Context) ([]*Contact, error)
	Stats(context.Context) (ContactsStats, error)
}

var (
	ErrInvalidObject  = errors.New("store: invalid object")
	ErrObjectExists   = errors.New("store: object already exists")
	ErrObjectNotFound = errors.New("store: object not found")
	ErrStoreEmpty     = errors.New("store: empty")
)

// Error is a rejected store operation. Msg is meant for end users,
// Err is one of the sentinel errors above.
type Error struct {
	Err error
	Msg string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }

var (
	errRequired      = &Error{ErrInvalidObject, "Name and phone are required"}
	errExists        = &Error{ErrObjectExists, "Contact already exists"}
	errInvalidPhone  = &Error{ErrInvalidObject, "Invalid phone number format"}
	errInvalidEmail  = &Error{ErrInvalidObject, "Invalid email format"}
	errNotFound      = &Error{ErrObjectNotFound, "Contact not found"}
	errNothingToDrop = &Error{ErrStoreEmpty, "No contacts to delete"}
)

// SampleContacts returns the records a fresh store is seeded with.
func SampleContacts() []*Contact {
	return []*Contact{
		{Name: "John Doe", Phone: "1234567890", Email: "john.doe@email.com", Address: "123 Main Street, New York"},
		{Name: "Jane Smith", Phone: "9876543210", Email: "jane.smith@gmail.com", Address: "456 Oak Avenue, Los Angeles"},
		{Name: "Michael Johnson", Phone: "5555551234", Email: "m.johnson@company.com", Address: "789 Pine Road, Chicago"},
		{Name: "Sarah Wilson", Phone: "7777778888", Email: "sarah.w@outlook.com", Address: "321 Elm Street, Houston"},
		{Name: "David Brown", Phone: "9999994444", Email: "david.brown@email.com", Address: "654 Maple Drive, Phoenix"},
	}
}
