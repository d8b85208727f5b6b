package datastores

import (
	_ "encoding" // for documentation links to [encoding]
	"encoding/base32"

	"github.com/google/uuid"
)

// ContactID is the store's internal handle for a contact, a random
// [uuid.UUID] that marshals to unpadded [base32] text. Contacts are addressed
// by name on the wire; the ID only shows up in logs.
type ContactID uuid.UUID

var contactIDEncoding = base32.StdEncoding.WithPadding(base32.NoPadding) //nolint: gochecknoglobals,nolintlint

func newContactID() ContactID { return ContactID(uuid.Must(uuid.NewRandom())) }

// AppendText implements [encoding.TextAppender].
func (id ContactID) AppendText(b []byte) ([]byte, error) {
	return contactIDEncoding.AppendEncode(b, id[:]), nil
}

// MarshalText implements [encoding.TextMarshaler].
func (id ContactID) MarshalText() ([]byte, error) {
	return id.AppendText(nil)
}
