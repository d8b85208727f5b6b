package datastores

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// ContactsInmem implements [ContactsStore].
//
// Contacts are kept in an arena keyed by [ContactID]. The order slice holds
// the IDs oldest first, so the logical front of the store is its tail.
type ContactsInmem struct {
	mu       sync.Mutex
	logger   *slog.Logger
	contacts map[ContactID]*Contact
	names    map[string]ContactID
	order    []ContactID
}

var _ ContactsStore = (*ContactsInmem)(nil)

// NewContactsInmem returns a store seeded with cs, added in order.
// A nil logger discards logs.
func NewContactsInmem(logger *slog.Logger, cs ...*Contact) (*ContactsInmem, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ContactsInmem{
		logger:   logger,
		contacts: make(map[ContactID]*Contact, len(cs)),
		names:    make(map[string]ContactID, len(cs)),
	}
	for _, c := range cs {
		_, err := s.Add(context.Background(), c)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", c.Name, err)
		}
	}
	return s, nil
}

func (s *ContactsInmem) Add(ctx context.Context, c *Contact) (*Contact, error) {
	name, phone, email := strings.TrimSpace(c.Name), strings.TrimSpace(c.Phone), strings.TrimSpace(c.Email)
	if name == "" || phone == "" {
		return nil, errRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.names[nameKey(name)]; ok {
		return nil, errExists
	}
	if !validPhone(phone) {
		return nil, errInvalidPhone
	}
	if email != "" && !validEmail(email) {
		return nil, errInvalidEmail
	}

	stored := &Contact{
		ID:      newContactID(),
		Name:    normalizeName(name),
		Phone:   phone,
		Email:   normalizeEmail(email),
		Address: strings.TrimSpace(c.Address),
	}
	s.contacts[stored.ID] = stored
	s.names[nameKey(name)] = stored.ID
	s.order = append(s.order, stored.ID)

	s.logger.LogAttrs(ctx, slog.LevelDebug, "contact added",
		slog.String("op", "add"),
		slog.Any("contact_id", stored.ID),
		slog.Int("size", len(s.order)),
	)
	return clone(stored), nil
}

// Update applies patch to the contact named name. A nil patch changes nothing.
func (s *ContactsInmem) Update(ctx context.Context, name string, patch *ContactPatch) (*Contact, error) {
	if patch == nil {
		patch = &ContactPatch{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.names[nameKey(name)]
	if !ok {
		return nil, errNotFound
	}

	// every supplied field is checked before any is applied
	var phone, email string
	if patch.Phone != nil {
		phone = strings.TrimSpace(*patch.Phone)
		if phone != "" && !validPhone(phone) {
			return nil, errInvalidPhone
		}
	}
	if patch.Email != nil {
		email = strings.TrimSpace(*patch.Email)
		if email != "" && !validEmail(email) {
			return nil, errInvalidEmail
		}
	}

	c := s.contacts[id]
	if phone != "" {
		c.Phone = phone
	}
	if patch.Email != nil {
		c.Email = normalizeEmail(email)
	}
	if patch.Address != nil {
		c.Address = strings.TrimSpace(*patch.Address)
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "contact updated",
		slog.String("op", "update"),
		slog.Any("contact_id", id),
		slog.Bool("phone", phone != ""),
		slog.Bool("email", patch.Email != nil),
		slog.Bool("address", patch.Address != nil),
	)
	return clone(c), nil
}

func (s *ContactsInmem) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.order) == 0 {
		return errNothingToDrop
	}
	key := nameKey(name)
	id, ok := s.names[key]
	if !ok {
		return errNotFound
	}

	delete(s.names, key)
	delete(s.contacts, id)
	s.order = slices.DeleteFunc(s.order, func(other ContactID) bool { return other == id })

	s.logger.LogAttrs(ctx, slog.LevelDebug, "contact deleted",
		slog.String("op", "delete"),
		slog.Any("contact_id", id),
		slog.Int("size", len(s.order)),
	)
	return nil
}

// Search returns the contacts whose name, email or address contains query,
// ignoring case, or whose phone contains the lower-cased query as typed.
func (s *ContactsInmem) Search(_ context.Context, query string) ([]*Contact, error) {
	query = strings.ToLower(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	var contacts []*Contact
	for _, c := range s.ordered() {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(c.Phone, query) ||
			strings.Contains(strings.ToLower(c.Email), query) ||
			strings.Contains(strings.ToLower(c.Address), query) {
			contacts = append(contacts, clone(c))
		}
	}
	return contacts, nil
}

func (s *ContactsInmem) List(_ context.Context) ([]*Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts := make([]*Contact, 0, len(s.order))
	for _, c := range s.ordered() {
		contacts = append(contacts, clone(c))
	}
	return contacts, nil
}

func (s *ContactsInmem) Stats(_ context.Context) (ContactsStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := ContactsStats{Total: len(s.order)}
	for _, c := range s.contacts {
		if c.Email != "" {
			stats.WithEmail++
		}
		if c.Address != "" {
			stats.WithAddress++
		}
	}
	return stats, nil
}

// ordered yields contacts front first. s.mu must be held.
func (s *ContactsInmem) ordered() []*Contact {
	contacts := make([]*Contact, 0, len(s.order))
	for _, id := range slices.Backward(s.order) {
		contacts = append(contacts, s.contacts[id])
	}
	return contacts
}

func clone(c *Contact) *Contact { c2 := *c; return &c2 }
