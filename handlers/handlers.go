// Package handlers adapts a [datastores.ContactsStore] to huma operations.
// Register them with [huma.AutoRegister].
package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	ds "github.com/PKS106552/ContactManagementSystem/datastores"
)

type handler[I, O any] = func(context.Context, *I) (*O, error)

func handlerWithErrorHandler[I, O any](handler handler[I, O], do func(context.Context, error)) handler[I, O] {
	if do == nil {
		return handler
	}

	return func(ctx context.Context, i *I) (*O, error) {
		o, err := handler(ctx, i)
		if err != nil {
			do(ctx, err)
		}
		return o, err
	}
}

func opErrors(codes ...int) func(*huma.Operation) {
	return func(o *huma.Operation) { o.Errors = codes }
}

func opHidden(o *huma.Operation) { o.Hidden = true }

func contactModel(c *ds.Contact) ContactModel {
	return ContactModel{Name: c.Name, Phone: c.Phone, Email: c.Email, Address: c.Address}
}

type StatsModel struct {
	Total       int `json:"total"        doc:"Number of contacts"`
	WithEmail   int `json:"with_email"   doc:"Number of contacts with an email"`
	WithAddress int `json:"with_address" doc:"Number of contacts with an address"`
}

