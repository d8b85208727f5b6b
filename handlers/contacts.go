package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	ds "github.com/PKS106552/ContactManagementSystem/datastores"
)

const (
	msgAdded   = "Contact added successfully"
	msgDeleted = "Contact deleted successfully"
	msgUpdated = "Contact updated successfully"
)

type Contacts struct {
	Store        ds.ContactsStore
	ErrorHandler func(context.Context, error)
}

type ContactModel struct {
	Name    string `json:"name"    example:"Jane Smith"`
	Phone   string `json:"phone"   example:"9876543210"`
	Email   string `json:"email"   example:"jane.smith@gmail.com"`
	Address string `json:"address" example:"456 Oak Avenue, Los Angeles"`
}

// OutcomeModel reports a store operation. Rejections are not HTTP errors:
// Success is false and Message tells why.
type OutcomeModel struct {
	Success bool       `json:"success"`
	Message string     `json:"message" example:"Contact added successfully"`
	Stats   StatsModel `json:"stats"`
}

// outcome fills an [OutcomeModel] from err. Errors that are not
// store rejections are returned.
func (h *Contacts) outcome(ctx context.Context, err error, msg string) (OutcomeModel, error) {
	out := OutcomeModel{Success: true, Message: msg}
	var rejected *ds.Error
	switch {
	case err == nil:
	case errors.As(err, &rejected):
		out.Success, out.Message = false, rejected.Msg
	default:
		return OutcomeModel{}, err
	}

	out.Stats, err = h.stats(ctx)
	return out, err
}

func (h *Contacts) stats(ctx context.Context) (StatsModel, error) {
	stats, err := h.Store.Stats(ctx)
	if err != nil {
		return StatsModel{}, err
	}
	return StatsModel{Total: stats.Total, WithEmail: stats.WithEmail, WithAddress: stats.WithAddress}, nil
}

func (h *Contacts) RegisterAdd(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/add_contact",
		handlerWithErrorHandler(h.add, h.ErrorHandler),
		opErrors(http.StatusUnprocessableEntity, http.StatusInternalServerError),
	)
}

type ContactsAddOutput struct {
	Body struct {
		OutcomeModel
		Contact *ContactModel `json:"contact" doc:"The stored contact, null when rejected"`
	}
}

func (h *Contacts) add(ctx context.Context, input *struct {
	Body struct {
		_ struct{} `json:"-" additionalProperties:"true"` // unknown keys are ignored

		Name    string `json:"name,omitempty"    example:"Jane Smith"`
		Phone   string `json:"phone,omitempty"   example:"9876543210"`
		Email   string `json:"email,omitempty"   example:"jane.smith@gmail.com"`
		Address string `json:"address,omitempty" example:"456 Oak Avenue, Los Angeles"`
	}
}) (*ContactsAddOutput, error) {
	contact, err := h.Store.Add(ctx, &ds.Contact{
		Name:    input.Body.Name,
		Phone:   input.Body.Phone,
		Email:   input.Body.Email,
		Address: input.Body.Address,
	})
	outcome, err := h.outcome(ctx, err, msgAdded)
	if err != nil {
		return nil, err
	}

	resp := &ContactsAddOutput{}
	resp.Body.OutcomeModel = outcome
	if contact != nil {
		model := contactModel(contact)
		resp.Body.Contact = &model
	}
	return resp, nil
}

func (h *Contacts) RegisterDelete(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/delete_contact",
		handlerWithErrorHandler(h.del, h.ErrorHandler),
		opErrors(http.StatusUnprocessableEntity, http.StatusInternalServerError),
	)
}

type ContactsOutcomeOutput struct {
	Body OutcomeModel
}

func (h *Contacts) del(ctx context.Context, input *struct {
	Body struct {
		_ struct{} `json:"-" additionalProperties:"true"` // unknown keys are ignored

		Name string `json:"name,omitempty" example:"Jane Smith" doc:"Name of the contact to delete, any case"`
	}
}) (*ContactsOutcomeOutput, error) {
	err := h.Store.Delete(ctx, strings.TrimSpace(input.Body.Name))
	outcome, err := h.outcome(ctx, err, msgDeleted)
	if err != nil {
		return nil, err
	}
	return &ContactsOutcomeOutput{Body: outcome}, nil
}

func (h *Contacts) RegisterUpdate(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/update_contact",
		handlerWithErrorHandler(h.update, h.ErrorHandler),
		opErrors(http.StatusUnprocessableEntity, http.StatusInternalServerError),
	)
}

func (h *Contacts) update(ctx context.Context, input *struct {
	Body struct {
		_ struct{} `json:"-" additionalProperties:"true"` // unknown keys are ignored

		Name    string  `json:"name,omitempty"    example:"Jane Smith" doc:"Name of the contact to update, any case"`
		Phone   *string `json:"phone,omitempty"   example:"9876543210" doc:"New phone, ignored when empty"`
		Email   *string `json:"email,omitempty"   example:"jane@example.com" doc:"New email, cleared when empty"`
		Address *string `json:"address,omitempty" example:"1 New Road" doc:"New address, cleared when empty"`
	}
}) (*ContactsOutcomeOutput, error) {
	_, err := h.Store.Update(ctx, strings.TrimSpace(input.Body.Name), &ds.ContactPatch{
		Phone:   input.Body.Phone,
		Email:   input.Body.Email,
		Address: input.Body.Address,
	})
	outcome, err := h.outcome(ctx, err, msgUpdated)
	if err != nil {
		return nil, err
	}
	return &ContactsOutcomeOutput{Body: outcome}, nil
}

func (h *Contacts) RegisterSearch(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/search_contacts",
		handlerWithErrorHandler(h.search, h.ErrorHandler),
		opErrors(http.StatusInternalServerError),
	)
}

type ContactsSearchOutput struct {
	Body struct {
		Contacts []ContactModel `json:"contacts"`
		Count    int            `json:"count"`
	}
}

func (h *Contacts) search(ctx context.Context, input *struct {
	Query string `query:"q" example:"gmail" doc:"Text to look for in name, phone, email or address; empty lists all"`
}) (*ContactsSearchOutput, error) {
	var (
		contacts []*ds.Contact
		err      error
	)
	query := strings.TrimSpace(input.Query)
	if query == "" {
		contacts, err = h.Store.List(ctx)
	} else {
		contacts, err = h.Store.Search(ctx, query)
	}
	if err != nil {
		return nil, err
	}

	resp := &ContactsSearchOutput{}
	resp.Body.Contacts = make([]ContactModel, 0, len(contacts))
	for _, contact := range contacts {
		resp.Body.Contacts = append(resp.Body.Contacts, contactModel(contact))
	}
	resp.Body.Count = len(contacts)
	return resp, nil
}

func (h *Contacts) RegisterStats(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/get_stats",
		handlerWithErrorHandler(h.getStats, h.ErrorHandler),
		opErrors(http.StatusInternalServerError),
	)
}

type ContactsStatsOutput struct {
	Body StatsModel
}

func (h *Contacts) getStats(ctx context.Context, _ *struct{}) (*ContactsStatsOutput, error) {
	stats, err := h.stats(ctx)
	if err != nil {
		return nil, err
	}
	return &ContactsStatsOutput{Body: stats}, nil
}
