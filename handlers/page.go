package handlers

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	ds "github.com/PKS106552/ContactManagementSystem/datastores"
)

//go:embed templates
var templates embed.FS //nolint: gochecknoglobals,nolintlint

var indexTemplate = template.Must(template.ParseFS(templates, "templates/index.html")) //nolint: gochecknoglobals,nolintlint

// Page renders the contact listing as HTML.
type Page struct {
	Title        string
	Store        ds.ContactsStore
	ErrorHandler func(context.Context, error)
}

func (h *Page) RegisterIndex(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/",
		handlerWithErrorHandler(h.index, h.ErrorHandler),
		opErrors(http.StatusInternalServerError),
		opHidden,
	)
}

type PageOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

func (h *Page) index(ctx context.Context, _ *struct{}) (*PageOutput, error) {
	contacts, err := h.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := h.Store.Stats(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = indexTemplate.Execute(&buf, struct {
		Title    string
		Contacts []*ds.Contact
		Stats    ds.ContactsStats
	}{h.Title, contacts, stats})
	if err != nil {
		return nil, err
	}

	return &PageOutput{ContentType: "text/html; charset=utf-8", Body: buf.Bytes()}, nil
}
