package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ds "github.com/PKS106552/ContactManagementSystem/datastores"
)

func TestPageIndex(t *testing.T) {
	store := seededStore(t)
	_, api := humatest.New(t, huma.DefaultConfig("Test", "1.0.0"))
	huma.AutoRegister(api, &Page{Title: "Contacts", Store: store})

	resp := api.Get("/")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header().Get("Content-Type"))

	body := resp.Body.String()
	assert.Contains(t, body, "<title>Contacts</title>")
	assert.Contains(t, body, `<span id="total">5</span>`)
	assert.Less(t, strings.Index(body, "David Brown"), strings.Index(body, "John Doe"))
	assert.Contains(t, body, "123 Main Street, New York")
}

func TestPageIndexEscapes(t *testing.T) {
	store, err := ds.NewContactsInmem(nil, &ds.Contact{Name: "Eve", Phone: "1234567890", Address: "<script>x</script>"})
	require.NoError(t, err)
	_, api := humatest.New(t, huma.DefaultConfig("Test", "1.0.0"))
	huma.AutoRegister(api, &Page{Title: "Contacts", Store: store})

	body := api.Get("/").Body.String()
	assert.NotContains(t, body, "<script>x</script>")
	assert.Contains(t, body, "&lt;script&gt;x&lt;/script&gt;")
}

func TestPageIndexHidden(t *testing.T) {
	_, api := humatest.New(t, huma.DefaultConfig("Test", "1.0.0"))
	huma.AutoRegister(api, &Page{Store: seededStore(t)})

	assert.Nil(t, api.OpenAPI().Paths["/"])
}
