package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jaekwang-park/todolist-api/internal/http/handler"
	"github.com/jaekwang-park/todolist-api/internal/model"
)

const (
	apiTitle   = "Todo List API"
	apiVersion = "1.0.0"
)

// operation documents one API route. Request and response bodies are given
// as sample values whose types are reflected into the schema registry.
type operation struct {
	id          string
	method      string
	path        string
	tag         string
	summary     string
	params      []string
	body        any
	status      int
	response    any
	errStatuses []int
}

var operations = []operation{
	{
		id:          "list-lists",
		method:      http.MethodGet,
		path:        "/lists",
		tag:         "lists",
		summary:     "Get all todo lists",
		status:      http.StatusOK,
		response:    []model.List{},
		errStatuses: []int{http.StatusInternalServerError},
	},
	{
		id:          "create-list",
		method:      http.MethodPost,
		path:        "/lists",
		tag:         "lists",
		summary:     "Create a new todo list",
		body:        handler.CreateListRequest{},
		status:      http.StatusCreated,
		response:    model.ListInput{},
		errStatuses: []int{http.StatusBadRequest, http.StatusInternalServerError},
	},
	{
		id:          "update-list",
		method:      http.MethodPut,
		path:        "/lists/{id}",
		tag:         "lists",
		summary:     "Update a todo list",
		params:      []string{"id"},
		body:        handler.UpdateListRequest{},
		status:      http.StatusOK,
		response:    model.ListInput{},
		errStatuses: []int{http.StatusBadRequest, http.StatusInternalServerError},
	},
	{
		id:          "list-items",
		method:      http.MethodGet,
		path:        "/lists/{id}/items",
		tag:         "items",
		summary:     "Get all items in a todo list",
		params:      []string{"id"},
		status:      http.StatusOK,
		response:    []model.Item{},
		errStatuses: []int{http.StatusInternalServerError},
	},
	{
		id:          "add-item",
		method:      http.MethodPost,
		path:        "/lists/{id}/items",
		tag:         "items",
		summary:     "Add a new item to a todo list",
		params:      []string{"id"},
		body:        handler.AddItemRequest{},
		status:      http.StatusCreated,
		response:    model.Item{},
		errStatuses: []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	},
	{
		id:          "update-item",
		method:      http.MethodPut,
		path:        "/lists/{listId}/items/{itemId}",
		tag:         "items",
		summary:     "Update a todo item",
		params:      []string{"listId", "itemId"},
		body:        handler.UpdateItemRequest{},
		status:      http.StatusOK,
		response:    model.Item{},
		errStatuses: []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	},
	{
		id:          "delete-item",
		method:      http.MethodDelete,
		path:        "/lists/{listId}/items/{itemId}",
		tag:         "items",
		summary:     "Delete a todo item",
		params:      []string{"listId", "itemId"},
		status:      http.StatusOK,
		response:    handler.MessageResponse{},
		errStatuses: []int{http.StatusNotFound, http.StatusInternalServerError},
	},
}

// OpenAPI builds the document for the API routes as mounted under prefix.
func OpenAPI(prefix string) *huma.OpenAPI {
	oapi := huma.DefaultConfig(apiTitle, apiVersion).OpenAPI
	oapi.Info.Description = "API for managing todo lists and their items"
	registry := oapi.Components.Schemas

	schemaOf := func(v any) *huma.Schema {
		return registry.Schema(reflect.TypeOf(v), true, "")
	}
	content := func(v any) map[string]*huma.MediaType {
		return map[string]*huma.MediaType{
			"application/json": {Schema: schemaOf(v)},
		}
	}

	for _, o := range operations {
		op := &huma.Operation{
			OperationID: o.id,
			Method:      o.method,
			Path:        prefix + o.path,
			Summary:     o.summary,
			Tags:        []string{o.tag},
			Responses: map[string]*huma.Response{
				statusKey(o.status): {
					Description: http.StatusText(o.status),
					Content:     content(o.response),
				},
			},
		}
		for _, name := range o.params {
			op.Parameters = append(op.Parameters, &huma.Param{
				Name:     name,
				In:       "path",
				Required: true,
				Schema:   &huma.Schema{Type: huma.TypeString},
			})
		}
		if o.body != nil {
			op.RequestBody = &huma.RequestBody{
				Required: true,
				Content:  content(o.body),
			}
		}
		for _, status := range o.errStatuses {
			op.Responses[statusKey(status)] = &huma.Response{
				Description: http.StatusText(status),
				Content:     content(handler.ErrorResponse{}),
			}
		}
		oapi.AddOperation(op)
	}

	return oapi
}

func statusKey(status int) string {
	return strconv.Itoa(status)
}

// specHandler serves the document as JSON.
func specHandler(oapi *huma.OpenAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := json.Marshal(oapi)
		if err != nil {
			slog.ErrorContext(r.Context(), "failed to encode openapi document", "error", err)
			handler.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	}
}

const docsPage = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1, shrink-to-fit=no" />
    <title>` + apiTitle + ` Reference</title>
    <link href="https://unpkg.com/@stoplight/elements@8/styles.min.css" rel="stylesheet" />
    <script src="https://unpkg.com/@stoplight/elements@8/web-components.min.js"></script>
  </head>
  <body style="height: 100vh;">
    <elements-api apiDescriptionUrl="/openapi.json" router="hash" layout="sidebar" tryItCredentialsPolicy="same-origin" />
  </body>
</html>
`

func docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(docsPage))
}
