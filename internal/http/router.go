package http

import (
	"fmt"
	"net/http"

	"github.com/jaekwang-park/todolist-api/internal/http/handler"
	"github.com/jaekwang-park/todolist-api/internal/service"
)

// NewRouter mounts the list and item routes under prefix. Health and
// documentation stay at the root.
func NewRouter(prefix string, listSvc *service.ListService, itemSvc *service.ItemService) http.Handler {
	mux := http.NewServeMux()

	// Health check - intentionally outside the API prefix for load balancer checks
	mux.Handle("/health", handler.NewHealthHandler())

	oapi := OpenAPI(prefix)
	mux.HandleFunc("GET /openapi.json", specHandler(oapi))
	mux.HandleFunc("GET /api-docs", docsHandler)

	lists := handler.NewListHandler(listSvc)
	items := handler.NewItemHandler(itemSvc)
	handlers := map[string]http.HandlerFunc{
		"list-lists":  lists.List,
		"create-list": lists.Create,
		"update-list": lists.Update,
		"list-items":  items.List,
		"add-item":    items.Add,
		"update-item": items.Update,
		"delete-item": items.Delete,
	}

	api := http.NewServeMux()
	for _, o := range operations {
		h, ok := handlers[o.id]
		if !ok {
			panic(fmt.Sprintf("no handler for operation %q", o.id))
		}
		api.HandleFunc(o.method+" "+o.path, h)
	}

	if prefix == "" {
		mux.Handle("/", api)
	} else {
		mux.Handle(prefix+"/", http.StripPrefix(prefix, api))
	}

	return mux
}
