package http

import (
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/go-openapi/runtime/middleware"
	gohandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kahvecikaan/product-service/internal/domain"
	websocketTransport "github.com/kahvecikaan/product-service/internal/transport/websocket"
)

func NewRouter(
	ph *ProductHandler,
	mw *Middleware,
	wsh *websocketTransport.Handler,
) *mux.Router {
	router := mux.NewRouter()

	// Unmatched routes and wrong methods bypass the middleware chain, so
	// these handlers set the content type themselves to keep every response
	// body JSON.
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		writeError(w, mw.Logger, domain.NewNotFoundError(""))
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		writeError(w, mw.Logger, domain.NewAPIError(http.StatusMethodNotAllowed, "Method not allowed"))
	})

	// Global middleware
	router.Use(mw.LoggingMiddleware)
	router.Use(gohandlers.CORS(
		gohandlers.AllowedOrigins([]string{"*"}),
		gohandlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		gohandlers.AllowedHeaders([]string{"Content-Type", APIKeyHeader}),
	))
	router.Use(mw.ContentTypeMiddleware)

	// Root greeting and the live product change feed
	router.HandleFunc("/", ph.Greet).Methods("GET")
	router.HandleFunc("/ws", wsh.HandleWebSocket).Methods("GET")

	api := router.PathPrefix("/api/products").Subrouter()

	// Public routes. /search and /stats are registered before /{id} so the
	// literal paths win.
	api.HandleFunc("", ph.handle(ph.ListProducts)).Methods("GET")
	api.HandleFunc("/search", ph.handle(ph.SearchProducts)).Methods("GET")
	api.HandleFunc("/stats", ph.handle(ph.GetStats)).Methods("GET")
	api.HandleFunc("/{id}", ph.handle(ph.GetProduct)).Methods("GET")

	// Mutating routes: body parsing runs before the auth gate, both before
	// the handler touches the store.
	postRouter := api.Methods(http.MethodPost).Subrouter()
	postRouter.HandleFunc("", ph.handle(ph.CreateProduct))
	postRouter.Use(mw.BodyParserMiddleware, mw.AuthMiddleware)

	putRouter := api.Methods(http.MethodPut).Subrouter()
	putRouter.HandleFunc("/{id}", ph.handle(ph.ReplaceProduct))
	putRouter.Use(mw.BodyParserMiddleware, mw.AuthMiddleware)

	patchRouter := api.Methods(http.MethodPatch).Subrouter()
	patchRouter.HandleFunc("/{id}", ph.handle(ph.PatchProduct))
	patchRouter.Use(mw.BodyParserMiddleware, mw.AuthMiddleware)

	deleteRouter := api.Methods(http.MethodDelete).Subrouter()
	deleteRouter.HandleFunc("/{id}", ph.handle(ph.DeleteProduct))
	deleteRouter.Use(mw.AuthMiddleware)

	// Swagger UI and specification routes
	_, filename, _, _ := runtime.Caller(0)
	basePath := filepath.Dir(filename)                   // .../internal/transport/http
	rootDir := filepath.Join(basePath, "..", "..", "..") // module root
	swaggerFilePath := filepath.Join(rootDir, "swagger.yaml")

	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, swaggerFilePath)
	}).Methods("GET")

	swaggerOpts := middleware.RedocOpts{SpecURL: "/swagger.yaml"}
	router.Handle("/docs", middleware.Redoc(swaggerOpts, nil)).Methods("GET")

	return router
}
