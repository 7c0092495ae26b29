package httpapi

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed docs/swagger.json
var swaggerSpec []byte

func swaggerHandler() http.Handler {
	r := chi.NewRouter()
	r.Get("/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(swaggerSpec)
	})
	r.Get("/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	return r
}
