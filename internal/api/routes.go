package api

import (
	"net/http"

	"brewline/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(mux, domain.Orders.Handler(domain.Ask).Routes())
	routes.Register(mux, domain.Ask.Handler().Routes())
}
