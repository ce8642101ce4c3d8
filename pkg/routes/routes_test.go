package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"brewline/pkg/routes"
)

func handler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestRegister(t *testing.T) {
	group := routes.Group{
		Prefix: "/orders",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: handler("list")},
			{Method: "GET", Pattern: "/{id}", Handler: handler("find")},
			{Method: "POST", Pattern: "", Handler: handler("create")},
		},
	}

	mux := http.NewServeMux()
	routes.Register(mux, group)

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"GET", "/orders", "list"},
		{"GET", "/orders/5", "find"},
		{"POST", "/orders", "create"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Body.String() != tt.want {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.want)
			}
		})
	}
}

func TestRegisterNestedGroups(t *testing.T) {
	group := routes.Group{
		Prefix: "/analysis",
		Children: []routes.Group{
			{
				Prefix: "/reports",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/weekly", Handler: handler("weekly")},
				},
			},
		},
	}

	mux := http.NewServeMux()
	routes.Register(mux, group)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/analysis/reports/weekly", nil))
	if rec.Body.String() != "weekly" {
		t.Errorf("body = %q, want weekly", rec.Body.String())
	}
}
