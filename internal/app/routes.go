package app

import (
	"net/http"

	"github.com/kegliz/qre/internal/server/router"
)

func (a *appServer) routes() []*router.Route {
	return []*router.Route{
		{
			Name:        "root",
			Method:      http.MethodGet,
			Pattern:     "/",
			HandlerFunc: a.RootHandler,
		},
		{
			Name:        "health",
			Method:      http.MethodGet,
			Pattern:     "/health",
			HandlerFunc: a.HealthHandler,
		},
		{
			Name:        "api.estimate",
			Method:      http.MethodPost,
			Pattern:     "/api/estimate",
			HandlerFunc: a.EstimateHandler,
		},
		{
			Name:        "api.frontier",
			Method:      http.MethodPost,
			Pattern:     "/api/frontier",
			HandlerFunc: a.FrontierHandler,
		},
		{
			Name:        "api.algorithms.save",
			Method:      http.MethodPost,
			Pattern:     "/api/algorithms",
			HandlerFunc: a.SaveAlgorithmHandler,
		},
		{
			Name:        "api.algorithms.get",
			Method:      http.MethodGet,
			Pattern:     "/api/algorithms/:id",
			HandlerFunc: a.GetAlgorithmHandler,
		},
	}
}
