package handler

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/vfg2006/sales-performance-api/internal/api/handler/router"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
)

const salesReportPath = "/v1/sales/report"

func Healthcheck(datasetConfigured bool) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(datasetConfigured),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

// SalesReport retorna as rotas do relatório de desempenho dos vendedores
func SalesReport(service analyzing.ReportGenerator, middlewares ...alice.Constructor) []router.Route {
	return []router.Route{
		{
			Path:        salesReportPath,
			Method:      http.MethodPost,
			Handler:     GenerateSalesReport(service),
			Middlewares: middlewares,
		},
		{
			Path:        salesReportPath,
			Method:      http.MethodGet,
			Handler:     GetSalesReport(service),
			Middlewares: middlewares,
		},
	}
}
