package handler

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/infrastructure/dataset"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tamanho máximo aceito para o corpo com o conjunto de dados
var maxDatasetBodyBytes int64 = 32 << 20

// GenerateSalesReport analisa o conjunto de dados enviado no corpo da requisição
func GenerateSalesReport(service analyzing.ReportGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDatasetBodyBytes))
		if err != nil {
			logger.WithError(err).Warn("sales report: failed to read request body")

			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Conjunto de dados excede o tamanho máximo", map[string]int64{
					"limit_bytes": tooLarge.Limit,
				})
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o corpo da requisição", nil)
			return
		}

		data, err := dataset.Decode(body)
		if err != nil {
			logger.WithError(err).Warn("sales report: invalid dataset payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Conjunto de dados com formato inválido", nil)
			return
		}

		report, err := service.GenerateReport(r.Context(), data)
		if err != nil {
			handleAnalyzeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// GetSalesReport analisa o conjunto de dados da fonte configurada no servidor
func GetSalesReport(service analyzing.ReportGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.GenerateReportFromSource(r.Context())
		if err != nil {
			handleAnalyzeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// handleAnalyzeError traduz os erros da análise para a resposta padronizada da API
func handleAnalyzeError(w http.ResponseWriter, err error) {
	var analyzeErr *analyzing.AnalyzeError
	if errors.As(err, &analyzeErr) {
		var details any
		switch {
		case analyzeErr.SellerID != "":
			details = map[string]any{"seller_id": analyzeErr.SellerID}
		case analyzeErr.SKU != "":
			details = map[string]any{"sku": analyzeErr.SKU}
		}

		apiErrors.WriteError(w, analyzeErr.Code, analyzeErr.Error(), details)
		return
	}

	var loadErr *dataset.LoadError
	switch {
	case errors.Is(err, dataset.ErrSourceNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Nenhuma fonte de dados configurada", nil)
	case errors.As(err, &loadErr):
		log.L.WithError(err).Error("sales report: failed to load dataset")
		apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Erro ao carregar o conjunto de dados", nil)
	case errors.Is(err, analyzing.ErrInvalidInput):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		log.L.WithError(err).Error("sales report: failed to generate report")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao gerar o relatório", nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("sales report: failed to encode response")
	}
}
