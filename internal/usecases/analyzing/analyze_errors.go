package analyzing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

// Erros específicos da análise de vendas
var (
	// Erros de validação do conjunto de dados
	ErrInvalidInput = errors.New("invalid sales dataset")

	// Erros de integridade referencial
	ErrUnknownSeller  = errors.New("unknown seller")
	ErrUnknownProduct = errors.New("unknown product")
)

// AnalyzeError é um erro com contexto adicional da análise
type AnalyzeError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	SellerID string // Vendedor envolvido (quando aplicável)
	SKU      string // Produto envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalyzeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalyzeError) Unwrap() error {
	return e.Err
}

// NewInvalidInputError cria um erro de entrada inválida
func NewInvalidInputError(details string) *AnalyzeError {
	return &AnalyzeError{
		Err:     ErrInvalidInput,
		Code:    apiErrors.ErrInvalidRequest,
		Details: details,
	}
}

// NewUnknownSellerError cria um erro para venda com vendedor inexistente
func NewUnknownSellerError(sellerID string) *AnalyzeError {
	return &AnalyzeError{
		Err:      ErrUnknownSeller,
		Code:     apiErrors.ErrUnknownSeller,
		SellerID: sellerID,
		Details:  fmt.Sprintf("seller %q not found", sellerID),
	}
}

// NewUnknownProductError cria um erro para item com SKU inexistente
func NewUnknownProductError(sku string) *AnalyzeError {
	return &AnalyzeError{
		Err:     ErrUnknownProduct,
		Code:    apiErrors.ErrUnknownProduct,
		SKU:     sku,
		Details: fmt.Sprintf("product %q not found", sku),
	}
}

// ErrorCode retorna o código de API do erro, ou o código de erro interno
func ErrorCode(err error) string {
	var analyzeErr *AnalyzeError
	if errors.As(err, &analyzeErr) {
		return analyzeErr.Code
	}
	return apiErrors.ErrInternalServer
}
