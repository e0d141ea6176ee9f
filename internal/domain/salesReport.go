package domain

import "time"

// ProductQuantity é um par SKU/quantidade da lista de produtos mais vendidos
type ProductQuantity struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// ReportRow é a linha final do relatório de um vendedor
type ReportRow struct {
	SellerID    string            `json:"seller_id"`
	Name        string            `json:"name"`
	Revenue     float64           `json:"revenue"`
	Profit      float64           `json:"profit"`
	SalesCount  int               `json:"sales_count"`
	TopProducts []ProductQuantity `json:"top_products"`
	Bonus       float64           `json:"bonus"`
}

// SalesReportSummary contém os totais consolidados de todos os vendedores
type SalesReportSummary struct {
	Sellers    int     `json:"sellers"`
	SalesCount int     `json:"sales_count"`
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
	Bonus      float64 `json:"bonus"`
}

// SalesReport é o relatório de desempenho dos vendedores ordenado por lucro
type SalesReport struct {
	ID          string             `json:"id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Sellers     []ReportRow        `json:"sellers"`
	Summary     SalesReportSummary `json:"summary"`
}
