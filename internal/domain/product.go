package domain

// Product representa um produto do catálogo. PurchasePrice é o custo unitário.
type Product struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name,omitempty"`
	Category      string  `json:"category,omitempty"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price,omitempty"`
}
