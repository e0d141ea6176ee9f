package domain

// LineItem é um item de uma venda. Discount é percentual (0 a 100).
type LineItem struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount"`
}

// PurchaseRecord representa um recibo de venda associado a um vendedor
type PurchaseRecord struct {
	ReceiptID     string     `json:"receipt_id,omitempty"`
	Date          string     `json:"date,omitempty"`
	SellerID      string     `json:"seller_id"`
	CustomerID    string     `json:"customer_id,omitempty"`
	Items         []LineItem `json:"items"`
	TotalAmount   float64    `json:"total_amount"`
	TotalDiscount float64    `json:"total_discount,omitempty"`
}

// Dataset agrupa as coleções de entrada da análise de vendas.
// Uma coleção nil indica campo ausente; uma coleção vazia é válida.
type Dataset struct {
	Sellers         []Seller         `json:"sellers"`
	Products        []Product        `json:"products"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records"`
}
