package domain

// SellerStat acumula os totais de um vendedor durante a análise
type SellerStat struct {
	ID           string
	Name         string
	Revenue      float64
	Profit       float64
	SalesCount   int
	ProductsSold *ProductTally
}

// NewSellerStat cria o acumulador zerado de um vendedor
func NewSellerStat(seller Seller) *SellerStat {
	return &SellerStat{
		ID:           seller.ID,
		Name:         seller.FullName(),
		ProductsSold: NewProductTally(),
	}
}

// ProductTally soma quantidades vendidas por SKU mantendo a ordem da primeira venda
type ProductTally struct {
	quantities map[string]int
	order      []string
}

func NewProductTally() *ProductTally {
	return &ProductTally{quantities: make(map[string]int)}
}

// Add soma quantity à contagem do SKU, criando a entrada em zero se necessário
func (t *ProductTally) Add(sku string, quantity int) {
	if _, exists := t.quantities[sku]; !exists {
		t.order = append(t.order, sku)
	}
	t.quantities[sku] += quantity
}

// Quantity retorna a quantidade acumulada do SKU
func (t *ProductTally) Quantity(sku string) int {
	return t.quantities[sku]
}

func (t *ProductTally) Len() int {
	return len(t.order)
}

// Entries retorna as contagens na ordem em que cada SKU foi vendido pela primeira vez
func (t *ProductTally) Entries() []ProductQuantity {
	entries := make([]ProductQuantity, 0, len(t.order))
	for _, sku := range t.order {
		entries = append(entries, ProductQuantity{SKU: sku, Quantity: t.quantities[sku]})
	}
	return entries
}
