package analyzing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func sampleDataset() *domain.Dataset {
	return &domain.Dataset{
		Sellers: []domain.Seller{
			{ID: "seller_1", FirstName: "Alexey", LastName: "Petrov"},
			{ID: "seller_2", FirstName: "Ivan", LastName: "Ivanov"},
			{ID: "seller_3", FirstName: "Maria", LastName: "Smirnova"},
		},
		Products: []domain.Product{
			{SKU: "SKU_001", Name: "Lens", PurchasePrice: 10},
			{SKU: "SKU_002", Name: "Frame", PurchasePrice: 50},
			{SKU: "SKU_003", Name: "Case", PurchasePrice: 5},
		},
		PurchaseRecords: []domain.PurchaseRecord{
			{
				ReceiptID:   "receipt_1",
				SellerID:    "seller_1",
				TotalAmount: 144,
				Items: []domain.LineItem{
					{SKU: "SKU_001", Quantity: 3, SalePrice: 20, Discount: 10},
					{SKU: "SKU_002", Quantity: 1, SalePrice: 90, Discount: 0},
				},
			},
			{
				ReceiptID:   "receipt_2",
				SellerID:    "seller_2",
				TotalAmount: 130,
				Items: []domain.LineItem{
					{SKU: "SKU_002", Quantity: 2, SalePrice: 50, Discount: 0},
					{SKU: "SKU_003", Quantity: 4, SalePrice: 10, Discount: 25},
				},
			},
			{
				ReceiptID:   "receipt_3",
				SellerID:    "seller_1",
				TotalAmount: 16,
				Items: []domain.LineItem{
					{SKU: "SKU_003", Quantity: 2, SalePrice: 8, Discount: 0},
				},
			},
		},
	}
}

func TestAnalyze_FullReport(t *testing.T) {
	rows, err := Analyze(sampleDataset(), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// seller_1: lucro 24 + 40 + 6 = 70
	assert.Equal(t, "seller_1", rows[0].SellerID)
	assert.Equal(t, "Alexey Petrov", rows[0].Name)
	assert.Equal(t, 160.0, rows[0].Revenue)
	assert.Equal(t, 70.0, rows[0].Profit)
	assert.Equal(t, 2, rows[0].SalesCount)
	assert.Equal(t, []domain.ProductQuantity{
		{SKU: "SKU_001", Quantity: 3},
		{SKU: "SKU_003", Quantity: 2},
		{SKU: "SKU_002", Quantity: 1},
	}, rows[0].TopProducts)
	assert.Equal(t, 10.5, rows[0].Bonus)

	// seller_2: lucro 0 + 10 = 10, segunda posição
	assert.Equal(t, "seller_2", rows[1].SellerID)
	assert.Equal(t, 130.0, rows[1].Revenue)
	assert.Equal(t, 10.0, rows[1].Profit)
	assert.Equal(t, 1, rows[1].SalesCount)
	assert.Equal(t, []domain.ProductQuantity{
		{SKU: "SKU_003", Quantity: 4},
		{SKU: "SKU_002", Quantity: 2},
	}, rows[1].TopProducts)
	assert.Equal(t, 1.0, rows[1].Bonus)

	// seller_3: sem vendas, último lugar
	assert.Equal(t, "seller_3", rows[2].SellerID)
	assert.Equal(t, "Maria Smirnova", rows[2].Name)
	assert.Zero(t, rows[2].Revenue)
	assert.Zero(t, rows[2].Profit)
	assert.Zero(t, rows[2].SalesCount)
	assert.Empty(t, rows[2].TopProducts)
	assert.Zero(t, rows[2].Bonus)
}

func TestAnalyze_EmptyPurchaseRecords(t *testing.T) {
	data := sampleDataset()
	data.PurchaseRecords = []domain.PurchaseRecord{}

	bonusCalled := false
	opts := DefaultOptions()
	opts.CalculateBonus = func(int, int, *domain.SellerStat) float64 {
		bonusCalled = true
		return 99
	}

	rows, err := Analyze(data, opts)
	require.NoError(t, err)
	require.Len(t, rows, len(data.Sellers))
	assert.False(t, bonusCalled, "bônus não deve ser calculado sem vendas")

	for i, row := range rows {
		assert.Equal(t, data.Sellers[i].ID, row.SellerID, "ordem de entrada deve ser preservada")
		assert.Equal(t, data.Sellers[i].FullName(), row.Name)
		assert.Zero(t, row.Revenue)
		assert.Zero(t, row.Profit)
		assert.Zero(t, row.SalesCount)
		assert.Zero(t, row.Bonus)
		assert.NotNil(t, row.TopProducts)
		assert.Empty(t, row.TopProducts)
	}
}

func TestAnalyze_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		data *domain.Dataset
		opts Options
	}{
		{
			name: "Conjunto de dados nulo",
			data: nil,
			opts: DefaultOptions(),
		},
		{
			name: "Sem vendedores",
			data: &domain.Dataset{
				Sellers:         []domain.Seller{},
				Products:        []domain.Product{},
				PurchaseRecords: []domain.PurchaseRecord{},
			},
			opts: DefaultOptions(),
		},
		{
			name: "Coleção de produtos ausente",
			data: &domain.Dataset{
				Sellers:         []domain.Seller{{ID: "seller_1"}},
				PurchaseRecords: []domain.PurchaseRecord{},
			},
			opts: DefaultOptions(),
		},
		{
			name: "Coleção de vendas ausente",
			data: &domain.Dataset{
				Sellers:  []domain.Seller{{ID: "seller_1"}},
				Products: []domain.Product{},
			},
			opts: DefaultOptions(),
		},
		{
			name: "Estratégia de receita ausente",
			data: sampleDataset(),
			opts: Options{CalculateBonus: CalculateBonusByProfit},
		},
		{
			name: "Estratégia de bônus ausente",
			data: sampleDataset(),
			opts: Options{CalculateRevenue: CalculateSimpleRevenue},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Analyze(tt.data, tt.opts)
			assert.Nil(t, rows)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestAnalyze_UnknownSeller(t *testing.T) {
	data := sampleDataset()
	data.PurchaseRecords = append(data.PurchaseRecords, domain.PurchaseRecord{
		SellerID:    "seller_404",
		TotalAmount: 10,
	})

	rows, err := Analyze(data, DefaultOptions())
	assert.Nil(t, rows)
	require.ErrorIs(t, err, ErrUnknownSeller)

	var analyzeErr *AnalyzeError
	require.True(t, errors.As(err, &analyzeErr))
	assert.Equal(t, "seller_404", analyzeErr.SellerID)
	assert.Equal(t, "VAL_004", analyzeErr.Code)
}

func TestAnalyze_UnknownProduct(t *testing.T) {
	data := sampleDataset()
	data.PurchaseRecords[1].Items = append(data.PurchaseRecords[1].Items, domain.LineItem{
		SKU:       "SKU_404",
		Quantity:  1,
		SalePrice: 10,
	})

	rows, err := Analyze(data, DefaultOptions())
	assert.Nil(t, rows)
	require.ErrorIs(t, err, ErrUnknownProduct)

	var analyzeErr *AnalyzeError
	require.True(t, errors.As(err, &analyzeErr))
	assert.Equal(t, "SKU_404", analyzeErr.SKU)
	assert.Equal(t, "VAL_005", analyzeErr.Code)
}

func TestAnalyze_DuplicateKeys(t *testing.T) {
	t.Run("Vendedor duplicado", func(t *testing.T) {
		data := sampleDataset()
		data.Sellers = append(data.Sellers, domain.Seller{ID: "seller_1", FirstName: "Other"})

		_, err := Analyze(data, DefaultOptions())
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Produto duplicado", func(t *testing.T) {
		data := sampleDataset()
		data.Products = append(data.Products, domain.Product{SKU: "SKU_001", PurchasePrice: 1})

		_, err := Analyze(data, DefaultOptions())
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestAnalyze_TwoSellersScenario(t *testing.T) {
	data := &domain.Dataset{
		Sellers: []domain.Seller{
			{ID: "B", FirstName: "Bruna", LastName: "Silva"},
			{ID: "A", FirstName: "Ana", LastName: "Souza"},
		},
		Products: []domain.Product{{SKU: "SKU_A", PurchasePrice: 0}},
		PurchaseRecords: []domain.PurchaseRecord{
			{SellerID: "B", TotalAmount: 100, Items: []domain.LineItem{{SKU: "SKU_A", Quantity: 1, SalePrice: 100}}},
			{SellerID: "A", TotalAmount: 1000, Items: []domain.LineItem{{SKU: "SKU_A", Quantity: 1, SalePrice: 1000}}},
		},
	}

	rows, err := Analyze(data, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "A", rows[0].SellerID)
	assert.Equal(t, 1000.0, rows[0].Profit)
	assert.Equal(t, 150.0, rows[0].Bonus)

	// Posição 2 cai na faixa "2 ou 3" antes da regra de último lugar
	assert.Equal(t, "B", rows[1].SellerID)
	assert.Equal(t, 100.0, rows[1].Profit)
	assert.Equal(t, 10.0, rows[1].Bonus)
}

func TestAnalyze_RankingIsStableOnTies(t *testing.T) {
	data := &domain.Dataset{
		Sellers: []domain.Seller{
			{ID: "s1"}, {ID: "s2"}, {ID: "s3"}, {ID: "s4"},
		},
		Products: []domain.Product{{SKU: "p1", PurchasePrice: 1}},
		PurchaseRecords: []domain.PurchaseRecord{
			{SellerID: "s2", Items: []domain.LineItem{{SKU: "p1", Quantity: 1, SalePrice: 11}}},
			{SellerID: "s3", Items: []domain.LineItem{{SKU: "p1", Quantity: 1, SalePrice: 21}}},
			{SellerID: "s4", Items: []domain.LineItem{{SKU: "p1", Quantity: 1, SalePrice: 11}}},
		},
	}

	rows, err := Analyze(data, DefaultOptions())
	require.NoError(t, err)

	ids := make([]string, 0, len(rows))
	for i, row := range rows {
		ids = append(ids, row.SellerID)
		if i > 0 {
			assert.GreaterOrEqual(t, rows[i-1].Profit, row.Profit)
		}
	}
	assert.Equal(t, []string{"s3", "s2", "s4", "s1"}, ids)
}

func TestAnalyze_TopProductsLimit(t *testing.T) {
	data := &domain.Dataset{
		Sellers:  []domain.Seller{{ID: "s1"}},
		Products: []domain.Product{},
	}

	items := make([]domain.LineItem, 0, 12)
	for i := 1; i <= 12; i++ {
		sku := fmt.Sprintf("SKU_%03d", i)
		data.Products = append(data.Products, domain.Product{SKU: sku})
		// SKU_001..SKU_004 empatam com quantidade 1
		quantity := i - 3
		if quantity < 1 {
			quantity = 1
		}
		items = append(items, domain.LineItem{SKU: sku, Quantity: quantity, SalePrice: 1})
	}
	data.PurchaseRecords = []domain.PurchaseRecord{{SellerID: "s1", Items: items}}

	rows, err := Analyze(data, DefaultOptions())
	require.NoError(t, err)

	top := rows[0].TopProducts
	require.Len(t, top, TopProductsLimit)
	assert.Equal(t, domain.ProductQuantity{SKU: "SKU_012", Quantity: 9}, top[0])
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Quantity, top[i].Quantity)
	}
	// Empates mantêm a ordem da primeira venda
	assert.Equal(t, "SKU_001", top[8].SKU)
	assert.Equal(t, "SKU_002", top[9].SKU)
}

func TestAnalyze_QuantitiesAreSummedPerSKU(t *testing.T) {
	data := &domain.Dataset{
		Sellers:  []domain.Seller{{ID: "s1"}},
		Products: []domain.Product{{SKU: "p1"}, {SKU: "p2"}},
		PurchaseRecords: []domain.PurchaseRecord{
			{SellerID: "s1", Items: []domain.LineItem{{SKU: "p2", Quantity: 1}, {SKU: "p1", Quantity: 2}}},
			{SellerID: "s1", Items: []domain.LineItem{{SKU: "p2", Quantity: 3}}},
		},
	}

	rows, err := Analyze(data, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []domain.ProductQuantity{
		{SKU: "p2", Quantity: 4},
		{SKU: "p1", Quantity: 2},
	}, rows[0].TopProducts)
}

func TestAnalyze_RoundsAfterEveryIncrement(t *testing.T) {
	data := &domain.Dataset{
		Sellers:  []domain.Seller{{ID: "s1"}},
		Products: []domain.Product{{SKU: "p1", PurchasePrice: 0}},
		PurchaseRecords: []domain.PurchaseRecord{
			{SellerID: "s1", TotalAmount: 0.1, Items: []domain.LineItem{{SKU: "p1", Quantity: 1, SalePrice: 0.1}}},
			{SellerID: "s1", TotalAmount: 0.1, Items: []domain.LineItem{{SKU: "p1", Quantity: 1, SalePrice: 0.1}}},
			{SellerID: "s1", TotalAmount: 0.1, Items: []domain.LineItem{{SKU: "p1", Quantity: 1, SalePrice: 0.1}}},
		},
	}

	rows, err := Analyze(data, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.3, rows[0].Revenue)
	assert.Equal(t, 0.3, rows[0].Profit)
	assert.Equal(t, 3, rows[0].SalesCount)
}

func TestAnalyze_CustomStrategies(t *testing.T) {
	type bonusCall struct {
		index int
		total int
		id    string
	}

	var calls []bonusCall
	opts := Options{
		CalculateRevenue: func(item domain.LineItem, product domain.Product) float64 {
			return float64(item.Quantity) * (product.PurchasePrice + 1)
		},
		CalculateBonus: func(index, total int, seller *domain.SellerStat) float64 {
			calls = append(calls, bonusCall{index: index, total: total, id: seller.ID})
			return float64(index)
		},
	}

	rows, err := Analyze(sampleDataset(), opts)
	require.NoError(t, err)

	// Lucro passa a ser uma unidade por item vendido: seller_1 e seller_2 empatam com 6
	assert.Equal(t, "seller_1", rows[0].SellerID)
	assert.Equal(t, 6.0, rows[0].Profit)
	assert.Equal(t, "seller_2", rows[1].SellerID)
	assert.Equal(t, 6.0, rows[1].Profit)
	assert.Equal(t, []bonusCall{
		{index: 0, total: 3, id: "seller_1"},
		{index: 1, total: 3, id: "seller_2"},
		{index: 2, total: 3, id: "seller_3"},
	}, calls)
	assert.Equal(t, 1.0, rows[1].Bonus)
}
