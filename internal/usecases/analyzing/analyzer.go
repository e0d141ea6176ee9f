// Package analyzing consolida registros de vendas em relatórios de desempenho por vendedor
package analyzing

import (
	"fmt"
	"sort"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

// TopProductsLimit é o número máximo de produtos listados por vendedor
const TopProductsLimit = 10

// Options define as estratégias de cálculo usadas na análise
type Options struct {
	CalculateRevenue RevenueFunc
	CalculateBonus   BonusFunc
}

// DefaultOptions retorna receita simples com desconto e bônus por posição no lucro
func DefaultOptions() Options {
	return Options{
		CalculateRevenue: CalculateSimpleRevenue,
		CalculateBonus:   CalculateBonusByProfit,
	}
}

// Analyze consolida as vendas do conjunto de dados e retorna uma linha por vendedor,
// ordenada por lucro decrescente. Qualquer inconsistência aborta a análise sem resultado parcial.
func Analyze(data *domain.Dataset, opts Options) ([]domain.ReportRow, error) {
	if err := validate(data, opts); err != nil {
		return nil, err
	}

	stats := make([]*domain.SellerStat, 0, len(data.Sellers))
	for _, seller := range data.Sellers {
		stats = append(stats, domain.NewSellerStat(seller))
	}

	// Sem vendas não há ranking nem bônus: linhas zeradas na ordem de entrada
	if len(data.PurchaseRecords) == 0 {
		rows := make([]domain.ReportRow, 0, len(stats))
		for _, stat := range stats {
			rows = append(rows, domain.ReportRow{
				SellerID:    stat.ID,
				Name:        stat.Name,
				TopProducts: []domain.ProductQuantity{},
			})
		}
		return rows, nil
	}

	sellerIndex, err := indexSellers(stats)
	if err != nil {
		return nil, err
	}

	productIndex, err := indexProducts(data.Products)
	if err != nil {
		return nil, err
	}

	for _, record := range data.PurchaseRecords {
		if err := accumulate(record, sellerIndex, productIndex, opts.CalculateRevenue); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Profit > stats[j].Profit
	})

	total := len(stats)
	rows := make([]domain.ReportRow, 0, total)
	for index, stat := range stats {
		rows = append(rows, domain.ReportRow{
			SellerID:    stat.ID,
			Name:        stat.Name,
			Revenue:     stat.Revenue,
			Profit:      stat.Profit,
			SalesCount:  stat.SalesCount,
			TopProducts: topProducts(stat.ProductsSold, TopProductsLimit),
			Bonus:       opts.CalculateBonus(index, total, stat),
		})
	}

	return rows, nil
}

func validate(data *domain.Dataset, opts Options) error {
	switch {
	case data == nil:
		return NewInvalidInputError("dataset is required")
	case len(data.Sellers) == 0:
		return NewInvalidInputError("sellers must be a non-empty collection")
	case data.Products == nil:
		return NewInvalidInputError("products collection is required")
	case data.PurchaseRecords == nil:
		return NewInvalidInputError("purchase_records collection is required")
	case opts.CalculateRevenue == nil:
		return NewInvalidInputError("revenue calculation is required")
	case opts.CalculateBonus == nil:
		return NewInvalidInputError("bonus calculation is required")
	}

	return nil
}

func indexSellers(stats []*domain.SellerStat) (map[string]*domain.SellerStat, error) {
	index := make(map[string]*domain.SellerStat, len(stats))
	for _, stat := range stats {
		if _, exists := index[stat.ID]; exists {
			return nil, NewInvalidInputError(fmt.Sprintf("duplicate seller id %q", stat.ID))
		}
		index[stat.ID] = stat
	}
	return index, nil
}

func indexProducts(products []domain.Product) (map[string]domain.Product, error) {
	index := make(map[string]domain.Product, len(products))
	for _, product := range products {
		if _, exists := index[product.SKU]; exists {
			return nil, NewInvalidInputError(fmt.Sprintf("duplicate product sku %q", product.SKU))
		}
		index[product.SKU] = product
	}
	return index, nil
}

// accumulate soma um recibo ao acumulador do vendedor, arredondando a centavos a cada passo
func accumulate(
	record domain.PurchaseRecord,
	sellers map[string]*domain.SellerStat,
	products map[string]domain.Product,
	calculateRevenue RevenueFunc,
) error {
	seller, exists := sellers[record.SellerID]
	if !exists {
		return NewUnknownSellerError(record.SellerID)
	}

	seller.SalesCount++
	seller.Revenue = utils.RoundWithTwoDecimalPlace(seller.Revenue + record.TotalAmount)

	for _, item := range record.Items {
		product, exists := products[item.SKU]
		if !exists {
			return NewUnknownProductError(item.SKU)
		}

		itemRevenue := calculateRevenue(item, product)
		itemCost := product.PurchasePrice * float64(item.Quantity)
		itemProfit := utils.RoundWithTwoDecimalPlace(itemRevenue - itemCost)

		seller.Profit = utils.RoundWithTwoDecimalPlace(seller.Profit + itemProfit)
		seller.ProductsSold.Add(item.SKU, item.Quantity)
	}

	return nil
}

func topProducts(tally *domain.ProductTally, limit int) []domain.ProductQuantity {
	entries := tally.Entries()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Quantity > entries[j].Quantity
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	return entries
}
