package analyzing

import (
	"math"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

// RevenueFunc calcula a receita de um item de venda
type RevenueFunc func(item domain.LineItem, product domain.Product) float64

// BonusFunc calcula o bônus de um vendedor a partir da sua posição (base 0) no ranking de lucro
type BonusFunc func(index int, total int, seller *domain.SellerStat) float64

// Percentuais de bônus por posição no ranking
const (
	firstPlaceBonusPercent = 15
	podiumBonusPercent     = 10
	lastPlaceBonusPercent  = 0
	defaultBonusPercent    = 5
	discountPercentDivisor = 100
	bonusPercentageDivisor = 100
)

// CalculateSimpleRevenue aplica o desconto percentual sobre preço de venda vezes quantidade
func CalculateSimpleRevenue(item domain.LineItem, _ domain.Product) float64 {
	decimalDiscount := item.Discount / discountPercentDivisor
	fullPrice := item.SalePrice * float64(item.Quantity)

	return utils.RoundWithTwoDecimalPlace(fullPrice * (1 - decimalDiscount))
}

// CalculateBonusByProfit calcula o bônus por faixa de posição no ranking de lucro.
// As faixas são avaliadas em ordem: 1º lugar, 2º ou 3º, último lugar e demais.
func CalculateBonusByProfit(index int, total int, seller *domain.SellerStat) float64 {
	if seller == nil || math.IsNaN(seller.Profit) || seller.Profit <= 0 {
		return 0
	}

	position := index + 1

	var bonusPercentage float64
	switch {
	case position == 1:
		bonusPercentage = firstPlaceBonusPercent
	case position == 2 || position == 3:
		bonusPercentage = podiumBonusPercent
	case position == total:
		bonusPercentage = lastPlaceBonusPercent
	default:
		bonusPercentage = defaultBonusPercent
	}

	return utils.RoundWithTwoDecimalPlace(seller.Profit * bonusPercentage / bonusPercentageDivisor)
}
