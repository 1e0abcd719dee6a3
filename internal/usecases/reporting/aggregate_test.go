package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func saleOf(id, storeID string, amount float64, date time.Time, items ...domain.TransactionItem) domain.Transaction {
	return domain.Transaction{
		Id:              id,
		StoreId:         storeID,
		TotalAmount:     amount,
		Status:          domain.StatusCompleted,
		TransactionDate: date,
		Items:           items,
	}
}

func productItem(productID string, quantity int) domain.TransactionItem {
	return domain.TransactionItem{
		ItemType:  domain.ItemTypeProduct,
		ProductId: strPtr(productID),
		Quantity:  quantity,
	}
}

func bundleItem(bundleID string, quantity int) domain.TransactionItem {
	return domain.TransactionItem{
		ItemType: domain.ItemTypeBundle,
		BundleId: strPtr(bundleID),
		Quantity: quantity,
	}
}

func TestBuildDashboardSummary(t *testing.T) {
	stores := []domain.Store{
		{Id: "store-1", Name: "Loja Centro"},
		{Id: "store-2", Name: "Loja Norte"},
	}
	products := []domain.Product{
		{Id: "prod-1", Name: "Café Especial"},
		{Id: "prod-2", Name: "Filtro de Papel"},
	}
	bundles := []domain.Bundle{
		{Id: "bun-1", Name: "Kit Café da Manhã"},
	}

	jan10 := time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC)
	jan11 := time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC)
	feb02 := time.Date(2025, 2, 2, 18, 45, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		transactions []domain.Transaction
		filters      *domain.DashboardFilters
		validate     func(t *testing.T, summary *domain.DashboardSummary)
	}{
		{
			name:         "Lista vazia de transações - deve produzir resumo vazio com receita zero",
			transactions: nil,
			filters:      nil,
			validate: func(t *testing.T, summary *domain.DashboardSummary) {
				assert.Empty(t, summary.TopStores)
				assert.Empty(t, summary.TopProducts)
				assert.Empty(t, summary.TopBundles)
				assert.Empty(t, summary.DailyRevenue.Categories)
				assert.Empty(t, summary.DailyRevenue.Data)
				assert.Empty(t, summary.WeeklyRevenue.Categories)
				assert.Empty(t, summary.MonthlyRevenue.Categories)
				assert.Equal(t, 0.0, summary.TotalOverallRevenue)
			},
		},
		{
			name: "Rankings - deve limitar ao top 5 em ordem decrescente com empates estáveis",
			transactions: func() []domain.Transaction {
				var txs []domain.Transaction
				// sete lojas: store-a com 7 vendas, store-b com 5, as demais
				// empatadas com 2 cada, na ordem de encontro c, d, e, f, g
				counts := []struct {
					store string
					hits  int
				}{
					{"store-a", 7},
					{"store-b", 5},
					{"store-c", 2},
					{"store-d", 2},
					{"store-e", 2},
					{"store-f", 2},
					{"store-g", 2},
				}
				for _, c := range counts {
					for i := 0; i < c.hits; i++ {
						txs = append(txs, saleOf("", c.store, 10, jan10))
					}
				}
				return txs
			}(),
			filters: nil,
			validate: func(t *testing.T, summary *domain.DashboardSummary) {
				assert.Len(t, summary.TopStores, 5)
				assert.Equal(t, 7, summary.TopStores[0].Count)
				assert.Equal(t, 5, summary.TopStores[1].Count)
				assert.Equal(t, "Unknown Store (store-)", summary.TopStores[2].Name)
				assert.Equal(t, 2, summary.TopStores[2].Count)
				assert.Equal(t, 2, summary.TopStores[3].Count)
				assert.Equal(t, 2, summary.TopStores[4].Count)
			},
		},
		{
			name: "Séries temporais - soma da série diária deve igualar a receita total",
			transactions: []domain.Transaction{
				saleOf("t1", "store-1", 100.50, jan10),
				saleOf("t2", "store-1", 49.50, jan10),
				saleOf("t3", "store-2", 200.00, jan11),
				saleOf("t4", "store-2", 75.25, feb02),
			},
			filters: nil,
			validate: func(t *testing.T, summary *domain.DashboardSummary) {
				assert.Equal(t, 425.25, summary.TotalOverallRevenue)

				assert.Equal(t, []string{"2025-01-10", "2025-01-11", "2025-02-02"}, summary.DailyRevenue.Categories)
				assert.Equal(t, []float64{150.00, 200.00, 75.25}, summary.DailyRevenue.Data)

				var dailySum float64
				for _, amount := range summary.DailyRevenue.Data {
					dailySum += amount
				}
				assert.Equal(t, summary.TotalOverallRevenue, dailySum)

				assert.Equal(t, []string{"January 2025", "February 2025"}, summary.MonthlyRevenue.Categories)
				assert.Equal(t, []float64{350.00, 75.25}, summary.MonthlyRevenue.Data)
			},
		},
		{
			name: "Semanas ISO - venda de 1º de janeiro deve cair na última semana do ano anterior",
			transactions: []domain.Transaction{
				// 2027-01-01 é sexta-feira: pertence à semana ISO 53 de 2026
				saleOf("t1", "store-1", 10, time.Date(2027, 1, 1, 12, 0, 0, 0, time.UTC)),
				saleOf("t2", "store-1", 20, time.Date(2027, 1, 4, 12, 0, 0, 0, time.UTC)),
			},
			filters: nil,
			validate: func(t *testing.T, summary *domain.DashboardSummary) {
				assert.Equal(t, []string{"Week 53 (2026)", "Week 1 (2027)"}, summary.WeeklyRevenue.Categories)
				assert.Equal(t, []float64{10, 20}, summary.WeeklyRevenue.Data)
			},
		},
		{
			name: "Filtro de loja - deve considerar apenas as transações da loja informada",
			transactions: []domain.Transaction{
				saleOf("t1", "store-1", 100, jan10, productItem("prod-1", 2)),
				saleOf("t2", "store-2", 999, jan10, productItem("prod-2", 5)),
			},
			filters: &domain.DashboardFilters{StoreID: "store-1"},
			validate: func(t *testing.T, summary *domain.DashboardSummary) {
				assert.Equal(t, 100.0, summary.TotalOverallRevenue)
				assert.Len(t, summary.TopStores, 1)
				assert.Equal(t, "Loja Centro", summary.TopStores[0].Name)
				assert.Len(t, summary.TopProducts, 1)
				assert.Equal(t, "Café Especial", summary.TopProducts[0].Name)
				assert.Equal(t, 2, summary.TopProducts[0].Count)
			},
		},
		{
			name: "Filtro com valor all - deve considerar todas as lojas",
			transactions: []domain.Transaction{
				saleOf("t1", "store-1", 100, jan10),
				saleOf("t2", "store-2", 200, jan10),
			},
			filters: &domain.DashboardFilters{StoreID: domain.AllStores},
			validate: func(t *testing.T, summary *domain.DashboardSummary) {
				assert.Equal(t, 300.0, summary.TotalOverallRevenue)
				assert.Len(t, summary.TopStores, 2)
			},
		},
		{
			name: "Intervalo de datas - deve ser inclusivo nas duas pontas",
			transactions: []domain.Transaction{
				saleOf("antes", "store-1", 1, time.Date(2025, 1, 9, 23, 59, 59, 0, time.UTC)),
				saleOf("inicio", "store-1", 10, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)),
				saleOf("meio", "store-1", 100, time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)),
				saleOf("fim", "store-1", 1000, time.Date(2025, 1, 11, 23, 59, 59, 0, time.UTC)),
				saleOf("depois", "store-1", 10000, time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)),
			},
			filters: &domain.DashboardFilters{
				StartDate: timePtr(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)),
				EndDate:   timePtr(time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)),
			},
			validate: func(t *testing.T, summary *domain.DashboardSummary) {
				assert.Equal(t, 1110.0, summary.TotalOverallRevenue)
			},
		},
		{
			name: "Identificadores desconhecidos - deve usar rótulos de fallback com prefixo do id",
			transactions: []domain.Transaction{
				saleOf("t1", "loja-fantasma-123", 50, jan10,
					productItem("produto-sumido", 1),
					bundleItem("xyz", 3),
				),
			},
			filters: nil,
			validate: func(t *testing.T, summary *domain.DashboardSummary) {
				assert.Equal(t, "Unknown Store (loja-f)", summary.TopStores[0].Name)
				assert.Equal(t, "Unknown Product (produt)", summary.TopProducts[0].Name)
				assert.Equal(t, "Unknown Bundle (xyz)", summary.TopBundles[0].Name)
				assert.Equal(t, 3, summary.TopBundles[0].Count)
			},
		},
		{
			name: "Data zerada - deve entrar na receita e nos rankings mas ficar fora das séries",
			transactions: []domain.Transaction{
				saleOf("t1", "store-1", 100, time.Time{}, productItem("prod-1", 1)),
				saleOf("t2", "store-1", 50, jan10),
			},
			filters: nil,
			validate: func(t *testing.T, summary *domain.DashboardSummary) {
				assert.Equal(t, 150.0, summary.TotalOverallRevenue)
				assert.Equal(t, 2, summary.TopStores[0].Count)
				assert.Len(t, summary.TopProducts, 1)
				assert.Equal(t, []string{"2025-01-10"}, summary.DailyRevenue.Categories)
				assert.Equal(t, []float64{50}, summary.DailyRevenue.Data)
			},
		},
		{
			name: "Bundles e produtos - quantidades devem ser somadas por item",
			transactions: []domain.Transaction{
				saleOf("t1", "store-1", 100, jan10,
					productItem("prod-1", 2),
					bundleItem("bun-1", 1),
				),
				saleOf("t2", "store-2", 200, jan11,
					productItem("prod-1", 3),
					productItem("prod-2", 1),
					bundleItem("bun-1", 2),
				),
			},
			filters: nil,
			validate: func(t *testing.T, summary *domain.DashboardSummary) {
				assert.Equal(t, []domain.RankingEntry{
					{Name: "Café Especial", Count: 5},
					{Name: "Filtro de Papel", Count: 1},
				}, summary.TopProducts)
				assert.Equal(t, []domain.RankingEntry{
					{Name: "Kit Café da Manhã", Count: 3},
				}, summary.TopBundles)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary := BuildDashboardSummary(tc.transactions, stores, products, bundles, tc.filters)
			tc.validate(t, summary)
		})
	}
}

func TestBuildDashboardSummaryDeterminism(t *testing.T) {
	transactions := []domain.Transaction{
		saleOf("t1", "store-1", 123.45, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), productItem("prod-1", 2)),
		saleOf("t2", "store-2", 67.89, time.Date(2025, 3, 2, 11, 0, 0, 0, time.UTC), bundleItem("bun-1", 1)),
		saleOf("t3", "store-1", 10.00, time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)),
	}
	stores := []domain.Store{{Id: "store-1", Name: "Loja Centro"}, {Id: "store-2", Name: "Loja Norte"}}
	products := []domain.Product{{Id: "prod-1", Name: "Café Especial"}}
	bundles := []domain.Bundle{{Id: "bun-1", Name: "Kit Café da Manhã"}}

	first := BuildDashboardSummary(transactions, stores, products, bundles, nil)
	second := BuildDashboardSummary(transactions, stores, products, bundles, nil)

	assert.Equal(t, first, second)
}

func TestBuildDashboardSummaryCountsDuplicates(t *testing.T) {
	date := time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC)
	duplicated := saleOf("t1", "store-1", 30, date, productItem("prod-1", 1))

	summary := BuildDashboardSummary(
		[]domain.Transaction{duplicated, duplicated},
		[]domain.Store{{Id: "store-1", Name: "Loja Centro"}},
		[]domain.Product{{Id: "prod-1", Name: "Café Especial"}},
		nil,
		nil,
	)

	assert.Equal(t, 60.0, summary.TotalOverallRevenue)
	assert.Equal(t, 2, summary.TopStores[0].Count)
	assert.Equal(t, 2, summary.TopProducts[0].Count)
}
