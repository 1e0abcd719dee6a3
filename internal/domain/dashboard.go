package domain

import "time"

// AllStores é o valor de filtro que considera transações de todas as lojas
const AllStores = "all"

// DashboardFilters são os filtros aplicados ao resumo do dashboard. O filtro
// de datas só é aplicado quando as duas pontas estão presentes; o intervalo é
// inclusivo, de StartDate 00:00:00 até EndDate 23:59:59.
type DashboardFilters struct {
	StoreID   string
	StartDate *time.Time
	EndDate   *time.Time
}

// HasDateRange indica se as duas pontas do intervalo de datas foram informadas
func (f *DashboardFilters) HasDateRange() bool {
	return f != nil && f.StartDate != nil && f.EndDate != nil
}

// RankingEntry é uma posição de um ranking top-N do dashboard
type RankingEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RevenueSeries é uma série temporal de receita; Categories e Data são
// alinhados índice a índice e ordenados pela chave do período
type RevenueSeries struct {
	Categories []string  `json:"categories"`
	Data       []float64 `json:"data"`
}

// DashboardSummary é o resumo de vendas exibido na visão geral do dashboard
type DashboardSummary struct {
	TopStores           []RankingEntry `json:"top_stores"`
	TopProducts         []RankingEntry `json:"top_products"`
	TopBundles          []RankingEntry `json:"top_bundles"`
	DailyRevenue        RevenueSeries  `json:"daily_revenue"`
	WeeklyRevenue       RevenueSeries  `json:"weekly_revenue"`
	MonthlyRevenue      RevenueSeries  `json:"monthly_revenue"`
	TotalOverallRevenue float64        `json:"total_overall_revenue"`
}

// DashboardSnapshot é um resumo pré-calculado e persistido para consulta rápida
type DashboardSnapshot struct {
	ID        string            `json:"id"`
	Scope     string            `json:"scope"` // id da loja ou AllStores
	Date      time.Time         `json:"date"`
	Summary   *DashboardSummary `json:"summary"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
