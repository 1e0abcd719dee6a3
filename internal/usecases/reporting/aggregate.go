package reporting

import (
	"fmt"
	"sort"

	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/pkg/utils"
)

// tamanho dos rankings top-N exibidos no dashboard
const topListSize = 5

// hitCounter acumula contagens por identificador preservando a ordem do
// primeiro encontro, para desempate estável no ranking
type hitCounter struct {
	counts map[string]int
	order  []string
}

func newHitCounter() *hitCounter {
	return &hitCounter{counts: make(map[string]int)}
}

func (c *hitCounter) add(id string, n int) {
	if _, seen := c.counts[id]; !seen {
		c.order = append(c.order, id)
	}
	c.counts[id] += n
}

// ranked resolve os identificadores para nomes de exibição e retorna as
// topListSize maiores contagens em ordem decrescente. Empates preservam a
// ordem de encontro. Identificadores sem entrada na lista de referência nunca
// são descartados: recebem o rótulo de fallback.
func (c *hitCounter) ranked(resolve func(id string) (string, bool), fallback func(id string) string) []domain.RankingEntry {
	entries := make([]domain.RankingEntry, 0, len(c.order))
	for _, id := range c.order {
		name, found := resolve(id)
		if !found {
			name = fallback(id)
		}
		entries = append(entries, domain.RankingEntry{Name: name, Count: c.counts[id]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > topListSize {
		entries = entries[:topListSize]
	}
	return entries
}

// revenueBuckets acumula receita por chave de período, guardando o rótulo de
// exibição de cada bucket
type revenueBuckets struct {
	amounts map[string]float64
	labels  map[string]string
}

func newRevenueBuckets() *revenueBuckets {
	return &revenueBuckets{
		amounts: make(map[string]float64),
		labels:  make(map[string]string),
	}
}

func (b *revenueBuckets) add(key, label string, amount float64) {
	b.amounts[key] += amount
	b.labels[key] = label
}

// series converte os buckets em uma série ordenada ascendentemente pela chave
// do período, com categorias e valores alinhados índice a índice
func (b *revenueBuckets) series() domain.RevenueSeries {
	keys := make([]string, 0, len(b.amounts))
	for key := range b.amounts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	series := domain.RevenueSeries{
		Categories: make([]string, 0, len(keys)),
		Data:       make([]float64, 0, len(keys)),
	}
	for _, key := range keys {
		series.Categories = append(series.Categories, b.labels[key])
		series.Data = append(series.Data, utils.RoundWithTwoDecimalPlace(b.amounts[key]))
	}
	return series
}

// shortID retorna o prefixo do identificador usado nos rótulos de fallback
func shortID(id string) string {
	if len(id) > 6 {
		return id[:6]
	}
	return id
}

// BuildDashboardSummary transforma a lista de transações e as listas de
// referência nos resumos de decisão do dashboard, sob um filtro opcional de
// loja e um intervalo de datas opcional e inclusivo.
//
// A função é pura e determinística: não faz I/O e entradas idênticas produzem
// saídas idênticas. Lista vazia de transações produz séries e rankings vazios
// com receita total zero. Transações duplicadas na origem são contadas em
// dobro; nenhuma deduplicação é aplicada.
func BuildDashboardSummary(
	transactions []domain.Transaction,
	stores []domain.Store,
	products []domain.Product,
	bundles []domain.Bundle,
	filters *domain.DashboardFilters,
) *domain.DashboardSummary {
	storeNames := make(map[string]string, len(stores))
	for _, store := range stores {
		storeNames[store.Id] = store.Name
	}
	productNames := make(map[string]string, len(products))
	for _, product := range products {
		productNames[product.Id] = product.Name
	}
	bundleNames := make(map[string]string, len(bundles))
	for _, bundle := range bundles {
		bundleNames[bundle.Id] = bundle.Name
	}

	storeHits := newHitCounter()
	productHits := newHitCounter()
	bundleHits := newHitCounter()

	daily := newRevenueBuckets()
	weekly := newRevenueBuckets()
	monthly := newRevenueBuckets()

	totalRevenue := 0.0

	for _, transaction := range transactions {
		if !matchesFilters(&transaction, filters) {
			continue
		}

		storeHits.add(transaction.StoreId, 1)
		totalRevenue += transaction.TotalAmount

		for _, item := range transaction.Items {
			switch item.ItemType {
			case domain.ItemTypeProduct:
				if item.ProductId != nil {
					productHits.add(*item.ProductId, item.Quantity)
				}
			case domain.ItemTypeBundle:
				if item.BundleId != nil {
					bundleHits.add(*item.BundleId, item.Quantity)
				}
			}
		}

		// Uma data zerada entra na receita total e nos rankings, mas fica
		// fora das séries temporais
		date := transaction.TransactionDate
		if date.IsZero() {
			continue
		}

		dayKey := utils.DayKey(date)
		daily.add(dayKey, dayKey, transaction.TotalAmount)
		weekly.add(utils.WeekKey(date), utils.WeekLabel(date), transaction.TotalAmount)
		monthly.add(utils.MonthKey(date), utils.MonthLabel(date), transaction.TotalAmount)
	}

	return &domain.DashboardSummary{
		TopStores: storeHits.ranked(
			func(id string) (string, bool) { name, ok := storeNames[id]; return name, ok },
			func(id string) string { return fmt.Sprintf("Unknown Store (%s)", shortID(id)) },
		),
		TopProducts: productHits.ranked(
			func(id string) (string, bool) { name, ok := productNames[id]; return name, ok },
			func(id string) string { return fmt.Sprintf("Unknown Product (%s)", shortID(id)) },
		),
		TopBundles: bundleHits.ranked(
			func(id string) (string, bool) { name, ok := bundleNames[id]; return name, ok },
			func(id string) string { return fmt.Sprintf("Unknown Bundle (%s)", shortID(id)) },
		),
		DailyRevenue:        daily.series(),
		WeeklyRevenue:       weekly.series(),
		MonthlyRevenue:      monthly.series(),
		TotalOverallRevenue: utils.RoundWithTwoDecimalPlace(totalRevenue),
	}
}

// matchesFilters aplica o filtro de loja e o intervalo de datas inclusivo
// [início 00:00:00, fim 23:59:59]. O filtro de datas só vale quando as duas
// pontas foram informadas.
func matchesFilters(transaction *domain.Transaction, filters *domain.DashboardFilters) bool {
	if filters == nil {
		return true
	}

	if filters.StoreID != "" && filters.StoreID != domain.AllStores && transaction.StoreId != filters.StoreID {
		return false
	}

	if filters.HasDateRange() {
		from := utils.StartOfDay(*filters.StartDate)
		to := utils.EndOfDay(*filters.EndDate)

		date := transaction.TransactionDate
		if date.Before(from) || date.After(to) {
			return false
		}
	}

	return true
}
