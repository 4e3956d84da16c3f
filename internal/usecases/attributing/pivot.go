package attributing

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/revenue-attribution-api/internal/domain"
)

// PivotMonthly soma o preço completo por responsável e mês em uma única
// passada e remodela o resultado em uma linha por responsável com uma coluna
// por mês da janela. Um mês sem linhas contribuintes permanece nulo no
// registro, distinto de um total zero vindo de itens precificados em zero.
// As linhas saem ordenadas pelo e-mail do responsável; o rótulo sentinela
// ordena pelo seu valor literal, sem tratamento especial.
func PivotMonthly(lines []domain.RevenueLine, window domain.MonthWindow) []domain.SnapshotRecord {
	totalsByOwner := make(map[string]map[string]*decimal.Decimal)

	for _, line := range lines {
		if !window.Contains(line.Month) {
			continue
		}

		key := domain.MonthKey(line.Month)
		totals, ok := totalsByOwner[line.OwnerEmail]
		if !ok {
			totals = emptyTotals(window)
			totalsByOwner[line.OwnerEmail] = totals
		}

		if totals[key] == nil {
			sum := line.FullPrice
			totals[key] = &sum
			continue
		}

		sum := totals[key].Add(line.FullPrice)
		totals[key] = &sum
	}

	emails := make([]string, 0, len(totalsByOwner))
	for email := range totalsByOwner {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	records := make([]domain.SnapshotRecord, 0, len(emails))
	for _, email := range emails {
		records = append(records, domain.SnapshotRecord{
			OwnerEmail: email,
			Totals:     totalsByOwner[email],
		})
	}

	return records
}

// emptyTotals inicializa todas as colunas da janela como nulas
func emptyTotals(window domain.MonthWindow) map[string]*decimal.Decimal {
	totals := make(map[string]*decimal.Decimal, window.Months)
	for _, key := range window.Keys() {
		totals[key] = nil
	}
	return totals
}
