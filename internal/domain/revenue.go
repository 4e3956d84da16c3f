package domain

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NoOwnerSentinel é o rótulo usado quando nenhum responsável pode ser
// resolvido para uma linha de receita. A receita continua sendo contabilizada
// sob esse rótulo em vez de desaparecer do resultado.
const NoOwnerSentinel = "(no owner)"

// RevenueLine representa uma linha de receita atribuída: um teste faturável
// já associado a um responsável e a um mês de faturamento
type RevenueLine struct {
	OwnerEmail string
	Month      time.Time
	FullPrice  decimal.Decimal
}

// TruncateMonth trunca um instante para o primeiro dia do mês, em UTC
func TruncateMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthKey retorna a chave de coluna de um mês no formato usado no snapshot
// (ex.: jan_2025)
func MonthKey(t time.Time) string {
	return strings.ToLower(t.Format("Jan_2006"))
}

// ParseMonthKey converte uma chave de coluna (ex.: jan_2025) de volta para o
// primeiro dia do mês correspondente
func ParseMonthKey(key string) (time.Time, error) {
	return time.Parse("Jan_2006", key)
}

// MonthWindow representa a janela fixa de meses contíguos considerada na
// agregação. Totais fora da janela são excluídos, não zerados.
type MonthWindow struct {
	Start  time.Time
	Months int
}

// NewMonthWindow cria uma janela iniciando no mês de start com a quantidade
// de meses informada
func NewMonthWindow(start time.Time, months int) MonthWindow {
	return MonthWindow{Start: TruncateMonth(start), Months: months}
}

// Contains indica se o mês informado pertence à janela
func (w MonthWindow) Contains(month time.Time) bool {
	m := TruncateMonth(month)
	for i := 0; i < w.Months; i++ {
		if w.Start.AddDate(0, i, 0).Equal(m) {
			return true
		}
	}
	return false
}

// MonthsInWindow retorna os meses da janela em ordem cronológica
func (w MonthWindow) MonthsInWindow() []time.Time {
	months := make([]time.Time, 0, w.Months)
	for i := 0; i < w.Months; i++ {
		months = append(months, w.Start.AddDate(0, i, 0))
	}
	return months
}

// Keys retorna as chaves de coluna da janela em ordem cronológica
func (w MonthWindow) Keys() []string {
	keys := make([]string, 0, w.Months)
	for _, m := range w.MonthsInWindow() {
		keys = append(keys, MonthKey(m))
	}
	return keys
}

// SnapshotRecord representa uma linha do snapshot pivotado: um responsável e
// um total por mês da janela. Um mês sem nenhuma linha contribuinte permanece
// nulo, o que é diferente de um total calculado igual a zero.
type SnapshotRecord struct {
	OwnerEmail string
	Totals     map[string]*decimal.Decimal
}

// MarshalJSON serializa o registro no formato plano consumido pelo frontend:
// {"owner_email": "...", "jan_2025": 110, "feb_2025": null, ...}.
// Os totais são emitidos como números JSON, não como strings.
func (r SnapshotRecord) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteString(`{"owner_email":`)
	email, err := json.Marshal(r.OwnerEmail)
	if err != nil {
		return nil, err
	}
	b.Write(email)

	for _, key := range sortedMonthKeys(r.Totals) {
		b.WriteByte(',')
		quoted, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		b.Write(quoted)
		b.WriteByte(':')
		if total := r.Totals[key]; total != nil {
			b.WriteString(total.String())
		} else {
			b.WriteString("null")
		}
	}

	b.WriteByte('}')
	return []byte(b.String()), nil
}

// UnmarshalJSON reconstrói o registro a partir do formato plano
func (r *SnapshotRecord) UnmarshalJSON(data []byte) error {
	raw := map[string]*decimal.Decimal{}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for key, value := range fields {
		if key == "owner_email" {
			if err := json.Unmarshal(value, &r.OwnerEmail); err != nil {
				return err
			}
			continue
		}

		if string(value) == "null" {
			raw[key] = nil
			continue
		}

		total := decimal.Decimal{}
		if err := json.Unmarshal(value, &total); err != nil {
			return err
		}
		raw[key] = &total
	}

	r.Totals = raw
	return nil
}

// sortedMonthKeys ordena as chaves de mês cronologicamente para que a saída
// serializada seja estável entre execuções
func sortedMonthKeys(totals map[string]*decimal.Decimal) []string {
	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		mi, erri := ParseMonthKey(keys[i])
		mj, errj := ParseMonthKey(keys[j])
		if erri != nil || errj != nil {
			return keys[i] < keys[j]
		}
		return mi.Before(mj)
	})

	return keys
}
