package attributing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-attribution-api/internal/domain"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func testWindow() domain.MonthWindow {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	return domain.NewMonthWindow(start, 5)
}

// baseDataset monta o caso mínimo: um teste, uma amostra, um pedido válido de
// fevereiro de 2025 e uma empresa cujo site aponta para x.com
func baseDataset() Dataset {
	return Dataset{
		Companies: []domain.PlatformCompany{
			{ID: 1, Name: "Empresa X", Website: stringPtr("https://www.x.com")},
		},
		Orders: []domain.Order{
			{ID: 10, CompanyID: 1, OrderedAt: timePtr(time.Date(2025, time.February, 15, 10, 0, 0, 0, time.UTC)), Status: 1},
		},
		Samples: []domain.Sample{
			{ID: 100, OrderID: 10, CreatedAt: time.Date(2025, time.February, 16, 0, 0, 0, 0, time.UTC)},
		},
		Tests: []domain.TestLineItem{
			{ID: 1000, SampleID: 100, BasePrice: decimal.RequireFromString("100"), TurnaroundFee: decPtr("10")},
		},
	}
}

func xCanonical(ownerID *string) map[string]domain.CanonicalCompany {
	return map[string]domain.CanonicalCompany{
		"x.com": {Domain: "x.com", Name: "Empresa X", OwnerID: ownerID},
	}
}

func xOwners() []domain.Owner {
	return []domain.Owner{{ID: "o1", Email: "a@x.com"}}
}

func TestAttributeCorrespondenciaPrimaria(t *testing.T) {
	lines, err := Attribute(baseDataset(), xCanonical(stringPtr("o1")), xOwners(), testWindow())
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, "a@x.com", lines[0].OwnerEmail)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), lines[0].Month)
	assert.True(t, lines[0].FullPrice.Equal(decimal.RequireFromString("110")), "preço completo deve somar taxas com padrão zero")
}

func TestAttributeFallbackPorNome(t *testing.T) {
	// Canônico do domínio existe mas não tem responsável; outro canônico com
	// o mesmo nome da empresa tem
	canonical := map[string]domain.CanonicalCompany{
		"x.com":     {Domain: "x.com", Name: "Empresa X", OwnerID: nil},
		"x-br.com":  {Domain: "x-br.com", Name: "EMPRESA X", OwnerID: stringPtr("o1")},
		"outra.com": {Domain: "outra.com", Name: "Outra", OwnerID: stringPtr("o2")},
	}

	lines, err := Attribute(baseDataset(), canonical, xOwners(), testWindow())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "a@x.com", lines[0].OwnerEmail, "fallback por nome, sem diferenciar maiúsculas, deve resolver o responsável")
}

func TestAttributeFallbackNuncaSobrepoePrimaria(t *testing.T) {
	// A correspondência primária tem responsável; um canônico homônimo com
	// outro responsável não pode sobrepô-la
	canonical := map[string]domain.CanonicalCompany{
		"x.com":    {Domain: "x.com", Name: "Empresa X", OwnerID: stringPtr("o1")},
		"x-br.com": {Domain: "x-br.com", Name: "Empresa X", OwnerID: stringPtr("o2")},
	}
	owners := []domain.Owner{
		{ID: "o1", Email: "a@x.com"},
		{ID: "o2", Email: "b@x.com"},
	}

	lines, err := Attribute(baseDataset(), canonical, owners, testWindow())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "a@x.com", lines[0].OwnerEmail)
}

func TestAttributeSemCorrespondenciaPrimariaNaoAvaliaFallback(t *testing.T) {
	// O domínio da empresa não existe no CRM; mesmo havendo canônico com o
	// mesmo nome, o fallback não é avaliado sem correspondência primária
	canonical := map[string]domain.CanonicalCompany{
		"y.com": {Domain: "y.com", Name: "Empresa X", OwnerID: stringPtr("o1")},
	}

	lines, err := Attribute(baseDataset(), canonical, xOwners(), testWindow())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, domain.NoOwnerSentinel, lines[0].OwnerEmail)
}

func TestAttributeSentinelaQuandoSemResponsavel(t *testing.T) {
	tests := []struct {
		name      string
		canonical map[string]domain.CanonicalCompany
		owners    []domain.Owner
	}{
		{
			name:      "canônico sem responsável e sem fallback",
			canonical: xCanonical(nil),
			owners:    xOwners(),
		},
		{
			name:      "responsável referenciado não existe na tabela de responsáveis",
			canonical: xCanonical(stringPtr("o-fantasma")),
			owners:    xOwners(),
		},
		{
			name:      "responsável existe mas sem e-mail",
			canonical: xCanonical(stringPtr("o1")),
			owners:    []domain.Owner{{ID: "o1", Email: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Attribute(baseDataset(), tt.canonical, tt.owners, testWindow())
			require.NoError(t, err)
			require.Len(t, lines, 1, "a linha deve ser mantida sob a sentinela, não descartada")
			assert.Equal(t, domain.NoOwnerSentinel, lines[0].OwnerEmail)
			assert.True(t, lines[0].FullPrice.Equal(decimal.RequireFromString("110")))
		})
	}
}

func TestAttributeExcluiStatusDeCancelamento(t *testing.T) {
	for _, status := range []domain.OrderStatus{domain.OrderStatusVoid, domain.OrderStatusCancelled} {
		dataset := baseDataset()
		dataset.Orders[0].Status = status

		lines, err := Attribute(dataset, xCanonical(stringPtr("o1")), xOwners(), testWindow())
		require.NoError(t, err)
		assert.Empty(t, lines, "pedido com status %d não deve contribuir com nenhuma linha", status)
	}
}

func TestAttributeExcluiMesesForaDaJanela(t *testing.T) {
	dataset := baseDataset()
	dataset.Orders[0].OrderedAt = timePtr(time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC))

	lines, err := Attribute(dataset, xCanonical(stringPtr("o1")), xOwners(), testWindow())
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestAttributeUsaDataDaAmostraQuandoPedidoSemData(t *testing.T) {
	dataset := baseDataset()
	dataset.Orders[0].OrderedAt = nil
	dataset.Samples[0].CreatedAt = time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)

	lines, err := Attribute(dataset, xCanonical(stringPtr("o1")), xOwners(), testWindow())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), lines[0].Month)
}

func TestAttributeFalhaEmViolacaoDeIntegridade(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Dataset)
	}{
		{
			name:   "teste referencia amostra inexistente",
			mutate: func(d *Dataset) { d.Samples = nil },
		},
		{
			name:   "amostra referencia pedido inexistente",
			mutate: func(d *Dataset) { d.Orders = nil },
		},
		{
			name:   "pedido referencia empresa inexistente",
			mutate: func(d *Dataset) { d.Companies = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataset := baseDataset()
			tt.mutate(&dataset)

			_, err := Attribute(dataset, xCanonical(stringPtr("o1")), xOwners(), testWindow())
			assert.Error(t, err, "a execução deve falhar em vez de produzir totais errados")
		})
	}
}

func TestAttributeEmpresaSemWebsite(t *testing.T) {
	dataset := baseDataset()
	dataset.Companies[0].Website = nil

	lines, err := Attribute(dataset, xCanonical(stringPtr("o1")), xOwners(), testWindow())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, domain.NoOwnerSentinel, lines[0].OwnerEmail)
}
