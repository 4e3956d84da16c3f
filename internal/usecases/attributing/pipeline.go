package attributing

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/revenue-attribution-api/internal/domain"
)

// Dataset agrupa os registros operacionais carregados do warehouse para uma
// execução do pipeline
type Dataset struct {
	Companies []domain.PlatformCompany
	Orders    []domain.Order
	Samples   []domain.Sample
	Tests     []domain.TestLineItem
}

// Attribute atribui um responsável a cada teste faturável, junta os registros
// operacionais (teste → amostra → pedido → empresa) ao canônico do CRM e
// produz as linhas de receita que sobrevivem aos filtros de status e de
// janela.
//
// A correspondência primária é por domínio normalizado. O fallback por nome
// só é avaliado quando a correspondência primária existe mas não possui
// responsável; quando a primária tem responsável, o fallback nunca a
// sobrepõe. Linhas sem responsável resolvido são mantidas sob o rótulo
// NoOwnerSentinel para que a receita não desapareça do total.
//
// Violações de integridade entre as tabelas operacionais (teste sem amostra,
// amostra sem pedido, pedido sem empresa) falham a execução em vez de
// produzir totais silenciosamente errados.
func Attribute(
	dataset Dataset,
	canonical map[string]domain.CanonicalCompany,
	owners []domain.Owner,
	window domain.MonthWindow,
) ([]domain.RevenueLine, error) {
	companiesByID := make(map[int64]domain.PlatformCompany, len(dataset.Companies))
	for _, company := range dataset.Companies {
		companiesByID[company.ID] = company
	}

	ordersByID := make(map[int64]domain.Order, len(dataset.Orders))
	for _, order := range dataset.Orders {
		ordersByID[order.ID] = order
	}

	samplesByID := make(map[int64]domain.Sample, len(dataset.Samples))
	for _, sample := range dataset.Samples {
		samplesByID[sample.ID] = sample
	}

	emailsByOwnerID := make(map[string]string, len(owners))
	for _, owner := range owners {
		emailsByOwnerID[owner.ID] = owner.Email
	}

	nameIndex := buildNameIndex(canonical)

	lines := make([]domain.RevenueLine, 0, len(dataset.Tests))
	for _, test := range dataset.Tests {
		sample, ok := samplesByID[test.SampleID]
		if !ok {
			return nil, fmt.Errorf("teste %d referencia amostra inexistente %d", test.ID, test.SampleID)
		}

		order, ok := ordersByID[sample.OrderID]
		if !ok {
			return nil, fmt.Errorf("amostra %d referencia pedido inexistente %d", sample.ID, sample.OrderID)
		}

		company, ok := companiesByID[order.CompanyID]
		if !ok {
			return nil, fmt.Errorf("pedido %d referencia empresa inexistente %d", order.ID, order.CompanyID)
		}

		if order.Status.Excluded() {
			continue
		}

		month := revenueMonth(order, sample)
		if !window.Contains(month) {
			continue
		}

		lines = append(lines, domain.RevenueLine{
			OwnerEmail: resolveOwnerEmail(company, canonical, nameIndex, emailsByOwnerID),
			Month:      month,
			FullPrice:  test.FullPrice(),
		})
	}

	return lines, nil
}

// revenueMonth deriva o mês de faturamento: data do pedido quando presente,
// senão a data de criação da amostra
func revenueMonth(order domain.Order, sample domain.Sample) time.Time {
	if order.OrderedAt != nil {
		return domain.TruncateMonth(*order.OrderedAt)
	}
	return domain.TruncateMonth(sample.CreatedAt)
}

// resolveOwnerEmail aplica a precedência de correspondência e devolve o
// e-mail do responsável ou o rótulo sentinela
func resolveOwnerEmail(
	company domain.PlatformCompany,
	canonical map[string]domain.CanonicalCompany,
	nameIndex map[string]domain.CanonicalCompany,
	emailsByOwnerID map[string]string,
) string {
	var ownerID *string

	website := ""
	if company.Website != nil {
		website = *company.Website
	}

	cleaned := NormalizeDomain(website)
	if cleaned != "" {
		if primary, ok := canonical[cleaned]; ok {
			if primary.HasOwner() {
				ownerID = primary.OwnerID
			} else if fallback, ok := nameIndex[strings.ToLower(company.Name)]; ok && fallback.HasOwner() {
				ownerID = fallback.OwnerID
			}
		}
	}

	if ownerID == nil {
		return domain.NoOwnerSentinel
	}

	email, ok := emailsByOwnerID[*ownerID]
	if !ok || email == "" {
		return domain.NoOwnerSentinel
	}

	return email
}

// buildNameIndex indexa os canônicos por nome em minúsculas para o fallback.
// Quando dois canônicos compartilham o nome, vence quem tem responsável e,
// persistindo o empate, o menor domínio, para manter o resultado
// determinístico.
func buildNameIndex(canonical map[string]domain.CanonicalCompany) map[string]domain.CanonicalCompany {
	index := make(map[string]domain.CanonicalCompany, len(canonical))

	for _, company := range canonical {
		key := strings.ToLower(company.Name)
		if key == "" {
			continue
		}

		current, exists := index[key]
		if !exists {
			index[key] = company
			continue
		}

		if company.HasOwner() != current.HasOwner() {
			if company.HasOwner() {
				index[key] = company
			}
			continue
		}

		if company.Domain < current.Domain {
			index[key] = company
		}
	}

	return index
}
