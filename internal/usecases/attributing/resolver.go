package attributing

import (
	"sort"

	"github.com/vfg2006/revenue-attribution-api/internal/domain"
)

// ResolveCanonical deduplica as empresas do CRM escolhendo exatamente um
// registro canônico por domínio normalizado. Registros com responsável
// vencem registros sem responsável; empates são resolvidos pelo menor ID do
// CRM, de forma determinística. Registros sem domínio são ignorados.
//
// Um grupo em que nenhum registro possui responsável ainda produz um
// canônico: o nome é mantido para o fallback por nome e o OwnerID fica nulo,
// o que é um estado terminal válido, não um erro.
func ResolveCanonical(companies []domain.CRMCompany) map[string]domain.CanonicalCompany {
	groups := make(map[string][]domain.CRMCompany)

	for _, company := range companies {
		if company.Domain == nil {
			continue
		}

		key := NormalizeDomain(*company.Domain)
		if key == "" {
			continue
		}

		groups[key] = append(groups[key], company)
	}

	canonical := make(map[string]domain.CanonicalCompany, len(groups))
	for key, group := range groups {
		chosen := pickCanonical(group)
		canonical[key] = domain.CanonicalCompany{
			Domain:  key,
			Name:    chosen.Name,
			OwnerID: chosen.OwnerID,
		}
	}

	return canonical
}

// pickCanonical ordena o grupo pela regra de desempate: primeiro quem tem
// responsável, depois o menor ID
func pickCanonical(group []domain.CRMCompany) domain.CRMCompany {
	sort.SliceStable(group, func(i, j int) bool {
		iHasOwner := hasOwner(group[i])
		jHasOwner := hasOwner(group[j])
		if iHasOwner != jHasOwner {
			return iHasOwner
		}
		return group[i].ID < group[j].ID
	})

	return group[0]
}

func hasOwner(company domain.CRMCompany) bool {
	return company.OwnerID != nil && *company.OwnerID != ""
}
