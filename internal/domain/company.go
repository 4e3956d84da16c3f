package domain

// CRMCompany representa uma empresa cadastrada no CRM. O campo Domain é o
// texto livre do site/domínio e pode estar ausente; OwnerID referencia o
// responsável pela conta no CRM, quando existir.
type CRMCompany struct {
	ID      int64   `json:"id"`
	Domain  *string `json:"domain"`
	Name    string  `json:"name"`
	OwnerID *string `json:"owner_id"`
}

// CanonicalCompany é o registro canônico escolhido para um domínio
// normalizado após a deduplicação do CRM. O Name é mantido mesmo quando
// nenhum registro do grupo possui responsável, pois serve de chave para o
// fallback por nome.
type CanonicalCompany struct {
	Domain  string
	Name    string
	OwnerID *string
}

// HasOwner indica se o registro canônico possui um responsável atribuído
func (c CanonicalCompany) HasOwner() bool {
	return c.OwnerID != nil && *c.OwnerID != ""
}

// Owner representa um responsável de conta no CRM
type Owner struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// PlatformCompany representa uma empresa na base operacional da plataforma
type PlatformCompany struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Website *string `json:"website"`
}
