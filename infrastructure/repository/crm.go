package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-attribution-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-attribution-api/internal/domain"
)

const (
	crmCompaniesTable = "crm.companies c"
	crmOwnersTable    = "crm.owners o"
)

// CRMRepository expõe os registros do CRM usados na atribuição de receita
type CRMRepository interface {
	ListCompanies() ([]domain.CRMCompany, error)
	ListOwners() ([]domain.Owner, error)
}

type crmRepository struct {
	conn *postgres.Connection
}

func NewCRMRepository(conn *postgres.Connection) CRMRepository {
	return &crmRepository{
		conn: conn,
	}
}

// ListCompanies retorna as empresas do CRM que possuem domínio preenchido,
// em ordem de ID para que o desempate da deduplicação seja estável
func (r *crmRepository) ListCompanies() ([]domain.CRMCompany, error) {
	query, args, err := squirrel.
		Select("c.id, c.domain, c.name, c.owner_id").
		From(crmCompaniesTable).
		Where(squirrel.NotEq{"c.domain": nil}).
		OrderBy("c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	companies := make([]domain.CRMCompany, 0)
	for rows.Next() {
		var company domain.CRMCompany
		var companyDomain sql.NullString
		var ownerID sql.NullString

		if err := rows.Scan(&company.ID, &companyDomain, &company.Name, &ownerID); err != nil {
			return nil, fmt.Errorf("erro ao escanear empresa do CRM: %w", err)
		}

		if companyDomain.Valid {
			company.Domain = &companyDomain.String
		}
		if ownerID.Valid {
			company.OwnerID = &ownerID.String
		}

		companies = append(companies, company)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return companies, nil
}

// ListOwners retorna a tabela de responsáveis para a resolução de e-mails
func (r *crmRepository) ListOwners() ([]domain.Owner, error) {
	query, args, err := squirrel.
		Select("o.id, o.email").
		From(crmOwnersTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	owners := make([]domain.Owner, 0)
	for rows.Next() {
		var owner domain.Owner
		if err := rows.Scan(&owner.ID, &owner.Email); err != nil {
			return nil, fmt.Errorf("erro ao escanear responsável: %w", err)
		}
		owners = append(owners, owner)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return owners, nil
}
