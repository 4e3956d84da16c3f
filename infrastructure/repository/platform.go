package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/revenue-attribution-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-attribution-api/internal/domain"
)

const (
	platformCompaniesTable = "platform.companies c"
	platformOrdersTable    = "platform.orders ord"
	platformSamplesTable   = "platform.samples smp"
	platformTestsTable     = "platform.tests tst"
)

// PlatformRepository expõe os registros operacionais da plataforma usados no
// pipeline de atribuição. As regras de negócio (status excluídos, janela,
// junções) vivem no pipeline; aqui apenas se materializam os dados.
type PlatformRepository interface {
	ListCompanies() ([]domain.PlatformCompany, error)
	ListOrders() ([]domain.Order, error)
	ListSamples() ([]domain.Sample, error)
	ListTests() ([]domain.TestLineItem, error)
}

type platformRepository struct {
	conn *postgres.Connection
}

func NewPlatformRepository(conn *postgres.Connection) PlatformRepository {
	return &platformRepository{
		conn: conn,
	}
}

func (r *platformRepository) ListCompanies() ([]domain.PlatformCompany, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.website").
		From(platformCompaniesTable).
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

	companies := make([]domain.PlatformCompany, 0)
	for rows.Next() {
		var company domain.PlatformCompany
		var website sql.NullString

		if err := rows.Scan(&company.ID, &company.Name, &website); err != nil {
			return nil, fmt.Errorf("erro ao escanear empresa da plataforma: %w", err)
		}

		if website.Valid {
			company.Website = &website.String
		}

		companies = append(companies, company)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return companies, nil
}

func (r *platformRepository) ListOrders() ([]domain.Order, error) {
	query, args, err := squirrel.
		Select("ord.id, ord.company_id, ord.ordered_at, ord.status").
		From(platformOrdersTable).
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

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		var orderedAt sql.NullTime
		var status int

		if err := rows.Scan(&order.ID, &order.CompanyID, &orderedAt, &status); err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}

		if orderedAt.Valid {
			t := orderedAt.Time
			order.OrderedAt = &t
		}
		order.Status = domain.OrderStatus(status)

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func (r *platformRepository) ListSamples() ([]domain.Sample, error) {
	query, args, err := squirrel.
		Select("smp.id, smp.order_id, smp.created_at").
		From(platformSamplesTable).
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

	samples := make([]domain.Sample, 0)
	for rows.Next() {
		var sample domain.Sample
		var createdAt time.Time

		if err := rows.Scan(&sample.ID, &sample.OrderID, &createdAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear amostra: %w", err)
		}

		sample.CreatedAt = createdAt
		samples = append(samples, sample)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return samples, nil
}

func (r *platformRepository) ListTests() ([]domain.TestLineItem, error) {
	query, args, err := squirrel.
		Select("tst.id, tst.sample_id, tst.price, tst.turnaround_fee_amount, tst.composite_fee_amount").
		From(platformTestsTable).
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

	tests := make([]domain.TestLineItem, 0)
	for rows.Next() {
		var test domain.TestLineItem
		var price string
		var turnaroundFee sql.NullString
		var compositeFee sql.NullString

		if err := rows.Scan(&test.ID, &test.SampleID, &price, &turnaroundFee, &compositeFee); err != nil {
			return nil, fmt.Errorf("erro ao escanear teste: %w", err)
		}

		basePrice, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("erro ao converter preço do teste %d: %w", test.ID, err)
		}
		test.BasePrice = basePrice

		if turnaroundFee.Valid {
			fee, err := decimal.NewFromString(turnaroundFee.String)
			if err != nil {
				return nil, fmt.Errorf("erro ao converter taxa de turnaround do teste %d: %w", test.ID, err)
			}
			test.TurnaroundFee = &fee
		}

		if compositeFee.Valid {
			fee, err := decimal.NewFromString(compositeFee.String)
			if err != nil {
				return nil, fmt.Errorf("erro ao converter taxa composta do teste %d: %w", test.ID, err)
			}
			test.CompositeFee = &fee
		}

		tests = append(tests, test)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tests, nil
}
