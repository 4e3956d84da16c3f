package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus representa o código de status de um pedido na plataforma
type OrderStatus int

// Status excluídos do faturamento, por convenção da plataforma
const (
	OrderStatusVoid      OrderStatus = 0
	OrderStatusCancelled OrderStatus = 3
)

// Excluded indica se o pedido deve ser descartado antes da agregação
func (s OrderStatus) Excluded() bool {
	return s == OrderStatusVoid || s == OrderStatusCancelled
}

// Order representa um pedido na base operacional. OrderedAt pode estar
// ausente; nesse caso o mês de faturamento usa a data de criação da amostra.
type Order struct {
	ID        int64       `json:"id"`
	CompanyID int64       `json:"company_id"`
	OrderedAt *time.Time  `json:"ordered_at"`
	Status    OrderStatus `json:"status"`
}

// Sample representa uma amostra vinculada a um pedido
type Sample struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TestLineItem representa um teste faturável vinculado a uma amostra.
// As taxas são opcionais e tratadas como zero quando ausentes.
type TestLineItem struct {
	ID            int64            `json:"id"`
	SampleID      int64            `json:"sample_id"`
	BasePrice     decimal.Decimal  `json:"price"`
	TurnaroundFee *decimal.Decimal `json:"turnaround_fee_amount"`
	CompositeFee  *decimal.Decimal `json:"composite_fee_amount"`
}

// FullPrice retorna o preço completo do teste: preço base somado às taxas,
// com taxas ausentes valendo zero (nunca propagam nulo)
func (t TestLineItem) FullPrice() decimal.Decimal {
	full := t.BasePrice
	if t.TurnaroundFee != nil {
		full = full.Add(*t.TurnaroundFee)
	}
	if t.CompositeFee != nil {
		full = full.Add(*t.CompositeFee)
	}
	return full
}
