// Package paymentrepo persists the payment ledger. The ledger is
// append-only; the unique index on order_id is the storage-level guarantee
// behind the one-payment-per-order rule.
package paymentrepo

import (
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents one settled payment row. Methods are stored as their
// lowercase wire names; amounts as exact decimals.
type PaymentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Ticket         string    `gorm:"uniqueIndex"`
	Method         string
	Amount         decimal.Decimal `gorm:"type:decimal(10,2)"`
	ReceivedAmount decimal.Decimal `gorm:"type:decimal(10,2)"`
	ChangeAmount   decimal.Decimal `gorm:"type:decimal(10,2)"`
	PaidBy         uuid.UUID       `gorm:"type:uuid"`
	PaidAt         time.Time       `gorm:"index"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database
// representation. The change amount is stored redundantly for the read
// models; RestorePayment re-derives it on the way back.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		Ticket:         aggregate.Ticket().String(),
		Method:         aggregate.Method().String(),
		Amount:         aggregate.Amount().Decimal(),
		ReceivedAmount: aggregate.Received().Decimal(),
		ChangeAmount:   aggregate.Change().Decimal(),
		PaidBy:         aggregate.PaidBy().Bytes(),
		PaidAt:         aggregate.PaidAt(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	ticket, err := payment.TicketNumberFromString(dto.Ticket)
	if err != nil {
		return nil, err
	}

	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	paidBy, err := kernel.UUIDFromBytes(dto.PaidBy[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		ticket,
		method,
		kernel.MoneyFromDecimal(dto.Amount),
		kernel.MoneyFromDecimal(dto.ReceivedAmount),
		paidBy,
		dto.PaidAt,
	)
}
