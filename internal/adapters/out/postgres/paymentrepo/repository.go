package paymentrepo

import (
	"context"
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/payment"
	"comanda/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment to the ledger. A second payment for the same order
// violates the unique index on order_id and is reported as an
// AlreadyPaidError. Requires the connection to be opened with
// TranslateError so GORM maps the constraint violation.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyPaidErrorWithCause(aggregate.OrderID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrderID retrieves the payment registered for an order.
func (r *GormPaymentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order_id", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsForOrder reports whether the order already has a payment.
func (r *GormPaymentRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&PaymentDTO{}).Where("order_id = ?", orderID.Bytes()).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetByTicket retrieves a payment by its receipt ticket number.
func (r *GormPaymentRepository) GetByTicket(ctx context.Context, ticket payment.TicketNumber) (*payment.Payment, error) {
	if err := ticket.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	err := r.db.WithContext(ctx).First(&dto, "ticket = ?", ticket.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ticket_number", ticket.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsTicket reports whether the ticket number is already taken.
func (r *GormPaymentRepository) ExistsTicket(ctx context.Context, ticket payment.TicketNumber) (bool, error) {
	if err := ticket.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&PaymentDTO{}).Where("ticket = ?", ticket.String()).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
