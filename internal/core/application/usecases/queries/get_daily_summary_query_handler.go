package queries

import (
	"context"
	"time"

	"comanda/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetDailySummaryQueryHandler retrieves one day of settled payments from
// the database and aggregates them into the cashbox summary.
type GetDailySummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetDailySummaryQueryHandler creates a handler for cashbox summary queries.
// Requires a GORM database connection for query execution.
func NewGetDailySummaryQueryHandler(db *gorm.DB) GetDailySummaryQueryHandler {
	return GetDailySummaryQueryHandler{db: db}
}

// Handle executes the query for the day the query was built for. Payments
// are attributed to the day they were registered.
func (h GetDailySummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDailySummaryQuery,
) (GetDailySummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDailySummaryQueryResponse{}, err
	}

	from := query.Day()
	to := from.Add(24 * time.Hour)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.method,
			o.channel,
			p.amount
		FROM payments p
		JOIN orders o ON o.id = p.order_id
		WHERE p.paid_at >= ? AND p.paid_at < ?
	`, from, to).Rows()
	if err != nil {
		return GetDailySummaryQueryResponse{}, err
	}
	defer rows.Close()

	payments := make([]SettledPayment, 0)
	for rows.Next() {
		var settled SettledPayment
		var amount string

		if err = rows.Scan(&settled.Method, &settled.Channel, &amount); err != nil {
			return GetDailySummaryQueryResponse{}, err
		}

		if settled.Amount, err = kernel.NewMoneyFromString(amount); err != nil {
			return GetDailySummaryQueryResponse{}, err
		}

		payments = append(payments, settled)
	}

	if err = rows.Err(); err != nil {
		return GetDailySummaryQueryResponse{}, err
	}

	return BuildDailySummary(from, payments), nil
}
