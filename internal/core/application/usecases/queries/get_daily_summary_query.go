package queries

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/guard"
)

var ErrGetDailySummaryQueryIsNotConstructed = errors.New(
	"GetDailySummaryQuery must be created via NewGetDailySummaryQuery constructor",
)

// GetDailySummaryQuery retrieves the cashbox summary for one calendar day:
// how many orders were settled, the money taken, and the breakdown by
// payment method and fulfilment channel.
//
// Example:
//
//	query, err := NewGetDailySummaryQuery(time.Now())
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetDailySummaryQueryHandler(db)
//	summary, err := handler.Handle(ctx, query)
type GetDailySummaryQuery struct {
	day time.Time

	guard guard.ConstructorGuard
}

// NewGetDailySummaryQuery creates a cashbox summary query for the calendar
// day containing the given time, in that time's location.
func NewGetDailySummaryQuery(day time.Time) (GetDailySummaryQuery, error) {
	if day.IsZero() {
		return GetDailySummaryQuery{}, errors.New("day is required")
	}

	year, month, date := day.Date()
	return GetDailySummaryQuery{
		day:   time.Date(year, month, date, 0, 0, 0, 0, day.Location()),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDailySummaryQueryIsNotConstructed if validation fails.
func (q GetDailySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySummaryQueryIsNotConstructed)
}

// Day returns the start of the summarized calendar day.
func (q GetDailySummaryQuery) Day() time.Time {
	return q.day
}

// SettledPayment is one settled payment as consumed by the summary
// aggregation: the method, the channel of the paid order, and the amount.
type SettledPayment struct {
	Method  string
	Channel string
	Amount  kernel.Money
}

// SummaryBucket is one slice of the breakdown: how many payments fell into
// the bucket and how much money they carried.
type SummaryBucket struct {
	Count  int
	Amount kernel.Money
}

// GetDailySummaryQueryResponse represents one day of cashbox activity.
type GetDailySummaryQueryResponse struct {
	Day        time.Time
	OrdersPaid int
	Total      kernel.Money
	ByMethod   map[string]SummaryBucket
	ByChannel  map[string]SummaryBucket
}

// BuildDailySummary aggregates settled payments into the daily summary
// shape. Pure function, separated from the SQL so the aggregation rules
// are unit-testable.
func BuildDailySummary(day time.Time, payments []SettledPayment) GetDailySummaryQueryResponse {
	summary := GetDailySummaryQueryResponse{
		Day:       day,
		Total:     kernel.ZeroMoney(),
		ByMethod:  make(map[string]SummaryBucket),
		ByChannel: make(map[string]SummaryBucket),
	}

	for _, p := range payments {
		summary.OrdersPaid++
		summary.Total = summary.Total.Add(p.Amount)

		method := summary.ByMethod[p.Method]
		if method.Count == 0 {
			method.Amount = kernel.ZeroMoney()
		}
		method.Count++
		method.Amount = method.Amount.Add(p.Amount)
		summary.ByMethod[p.Method] = method

		channel := summary.ByChannel[p.Channel]
		if channel.Count == 0 {
			channel.Amount = kernel.ZeroMoney()
		}
		channel.Count++
		channel.Amount = channel.Amount.Add(p.Amount)
		summary.ByChannel[p.Channel] = channel
	}

	return summary
}
