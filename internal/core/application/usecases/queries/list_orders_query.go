package queries

import (
	"errors"
	"fmt"
	"time"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders filtered by status, channel, and
// creation date range. All filters are optional; an empty query lists
// everything, newest first.
//
// Example:
//
//	query, err := NewListOrdersQuery([]string{"pending", "preparing"}, "dine_in", nil, nil)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	statuses []string
	channel  string
	from     *time.Time
	to       *time.Time

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a filtered order listing query. Statuses and
// channel must be valid wire names when given; the range bounds, when both
// present, must be ordered.
func NewListOrdersQuery(statuses []string, channel string, from, to *time.Time) (ListOrdersQuery, error) {
	for _, s := range statuses {
		if _, err := order.StatusFromString(s); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if channel != "" {
		if _, err := order.ChannelFromString(channel); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if from != nil && to != nil && to.Before(*from) {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("date_range",
			fmt.Errorf("%s is before %s", to.Format(time.RFC3339), from.Format(time.RFC3339)))
	}

	return ListOrdersQuery{
		statuses: append([]string(nil), statuses...),
		channel:  channel,
		from:     from,
		to:       to,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Statuses returns the status filter; empty means all statuses.
func (q ListOrdersQuery) Statuses() []string {
	return append([]string(nil), q.statuses...)
}

// Channel returns the channel filter; empty means all channels.
func (q ListOrdersQuery) Channel() string {
	return q.channel
}

// From returns the inclusive lower bound on creation time, nil when unset.
func (q ListOrdersQuery) From() *time.Time {
	return q.from
}

// To returns the exclusive upper bound on creation time, nil when unset.
func (q ListOrdersQuery) To() *time.Time {
	return q.to
}
