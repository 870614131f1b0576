package order

import (
	"fmt"

	"comanda/internal/pkg/errs"
)

// Channel describes how an order will be fulfilled.
type Channel int

const (
	// ChannelUnknown represents an invalid or undefined channel.
	ChannelUnknown Channel = iota

	// DineIn is served at a table in the restaurant.
	DineIn

	// Takeout is picked up at the counter.
	Takeout

	// Delivery is sent out to the customer.
	Delivery
)

func channelStrings() map[Channel]string {
	return map[Channel]string{
		DineIn:   "dine_in",
		Takeout:  "takeout",
		Delivery: "delivery",
	}
}

// ChannelFromString parses the wire representation of a channel.
// Only exact lowercase names are accepted.
func ChannelFromString(s string) (Channel, error) {
	for c, str := range channelStrings() {
		if str == s {
			return c, nil
		}
	}
	return ChannelUnknown, errs.NewValueIsInvalidErrorWithCause("channel",
		fmt.Errorf("%q is not a valid channel", s))
}

// String returns the wire name of the channel, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (c Channel) String() string {
	if s, ok := channelStrings()[c]; ok {
		return s
	}
	return "unknown"
}

// Validate returns an error for values outside the defined channels.
func (c Channel) Validate() error {
	if _, ok := channelStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("channel",
			fmt.Errorf("%d is not a valid channel", c))
	}
	return nil
}
