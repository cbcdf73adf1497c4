package domain

import "errors"

// ErrPaymentChannelsExhausted is returned when every payment channel in the
// pool is already bound to a chat. There is no automatic retry: freeing or
// adding channels requires operator action.
var ErrPaymentChannelsExhausted = errors.New("no free payment channel available")
