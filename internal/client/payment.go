package client

import "context"

// ChargeResult is what a processor reports back for a captured charge.
type ChargeResult struct {
	// ChargeID is the processor's opaque reference for the charge.
	ChargeID string
	// Amount is the processor-confirmed amount in minor currency units.
	Amount int64
}

// PaymentClient charges a one-time payment source for an exact amount.
// Amount is in minor currency units and is always computed server-side.
type PaymentClient interface {
	Charge(ctx context.Context, amount int64, currency, source string) (*ChargeResult, error)
}
