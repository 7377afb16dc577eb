package client

import (
	"context"
	"fmt"

	"github.com/braintree-go/braintree-go"

	"github.com/miteshrathod09/sick-fits/internal/config"
)

type braintreeClientImpl struct {
	gateway *braintree.Braintree
}

// NewBraintreeClient initializes the Braintree SDK gateway as an alternate
// charge backend.
func NewBraintreeClient(cfg *config.Braintree) PaymentClient {
	env := braintree.Sandbox
	if cfg.Environment == "production" {
		env = braintree.Production
	}

	gateway := braintree.New(
		env,
		cfg.MerchantID,
		cfg.PublicKey,
		cfg.PrivateKey,
	)

	return &braintreeClientImpl{
		gateway: gateway,
	}
}

func (c *braintreeClientImpl) Charge(ctx context.Context, amount int64, currency, source string) (*ChargeResult, error) {
	// Braintree wants a scaled decimal: 2200 minor units -> "22.00".
	btAmount := braintree.NewDecimal(amount, 2)

	req := &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             btAmount,
		PaymentMethodNonce: source,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	}

	tx, err := c.gateway.Transaction().Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("transaction creation failed: %w", err)
	}

	if tx.Status == braintree.TransactionStatusProcessorDeclined {
		return nil, fmt.Errorf("transaction declined by processor: %s", tx.ProcessorResponseText)
	}

	return &ChargeResult{
		ChargeID: tx.Id,
		Amount:   amount,
	}, nil
}
