package client

import (
	"context"
	"fmt"

	"github.com/braintree-go/braintree-go"
	"github.com/shopspring/decimal"

	"github.com/iswarpatel123/braintree-render/internal/config"
)

// --- INTERFACE ---

// ChargeClient is the capability the orchestrator needs from the payment
// gateway. A transport-level problem comes back as an error; a decline comes
// back as a result with Success false so the caller can tell the two apart.
type ChargeClient interface {
	// GenerateClientToken returns a token the storefront drop-in form uses
	// to tokenize the customer's payment method.
	GenerateClientToken(ctx context.Context) (string, error)

	// Charge submits a sale for the given amount and nonce, settling
	// immediately on success.
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
}

type ChargeRequest struct {
	Amount     string
	Nonce      string
	DeviceData string
}

type ChargeResult struct {
	Success       bool
	TransactionID string
	Status        string
}

// --- IMPLEMENTATION ---

type braintreeClientImpl struct {
	gateway *braintree.Braintree
}

// NewBraintreeClient initializes the Braintree SDK gateway
func NewBraintreeClient(cfg *config.Braintree) ChargeClient {
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

// --- METHODS ---

func (c *braintreeClientImpl) GenerateClientToken(ctx context.Context) (string, error) {
	token, err := c.gateway.ClientToken().Generate(ctx)
	if err != nil {
		return "", fmt.Errorf("generate client token: %w", err)
	}
	return token, nil
}

func (c *braintreeClientImpl) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error) {
	decAmount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount format: %w", err)
	}

	// Braintree expects NewDecimal(unscaled, scale). For 2 decimal places
	// (like USD): "50.00" * 100 = 5000 -> braintree.NewDecimal(5000, 2)
	cents := decAmount.Mul(decimal.NewFromInt(100)).IntPart()
	btAmount := braintree.NewDecimal(cents, 2)

	txReq := &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             btAmount,
		PaymentMethodNonce: req.Nonce,
		DeviceData:         req.DeviceData,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true, // Captures the funds immediately
		},
	}

	tx, err := c.gateway.Transaction().Create(ctx, txReq)
	if err != nil {
		return nil, fmt.Errorf("transaction creation failed: %w", err)
	}

	switch tx.Status {
	case braintree.TransactionStatusProcessorDeclined,
		braintree.TransactionStatusGatewayRejected,
		braintree.TransactionStatusFailed:
		status := tx.ProcessorResponseText
		if status == "" {
			status = string(tx.Status)
		}
		return &ChargeResult{
			Success:       false,
			TransactionID: tx.Id,
			Status:        status,
		}, nil
	}

	return &ChargeResult{
		Success:       true,
		TransactionID: tx.Id,
		Status:        string(tx.Status),
	}, nil
}
