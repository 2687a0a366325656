package service

import (
	"context"
	"log"
	"time"

	"github.com/iswarpatel123/braintree-render/internal/client"
	"github.com/iswarpatel123/braintree-render/internal/dto"
	"github.com/iswarpatel123/braintree-render/internal/model"
	"github.com/iswarpatel123/braintree-render/internal/orderid"
	"github.com/iswarpatel123/braintree-render/internal/repository"
	"github.com/iswarpatel123/braintree-render/internal/retry"
)

type CheckoutService interface {
	// ProcessCheckout runs the charge-then-persist sequence for a validated
	// request. Failure modes come back as the typed errors in this package.
	ProcessCheckout(ctx context.Context, req *dto.CheckoutRequest) (*CheckoutResult, error)

	GenerateClientToken(ctx context.Context) (string, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	ListUnresolved(ctx context.Context) ([]*model.ReconciliationRecord, error)
}

type CheckoutResult struct {
	OrderID       string
	TransactionID string
}

type checkoutServiceImpl struct {
	chargeClient client.ChargeClient
	orderStore   client.OrderStore
	reconRepo    repository.ReconciliationRepository
	retryPolicy  retry.Policy
}

func NewCheckoutService(
	chargeClient client.ChargeClient,
	orderStore client.OrderStore,
	reconRepo repository.ReconciliationRepository,
	retryPolicy retry.Policy,
) CheckoutService {
	return &checkoutServiceImpl{
		chargeClient: chargeClient,
		orderStore:   orderStore,
		reconRepo:    reconRepo,
		retryPolicy:  retryPolicy,
	}
}

func (s *checkoutServiceImpl) ProcessCheckout(ctx context.Context, req *dto.CheckoutRequest) (*CheckoutResult, error) {
	if !req.HasRequiredFields() {
		return nil, ErrMissingFields
	}

	// A client disconnect must not abort an in-flight charge or persist
	// attempt; once we start talking to the gateway we finish the sequence.
	ctx = context.WithoutCancel(ctx)

	// A decline is returned as an error here, so it goes through the same
	// retry sequence as a transport failure before being surfaced.
	charge, err := retry.Do(ctx, s.retryPolicy, func(ctx context.Context) (*client.ChargeResult, error) {
		result, err := s.chargeClient.Charge(ctx, &client.ChargeRequest{
			Amount:     req.Amount,
			Nonce:      req.Nonce,
			DeviceData: req.DeviceData,
		})
		if err != nil {
			return nil, err
		}
		if !result.Success {
			return nil, &DeclineError{Status: result.Status}
		}
		return result, nil
	})
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		OrderID:         orderid.New(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		OrderDetails:    req.OrderDetails,
		Amount:          req.Amount,
		CreationTime:    time.Now().UTC(),
		Status:          "Pending",
		TransactionID:   charge.TransactionID,
	}

	_, err = retry.Do(ctx, s.retryPolicy, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.orderStore.CreateOrder(ctx, order)
	})
	if err != nil {
		s.journalUnreconciled(ctx, order, err)
		return nil, &PersistenceError{
			TransactionID: charge.TransactionID,
			Err:           err,
		}
	}

	return &CheckoutResult{
		OrderID:       order.OrderID,
		TransactionID: charge.TransactionID,
	}, nil
}

// journalUnreconciled records a settled charge whose order document was lost.
// Best effort: a journal failure is logged and the caller still gets the
// persistence error with the transaction id.
func (s *checkoutServiceImpl) journalUnreconciled(ctx context.Context, order *model.Order, cause error) {
	record := &model.ReconciliationRecord{
		OrderID:       order.OrderID,
		TransactionID: order.TransactionID,
		Email:         order.Email,
		Amount:        order.Amount,
		Reason:        cause.Error(),
	}
	if err := s.reconRepo.Create(ctx, record); err != nil {
		log.Printf("journal unreconciled charge %s: %v", order.TransactionID, err)
	}
}

func (s *checkoutServiceImpl) GenerateClientToken(ctx context.Context) (string, error) {
	return retry.Do(ctx, s.retryPolicy, func(ctx context.Context) (string, error) {
		return s.chargeClient.GenerateClientToken(ctx)
	})
}

func (s *checkoutServiceImpl) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	return s.orderStore.GetOrder(ctx, orderID)
}

func (s *checkoutServiceImpl) ListUnresolved(ctx context.Context) ([]*model.ReconciliationRecord, error) {
	return s.reconRepo.ListUnresolved(ctx)
}
