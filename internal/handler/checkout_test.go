package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iswarpatel123/braintree-render/internal/client"
	"github.com/iswarpatel123/braintree-render/internal/dto"
	"github.com/iswarpatel123/braintree-render/internal/model"
	"github.com/iswarpatel123/braintree-render/internal/service"
)

type fakeCheckoutService struct {
	processFunc func(ctx context.Context, req *dto.CheckoutRequest) (*service.CheckoutResult, error)
	tokenFunc   func(ctx context.Context) (string, error)
	getFunc     func(ctx context.Context, orderID string) (*model.Order, error)
	listFunc    func(ctx context.Context) ([]*model.ReconciliationRecord, error)
}

func (f *fakeCheckoutService) ProcessCheckout(ctx context.Context, req *dto.CheckoutRequest) (*service.CheckoutResult, error) {
	if f.processFunc != nil {
		return f.processFunc(ctx, req)
	}
	return &service.CheckoutResult{OrderID: "ORD-1", TransactionID: "TX1"}, nil
}

func (f *fakeCheckoutService) GenerateClientToken(ctx context.Context) (string, error) {
	if f.tokenFunc != nil {
		return f.tokenFunc(ctx)
	}
	return "client-token", nil
}

func (f *fakeCheckoutService) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, orderID)
	}
	return nil, client.ErrOrderNotFound
}

func (f *fakeCheckoutService) ListUnresolved(ctx context.Context) ([]*model.ReconciliationRecord, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx)
	}
	return nil, nil
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) dto.CheckoutResponse {
	t.Helper()

	var resp dto.CheckoutResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestPing(t *testing.T) {
	h := NewCheckoutHandler(&fakeCheckoutService{})
	c, rec := newContext(t, http.MethodGet, "/ping", "")

	require.NoError(t, h.Ping(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.PingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "pong", resp.Message)
}

func TestClientToken_Success(t *testing.T) {
	h := NewCheckoutHandler(&fakeCheckoutService{})
	c, rec := newContext(t, http.MethodGet, "/client_token", "")

	require.NoError(t, h.ClientToken(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ClientTokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "client-token", resp.ClientToken)
}

func TestClientToken_Failure(t *testing.T) {
	h := NewCheckoutHandler(&fakeCheckoutService{
		tokenFunc: func(ctx context.Context) (string, error) {
			return "", errors.New("gateway unreachable")
		},
	})
	c, rec := newContext(t, http.MethodGet, "/client_token", "")

	require.NoError(t, h.ClientToken(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp dto.ClientTokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "Failed to generate client token", resp.Message)
	assert.Equal(t, "gateway unreachable", resp.Error)
}

func TestCheckout_MissingFields(t *testing.T) {
	h := NewCheckoutHandler(&fakeCheckoutService{
		processFunc: func(ctx context.Context, req *dto.CheckoutRequest) (*service.CheckoutResult, error) {
			return nil, service.ErrMissingFields
		},
	})
	c, rec := newContext(t, http.MethodPost, "/checkout", `{"name":"Ada"}`)

	require.NoError(t, h.Checkout(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.OK)
	assert.Equal(t, "Missing required fields", resp.Message)
}

func TestCheckout_Success(t *testing.T) {
	h := NewCheckoutHandler(&fakeCheckoutService{})
	c, rec := newContext(t, http.MethodPost, "/checkout", `{"amount":"49.99"}`)

	require.NoError(t, h.Checkout(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.OK)
	assert.Equal(t, "ORD-1", resp.OrderID)
	assert.Equal(t, "TX1", resp.TransactionID)
}

func TestCheckout_Declined(t *testing.T) {
	h := NewCheckoutHandler(&fakeCheckoutService{
		processFunc: func(ctx context.Context, req *dto.CheckoutRequest) (*service.CheckoutResult, error) {
			return nil, &service.DeclineError{Status: "Declined"}
		},
	})
	c, rec := newContext(t, http.MethodPost, "/checkout", `{"amount":"49.99"}`)

	require.NoError(t, h.Checkout(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.OK)
	assert.Equal(t, "Declined", resp.Message)
}

func TestCheckout_PersistenceFailure(t *testing.T) {
	h := NewCheckoutHandler(&fakeCheckoutService{
		processFunc: func(ctx context.Context, req *dto.CheckoutRequest) (*service.CheckoutResult, error) {
			return nil, &service.PersistenceError{
				TransactionID: "TX1",
				Err:           errors.New("document store unavailable"),
			}
		},
	})
	c, rec := newContext(t, http.MethodPost, "/checkout", `{"amount":"49.99"}`)

	require.NoError(t, h.Checkout(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Message, "contact support")
	assert.Equal(t, "TX1", resp.TransactionID)
}

func TestCheckout_ChargeTransportFailure(t *testing.T) {
	h := NewCheckoutHandler(&fakeCheckoutService{
		processFunc: func(ctx context.Context, req *dto.CheckoutRequest) (*service.CheckoutResult, error) {
			return nil, errors.New("gateway unreachable")
		},
	})
	c, rec := newContext(t, http.MethodPost, "/checkout", `{"amount":"49.99"}`)

	require.NoError(t, h.Checkout(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.OK)
	assert.Equal(t, "gateway unreachable", resp.Error)
}

func TestGetOrder_NotFound(t *testing.T) {
	h := NewCheckoutHandler(&fakeCheckoutService{})
	c, rec := newContext(t, http.MethodGet, "/orders/ORD-MISSING", "")
	c.SetParamNames("orderID")
	c.SetParamValues("ORD-MISSING")

	require.NoError(t, h.GetOrder(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrder_Success(t *testing.T) {
	h := NewCheckoutHandler(&fakeCheckoutService{
		getFunc: func(ctx context.Context, orderID string) (*model.Order, error) {
			return &model.Order{OrderID: orderID, Status: "Pending"}, nil
		},
	})
	c, rec := newContext(t, http.MethodGet, "/orders/ORD-1", "")
	c.SetParamNames("orderID")
	c.SetParamValues("ORD-1")

	require.NoError(t, h.GetOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OK    bool        `json:"ok"`
		Order model.Order `json:"order"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "ORD-1", resp.Order.OrderID)
}

func TestListReconciliation(t *testing.T) {
	h := NewCheckoutHandler(&fakeCheckoutService{
		listFunc: func(ctx context.Context) ([]*model.ReconciliationRecord, error) {
			return []*model.ReconciliationRecord{
				{OrderID: "ORD-1", TransactionID: "TX1"},
			}, nil
		},
	})
	c, rec := newContext(t, http.MethodGet, "/reconciliation", "")

	require.NoError(t, h.ListReconciliation(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OK      bool                          `json:"ok"`
		Records []*model.ReconciliationRecord `json:"records"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.OK)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "TX1", resp.Records[0].TransactionID)
}
