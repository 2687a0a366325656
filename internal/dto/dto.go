package dto

import "encoding/json"

// CheckoutRequest is the payload posted by the storefront drop-in form.
// Name, email, shipping address, order details, nonce and amount are required;
// the rest is optional.
type CheckoutRequest struct {
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone,omitempty"`
	ShippingAddress string          `json:"shippingAddress"`
	BillingAddress  string          `json:"billingAddress,omitempty"`
	OrderDetails    json.RawMessage `json:"orderDetails,omitempty"`
	Nonce           string          `json:"payment_method_nonce"`
	Amount          string          `json:"amount"`
	DeviceData      string          `json:"deviceData,omitempty"`
}

// HasRequiredFields reports whether every field the orchestrator needs before
// touching a remote service is present.
func (r *CheckoutRequest) HasRequiredFields() bool {
	return r.Name != "" &&
		r.Email != "" &&
		r.ShippingAddress != "" &&
		len(r.OrderDetails) > 0 &&
		r.Nonce != "" &&
		r.Amount != ""
}

type CheckoutResponse struct {
	OK            bool   `json:"ok"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
	OrderID       string `json:"orderId,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}

type ClientTokenResponse struct {
	OK          bool   `json:"ok"`
	ClientToken string `json:"clientToken,omitempty"`
	Message     string `json:"message,omitempty"`
	Error       string `json:"error,omitempty"`
}

type PingResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
