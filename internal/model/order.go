package model

import (
	"encoding/json"
	"time"
)

// Order is the document persisted in the hosted document store after a
// successful charge. It is never mutated by this service once created;
// status transitions happen downstream.
type Order struct {
	OrderID         string          `json:"orderId"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone,omitempty"`
	ShippingAddress string          `json:"shippingAddress"`
	BillingAddress  string          `json:"billingAddress,omitempty"`
	OrderDetails    json.RawMessage `json:"orderDetails,omitempty"`
	Amount          string          `json:"amount"`
	CreationTime    time.Time       `json:"creationTime"`
	Status          string          `json:"status"`
	TransactionID   string          `json:"transactionId"`
}

// ReconciliationRecord is a local journal row written when a charge succeeded
// but the order document could not be persisted. Support resolves these by
// hand against the gateway; the charge is never voided automatically.
type ReconciliationRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       string    `gorm:"size:64;index;not null" json:"orderId"`
	TransactionID string    `gorm:"size:64;index;not null" json:"transactionId"`
	Email         string    `gorm:"size:128" json:"email"`
	Amount        string    `gorm:"size:32" json:"amount"`
	Reason        string    `json:"reason"`
	Resolved      bool      `gorm:"index;not null;default:false" json:"resolved"`
	CreatedAt     time.Time `json:"createdAt"`
}
