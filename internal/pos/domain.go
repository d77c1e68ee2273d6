package pos

import "time"

// PaymentMethod is the closed set of payment options at the register.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "CASH"
	PaymentQRIS  PaymentMethod = "QRIS"
	PaymentDebit PaymentMethod = "DEBIT"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentQRIS, PaymentDebit:
		return true
	}
	return false
}

// Product is a sellable catalog entry. Price is in the smallest currency
// unit (rupiah) so all totals stay in integer arithmetic.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Image    string `json:"image,omitempty"`
}

// CartLine is a product snapshot plus the quantity selected. The snapshot
// is a copy, not a reference into the catalog, so a completed transaction
// keeps the items exactly as they were sold.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price times quantity for this line.
func (l CartLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// Transaction is an immutable record of one completed sale.
// ReceivedAmount and ChangeAmount are meaningful for cash payments; for
// QRIS and debit, received equals the total and change is zero.
type Transaction struct {
	ID             string        `json:"id"`
	Items          []CartLine    `json:"items"`
	Total          int64         `json:"total"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	Timestamp      time.Time     `json:"timestamp"`
	ReceivedAmount int64         `json:"received_amount"`
	ChangeAmount   int64         `json:"change_amount"`
}
