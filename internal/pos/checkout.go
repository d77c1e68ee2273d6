package pos

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CheckoutState is the position of a sale in the checkout flow.
type CheckoutState string

const (
	StateIdle            CheckoutState = "IDLE"
	StateReview          CheckoutState = "REVIEW"
	StateAwaitingPayment CheckoutState = "AWAITING_PAYMENT"
	StateCompleted       CheckoutState = "COMPLETED"
	StateAborted         CheckoutState = "ABORTED"
)

// Checkout walks one sale from cart review to a recorded transaction.
// Completing a sale snapshots the cart into a Transaction, decrements
// catalog stock and appends to the ledger in one step.
type Checkout struct {
	catalog *Catalog
	cart    *Cart
	ledger  *Ledger

	state    CheckoutState
	method   PaymentMethod
	received int64
}

// NewCheckout creates a checkout over the given catalog, cart and ledger.
func NewCheckout(catalog *Catalog, cart *Cart, ledger *Ledger) *Checkout {
	return &Checkout{
		catalog: catalog,
		cart:    cart,
		ledger:  ledger,
		state:   StateIdle,
	}
}

// State returns the current checkout state.
func (co *Checkout) State() CheckoutState {
	return co.state
}

// Method returns the selected payment method, empty if none yet.
func (co *Checkout) Method() PaymentMethod {
	return co.method
}

// ReceivedAmount returns the cash amount entered so far.
func (co *Checkout) ReceivedAmount() int64 {
	return co.received
}

// Begin moves the sale into review. The cart must be non-empty. Any
// payment selection from a previous sale is discarded.
func (co *Checkout) Begin() error {
	if co.cart.Len() == 0 {
		return ErrEmptyCart
	}
	co.state = StateReview
	co.method = ""
	co.received = 0
	return nil
}

// SelectPaymentMethod picks one of CASH, QRIS or DEBIT. Switching away
// from CASH discards any received amount already entered.
func (co *Checkout) SelectPaymentMethod(m PaymentMethod) error {
	if co.state != StateReview && co.state != StateAwaitingPayment {
		return fmt.Errorf("%w: no sale in progress", ErrInvalidTransition)
	}
	if !m.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, string(m))
	}
	if m != PaymentCash {
		co.received = 0
	}
	co.method = m
	co.state = StateAwaitingPayment
	return nil
}

// SetReceivedAmount records the cash handed over. Only valid while
// awaiting payment with CASH selected.
func (co *Checkout) SetReceivedAmount(amount int64) error {
	if co.state != StateAwaitingPayment || co.method != PaymentCash {
		return fmt.Errorf("%w: received amount applies to cash payment only", ErrInvalidTransition)
	}
	if amount < 0 {
		return fmt.Errorf("%w: received amount must not be negative", ErrValidation)
	}
	co.received = amount
	return nil
}

// Total returns the amount due, recomputed from the live cart lines so it
// can never go stale against quantity changes made during review.
func (co *Checkout) Total() int64 {
	return co.cart.Subtotal()
}

// ComputeChange returns the change due for the current payment entry.
// Non-cash methods always yield zero change.
func (co *Checkout) ComputeChange() int64 {
	if co.method != PaymentCash {
		return 0
	}
	change := co.received - co.Total()
	if change < 0 {
		return 0
	}
	return change
}

// Complete commits the sale: builds an immutable transaction from the
// cart, decrements catalog stock per line, appends to the ledger and
// clears the cart. A cash payment below the total fails with
// ErrInsufficientPayment and leaves the state at AWAITING_PAYMENT so the
// operator can correct the input.
func (co *Checkout) Complete() (Transaction, error) {
	if co.state != StateAwaitingPayment {
		return Transaction{}, fmt.Errorf("%w: no payment method selected", ErrInvalidTransition)
	}
	if co.cart.Len() == 0 {
		return Transaction{}, ErrEmptyCart
	}

	total := co.cart.Subtotal()
	received := total
	var change int64
	if co.method == PaymentCash {
		if co.received < total {
			return Transaction{}, fmt.Errorf("%w: received %d, total %d", ErrInsufficientPayment, co.received, total)
		}
		received = co.received
		change = co.received - total
	}

	trx := Transaction{
		ID:             "TRX-" + uuid.NewString(),
		Items:          co.cart.Lines(),
		Total:          total,
		PaymentMethod:  co.method,
		Timestamp:      time.Now(),
		ReceivedAmount: received,
		ChangeAmount:   change,
	}

	for _, line := range trx.Items {
		// The product may have been removed from the catalog since it was
		// added to the cart; the sale still stands on its snapshot.
		if _, err := co.catalog.Get(line.ID); err != nil {
			continue
		}
		if err := co.catalog.DecrementStock(line.ID, line.Quantity); err != nil {
			return Transaction{}, err
		}
	}

	co.ledger.Record(trx)
	co.cart.Clear()
	co.state = StateCompleted
	co.method = ""
	co.received = 0
	return trx, nil
}

// Abort discards the in-progress payment selection and returns to
// review. The cart is untouched.
func (co *Checkout) Abort() error {
	if co.state != StateReview && co.state != StateAwaitingPayment {
		return fmt.Errorf("%w: no sale in progress", ErrInvalidTransition)
	}
	co.state = StateReview
	co.method = ""
	co.received = 0
	return nil
}

// Cancel abandons the sale entirely. Used when the operator empties the
// cart mid-checkout.
func (co *Checkout) Cancel() {
	if co.state == StateReview || co.state == StateAwaitingPayment {
		co.state = StateAborted
	}
	co.method = ""
	co.received = 0
}
