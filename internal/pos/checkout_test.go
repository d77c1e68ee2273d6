package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// register builds a catalog with one product and wires a checkout over a
// fresh cart and ledger.
func register(t *testing.T, price int64, stock int) (*Catalog, *Cart, *Ledger, *Checkout, Product) {
	t.Helper()
	catalog := NewCatalog()
	p, err := catalog.AddProduct(ProductSpec{Name: "Nasi Goreng Special", Price: price, Category: "Makanan", Stock: stock})
	require.NoError(t, err)

	cart := NewCart()
	ledger := NewLedger()
	return catalog, cart, ledger, NewCheckout(catalog, cart, ledger), p
}

func TestCheckoutCashExactPayment(t *testing.T) {
	catalog, cart, ledger, co, p := register(t, 25000, 2)

	require.NoError(t, cart.AddItem(p, 1))
	require.NoError(t, cart.AddItem(p, 1))
	assert.Equal(t, int64(50000), cart.Subtotal())

	require.NoError(t, co.Begin())
	require.NoError(t, co.SelectPaymentMethod(PaymentCash))
	require.NoError(t, co.SetReceivedAmount(50000))

	trx, err := co.Complete()
	require.NoError(t, err)
	assert.Equal(t, int64(50000), trx.Total)
	assert.Equal(t, int64(50000), trx.ReceivedAmount)
	assert.Equal(t, int64(0), trx.ChangeAmount)
	require.Len(t, trx.Items, 1)
	assert.Equal(t, 2, trx.Items[0].Quantity)

	got, err := catalog.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)
	assert.Equal(t, 0, cart.Len(), "cart must be empty after completion")
	assert.Equal(t, 1, ledger.Count())
	assert.Equal(t, StateCompleted, co.State())
}

func TestCheckoutCashWithChange(t *testing.T) {
	catalog, cart, _, co, p := register(t, 25000, 2)

	require.NoError(t, cart.AddItem(p, 1))
	require.NoError(t, co.Begin())
	require.NoError(t, co.SelectPaymentMethod(PaymentCash))
	require.NoError(t, co.SetReceivedAmount(30000))
	assert.Equal(t, int64(5000), co.ComputeChange())

	trx, err := co.Complete()
	require.NoError(t, err)
	assert.Equal(t, int64(25000), trx.Total)
	assert.Equal(t, int64(30000), trx.ReceivedAmount)
	assert.Equal(t, int64(5000), trx.ChangeAmount)

	got, err := catalog.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock)
}

func TestCheckoutInsufficientCashKeepsStateAndStock(t *testing.T) {
	catalog, cart, ledger, co, p := register(t, 25000, 2)

	require.NoError(t, cart.AddItem(p, 2))
	require.NoError(t, co.Begin())
	require.NoError(t, co.SelectPaymentMethod(PaymentCash))
	require.NoError(t, co.SetReceivedAmount(30000))

	_, err := co.Complete()
	assert.ErrorIs(t, err, ErrInsufficientPayment)

	assert.Equal(t, StateAwaitingPayment, co.State(), "state must stay at awaiting payment for correction")
	assert.Equal(t, 1, cart.Len(), "cart must be untouched")
	got, catErr := catalog.Get(p.ID)
	require.NoError(t, catErr)
	assert.Equal(t, 2, got.Stock, "stock must be untouched")
	assert.Equal(t, 0, ledger.Count())

	// Correcting the amount lets the same sale finish.
	require.NoError(t, co.SetReceivedAmount(50000))
	_, err = co.Complete()
	require.NoError(t, err)
	assert.Equal(t, 1, ledger.Count())
}

func TestCheckoutNonCashHasNoChange(t *testing.T) {
	_, cart, _, co, p := register(t, 18000, 5)

	require.NoError(t, cart.AddItem(p, 2))
	require.NoError(t, co.Begin())
	require.NoError(t, co.SelectPaymentMethod(PaymentQRIS))

	assert.ErrorIs(t, co.SetReceivedAmount(50000), ErrInvalidTransition, "received amount is cash-only")
	assert.Equal(t, int64(0), co.ComputeChange())

	trx, err := co.Complete()
	require.NoError(t, err)
	assert.Equal(t, int64(36000), trx.Total)
	assert.Equal(t, trx.Total, trx.ReceivedAmount, "non-cash received is defined as the total")
	assert.Equal(t, int64(0), trx.ChangeAmount)
	assert.Equal(t, PaymentQRIS, trx.PaymentMethod)
}

func TestCheckoutSwitchingAwayFromCashResetsReceived(t *testing.T) {
	_, cart, _, co, p := register(t, 10000, 5)

	require.NoError(t, cart.AddItem(p, 1))
	require.NoError(t, co.Begin())
	require.NoError(t, co.SelectPaymentMethod(PaymentCash))
	require.NoError(t, co.SetReceivedAmount(20000))

	require.NoError(t, co.SelectPaymentMethod(PaymentDebit))
	assert.Equal(t, int64(0), co.ReceivedAmount())
}

func TestCheckoutTotalRecomputedAtCompletion(t *testing.T) {
	_, cart, _, co, p := register(t, 10000, 10)

	require.NoError(t, cart.AddItem(p, 1))
	require.NoError(t, co.Begin())
	require.NoError(t, co.SelectPaymentMethod(PaymentQRIS))

	// Quantity changes between review and payment must not leave a stale
	// total behind.
	require.NoError(t, cart.SetQuantity(p.ID, 3))

	trx, err := co.Complete()
	require.NoError(t, err)
	assert.Equal(t, int64(30000), trx.Total)
}

func TestCheckoutTransitionGuards(t *testing.T) {
	_, cart, _, co, p := register(t, 10000, 5)

	assert.ErrorIs(t, co.Begin(), ErrEmptyCart)
	assert.ErrorIs(t, co.SelectPaymentMethod(PaymentCash), ErrInvalidTransition)
	_, err := co.Complete()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, co.Abort(), ErrInvalidTransition)

	require.NoError(t, cart.AddItem(p, 1))
	require.NoError(t, co.Begin())
	assert.ErrorIs(t, co.SelectPaymentMethod("VOUCHER"), ErrValidation)
	assert.ErrorIs(t, co.SetReceivedAmount(1000), ErrInvalidTransition, "received before method selection")

	_, err = co.Complete()
	assert.ErrorIs(t, err, ErrInvalidTransition, "complete before method selection")
}

func TestCheckoutAbortReturnsToReview(t *testing.T) {
	_, cart, _, co, p := register(t, 10000, 5)

	require.NoError(t, cart.AddItem(p, 2))
	require.NoError(t, co.Begin())
	require.NoError(t, co.SelectPaymentMethod(PaymentCash))
	require.NoError(t, co.SetReceivedAmount(50000))

	require.NoError(t, co.Abort())
	assert.Equal(t, StateReview, co.State())
	assert.Equal(t, PaymentMethod(""), co.Method())
	assert.Equal(t, int64(0), co.ReceivedAmount())
	assert.Equal(t, 1, cart.Len(), "abort must keep the cart")
}

func TestCheckoutNegativeReceivedRejected(t *testing.T) {
	_, cart, _, co, p := register(t, 10000, 5)

	require.NoError(t, cart.AddItem(p, 1))
	require.NoError(t, co.Begin())
	require.NoError(t, co.SelectPaymentMethod(PaymentCash))
	assert.ErrorIs(t, co.SetReceivedAmount(-1), ErrValidation)
}

func TestCheckoutStockClampWhenCatalogChangedMidSale(t *testing.T) {
	catalog, cart, _, co, p := register(t, 10000, 5)

	require.NoError(t, cart.AddItem(p, 4))
	// An external catalog edit drops the stock below the cart quantity;
	// the clamp keeps the commit from driving stock negative.
	two := 2
	_, err := catalog.UpdateProduct(p.ID, ProductPatch{Stock: &two})
	require.NoError(t, err)

	require.NoError(t, co.Begin())
	require.NoError(t, co.SelectPaymentMethod(PaymentDebit))
	_, err = co.Complete()
	require.NoError(t, err)

	got, err := catalog.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)
}

func TestCheckoutRemovedProductStillSells(t *testing.T) {
	catalog, cart, ledger, co, p := register(t, 10000, 5)

	require.NoError(t, cart.AddItem(p, 1))
	require.NoError(t, co.Begin())
	require.NoError(t, co.SelectPaymentMethod(PaymentDebit))
	require.NoError(t, catalog.RemoveProduct(p.ID))

	trx, err := co.Complete()
	require.NoError(t, err)
	assert.Equal(t, int64(10000), trx.Total, "the sale stands on its snapshot")
	assert.Equal(t, 1, ledger.Count())
}
