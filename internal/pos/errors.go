package pos

import "errors"

// ErrValidation is returned when an operation receives malformed input,
// such as an empty product name or a negative price, stock or quantity.
var ErrValidation = errors.New("validation failed")

// ErrProductNotFound is returned when an operation targets a product ID
// that is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ErrLineNotFound is returned when a cart operation targets a product ID
// with no line in the cart.
var ErrLineNotFound = errors.New("cart line not found")

// ErrEmptyCart is returned when checkout is started or completed with an
// empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// ErrInsufficientPayment is returned when a cash checkout is completed
// with a received amount below the total.
var ErrInsufficientPayment = errors.New("insufficient payment")

// ErrInvalidTransition is returned when a checkout operation is called in
// a state that does not permit it.
var ErrInvalidTransition = errors.New("invalid checkout transition")
