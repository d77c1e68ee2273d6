package pos

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service wires the register's catalog, cart, checkout and ledger behind
// one facade and persists catalog and history snapshots after every
// mutation. Persistence is fire-and-forget: a failed save is logged and
// the in-memory state stays authoritative for the session.
type Service struct {
	catalog  *Catalog
	cart     *Cart
	checkout *Checkout
	ledger   *Ledger
	storage  Storage
	logger   *zap.Logger
}

// CheckoutStatus is the read view of the in-progress sale.
type CheckoutStatus struct {
	State          CheckoutState `json:"state"`
	Method         PaymentMethod `json:"payment_method,omitempty"`
	Total          int64         `json:"total"`
	ReceivedAmount int64         `json:"received_amount"`
	ChangeAmount   int64         `json:"change_amount"`
}

// NewService creates a Service, loading both snapshots from storage.
// An empty products snapshot is seeded with the starter catalog.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	catalog := NewCatalog()
	cart := NewCart()
	ledger := NewLedger()
	s := &Service{
		catalog:  catalog,
		cart:     cart,
		checkout: NewCheckout(catalog, cart, ledger),
		ledger:   ledger,
		storage:  storage,
		logger:   logger,
	}

	products, err := storage.LoadProducts()
	if err != nil {
		s.logger.Warn("failed to load products, starting empty", zap.Error(err))
	}
	if len(products) == 0 {
		products = seedProducts()
		s.logger.Info("seeded starter catalog", zap.Int("count", len(products)))
	}
	catalog.Replace(products)
	s.persistProducts()

	transactions, err := storage.LoadTransactions()
	if err != nil {
		s.logger.Warn("failed to load transactions, starting empty", zap.Error(err))
	}
	ledger.Replace(transactions)

	return s
}

// Products returns the catalog, optionally filtered by category.
func (s *Service) Products(category string) []Product {
	return s.catalog.Products(category)
}

// AddProduct creates a catalog product.
func (s *Service) AddProduct(spec ProductSpec) (Product, error) {
	p, err := s.catalog.AddProduct(spec)
	if err != nil {
		return Product{}, err
	}
	s.logger.Info("product added", zap.String("product_id", p.ID), zap.String("name", p.Name))
	s.persistProducts()
	return p, nil
}

// UpdateProduct patches a catalog product.
func (s *Service) UpdateProduct(id string, patch ProductPatch) (Product, error) {
	p, err := s.catalog.UpdateProduct(id, patch)
	if err != nil {
		return Product{}, err
	}
	s.logger.Info("product updated", zap.String("product_id", p.ID))
	s.persistProducts()
	return p, nil
}

// RemoveProduct deletes a catalog product. History is untouched.
func (s *Service) RemoveProduct(id string) error {
	if err := s.catalog.RemoveProduct(id); err != nil {
		return err
	}
	s.cart.RemoveItem(id)
	s.logger.Info("product removed", zap.String("product_id", id))
	s.persistProducts()
	return nil
}

// CartLines returns the cart contents in insertion order.
func (s *Service) CartLines() []CartLine {
	return s.cart.Lines()
}

// CartSubtotal returns the current cart subtotal.
func (s *Service) CartSubtotal() int64 {
	return s.cart.Subtotal()
}

// AddToCart looks the product up in the catalog and adds qty units to
// the cart, so the cart always works from the current stock count.
func (s *Service) AddToCart(productID string, qty int) error {
	p, err := s.catalog.Get(productID)
	if err != nil {
		return err
	}
	if err := s.cart.AddItem(p, qty); err != nil {
		return err
	}
	s.logger.Info("item added to cart", zap.String("product_id", productID), zap.Int("quantity", qty))
	return nil
}

// SetCartQuantity sets the absolute quantity of a cart line; zero
// removes the line.
func (s *Service) SetCartQuantity(productID string, qty int) error {
	return s.cart.SetQuantity(productID, qty)
}

// RemoveFromCart deletes a cart line. No-op if absent.
func (s *Service) RemoveFromCart(productID string) {
	s.cart.RemoveItem(productID)
}

// ClearCart empties the cart and abandons any sale in progress.
func (s *Service) ClearCart() {
	s.cart.Clear()
	s.checkout.Cancel()
}

// BeginCheckout moves the sale into review.
func (s *Service) BeginCheckout() error {
	return s.checkout.Begin()
}

// SelectPaymentMethod picks the payment method for the sale in progress.
func (s *Service) SelectPaymentMethod(m PaymentMethod) error {
	return s.checkout.SelectPaymentMethod(m)
}

// SetReceivedAmount records the cash handed over.
func (s *Service) SetReceivedAmount(amount int64) error {
	return s.checkout.SetReceivedAmount(amount)
}

// CheckoutState returns the state, totals and change of the sale in
// progress.
func (s *Service) CheckoutState() CheckoutStatus {
	return CheckoutStatus{
		State:          s.checkout.State(),
		Method:         s.checkout.Method(),
		Total:          s.checkout.Total(),
		ReceivedAmount: s.checkout.ReceivedAmount(),
		ChangeAmount:   s.checkout.ComputeChange(),
	}
}

// CompleteCheckout commits the sale and persists both snapshots.
func (s *Service) CompleteCheckout() (Transaction, error) {
	trx, err := s.checkout.Complete()
	if err != nil {
		return Transaction{}, err
	}
	s.logger.Info("transaction completed",
		zap.String("transaction_id", trx.ID),
		zap.String("payment_method", string(trx.PaymentMethod)),
		zap.Int64("total", trx.Total),
		zap.Int64("change", trx.ChangeAmount),
	)
	s.persistProducts()
	s.persistTransactions()
	return trx, nil
}

// AbortCheckout returns the sale to review, keeping the cart.
func (s *Service) AbortCheckout() error {
	return s.checkout.Abort()
}

// Transactions returns the sales history, most recent first.
func (s *Service) Transactions() []Transaction {
	return s.ledger.Transactions()
}

// Summary aggregates the sales history for the reports view.
func (s *Service) Summary() SalesSummary {
	return s.ledger.Summary()
}

func (s *Service) persistProducts() {
	if err := s.storage.SaveProducts(s.catalog.Products("")); err != nil {
		s.logger.Error("failed to persist products", zap.Error(err))
	}
}

func (s *Service) persistTransactions() {
	if err := s.storage.SaveTransactions(s.ledger.Transactions()); err != nil {
		s.logger.Error("failed to persist transactions", zap.Error(err))
	}
}

// seedProducts is the starter catalog for a fresh install.
func seedProducts() []Product {
	return []Product{
		{ID: uuid.NewString(), Name: "Nasi Goreng Special", Price: 25000, Category: "Makanan", Stock: 50, Image: "https://picsum.photos/seed/nasi/400/300"},
		{ID: uuid.NewString(), Name: "Es Teh Manis", Price: 5000, Category: "Minuman", Stock: 100, Image: "https://picsum.photos/seed/teh/400/300"},
		{ID: uuid.NewString(), Name: "Kopi Susu Gula Aren", Price: 18000, Category: "Minuman", Stock: 40, Image: "https://picsum.photos/seed/coffee/400/300"},
		{ID: uuid.NewString(), Name: "Kerupuk Udang", Price: 3000, Category: "Snack", Stock: 200, Image: "https://picsum.photos/seed/snack/400/300"},
		{ID: uuid.NewString(), Name: "Ayam Bakar Madu", Price: 35000, Category: "Makanan", Stock: 25, Image: "https://picsum.photos/seed/chicken/400/300"},
	}
}
