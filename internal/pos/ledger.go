package pos

// Ledger is the append-only history of completed transactions, most
// recent first. Transactions are never updated or deleted.
type Ledger struct {
	transactions []Transaction
}

// SalesSummary aggregates the ledger for the reports view.
type SalesSummary struct {
	Count       int                   `json:"count"`
	TotalSales  int64                 `json:"total_sales"`
	AverageSale int64                 `json:"average_sale"`
	ByMethod    map[PaymentMethod]int `json:"by_method"`
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Record prepends a completed transaction to the history.
func (l *Ledger) Record(t Transaction) {
	l.transactions = append([]Transaction{t}, l.transactions...)
}

// Transactions returns a copy of the history, most recent first.
func (l *Ledger) Transactions() []Transaction {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Count returns the number of recorded transactions.
func (l *Ledger) Count() int {
	return len(l.transactions)
}

// TotalSales returns the sum of all transaction totals.
func (l *Ledger) TotalSales() int64 {
	var sum int64
	for _, t := range l.transactions {
		sum += t.Total
	}
	return sum
}

// AverageSale returns total sales divided by count, or 0 for an empty
// ledger. The zero-count guard is explicit.
func (l *Ledger) AverageSale() int64 {
	if len(l.transactions) == 0 {
		return 0
	}
	return l.TotalSales() / int64(len(l.transactions))
}

// Summary aggregates count, totals and the per-method breakdown.
func (l *Ledger) Summary() SalesSummary {
	s := SalesSummary{
		Count:       l.Count(),
		TotalSales:  l.TotalSales(),
		AverageSale: l.AverageSale(),
		ByMethod:    map[PaymentMethod]int{},
	}
	for _, t := range l.transactions {
		s.ByMethod[t.PaymentMethod]++
	}
	return s
}

// Replace swaps the history for the given snapshot. Used when loading
// persisted state; the snapshot is expected most recent first.
func (l *Ledger) Replace(transactions []Transaction) {
	l.transactions = make([]Transaction, len(transactions))
	copy(l.transactions, transactions)
}
