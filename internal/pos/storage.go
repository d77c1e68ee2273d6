package pos

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage persists the two snapshot records the register keeps: the
// product catalog and the transaction history. The two records are
// independent; saving one never touches the other.
type Storage interface {
	LoadProducts() ([]Product, error)
	SaveProducts(products []Product) error
	LoadTransactions() ([]Transaction, error)
	SaveTransactions(transactions []Transaction) error
}

// LocalStorage provides an in-memory implementation of Storage, used as
// the test substitute for the file-backed store.
type LocalStorage struct {
	products     []Product
	transactions []Transaction
}

// NewLocalStorage instantiates an empty in-memory storage.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{}
}

func (l *LocalStorage) LoadProducts() ([]Product, error) {
	out := make([]Product, len(l.products))
	copy(out, l.products)
	return out, nil
}

func (l *LocalStorage) SaveProducts(products []Product) error {
	l.products = make([]Product, len(products))
	copy(l.products, products)
	return nil
}

func (l *LocalStorage) LoadTransactions() ([]Transaction, error) {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out, nil
}

func (l *LocalStorage) SaveTransactions(transactions []Transaction) error {
	l.transactions = make([]Transaction, len(transactions))
	copy(l.transactions, transactions)
	return nil
}

// FileStorage persists each record as a JSON file under a data
// directory: products.json and transactions.json. A missing file reads
// as an empty snapshot.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the data directory if needed and returns a
// file-backed storage rooted there.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

func (f *FileStorage) LoadProducts() ([]Product, error) {
	var products []Product
	if err := f.load("products.json", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (f *FileStorage) SaveProducts(products []Product) error {
	return f.save("products.json", products)
}

func (f *FileStorage) LoadTransactions() ([]Transaction, error) {
	var transactions []Transaction
	if err := f.load("transactions.json", &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (f *FileStorage) SaveTransactions(transactions []Transaction) error {
	return f.save("transactions.json", transactions)
}

func (f *FileStorage) load(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (f *FileStorage) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(f.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
