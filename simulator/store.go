package simulator

import (
	"fmt"

	"github.com/alovak/iso8583-mock/simulator/models"
	"github.com/hashicorp/go-memdb"
)

var ErrNotFound = fmt.Errorf("not found")

const transactionsTable = "transactions"

// TransactionStore keeps authorized transactions keyed by STAN for
// the lifetime of the process. It is safe for concurrent use: every
// Put runs in its own write transaction, every lookup in a read
// transaction.
type TransactionStore struct {
	db *memdb.MemDB
}

func NewTransactionStore() (*TransactionStore, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			transactionsTable: {
				Name: transactionsTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "STAN"},
					},
				},
			},
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("creating transaction store: %w", err)
	}

	return &TransactionStore{db: db}, nil
}

// Put inserts or overwrites the transaction stored under stan.
func (s *TransactionStore) Put(stan string, transaction models.Transaction) error {
	transaction.STAN = stan

	txn := s.db.Txn(true)
	if err := txn.Insert(transactionsTable, &transaction); err != nil {
		txn.Abort()
		return fmt.Errorf("inserting transaction: %w", err)
	}
	txn.Commit()

	return nil
}

// Exists reports whether a transaction is stored under stan. It never
// mutates the store.
func (s *TransactionStore) Exists(stan string) (bool, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(transactionsTable, "id", stan)
	if err != nil {
		return false, fmt.Errorf("looking up transaction: %w", err)
	}

	return raw != nil, nil
}

// Get returns the transaction stored under stan, or ErrNotFound.
func (s *TransactionStore) Get(stan string) (*models.Transaction, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(transactionsTable, "id", stan)
	if err != nil {
		return nil, fmt.Errorf("looking up transaction: %w", err)
	}
	if raw == nil {
		return nil, ErrNotFound
	}

	return raw.(*models.Transaction), nil
}
