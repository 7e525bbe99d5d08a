package sqlitestore

import (
	"context"
	"database/sql"

	"github.com/mughalk/csc301-a2/service"
)

const ledgerSchema = `CREATE TABLE IF NOT EXISTS user_purchases (
	user_id    INTEGER NOT NULL,
	product_id INTEGER NOT NULL,
	quantity   INTEGER NOT NULL,
	PRIMARY KEY (user_id, product_id))`

// Ledger implements interfaces.PurchaseLedger on SQLite. The insert-or-add is a single
// ON CONFLICT upsert statement, so two concurrent Adds for the same (user, product)
// pair serialize inside the database and never lose an increment.
type Ledger struct {
	db *sql.DB
}

// NewLedger opens (creating if needed) the purchase ledger database in dir.
//
// Returns: (*Ledger, nil) or (nil, error) on open/schema failure.
//
// Called from cmd/orderservice at startup when LEDGER_BACKEND=sqlite (the default).
func NewLedger(dir string) (*Ledger, error) {
	db, err := open(dir, "orders.db", ledgerSchema)
	if err != nil {
		return nil, err
	}
	return &Ledger{db: db}, nil
}

// Add records quantity for the pair: insert on first purchase, otherwise add to the
// cumulative value. Single statement — atomic per key.
func (l *Ledger) Add(ctx context.Context, userID, productID, quantity int) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO user_purchases (user_id, product_id, quantity)
		 VALUES (?, ?, ?)
		 ON CONFLICT(user_id, product_id)
		 DO UPDATE SET quantity = quantity + excluded.quantity`,
		userID, productID, quantity)
	if err != nil {
		return service.NewInternalServerError("ledger upsert failed", err)
	}
	return nil
}

// ForUser returns every entry of the user as productID → cumulative quantity; an
// empty, non-nil map when the user has never purchased anything.
func (l *Ledger) ForUser(ctx context.Context, userID int) (map[int]int, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT product_id, quantity FROM user_purchases WHERE user_id = ?`, userID)
	if err != nil {
		return nil, service.NewInternalServerError("ledger query failed", err)
	}
	defer rows.Close()

	purchases := make(map[int]int)
	for rows.Next() {
		var productID, quantity int
		if err := rows.Scan(&productID, &quantity); err != nil {
			return nil, service.NewInternalServerError("ledger scan failed", err)
		}
		purchases[productID] = quantity
	}
	if err := rows.Err(); err != nil {
		return nil, service.NewInternalServerError("ledger iteration failed", err)
	}
	return purchases, nil
}

// Close closes the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}
