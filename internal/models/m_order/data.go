package m_order

import (
	"math/big"
	"time"
)

// Data is one row of the orders table.
type Data struct {
	OrderID     string    `spanner:"order_id"`
	OrderNumber string    `spanner:"order_number"`
	TotalAmount big.Rat   `spanner:"total_amount"`
	CreatedAt   time.Time `spanner:"created_at"`
}
