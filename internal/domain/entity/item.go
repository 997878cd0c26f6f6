package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un producto del inventario.
type Item struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellPrice    decimal.Decimal `json:"sellPrice"`
	StockLevel   int             `json:"stockLevel"`
	ReorderLevel int             `json:"reOrderLevel"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// LowStock informa si el ítem está en stock bajo (stockLevel <= reOrderLevel).
func (i Item) LowStock() bool {
	return i.StockLevel <= i.ReorderLevel
}
