package types

import (
	"fmt"
	"time"
)

// money in minor units (paise), so totals never pick up float error
type Amount int64

// renders the amount with two decimals, e.g. 250.00
func (a Amount) String() string {
	sign := ""
	if a < 0 {
		sign = "-"
		a = -a
	}
	return fmt.Sprintf("%s%d.%02d", sign, a/100, a%100)
}

// amount of whole rupees
func Rupees(r int64) Amount {
	return Amount(r * 100)
}

type MenuItem struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Price        Amount `json:"price"`
	ImageURL     string `json:"image_url,omitempty"`
	IsAvailable  bool   `json:"is_available"`
	SortOrder    int    `json:"sort_order"`
}

// one menu item in the cart
type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

func (l CartLine) Total() Amount {
	return l.Item.Price * Amount(l.Quantity)
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderServed, OrderCancelled:
		return true
	}
	return false
}

type OrderItem struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name,omitempty"`
	Quantity   int    `json:"quantity"`
	UnitPrice  Amount `json:"unit_price"`
	TotalPrice Amount `json:"total_price"`
}

type Order struct {
	ID           string      `json:"id"`
	RestaurantID string      `json:"restaurant_id"`
	TableNumber  string      `json:"table_number"`
	TotalAmount  Amount      `json:"total_amount"`
	Status       OrderStatus `json:"status"`
	Notes        string      `json:"notes,omitempty"`
	Items        []OrderItem `json:"items,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// input for the order store
type NewOrder struct {
	RestaurantID string
	TableNumber  string
	TotalAmount  Amount
	Notes        string
	Items        []OrderItem
}

// builds an order request from cart lines
func NewOrderFromCart(restaurantID, tableNumber string, lines []CartLine) NewOrder {
	order := NewOrder{
		RestaurantID: restaurantID,
		TableNumber:  tableNumber,
		Notes:        "Order from Table " + tableNumber,
		Items:        make([]OrderItem, 0, len(lines)),
	}
	for _, l := range lines {
		order.Items = append(order.Items, OrderItem{
			MenuItemID: l.Item.ID,
			Name:       l.Item.Name,
			Quantity:   l.Quantity,
			UnitPrice:  l.Item.Price,
			TotalPrice: l.Total(),
		})
		order.TotalAmount += l.Total()
	}
	return order
}
