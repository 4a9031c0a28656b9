package order

import (
	"fmt"
	"strings"

	"tirona-thrift/internal/cart"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// ParseStatus accepts a status name in any case.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// Order is a placed purchase. Items are a snapshot taken at checkout.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerAddress string      `json:"customerAddress"`
	Items           []cart.Item `json:"items"`
	Total           int64       `json:"total"`
	Date            string      `json:"date"`
	Status          Status      `json:"status"`
}

func (o Order) Clone() Order {
	c := o
	c.Items = cart.CloneItems(o.Items)
	return c
}

// CloneAll deep copies an order list.
func CloneAll(orders []Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Clone())
	}
	return out
}

// CreateOrderParams is the body of POST /orders.
type CreateOrderParams struct {
	CustomerName    string      `json:"customerName"`
	CustomerAddress string      `json:"customerAddress"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	Items           []cart.Item `json:"items"`
	Total           int64       `json:"total"`
}

// Validate is the server-side check: customer fields present, at least one
// positive line, and a total equal to the sum of the lines.
func (p CreateOrderParams) Validate() error {
	if err := p.Customer().Validate(); err != nil {
		return err
	}
	if len(p.Items) == 0 {
		return ErrNoItems
	}
	for _, it := range p.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidQuantity, it.ID)
		}
	}
	if want := cart.Total(p.Items); p.Total != want {
		return fmt.Errorf("%w: got %d, want %d", ErrTotalMismatch, p.Total, want)
	}
	return nil
}

func (p CreateOrderParams) Customer() CustomerDetails {
	return CustomerDetails{
		Name:    p.CustomerName,
		Address: p.CustomerAddress,
		Phone:   p.CustomerPhone,
		Email:   p.CustomerEmail,
	}
}

// CustomerDetails is the checkout form. Every field is required.
type CustomerDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (d CustomerDetails) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", d.Name},
		{"address", d.Address},
		{"phone", d.Phone},
		{"email", d.Email},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingCustomerField, f.name)
		}
	}
	return nil
}
