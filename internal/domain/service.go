package domain

import "github.com/shopspring/decimal"

// ServiceItem is one bookable service of a tenant's catalog (haircut, manicure...)
type ServiceItem struct {
	ID              int64
	TenantID        int64
	Name            string
	DurationMinutes int
	Price           decimal.Decimal
}

// ServiceTotals is the effective duration and price of a multi-service selection.
type ServiceTotals struct {
	TotalDuration int
	TotalPrice    decimal.Decimal
}
