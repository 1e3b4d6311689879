package entities

import "github.com/google/uuid"

// PasswordMask is what the admin console renders instead of a hash.
const PasswordMask = "••••••••"

// AdminStats is the dashboard aggregate.
type AdminStats struct {
	ActiveUsers   int64   `json:"activeUsers"`
	TotalInvested float64 `json:"totalInvested"`
	ActiveOrders  int64   `json:"activeOrders"`
	TotalPayments int64   `json:"totalPayments"`
}

// AdminUserRow is the masked user listing row. Password is always the
// fixed mask string, never the stored hash.
type AdminUserRow struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Date     string    `json:"date"`
}

// AdminOrderRow is a recent-order listing row derived from investments.
type AdminOrderRow struct {
	ID           uuid.UUID `json:"id"`
	ProductName  string    `json:"productName"`
	InvestAmount float64   `json:"investAmount"`
	Status       string    `json:"status"`
	StartDate    string    `json:"startDate"`
}

// AdminPaymentRow is a recent-payment listing row. Payments are currently
// a relabeling of investment rows; no distinct payment entity exists, so
// creating an investment does not imply funds were received.
type AdminPaymentRow struct {
	ID     uuid.UUID `json:"id"`
	User   string    `json:"user"`
	Amount float64   `json:"amount"`
	Method string    `json:"method"`
	Date   string    `json:"date"`
	Status string    `json:"status"`
}
