package usecases

import (
	"context"

	"investgrow.backend/internal/domain/entities"
	"investgrow.backend/internal/domain/repositories"
)

// adminListLimit caps the recent-row listings on the admin console.
const adminListLimit = 50

// AdminUsecase aggregates dashboard data across the other services
type AdminUsecase struct {
	userRepo       repositories.UserRepository
	investmentRepo repositories.InvestmentRepository
	auditRepo      repositories.AuditLogRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(userRepo repositories.UserRepository, investmentRepo repositories.InvestmentRepository, auditRepo repositories.AuditLogRepository) *AdminUsecase {
	return &AdminUsecase{
		userRepo:       userRepo,
		investmentRepo: investmentRepo,
		auditRepo:      auditRepo,
	}
}

// GetStats returns the dashboard aggregate. TotalPayments mirrors the
// investment count; no separate payment records exist.
func (u *AdminUsecase) GetStats(ctx context.Context) (*entities.AdminStats, error) {
	activeUsers, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalInvested, err := u.investmentRepo.SumTotalInvested(ctx, entities.InvestmentStatusActive)
	if err != nil {
		return nil, err
	}

	investments, err := u.investmentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &entities.AdminStats{
		ActiveUsers:   activeUsers,
		TotalInvested: totalInvested,
		ActiveOrders:  investments,
		TotalPayments: investments,
	}, nil
}

// GetUsers returns recent users with the password column masked.
func (u *AdminUsecase) GetUsers(ctx context.Context) ([]*entities.AdminUserRow, error) {
	users, err := u.userRepo.ListRecent(ctx, adminListLimit)
	if err != nil {
		return nil, err
	}

	rows := make([]*entities.AdminUserRow, 0, len(users))
	for _, user := range users {
		rows = append(rows, &entities.AdminUserRow{
			ID:       user.ID,
			Name:     user.FullName(),
			Email:    user.Email,
			Password: entities.PasswordMask,
			Date:     user.CreatedAt.Format("2006-01-02"),
		})
	}
	return rows, nil
}

// GetOrders returns recent investments shaped as order rows.
func (u *AdminUsecase) GetOrders(ctx context.Context) ([]*entities.AdminOrderRow, error) {
	investments, err := u.investmentRepo.ListRecent(ctx, adminListLimit)
	if err != nil {
		return nil, err
	}

	rows := make([]*entities.AdminOrderRow, 0, len(investments))
	for _, inv := range investments {
		rows = append(rows, &entities.AdminOrderRow{
			ID:           inv.ID,
			ProductName:  planName(&inv.UserInvestment),
			InvestAmount: investedAmount(&inv.UserInvestment),
			Status:       string(inv.Status),
			StartDate:    inv.StartDate.Format("2006-01-02"),
		})
	}
	return rows, nil
}

// GetPayments returns recent investments shaped as payment rows. This is
// a relabeling of the same data: an entry here does not mean funds were
// received.
func (u *AdminUsecase) GetPayments(ctx context.Context) ([]*entities.AdminPaymentRow, error) {
	investments, err := u.investmentRepo.ListRecent(ctx, adminListLimit)
	if err != nil {
		return nil, err
	}

	rows := make([]*entities.AdminPaymentRow, 0, len(investments))
	for _, inv := range investments {
		rows = append(rows, &entities.AdminPaymentRow{
			ID:     inv.ID,
			User:   inv.UserName(),
			Amount: investedAmount(&inv.UserInvestment),
			Method: string(inv.InvestmentType),
			Date:   inv.CreatedAt.Format("2006-01-02"),
			Status: string(inv.Status),
		})
	}
	return rows, nil
}

// GetLogs returns recent audit-log entries with user display fields.
func (u *AdminUsecase) GetLogs(ctx context.Context) ([]*entities.AuditLog, error) {
	return u.auditRepo.ListRecent(ctx, adminListLimit)
}

func planName(inv *entities.UserInvestment) string {
	if inv.Plan != nil {
		return inv.Plan.PlanName
	}
	return ""
}

// investedAmount picks the headline amount for a row: the committed
// installment for SIPs, the principal for lump sums.
func investedAmount(inv *entities.UserInvestment) float64 {
	if inv.SIPAmount.Valid {
		return inv.SIPAmount.Float64
	}
	if inv.LumpSumAmount.Valid {
		return inv.LumpSumAmount.Float64
	}
	return inv.TotalInvested
}
