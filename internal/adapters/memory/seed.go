package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	portsrepo "github.com/fincontrol/fincontrol_backend/internal/core/ports/repositories"
	portssvc "github.com/fincontrol/fincontrol_backend/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewRepositoryProvider builds a fresh set of empty in-memory repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        NewUserRepository(),
		TransactionRepo: NewTransactionRepository(),
		LogRepo:         NewLogRepository(),
	}
}

// Seed loads the fixed bootstrap data: the admin/123 and staff/123 accounts,
// and optionally the sample transactions. Called once at startup; a restart
// always begins from exactly this state.
func Seed(ctx context.Context, repos portsrepo.RepositoryProvider, verifier portssvc.CredentialVerifier, withSampleTransactions bool) error {
	now := time.Now()

	admin, err := seedUser(ctx, repos, verifier, "admin", "123", "Quản trị viên", domain.RoleAdmin, now)
	if err != nil {
		return err
	}
	if _, err := seedUser(ctx, repos, verifier, "staff", "123", "Nhân viên", domain.RoleStaff, now); err != nil {
		return err
	}

	if !withSampleTransactions {
		return nil
	}

	samples := []domain.Transaction{
		{Name: "Công ty ABC", Content: "Thu phí dịch vụ tháng 9", Amount: decimal.NewFromInt(15000000), Note: "Đã thanh toán", Type: domain.Income},
		{Name: "Nguyễn Văn B", Content: "Mua văn phòng phẩm", Amount: decimal.NewFromInt(2500000), Note: "Giấy A4, Bút bi", Type: domain.Expense},
		{Name: "Dự án XYZ", Content: "Thanh toán đợt 1", Amount: decimal.NewFromInt(50000000), Type: domain.Income},
		{Name: "Chi phí điện", Content: "Tiền điện tháng 9", Amount: decimal.NewFromInt(3200000), Type: domain.Expense},
	}
	// Saved in reverse so the first sample ends up at the head of the ledger.
	for i := len(samples) - 1; i >= 0; i-- {
		txn := samples[i]
		txn.TransactionID = uuid.NewString()
		txn.Date = now
		txn.CreatedBy = admin.Username
		txn.CreatedByID = admin.UserID
		if err := repos.TransactionRepo.SaveTransaction(ctx, txn); err != nil {
			return fmt.Errorf("failed to seed transaction %q: %w", txn.Name, err)
		}
	}

	return nil
}

func seedUser(ctx context.Context, repos portsrepo.RepositoryProvider, verifier portssvc.CredentialVerifier, username, password, fullName string, role domain.UserRole, createdAt time.Time) (*domain.User, error) {
	stored, err := verifier.Prepare(password)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare seed credential for %q: %w", username, err)
	}

	user := domain.User{
		UserID:    uuid.NewString(),
		Username:  username,
		Password:  stored,
		FullName:  fullName,
		Role:      role,
		CreatedAt: createdAt,
	}
	if err := repos.UserRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to seed user %q: %w", username, err)
	}
	return &user, nil
}
