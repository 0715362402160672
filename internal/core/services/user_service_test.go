package services_test

import (
	"context"
	"testing"

	"github.com/fincontrol/fincontrol_backend/internal/adapters/memory"
	"github.com/fincontrol/fincontrol_backend/internal/apperrors"
	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	portssvc "github.com/fincontrol/fincontrol_backend/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *memory.UserRepository
	txnRepo  *memory.TransactionRepository
	logRepo  *memory.LogRepository
	service  portssvc.UserSvcFacade
	admin    domain.User
	staff    domain.User
}

func (suite *UserServiceTestSuite) SetupTest() {
	ctx := context.Background()
	suite.userRepo = memory.NewUserRepository()
	suite.txnRepo = memory.NewTransactionRepository()
	suite.logRepo = memory.NewLogRepository()
	audit := services.NewAuditService(suite.logRepo)
	suite.service = services.NewUserService(suite.userRepo, audit)

	suite.admin = domain.User{UserID: uuid.NewString(), Username: "admin", FullName: "Quản trị viên", Role: domain.RoleAdmin}
	suite.staff = domain.User{UserID: uuid.NewString(), Username: "staff", FullName: "Nhân viên", Role: domain.RoleStaff}
	suite.Require().NoError(suite.userRepo.SaveUser(ctx, suite.admin))
	suite.Require().NoError(suite.userRepo.SaveUser(ctx, suite.staff))
}

func (suite *UserServiceTestSuite) TestListUsers() {
	users, err := suite.service.ListUsers(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(users, 2)
	suite.Equal("admin", users[0].Username)
	suite.Equal("staff", users[1].Username)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()

	err := suite.service.DeleteUser(ctx, suite.staff.UserID, &suite.admin)
	suite.Require().NoError(err)

	_, err = suite.userRepo.FindUserByID(ctx, suite.staff.UserID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	logs, err := suite.logRepo.FindLogs(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(logs, 1)
	suite.Equal(domain.ActionDeleteUser, logs[0].Action)
	suite.Equal(suite.admin.UserID, logs[0].UserID)
	suite.Contains(logs[0].Details, "staff")
}

func (suite *UserServiceTestSuite) TestDeleteUser_NonAdminForbidden() {
	err := suite.service.DeleteUser(context.Background(), suite.admin.UserID, &suite.staff)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.assertNothingDeleted()
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfForbidden() {
	err := suite.service.DeleteUser(context.Background(), suite.admin.UserID, &suite.admin)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.assertNothingDeleted()
}

func (suite *UserServiceTestSuite) TestDeleteUser_ProtectedAdminAccount() {
	ctx := context.Background()

	// A second admin still cannot remove the seed admin account.
	admin2 := domain.User{UserID: uuid.NewString(), Username: "admin2", Role: domain.RoleAdmin}
	suite.Require().NoError(suite.userRepo.SaveUser(ctx, admin2))

	err := suite.service.DeleteUser(ctx, suite.admin.UserID, &admin2)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	_, ferr := suite.userRepo.FindUserByID(ctx, suite.admin.UserID)
	suite.NoError(ferr)
}

func (suite *UserServiceTestSuite) TestDeleteUser_NilActor() {
	err := suite.service.DeleteUser(context.Background(), suite.staff.UserID, nil)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestDeleteUser_TargetNotFound() {
	err := suite.service.DeleteUser(context.Background(), uuid.NewString(), &suite.admin)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	logs, lerr := suite.logRepo.FindLogs(context.Background())
	suite.Require().NoError(lerr)
	suite.Empty(logs)
}

func (suite *UserServiceTestSuite) TestDeleteUser_NoCascade() {
	ctx := context.Background()

	// A transaction created by the doomed user keeps its creator snapshot.
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Name:          "kept",
		Amount:        decimal.NewFromInt(100),
		Type:          domain.Income,
		CreatedBy:     suite.staff.Username,
		CreatedByID:   suite.staff.UserID,
	}
	suite.Require().NoError(suite.txnRepo.SaveTransaction(ctx, txn))

	suite.Require().NoError(suite.service.DeleteUser(ctx, suite.staff.UserID, &suite.admin))

	kept, err := suite.txnRepo.FindTransactionByID(ctx, txn.TransactionID)
	suite.Require().NoError(err)
	suite.Equal(suite.staff.Username, kept.CreatedBy)
	suite.Equal(suite.staff.UserID, kept.CreatedByID)
}

func (suite *UserServiceTestSuite) assertNothingDeleted() {
	users, err := suite.userRepo.FindUsers(context.Background())
	suite.Require().NoError(err)
	suite.Len(users, 2)

	logs, err := suite.logRepo.FindLogs(context.Background())
	suite.Require().NoError(err)
	suite.Empty(logs)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
