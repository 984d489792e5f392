package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuditServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockAuditLogRepositoryInterface
	logs     *bytes.Buffer
	service  AuditServiceInterface
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.logs = &bytes.Buffer{}
	s.service = NewAuditService(s.mockRepo, slog.New(slog.NewJSONHandler(s.logs, nil)))
}

func (s *AuditServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func (s *AuditServiceTestSuite) TestLogLogin() {
	userID := uuid.New()
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *models.AuditLog) error {
			s.Equal(userID, *log.UserID)
			s.Equal(models.AuditActionLogin, log.Action)
			s.Equal(models.AuditResourceUser, log.Resource)
			s.Equal(userID.String(), log.ResourceID)
			s.Equal("10.0.0.1", log.IPAddress)
			s.Equal("curl", log.UserAgent)
			return nil
		})

	s.service.LogLogin(context.Background(), userID, "10.0.0.1", "curl")
}

func (s *AuditServiceTestSuite) TestLogFailedLogin_HasNoOwner() {
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *models.AuditLog) error {
			s.Nil(log.UserID)
			s.Equal(models.AuditActionFailedLogin, log.Action)
			s.Equal("ghost@example.com", log.Metadata["email"])
			s.Equal("user_not_found", log.Metadata["reason"])
			return nil
		})

	s.service.LogFailedLogin(context.Background(), "ghost@example.com", "", "", "user_not_found")
}

func (s *AuditServiceTestSuite) TestLogProfileUpdate_StoresChanges() {
	changes := map[string]interface{}{"username": "bob"}
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *models.AuditLog) error {
			s.Equal(models.AuditActionProfileUpdated, log.Action)
			s.Equal("bob", log.Metadata["username"])
			return nil
		})

	s.service.LogProfileUpdate(context.Background(), uuid.New(), "", "", changes)
}

func (s *AuditServiceTestSuite) TestLogRecordChange() {
	userID, recordID := uuid.New(), uuid.New()
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *models.AuditLog) error {
			s.Equal(models.AuditActionDelete, log.Action)
			s.Equal(models.AuditResourceBudget, log.Resource)
			s.Equal(recordID.String(), log.ResourceID)
			return nil
		})

	s.service.LogRecordChange(context.Background(), userID, models.AuditActionDelete, models.AuditResourceBudget, recordID)
}

func (s *AuditServiceTestSuite) TestWriteFailureIsLoggedNotReturned() {
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	ctx := ContextWithTraceID(context.Background(), "trace-123")
	s.service.LogLogout(ctx, uuid.New(), "", "")

	s.Contains(s.logs.String(), "failed to create audit log")
	s.Contains(s.logs.String(), "trace-123")
	s.Contains(s.logs.String(), "disk full")
}

func (s *AuditServiceTestSuite) TestGetUserActivity_Defaults() {
	userID := uuid.New()
	logs := []*models.AuditLog{{Action: models.AuditActionLogin}}

	s.mockRepo.EXPECT().GetByUserID(gomock.Any(), userID, 0, DefaultActivityLimit).Return(logs, int64(1), nil)

	result, total, err := s.service.GetUserActivity(context.Background(), userID, -5, 0)

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(result, 1)
}

func (s *AuditServiceTestSuite) TestGetUserActivity_LimitAboveMax() {
	userID := uuid.New()
	s.mockRepo.EXPECT().GetByUserID(gomock.Any(), userID, 40, DefaultActivityLimit).Return(nil, int64(0), nil)

	_, _, err := s.service.GetUserActivity(context.Background(), userID, 40, MaxActivityLimit+1)

	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestGetUserActivity_Errors() {
	_, _, err := s.service.GetUserActivity(context.Background(), uuid.Nil, 0, 10)
	s.ErrorIs(err, ErrInvalidUserID)

	userID := uuid.New()
	s.mockRepo.EXPECT().GetByUserID(gomock.Any(), userID, 0, 10).Return(nil, int64(0), errors.New("timeout"))

	_, _, err = s.service.GetUserActivity(context.Background(), userID, 0, 10)
	s.Error(err)
	s.Contains(err.Error(), "failed to get user activity")
}
