package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	orgModel "github.com/avsafety/peer-review/internal/organization/model"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, org *orgModel.Organization) (*orgModel.Organization, error) {
	args := m.Called(ctx, org)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orgModel.Organization), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, orgID string) (*orgModel.Organization, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orgModel.Organization), args.Error(1)
}

func TestService_AddOrganization(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop().Sugar()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, logger)

		created := &orgModel.Organization{
			OrgID:    "org_caa_fd",
			Name:     "Civil Aviation Authority of Freedonia",
			Code:     "CAA-FD",
			State:    "Freedonia",
			IsActive: true,
		}
		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Organization")).Return(created, nil)

		resp, err := svc.AddOrganization(ctx, &orgModel.AddOrganizationRequest{
			OrgID: "org_caa_fd",
			Name:  "Civil Aviation Authority of Freedonia",
			Code:  "CAA-FD",
			State: "Freedonia",
		})

		require.NoError(t, err)
		assert.Equal(t, "org_caa_fd", resp.OrgID)
		assert.Equal(t, "CAA-FD", resp.Code)
		assert.True(t, resp.IsActive)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty org_id", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, logger)

		resp, err := svc.AddOrganization(ctx, &orgModel.AddOrganizationRequest{
			Name:  "CAA Freedonia",
			State: "Freedonia",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, orgModel.ErrInvalidOrgID)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("duplicate org_id", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, logger)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Organization")).
			Return(nil, orgModel.ErrOrganizationExists)

		resp, err := svc.AddOrganization(ctx, &orgModel.AddOrganizationRequest{
			OrgID: "org_caa_fd",
			Name:  "CAA Freedonia",
			State: "Freedonia",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, orgModel.ErrOrganizationExists)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_GetOrganization(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop().Sugar()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, logger)

		mockRepo.On("GetByID", ctx, "org_ansp_fd").Return(&orgModel.Organization{
			OrgID:    "org_ansp_fd",
			Name:     "Freedonia ANSP",
			State:    "Freedonia",
			IsActive: true,
		}, nil)

		resp, err := svc.GetOrganization(ctx, "org_ansp_fd")

		require.NoError(t, err)
		assert.Equal(t, "Freedonia ANSP", resp.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty org_id", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, logger)

		resp, err := svc.GetOrganization(ctx, "")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, orgModel.ErrInvalidOrgID)
		mockRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, logger)

		mockRepo.On("GetByID", ctx, "org_missing").Return(nil, orgModel.ErrOrganizationNotFound)

		resp, err := svc.GetOrganization(ctx, "org_missing")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, orgModel.ErrOrganizationNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, logger)

		repoErr := errors.New("database error")
		mockRepo.On("GetByID", ctx, "org_ansp_fd").Return(nil, repoErr)

		resp, err := svc.GetOrganization(ctx, "org_ansp_fd")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, repoErr)
		mockRepo.AssertExpectations(t)
	})
}
