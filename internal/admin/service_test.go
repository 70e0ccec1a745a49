package admin

import (
	"context"
	"errors"
	"testing"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Stats(ctx context.Context) (*Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Stats), args.Error(1)
}

func (m *MockRepository) ListAdmins(ctx context.Context) ([]Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Admin), args.Error(1)
}

func (m *MockRepository) CreateAdmin(ctx context.Context, input NewAdmin) (*Admin, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Admin), args.Error(1)
}

func (m *MockRepository) Config(ctx context.Context) (RemoteConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(RemoteConfig), args.Error(1)
}

func (m *MockRepository) SetConfig(ctx context.Context, key string, value any) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockRepository) ResetPassword(ctx context.Context, newPassword string) error {
	return m.Called(ctx, newPassword).Error(0)
}

const root = "root@rebookz.com"

// --- Tests ---

func TestService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, root)
		mockRepo.On("Stats", ctx).Return(&Stats{TotalUsers: 3, TotalBooks: 10, TotalSold: 4}, nil)

		s, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, s.ActiveListings())
	})

	t.Run("Error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, root)
		mockRepo.On("Stats", ctx).Return(nil, errors.New("401"))

		_, err := svc.Stats(ctx)
		assert.Error(t, err)
	})
}

func TestStats_ActiveListingsNeverNegative(t *testing.T) {
	assert.Equal(t, 0, Stats{TotalBooks: 1, TotalSold: 3}.ActiveListings())
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, root)
	mockRepo.On("ListAdmins", ctx).Return([]Admin{{ID: "a1"}, {ID: "a2"}}, nil)

	page, err := svc.List(ctx, listing.Query{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.Pages)
}

func TestService_CreateAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, root)
		want := NewAdmin{Name: "Noor", Email: "noor@rebookz.com", Password: "secret1"}
		mockRepo.On("CreateAdmin", ctx, want).Return(&Admin{ID: "a3", Email: want.Email}, nil)

		res, err := svc.CreateAdmin(ctx, NewAdmin{Name: " Noor ", Email: "Noor@Rebookz.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "a3", res.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Short password", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, root)

		_, err := svc.CreateAdmin(ctx, NewAdmin{Name: "Noor", Email: "noor@rebookz.com", Password: "123"})

		assert.Equal(t, "Password must be at least 6 characters", apiclient.Message(err, ""))
		mockRepo.AssertNotCalled(t, "CreateAdmin", mock.Anything, mock.Anything)
	})

	t.Run("Server message", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, root)
		mockRepo.On("CreateAdmin", ctx, mock.Anything).
			Return(nil, &apiclient.Error{Kind: apiclient.KindServer, Status: 400, Message: "User already exists"})

		_, err := svc.CreateAdmin(ctx, NewAdmin{Name: "Noor", Email: "noor@rebookz.com", Password: "secret1"})
		assert.Equal(t, "User already exists", apiclient.Message(err, "Error creating admin"))
	})
}

func TestService_ToggleFlag(t *testing.T) {
	ctx := context.Background()

	t.Run("Super admin flips the flag", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, root)
		mockRepo.On("Config", ctx).Return(RemoteConfig{FlagShowDummyLogin: false, "other": "x"}, nil)
		mockRepo.On("SetConfig", ctx, FlagShowDummyLogin, true).Return(nil)

		cfg, err := svc.ToggleFlag(ctx, "ROOT@rebookz.com", FlagShowDummyLogin)

		require.NoError(t, err)
		assert.True(t, cfg.Flag(FlagShowDummyLogin))
		assert.Equal(t, "x", cfg["other"])
		mockRepo.AssertExpectations(t)
	})

	t.Run("Other admins are rejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, root)

		_, err := svc.ToggleFlag(ctx, "noor@rebookz.com", FlagShowDummyLogin)

		assert.ErrorIs(t, err, ErrNotSuperAdmin)
		mockRepo.AssertNotCalled(t, "SetConfig", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("No super admin configured", func(t *testing.T) {
		svc := NewService(new(MockRepository), "")
		assert.False(t, svc.IsSuperAdmin(""))

		_, err := svc.ToggleFlag(ctx, "", FlagShowDummyLogin)
		assert.ErrorIs(t, err, ErrNotSuperAdmin)
	})
}

func TestService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, root)
		mockRepo.On("ResetPassword", ctx, "newpass1").Return(nil)

		assert.NoError(t, svc.ResetPassword(ctx, "newpass1", "newpass1"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Mismatch", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, root)

		err := svc.ResetPassword(ctx, "newpass1", "newpass2")

		assert.ErrorIs(t, err, ErrPasswordMismatch)
		assert.Equal(t, "New passwords do not match", apiclient.Message(err, ""))
		mockRepo.AssertNotCalled(t, "ResetPassword", mock.Anything, mock.Anything)
	})

	t.Run("Too short", func(t *testing.T) {
		svc := NewService(new(MockRepository), root)
		assert.ErrorIs(t, svc.ResetPassword(ctx, "abc", "abc"), ErrPasswordTooShort)
	})
}

func TestRemoteConfig_Flag(t *testing.T) {
	cfg := RemoteConfig{"a": true, "b": "true"}
	assert.True(t, cfg.Flag("a"))
	assert.False(t, cfg.Flag("b"))
	assert.False(t, cfg.Flag("missing"))
}
