package category

import (
	"context"
	"errors"
	"testing"

	"rebookz-admin/internal/apiclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Category), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input NewCategory) (*Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Tests ---

func TestService_AddCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		expected := &Category{ID: "c1", Num: 7, Name: "Fiction", IconName: "library"}
		mockRepo.On("Create", ctx, NewCategory{Name: "Fiction", IconName: "library"}).Return(expected, nil)

		res, err := svc.AddCategory(ctx, NewCategory{Name: " Fiction ", IconName: "library"})
		assert.NoError(t, err)
		assert.Equal(t, expected, res)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown icon falls back to book", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Create", ctx, NewCategory{Name: "Poetry", IconName: DefaultIcon}).
			Return(&Category{ID: "c2"}, nil)

		_, err := svc.AddCategory(ctx, NewCategory{Name: "Poetry", IconName: "unicorn"})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Name required", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.AddCategory(ctx, NewCategory{Name: "  "})

		assert.Equal(t, "Name is required", apiclient.Message(err, ""))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("api error"))

		_, err := svc.AddCategory(ctx, NewCategory{Name: "Fiction"})
		assert.Error(t, err)
	})
}

func TestService_GetCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("List", ctx).Return([]Category{{ID: "c1"}, {ID: "c2"}}, nil)

		res, err := svc.GetCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("Error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("List", ctx).Return(nil, errors.New("api error"))

		_, err := svc.GetCategories(ctx)
		assert.Error(t, err)
	})
}

func TestService_DeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Delete", ctx, "c1").Return(nil)

		assert.NoError(t, svc.DeleteCategory(ctx, "c1"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing id", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		assert.ErrorIs(t, svc.DeleteCategory(ctx, ""), ErrCategoryID)
	})
}

func TestHelpers(t *testing.T) {
	all := tree()

	t.Run("TopLevel", func(t *testing.T) {
		top := TopLevel(all)
		require.Len(t, top, 2)
		assert.Equal(t, "Fiction", top[0].Name)
		assert.Equal(t, "Science", top[1].Name)
	})

	t.Run("Children", func(t *testing.T) {
		parent := 1
		kids := Children(all, &parent)
		require.Len(t, kids, 2)
		assert.Equal(t, "Fantasy", kids[0].Name)

		leaf := 4
		assert.Empty(t, Children(all, &leaf))
	})

	t.Run("FindByName", func(t *testing.T) {
		c, ok := FindByName(all, "  fiction ")
		require.True(t, ok)
		assert.Equal(t, 1, c.Num)

		_, ok = FindByName(all, "History")
		assert.False(t, ok)
	})

	t.Run("ValidIcon", func(t *testing.T) {
		assert.Equal(t, "rocket", ValidIcon("rocket"))
		assert.Equal(t, DefaultIcon, ValidIcon(""))
		assert.Equal(t, DefaultIcon, Category{IconName: "dragon"}.Icon())
	})
}
