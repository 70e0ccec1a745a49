package support

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

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Ticket), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, r Response) (*Ticket, error) {
	args := m.Called(ctx, id, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Ticket), args.Error(1)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)
	mockRepo.On("List", ctx).Return([]Ticket{
		{ID: "t1", Status: StatusOpen},
		{ID: "t2", Status: StatusClosed},
	}, nil)

	page, err := svc.List(ctx, listing.Query{Page: 1, Limit: 10, Filters: map[string]string{"status": StatusClosed}})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "t2", page.Items[0].ID)
}

func TestService_Respond(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		want := Response{Status: StatusInProgress, AdminResponse: "Looking into it"}
		mockRepo.On("Update", ctx, "t1", want).Return(&Ticket{ID: "t1", Status: StatusInProgress}, nil)

		assert.NoError(t, svc.Respond(ctx, "t1", Response{Status: StatusInProgress, AdminResponse: "  Looking into it "}))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Closing needs a response", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		err := svc.Respond(ctx, "t1", Response{Status: StatusClosed})

		assert.Equal(t, "A response is required to close a ticket", apiclient.Message(err, ""))
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown status", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		err := svc.Respond(ctx, "t1", Response{Status: "resolved"})
		assert.Equal(t, "Unknown ticket status", apiclient.Message(err, ""))
	})

	t.Run("Server error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Update", ctx, "t1", mock.Anything).Return(nil, errors.New("gone"))

		assert.Error(t, svc.Respond(ctx, "t1", Response{Status: StatusOpen}))
	})
}

func TestTicket(t *testing.T) {
	assert.Equal(t, "in progress", Ticket{Status: StatusInProgress}.StatusLabel())
	assert.Equal(t, "a@b.c", Ticket{ContactEmail: "a@b.c", User: &Contact{Email: "x@y.z"}}.Email())
	assert.Equal(t, "x@y.z", Ticket{User: &Contact{Email: "x@y.z"}}.Email())
	assert.Equal(t, "", Ticket{}.Email())
}
