package review

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/mocks"
	"github.com/av954416-web/javadrive/internal/models"
)

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	car := &models.Car{ID: uuid.New(), OwnerID: uuid.New()}
	user := identity.Principal{UserID: uuid.New(), Role: identity.RoleUser}

	t.Run("rating bounds", func(t *testing.T) {
		repo := new(mocks.CatalogRepository)
		for _, rating := range []int{0, 6, -1} {
			_, err := NewCreateReview(repo, nil).Execute(ctx, user, CreateReviewInput{CarID: car.ID, Rating: rating})
			assert.True(t, httperr.IsBusiness(err, "invalid_rating"))
		}
		repo.AssertNotCalled(t, "GetCar", mock.Anything, mock.Anything)
	})

	t.Run("one review per user per car", func(t *testing.T) {
		repo := new(mocks.CatalogRepository)
		repo.On("GetCar", mock.Anything, car.ID).Return(car, nil)
		repo.On("HasReviewed", mock.Anything, car.ID, user.UserID).Return(true, nil)

		_, err := NewCreateReview(repo, nil).Execute(ctx, user, CreateReviewInput{CarID: car.ID, Rating: 4})
		assert.True(t, httperr.IsBusiness(err, "already_reviewed"))
	})

	t.Run("unknown car", func(t *testing.T) {
		repo := new(mocks.CatalogRepository)
		repo.On("GetCar", mock.Anything, mock.Anything).Return(nil, httperr.ErrNotFound("car_not_found"))

		_, err := NewCreateReview(repo, nil).Execute(ctx, user, CreateReviewInput{CarID: uuid.New(), Rating: 4})
		assert.True(t, httperr.IsNotFound(err))
	})

	t.Run("success", func(t *testing.T) {
		repo := new(mocks.CatalogRepository)
		repo.On("GetCar", mock.Anything, car.ID).Return(car, nil)
		repo.On("HasReviewed", mock.Anything, car.ID, user.UserID).Return(false, nil)
		repo.On("CreateReview", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil)

		out, err := NewCreateReview(repo, nil).Execute(ctx, user, CreateReviewInput{CarID: car.ID, Rating: 5, Comment: "  great  "})
		require.NoError(t, err)
		assert.Equal(t, 5, out.Rating)
		assert.Equal(t, "great", out.Comment)
		assert.Equal(t, user.UserID, out.UserID)
	})
}

func TestRespondToReview(t *testing.T) {
	ctx := context.Background()
	car := &models.Car{ID: uuid.New(), OwnerID: uuid.New()}
	review := &models.Review{ID: uuid.New(), CarID: car.ID, UserID: uuid.New(), Rating: 3}
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	repo := new(mocks.CatalogRepository)
	repo.On("GetReview", mock.Anything, review.ID).Return(review, nil)
	repo.On("GetCar", mock.Anything, car.ID).Return(car, nil)
	repo.On("UpdateReview", mock.Anything, review).Return(nil)

	uc := NewRespondToReview(repo, nil)
	uc.now = func() time.Time { return now }

	_, err := uc.Execute(ctx, identity.Principal{UserID: uuid.New(), Role: identity.RoleAdmin}, review.ID, "thanks")
	assert.True(t, httperr.IsForbidden(err))

	_, err = uc.Execute(ctx, identity.Principal{UserID: car.OwnerID, Role: identity.RoleOwner}, review.ID, "   ")
	assert.True(t, httperr.IsBusiness(err, "empty_response"))

	out, err := uc.Execute(ctx, identity.Principal{UserID: car.OwnerID, Role: identity.RoleOwner}, review.ID, "Thanks!")
	require.NoError(t, err)
	require.NotNil(t, out.OwnerResponse)
	assert.Equal(t, "Thanks!", *out.OwnerResponse)
	require.NotNil(t, out.RespondedAt)
	assert.True(t, out.RespondedAt.Equal(now))
}
