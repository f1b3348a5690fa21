package review

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/audit"
	"github.com/av954416-web/javadrive/internal/domain/catalog"
	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/dto"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/models"
)

const (
	MinRating = 1
	MaxRating = 5
)

// ======================================================
// CREATE
// ======================================================

type CreateReviewInput struct {
	CarID   uuid.UUID
	Rating  int
	Comment string
}

type CreateReview struct {
	repo  catalog.Repository
	audit *audit.Dispatcher
}

func NewCreateReview(repo catalog.Repository, audit *audit.Dispatcher) *CreateReview {
	return &CreateReview{repo: repo, audit: audit}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	p identity.Principal,
	in CreateReviewInput,
) (*dto.ReviewDTO, error) {

	if in.Rating < MinRating || in.Rating > MaxRating {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	if _, err := uc.repo.GetCar(ctx, in.CarID); err != nil {
		return nil, err
	}

	done, err := uc.repo.HasReviewed(ctx, in.CarID, p.UserID)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, httperr.ErrBusiness("already_reviewed")
	}

	r := &models.Review{
		CarID:   in.CarID,
		UserID:  p.UserID,
		Rating:  in.Rating,
		Comment: strings.TrimSpace(in.Comment),
	}

	// The unique index settles two concurrent submissions.
	if err := uc.repo.CreateReview(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &r.ID,
		Metadata: map[string]any{"car_id": in.CarID, "rating": in.Rating},
	})

	out := dto.NewReviewDTO(*r)
	return &out, nil
}

// ======================================================
// OWNER RESPONSE
// ======================================================

type RespondToReview struct {
	repo  catalog.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewRespondToReview(repo catalog.Repository, audit *audit.Dispatcher) *RespondToReview {
	return &RespondToReview{repo: repo, audit: audit, now: time.Now}
}

func (uc *RespondToReview) Execute(
	ctx context.Context,
	p identity.Principal,
	reviewID uuid.UUID,
	response string,
) (*dto.ReviewDTO, error) {

	response = strings.TrimSpace(response)
	if response == "" {
		return nil, httperr.ErrBusiness("empty_response")
	}

	r, err := uc.repo.GetReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	car, err := uc.repo.GetCar(ctx, r.CarID)
	if err != nil {
		return nil, err
	}

	// Admins moderate but do not answer on an owner's behalf.
	if car.OwnerID != p.UserID {
		return nil, httperr.ErrForbidden("not_owner")
	}

	now := uc.now().UTC()
	r.OwnerResponse = &response
	r.RespondedAt = &now

	if err := uc.repo.UpdateReview(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "review_responded",
		Entity:   "review",
		EntityID: &r.ID,
	})

	out := dto.NewReviewDTO(*r)
	return &out, nil
}

// ======================================================
// LIST
// ======================================================

type ListCarReviews struct {
	repo catalog.Repository
}

func NewListCarReviews(repo catalog.Repository) *ListCarReviews {
	return &ListCarReviews{repo: repo}
}

func (uc *ListCarReviews) Execute(ctx context.Context, carID uuid.UUID) ([]dto.ReviewDTO, error) {
	if _, err := uc.repo.GetCar(ctx, carID); err != nil {
		return nil, err
	}

	reviews, err := uc.repo.ListReviewsForCar(ctx, carID)
	if err != nil {
		return nil, err
	}
	return dto.NewReviewList(reviews), nil
}
