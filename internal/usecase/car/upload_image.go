package car

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/audit"
	"github.com/av954416-web/javadrive/internal/domain/catalog"
	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/infra/storage"
)

type ImageSaver interface {
	SaveCarImage(ctx context.Context, carID uuid.UUID, r io.Reader) (string, error)
}

type UploadCarImage struct {
	repo   catalog.Repository
	images ImageSaver
	audit  *audit.Dispatcher
}

// NewUploadCarImage accepts a nil saver when object storage is not configured.
func NewUploadCarImage(
	repo catalog.Repository,
	images ImageSaver,
	audit *audit.Dispatcher,
) *UploadCarImage {
	return &UploadCarImage{repo: repo, images: images, audit: audit}
}

// Execute returns the full image list after appending the new URL.
func (uc *UploadCarImage) Execute(
	ctx context.Context,
	p identity.Principal,
	carID uuid.UUID,
	r io.Reader,
) ([]string, error) {

	if uc.images == nil {
		return nil, httperr.ErrBusiness("image_storage_disabled")
	}

	car, err := uc.repo.GetCar(ctx, carID)
	if err != nil {
		return nil, err
	}
	if !p.Owns(car.OwnerID) {
		return nil, httperr.ErrForbidden("not_owner")
	}

	url, err := uc.images.SaveCarImage(ctx, car.ID, r)
	if errors.Is(err, storage.ErrInvalidImage) {
		return nil, httperr.ErrBusiness("invalid_image")
	}
	if err != nil {
		return nil, err
	}

	car.Images = append(car.Images, url)
	if err := uc.repo.UpdateCar(ctx, car); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "car_image_uploaded",
		Entity:   "car",
		EntityID: &car.ID,
		Metadata: map[string]any{"url": url},
	})

	return car.Images, nil
}
