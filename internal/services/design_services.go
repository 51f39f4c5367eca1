package services

import (
	"context"
	"encoding/json"
	"errors"

	"ApparelStoreAPI/internal/model"
	"ApparelStoreAPI/internal/repository"
)

// ImageUploader pushes artwork to the hosting service and returns the
// public URL.
type ImageUploader interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

type DesignService struct {
	Designs  *repository.DesignRepository
	Products *repository.ProductRepository
	Uploader ImageUploader
}

func NewDesignService(dr *repository.DesignRepository, pr *repository.ProductRepository, up ImageUploader) *DesignService {
	return &DesignService{Designs: dr, Products: pr, Uploader: up}
}

// maximum accepted artwork size, 8 MiB
const maxArtworkBytes = 8 << 20

// CreateDesign uploads the artwork and stores the design record.
// customerID is nil when a guest saves a design during checkout.
func (s *DesignService) CreateDesign(ctx context.Context, customerID *int64, productID int64, filename string, artwork []byte, placement json.RawMessage) (*model.CustomDesign, error) {
	if len(artwork) == 0 {
		return nil, errors.New("artwork file is required")
	}
	if len(artwork) > maxArtworkBytes {
		return nil, errors.New("artwork file too large")
	}
	if _, err := s.Products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	if len(placement) == 0 {
		placement = nil
	} else if !json.Valid(placement) {
		return nil, errors.New("placement must be valid JSON")
	}

	url, err := s.Uploader.Upload(ctx, filename, artwork)
	if err != nil {
		return nil, err
	}

	d := &model.CustomDesign{
		CustomerID: customerID,
		ProductID:  productID,
		ImageURL:   url,
		Placement:  placement,
	}
	id, err := s.Designs.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	d.DesignID = id
	return d, nil
}

func (s *DesignService) Get(ctx context.Context, designID int64) (*model.CustomDesign, error) {
	return s.Designs.GetByID(ctx, designID)
}
