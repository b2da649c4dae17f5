package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin/search"
)

const (
	galleryFolder = "Broskii Trips Gallery"

	// Cloudinary's max per search request.
	maxGalleryResults = 500

	thumbTransformation = "c_fill,h_300,w_400,q_auto"
	fullTransformation  = "q_auto"
)

// GalleryImage is the wire shape the gallery page consumes.
type GalleryImage struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	FullURL   string    `json:"fullUrl"`
	Alt       string    `json:"alt"`
	CreatedAt time.Time `json:"created_at"`
}

// ImageLister is what the gallery handler depends on.
type ImageLister interface {
	ListImages(ctx context.Context) ([]GalleryImage, error)
}

// GalleryService lists trip photos from the Cloudinary media library.
type GalleryService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewGalleryService() (*GalleryService, error) {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &GalleryService{cld: cld, folder: galleryFolder}, nil
}

// ListImages returns every asset in the gallery folder, newest first,
// with a fixed-crop thumbnail URL and the original delivery URL.
func (s *GalleryService) ListImages(ctx context.Context) ([]GalleryImage, error) {
	result, err := s.cld.Admin.Search(ctx, search.Query{
		Expression: fmt.Sprintf("folder:%q", s.folder),
		SortBy:     []search.SortByField{{"created_at": search.Descending}},
		MaxResults: maxGalleryResults,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary search: %w", err)
	}

	cloudName := s.cld.Config.Cloud.CloudName
	images := make([]GalleryImage, 0, len(result.Assets))
	for _, asset := range result.Assets {
		alt := asset.Filename
		if alt == "" {
			alt = asset.PublicID
		}
		images = append(images, GalleryImage{
			ID:        asset.PublicID,
			URL:       DeliveryURL(cloudName, thumbTransformation, asset.Version, asset.PublicID, asset.Format),
			FullURL:   DeliveryURL(cloudName, fullTransformation, asset.Version, asset.PublicID, asset.Format),
			Alt:       alt,
			CreatedAt: asset.CreatedAt,
		})
	}
	return images, nil
}

// DeliveryURL builds a versioned Cloudinary delivery URL. The version
// segment keeps CDN caches from serving stale renditions after an
// asset is replaced under the same public id.
func DeliveryURL(cloudName, transformation string, version int, publicID, format string) string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s/v%d/%s.%s",
		cloudName, transformation, version, publicID, format)
}

var _ ImageLister = (*GalleryService)(nil)
