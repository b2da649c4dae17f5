package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"broskii-backend/services"
)

// GalleryController serves the trip photo gallery listing.
type GalleryController struct {
	Images services.ImageLister
}

func NewGalleryController(images services.ImageLister) *GalleryController {
	return &GalleryController{Images: images}
}

// ListImages returns every gallery asset, newest first. The response
// shape matches what the gallery page consumes: {images: [...]}.
func (ctrl *GalleryController) ListImages(c *gin.Context) {
	images, err := ctrl.Images.ListImages(c.Request.Context())
	if err != nil {
		log.Printf("Cloudinary error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch images",
			"details": err.Error(),
		})
		return
	}

	if images == nil {
		images = []services.GalleryImage{}
	}
	c.JSON(http.StatusOK, gin.H{"images": images})
}
