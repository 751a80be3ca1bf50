package dto

import "time"

type GalleryImageResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image"`
	AltText     string    `json:"altText"`
	IsFeatured  bool      `json:"isFeatured"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateGalleryImageRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image"`
	AltText     string `json:"altText"`
	IsFeatured  bool   `json:"isFeatured"`
	Order       int    `json:"order"`
}

type UpdateGalleryImageRequest struct {
	ID          uint    `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	AltText     *string `json:"altText,omitempty"`
	IsFeatured  *bool   `json:"isFeatured,omitempty"`
	Order       *int    `json:"order,omitempty"`
}
