package dto

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  int    `json:"role"`
}

type HomeResponse struct {
	Houses        []HouseResponse        `json:"houses"`
	Reviews       []ReviewResponse       `json:"reviews"`
	GalleryImages []GalleryImageResponse `json:"galleryImages"`
	Contact       *ContactResponse       `json:"contact,omitempty"`
}
