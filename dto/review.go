package dto

import "time"

type ReviewResponse struct {
	ID         uint      `json:"id"`
	GuestName  string    `json:"guestName"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	Avatar     string    `json:"avatar,omitempty"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateReviewRequest struct {
	GuestName string `json:"guestName"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	Avatar    string `json:"avatar,omitempty"`
}

type ApproveReviewRequest struct {
	ID         uint `json:"id"`
	IsApproved bool `json:"isApproved"`
}
