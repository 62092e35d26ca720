package moms

import (
	"time"

	"github.com/JorgeSaicoski/site-reporter/internal/db"
	svc "github.com/JorgeSaicoski/site-reporter/internal/services/moms"
)

// Request DTOs

// matches the JSON sent by the front-end
type CreateMomRequest struct {
	Title            string  `json:"title" binding:"required"`
	MeetingDate      string  `json:"meetingDate" binding:"required"` // YYYY-MM-DD
	Location         *string `json:"location,omitempty"`
	Attendees        string  `json:"attendees"`
	DiscussionPoints string  `json:"discussionPoints"`
	ActionItems      string  `json:"actionItems"`
}

type UpdateMomRequest struct {
	Title            *string `json:"title"`
	MeetingDate      *string `json:"meetingDate"`
	Location         *string `json:"location"`
	Attendees        *string `json:"attendees"`
	DiscussionPoints *string `json:"discussionPoints"`
	ActionItems      *string `json:"actionItems"`
}

// Response DTOs

type MomResponse struct {
	ID               uint      `json:"id"`
	UserID           string    `json:"userId"`
	Title            string    `json:"title"`
	MeetingDate      string    `json:"meetingDate"`
	Location         *string   `json:"location"`
	Attendees        string    `json:"attendees"`
	DiscussionPoints string    `json:"discussionPoints"`
	ActionItems      string    `json:"actionItems"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Conversion methods

func (r *CreateMomRequest) ToInput() *svc.CreateMomInput {
	return &svc.CreateMomInput{
		Title:            r.Title,
		MeetingDate:      r.MeetingDate,
		Location:         r.Location,
		Attendees:        r.Attendees,
		DiscussionPoints: r.DiscussionPoints,
		ActionItems:      r.ActionItems,
	}
}

func (r *UpdateMomRequest) ToInput() *svc.UpdateMomInput {
	return &svc.UpdateMomInput{
		Title:            r.Title,
		MeetingDate:      r.MeetingDate,
		Location:         r.Location,
		Attendees:        r.Attendees,
		DiscussionPoints: r.DiscussionPoints,
		ActionItems:      r.ActionItems,
	}
}

func MomToResponse(mom *db.MomRecord) MomResponse {
	return MomResponse{
		ID:               mom.ID,
		UserID:           mom.UserID,
		Title:            mom.Title,
		MeetingDate:      mom.MeetingDate,
		Location:         mom.Location,
		Attendees:        mom.Attendees,
		DiscussionPoints: mom.DiscussionPoints,
		ActionItems:      mom.ActionItems,
		CreatedAt:        mom.CreatedAt,
		UpdatedAt:        mom.UpdatedAt,
	}
}

func MomsToResponse(moms []db.MomRecord) []MomResponse {
	responses := make([]MomResponse, len(moms))
	for i, mom := range moms {
		responses[i] = MomToResponse(&mom)
	}
	return responses
}
