package dto

import (
	"time"

	"budget-tracker/internal/models"
)

// UpdateProfileRequest changes the caller's username and/or email. Omitted
// fields keep their current value.
type UpdateProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=150"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type ProfileResponse struct {
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	MemberSince models.Date `json:"member_since"`
}

func NewProfileResponse(user *models.User, profile *models.UserProfile) *ProfileResponse {
	return &ProfileResponse{
		Username:    user.Username,
		Email:       user.Email,
		MemberSince: profile.MemberSince,
	}
}

// ActivityResponse is one audit trail entry of the caller's own account.
type ActivityResponse struct {
	Action     string               `json:"action"`
	Resource   string               `json:"resource"`
	ResourceID string               `json:"resource_id,omitempty"`
	IPAddress  string               `json:"ip_address,omitempty"`
	Metadata   models.AuditMetadata `json:"metadata,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

type ActivityListResponse struct {
	Activity []ActivityResponse `json:"activity"`
	Total    int64              `json:"total"`
	Offset   int                `json:"offset"`
	Limit    int                `json:"limit"`
}

func NewActivityListResponse(logs []*models.AuditLog, total int64, offset, limit int) ActivityListResponse {
	items := make([]ActivityResponse, 0, len(logs))
	for _, log := range logs {
		items = append(items, ActivityResponse{
			Action:     log.Action,
			Resource:   log.Resource,
			ResourceID: log.ResourceID,
			IPAddress:  log.IPAddress,
			Metadata:   log.Metadata,
			CreatedAt:  log.CreatedAt,
		})
	}
	return ActivityListResponse{Activity: items, Total: total, Offset: offset, Limit: limit}
}
