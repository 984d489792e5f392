package handlers

import (
	"net/http"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/errors"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the caller's own profile and activity
type ProfileHandler struct {
	profileService services.ProfileServiceInterface
	auditService   services.AuditServiceInterface
}

func NewProfileHandler(profileService services.ProfileServiceInterface, auditService services.AuditServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		auditService:   auditService,
	}
}

// GetProfile returns username, email and member_since. The profile row is
// created on first read when missing.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, profile, err := h.profileService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewProfileResponse(user, profile))
}

// UpdateProfile changes username and/or email
//
// Method: PUT /api/profile
// Error Responses:
//   - 400: VALIDATION_001 invalid body
//   - 400: CONFLICT_001 / CONFLICT_002 username or email taken
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, profile, err := h.profileService.UpdateProfile(c.Request().Context(), userID, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewProfileResponse(user, profile))
}

// GetActivity pages through the caller's audit trail, newest first.
// Query: offset (default 0), limit (default 20, max 100)
func (h *ProfileHandler) GetActivity(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", services.DefaultActivityLimit)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > services.MaxActivityLimit {
		limit = services.DefaultActivityLimit
	}

	logs, total, err := h.auditService.GetUserActivity(c.Request().Context(), userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewActivityListResponse(logs, total, offset, limit))
}
