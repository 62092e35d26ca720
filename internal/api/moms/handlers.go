package moms

import (
	"strconv"
	"strings"
	"time"

	keycloakauth "github.com/JorgeSaicoski/keycloak-auth"
	"github.com/JorgeSaicoski/microservice-commons/responses"
	"github.com/JorgeSaicoski/site-reporter/internal/db"
	"github.com/JorgeSaicoski/site-reporter/internal/services/moms"
	"github.com/gin-gonic/gin"
)

type MomHandler struct {
	momService *moms.MomService
}

func NewMomHandler(momService *moms.MomService) *MomHandler {
	return &MomHandler{
		momService: momService,
	}
}

func (h *MomHandler) CreateMom(c *gin.Context) {
	var req CreateMomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	mom, err := h.momService.CreateMom(req.ToInput(), userID)
	if err != nil {
		if strings.HasPrefix(err.Error(), "invalid meeting date") {
			responses.BadRequest(c, err.Error())
			return
		}
		responses.InternalError(c, err.Error())
		return
	}

	response := MomToResponse(mom)
	responses.Created(c, "MoM record created successfully", response)
}

func (h *MomHandler) GetMom(c *gin.Context) {
	id, err := momID(c)
	if err != nil {
		responses.BadRequest(c, "Invalid MoM ID")
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	mom, err := h.momService.GetMom(id, userID)
	if err != nil {
		if err.Error() == "access denied: MoM record is private to its author" {
			responses.Unauthorized(c, err.Error())
			return
		}
		responses.NotFound(c, err.Error())
		return
	}

	response := MomToResponse(mom)
	responses.Success(c, "MoM record retrieved successfully", response)
}

func (h *MomHandler) UpdateMom(c *gin.Context) {
	id, err := momID(c)
	if err != nil {
		responses.BadRequest(c, "Invalid MoM ID")
		return
	}

	var req UpdateMomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	mom, err := h.momService.UpdateMom(id, req.ToInput(), userID)
	if err != nil {
		switch {
		case err.Error() == "access denied: MoM record is private to its author":
			responses.Unauthorized(c, err.Error())
		case strings.HasPrefix(err.Error(), "invalid meeting date"):
			responses.BadRequest(c, err.Error())
		case strings.Contains(err.Error(), "not found"):
			responses.NotFound(c, err.Error())
		default:
			responses.InternalError(c, err.Error())
		}
		return
	}

	response := MomToResponse(mom)
	responses.Success(c, "MoM record updated successfully", response)
}

func (h *MomHandler) DeleteMom(c *gin.Context) {
	id, err := momID(c)
	if err != nil {
		responses.BadRequest(c, "Invalid MoM ID")
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.momService.DeleteMom(id, userID); err != nil {
		switch {
		case err.Error() == "access denied: MoM record is private to its author":
			responses.Unauthorized(c, err.Error())
		case strings.Contains(err.Error(), "not found"):
			responses.NotFound(c, err.Error())
		default:
			responses.InternalError(c, err.Error())
		}
		return
	}

	responses.Success(c, "MoM record deleted successfully", gin.H{"id": id})
}

func (h *MomHandler) GetUserMoms(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	// Parse optional date filters
	var startDate, endDate *string

	if startDateStr := c.Query("startDate"); startDateStr != "" {
		if _, err := time.Parse(db.DateLayout, startDateStr); err == nil {
			startDate = &startDateStr
		}
	}

	if endDateStr := c.Query("endDate"); endDateStr != "" {
		if _, err := time.Parse(db.DateLayout, endDateStr); err == nil {
			endDate = &endDateStr
		}
	}

	records, err := h.momService.GetUserMoms(userID, startDate, endDate)
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	momResponses := MomsToResponse(records)
	responses.Success(c, "MoM records retrieved successfully", gin.H{
		"moms":  momResponses,
		"total": len(momResponses),
	})
}

func momID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
