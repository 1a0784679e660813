package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"famboard/internal/models/request_models"
	"famboard/internal/services"
	"famboard/pkg/utils"
)

type InviteController struct {
	inviteService services.InviteServiceInterface
}

func NewInviteController(inviteService services.InviteServiceInterface) *InviteController {
	return &InviteController{
		inviteService: inviteService,
	}
}

// CreateInvite godoc
// @Summary Create a family invite code
// @Tags Invites
// @Accept json
// @Produce json
// @Param request body request_models.CreateInviteRequest true "Invite payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invites [post]
func (i *InviteController) CreateInvite(c *gin.Context) {
	var req request_models.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	invite, err := i.inviteService.CreateInvite(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invite, "Invite created successfully")
}

// RequestToJoinFamily godoc
// @Summary Redeem an invite code to request membership
// @Tags Invites
// @Accept json
// @Produce json
// @Param request body request_models.JoinFamilyRequest true "Join payload"
// @Success 200 {object} utils.APIResponse
// @Failure 410 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invites/join [post]
func (i *InviteController) RequestToJoinFamily(c *gin.Context) {
	var req request_models.JoinFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	joinRequest, err := i.inviteService.RequestToJoinFamily(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, joinRequest, "Join request submitted successfully")
}

// RespondToJoinRequest godoc
// @Summary Approve or reject a join request
// @Tags Invites
// @Accept json
// @Produce json
// @Param requestId path string true "Join request ID"
// @Param request body request_models.RespondToJoinRequest true "Response payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /join-requests/{requestId}/respond [post]
func (i *InviteController) RespondToJoinRequest(c *gin.Context) {
	var req request_models.RespondToJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := i.inviteService.RespondToJoinRequest(c.Request.Context(), c.GetString("user_id"), c.Param("requestId"), req.Response)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Join request resolved successfully")
}

// CancelJoinRequest godoc
// @Summary Withdraw the caller's own pending join request
// @Tags Invites
// @Produce json
// @Param requestId path string true "Join request ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /join-requests/{requestId} [delete]
func (i *InviteController) CancelJoinRequest(c *gin.Context) {
	err := i.inviteService.CancelJoinRequest(c.Request.Context(), c.GetString("user_id"), c.Param("requestId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Join request cancelled successfully")
}

// GetPendingJoinRequests godoc
// @Summary List a family's pending join requests
// @Tags Invites
// @Produce json
// @Param familyId path string true "Family ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /join-requests/pending/{familyId} [get]
func (i *InviteController) GetPendingJoinRequests(c *gin.Context) {
	requests, err := i.inviteService.GetPendingJoinRequests(c.Request.Context(), c.Param("familyId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, requests, "Pending join requests fetched successfully")
}

// GetMyJoinRequests godoc
// @Summary List the caller's join requests
// @Tags Invites
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /join-requests/mine [get]
func (i *InviteController) GetMyJoinRequests(c *gin.Context) {
	requests, err := i.inviteService.GetMyJoinRequests(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, requests, "Join requests fetched successfully")
}
