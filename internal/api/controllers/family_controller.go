package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"famboard/internal/models/request_models"
	"famboard/internal/services"
	"famboard/pkg/utils"
)

type FamilyController struct {
	familyService services.FamilyServiceInterface
}

func NewFamilyController(familyService services.FamilyServiceInterface) *FamilyController {
	return &FamilyController{
		familyService: familyService,
	}
}

// CreateFamily godoc
// @Summary Create a new family
// @Tags Families
// @Accept json
// @Produce json
// @Param request body request_models.CreateFamilyRequest true "Family payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /families [post]
func (f *FamilyController) CreateFamily(c *gin.Context) {
	var req request_models.CreateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	family, err := f.familyService.CreateFamily(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, family, "Family created successfully")
}

// GetUserFamilies godoc
// @Summary List the caller's families
// @Tags Families
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /families [get]
func (f *FamilyController) GetUserFamilies(c *gin.Context) {
	families, err := f.familyService.GetUserFamilies(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, families, "Families fetched successfully")
}

// GetFamilyByID godoc
// @Summary Get a family by id
// @Tags Families
// @Produce json
// @Param familyId path string true "Family ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /families/{familyId} [get]
func (f *FamilyController) GetFamilyByID(c *gin.Context) {
	family, err := f.familyService.GetFamilyByID(c.Request.Context(), c.Param("familyId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, family, "Family fetched successfully")
}

// UpdateFamily godoc
// @Summary Update family details
// @Tags Families
// @Accept json
// @Produce json
// @Param familyId path string true "Family ID"
// @Param request body request_models.UpdateFamilyRequest true "Partial update payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /families/{familyId} [put]
func (f *FamilyController) UpdateFamily(c *gin.Context) {
	var req request_models.UpdateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	family, err := f.familyService.UpdateFamily(c.Request.Context(), c.Param("familyId"), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, family, "Family updated successfully")
}

// DeleteFamily godoc
// @Summary Delete a family
// @Tags Families
// @Produce json
// @Param familyId path string true "Family ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /families/{familyId} [delete]
func (f *FamilyController) DeleteFamily(c *gin.Context) {
	if err := f.familyService.DeleteFamily(c.Request.Context(), c.Param("familyId"), c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Family deleted successfully")
}

// GetFamilyMembers godoc
// @Summary List family members
// @Tags Families
// @Produce json
// @Param familyId path string true "Family ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /families/{familyId}/members [get]
func (f *FamilyController) GetFamilyMembers(c *gin.Context) {
	members, err := f.familyService.GetFamilyMembers(c.Request.Context(), c.Param("familyId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Members fetched successfully")
}

// UpdateMemberRole godoc
// @Summary Change a member's role
// @Tags Families
// @Accept json
// @Produce json
// @Param familyId path string true "Family ID"
// @Param request body request_models.UpdateMemberRoleRequest true "Role payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /families/{familyId}/members/role [put]
func (f *FamilyController) UpdateMemberRole(c *gin.Context) {
	var req request_models.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := f.familyService.UpdateMemberRole(c.Request.Context(), c.Param("familyId"), c.GetString("user_id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Member role updated successfully")
}

// RemoveMember godoc
// @Summary Remove a member from the family
// @Tags Families
// @Produce json
// @Param familyId path string true "Family ID"
// @Param memberId path string true "Member's user ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /families/{familyId}/members/{memberId} [delete]
func (f *FamilyController) RemoveMember(c *gin.Context) {
	if err := f.familyService.RemoveMember(c.Request.Context(), c.Param("familyId"), c.GetString("user_id"), c.Param("memberId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Member removed successfully")
}

// LeaveFamily godoc
// @Summary Leave a family
// @Tags Families
// @Produce json
// @Param familyId path string true "Family ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /families/{familyId}/leave [post]
func (f *FamilyController) LeaveFamily(c *gin.Context) {
	if err := f.familyService.LeaveFamily(c.Request.Context(), c.Param("familyId"), c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Left family successfully")
}

// GetFamilyStats godoc
// @Summary Admin dashboard counts for a family
// @Tags Families
// @Produce json
// @Param familyId path string true "Family ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /families/{familyId}/stats [get]
func (f *FamilyController) GetFamilyStats(c *gin.Context) {
	stats, err := f.familyService.GetFamilyStats(c.Request.Context(), c.Param("familyId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Family stats fetched successfully")
}
