package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"famboard/internal/models/request_models"
	"famboard/internal/services"
	"famboard/pkg/utils"
)

type TaskController struct {
	taskService services.TaskServiceInterface
}

func NewTaskController(taskService services.TaskServiceInterface) *TaskController {
	return &TaskController{
		taskService: taskService,
	}
}

// CreateTask godoc
// @Summary Create a task in a family
// @Tags Tasks
// @Accept json
// @Produce json
// @Param familyId path string true "Family ID"
// @Param request body request_models.CreateTaskRequest true "Task payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /families/{familyId}/tasks [post]
func (t *TaskController) CreateTask(c *gin.Context) {
	var req request_models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := t.taskService.CreateTask(c.Request.Context(), c.Param("familyId"), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, task, "Task created successfully")
}

// ListFamilyTasks godoc
// @Summary List a family's tasks
// @Tags Tasks
// @Produce json
// @Param familyId path string true "Family ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /families/{familyId}/tasks [get]
func (t *TaskController) ListFamilyTasks(c *gin.Context) {
	tasks, err := t.taskService.ListFamilyTasks(c.Request.Context(), c.Param("familyId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tasks, "Tasks fetched successfully")
}

// AssignTask godoc
// @Summary Assign or unassign a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param familyId path string true "Family ID"
// @Param taskId path string true "Task ID"
// @Param request body request_models.AssignTaskRequest true "Assignment payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /families/{familyId}/tasks/{taskId}/assign [put]
func (t *TaskController) AssignTask(c *gin.Context) {
	var req request_models.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := t.taskService.AssignTask(c.Request.Context(), c.Param("familyId"), c.GetString("user_id"), c.Param("taskId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, task, "Task assignment updated successfully")
}
