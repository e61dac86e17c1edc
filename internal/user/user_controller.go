package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sahilparmar-7/ams/internal/common"
	"github.com/sahilparmar-7/ams/pkg/responses"
	"github.com/sahilparmar-7/ams/utils"
)

// UserController handles user management requests.
type UserController struct {
	repo UserRepository
}

func NewUserController(repo UserRepository) *UserController {
	return &UserController{repo: repo}
}

// ListUsers godoc
// @Summary List academy users
// @Description Lists users of the caller's academy, optionally filtered by role.
// @Tags Users
// @Param role query string false "Role filter (owner/admin/coordinator/coach/player)"
// @Success 200 {object} responses.SuccessResponse
// @Router /users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	academyID := common.GetAcademyIDFromContext(c)
	users, err := uc.repo.ListByAcademy(c.Request.Context(), academyID, c.Query("role"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch users")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Users retrieved successfully", users)
}

// GetUser godoc
// @Summary Get one user
// @Tags Users
// @Param user_id path string true "User ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /users/{user_id} [get]
func (uc *UserController) GetUser(c *gin.Context) {
	u, err := uc.repo.GetByID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch user")
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}
	if u.AcademyID != common.GetAcademyIDFromContext(c) {
		responses.Forbidden(c, "User belongs to another academy")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", u)
}

// UpdateStatus godoc
// @Summary Toggle a user's active/inactive status
// @Tags Users
// @Param user_id path string true "User ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} responses.SuccessResponse
// @Router /users/{user_id}/status [patch]
func (uc *UserController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Status must be 'active' or 'inactive'")
		return
	}

	target, err := uc.repo.GetByID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch user")
		return
	}
	if target == nil {
		responses.NotFound(c, "User")
		return
	}
	if target.AcademyID != common.GetAcademyIDFromContext(c) {
		responses.Forbidden(c, "User belongs to another academy")
		return
	}

	if err := uc.repo.UpdateStatus(c.Request.Context(), target.UserID, req.Status); err != nil {
		responses.InternalServerError(c, "Failed to update status")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Status updated", gin.H{"id": target.UserID, "status": req.Status})
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Deletes a user after re-verifying the acting user's password.
// @Tags Users
// @Param user_id path string true "User ID"
// @Param request body DeleteUserRequest true "Acting user's password"
// @Success 200 {object} responses.SuccessResponse
// @Router /users/{user_id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Password is required to delete a user")
		return
	}

	actorID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	actor, err := uc.repo.GetByID(c.Request.Context(), actorID)
	if err != nil || actor == nil {
		responses.Unauthorized(c, "Acting user not found")
		return
	}
	if !utils.CheckPassword(actor.Password, req.Password) {
		responses.Forbidden(c, "Password verification failed")
		return
	}

	target, err := uc.repo.GetByID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch user")
		return
	}
	if target == nil {
		responses.NotFound(c, "User")
		return
	}
	if target.AcademyID != actor.AcademyID {
		responses.Forbidden(c, "User belongs to another academy")
		return
	}

	if err := uc.repo.Delete(c.Request.Context(), target.UserID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			responses.NotFound(c, "User")
			return
		}
		responses.InternalServerError(c, "Failed to delete user")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User deleted", gin.H{"id": target.UserID})
}
