package academy

import (
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sahilparmar-7/ams/internal/common"
	"github.com/sahilparmar-7/ams/pkg/responses"
	"github.com/sahilparmar-7/ams/pkg/validator"
)

// Collateral uploads are capped; marketing assets, not media hosting.
const maxCollateralSize = 20 << 20 // 20 MiB

// AcademyController handles the academy profile, about page, achievements and
// collateral uploads.
type AcademyController struct {
	repo    AcademyRepository
	storage *Storage // nil when object storage is not configured
}

func NewAcademyController(repo AcademyRepository, storage *Storage) *AcademyController {
	return &AcademyController{repo: repo, storage: storage}
}

// GetProfile godoc
// @Summary Get the academy profile
// @Tags Academy
// @Success 200 {object} responses.SuccessResponse
// @Router /academy [get]
func (ac *AcademyController) GetProfile(c *gin.Context) {
	academy, err := ac.repo.GetProfile(c.Request.Context(), common.GetAcademyIDFromContext(c))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch academy profile")
		return
	}
	if academy == nil {
		responses.NotFound(c, "Academy profile")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", academy)
}

// UpdateProfile godoc
// @Summary Create or update the academy profile
// @Tags Academy
// @Param request body UpdateProfileRequest true "Profile payload"
// @Success 200 {object} responses.SuccessResponse
// @Router /academy [put]
func (ac *AcademyController) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": validator.ParseError(err)})
		return
	}

	academyID := common.GetAcademyIDFromContext(c)
	if err := ac.repo.UpsertProfile(c.Request.Context(), academyID, req); err != nil {
		responses.InternalServerError(c, "Failed to update academy profile")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Academy profile updated", gin.H{"academyId": academyID})
}

// GetAbout godoc
// @Summary Get the academy about page
// @Tags Academy
// @Success 200 {object} responses.SuccessResponse
// @Router /academy/about [get]
func (ac *AcademyController) GetAbout(c *gin.Context) {
	about, err := ac.repo.GetAbout(c.Request.Context(), common.GetAcademyIDFromContext(c))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch about page")
		return
	}
	if about == nil {
		responses.NotFound(c, "About page")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", about)
}

// UpdateAbout godoc
// @Summary Create or update the academy about page
// @Tags Academy
// @Param request body UpdateAboutRequest true "About payload"
// @Success 200 {object} responses.SuccessResponse
// @Router /academy/about [put]
func (ac *AcademyController) UpdateAbout(c *gin.Context) {
	var req UpdateAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": validator.ParseError(err)})
		return
	}

	about := &About{
		AcademyID: common.GetAcademyIDFromContext(c),
		Title:     req.Title,
		Content:   req.Content,
		UpdatedAt: time.Now(),
	}
	if err := ac.repo.UpsertAbout(c.Request.Context(), about); err != nil {
		responses.InternalServerError(c, "Failed to update about page")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "About page updated", about)
}

// ListAchievements godoc
// @Summary List academy achievements
// @Tags Academy
// @Success 200 {object} responses.SuccessResponse
// @Router /academy/achievements [get]
func (ac *AcademyController) ListAchievements(c *gin.Context) {
	achievements, err := ac.repo.ListAchievements(c.Request.Context(), common.GetAcademyIDFromContext(c))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch achievements")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", achievements)
}

// CreateAchievement godoc
// @Summary Add an achievement
// @Tags Academy
// @Param request body CreateAchievementRequest true "Achievement payload"
// @Success 201 {object} responses.SuccessResponse
// @Router /academy/achievements [post]
func (ac *AcademyController) CreateAchievement(c *gin.Context) {
	var req CreateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": validator.ParseError(err)})
		return
	}

	achievement := &Achievement{
		ID:          uuid.NewString(),
		AcademyID:   common.GetAcademyIDFromContext(c),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now(),
	}
	if err := ac.repo.CreateAchievement(c.Request.Context(), achievement); err != nil {
		responses.InternalServerError(c, "Failed to create achievement")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Achievement created", achievement)
}

// DeleteAchievement godoc
// @Summary Delete an achievement
// @Tags Academy
// @Param achievement_id path string true "Achievement ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /academy/achievements/{achievement_id} [delete]
func (ac *AcademyController) DeleteAchievement(c *gin.Context) {
	id := c.Param("achievement_id")
	err := ac.repo.DeleteAchievement(c.Request.Context(), common.GetAcademyIDFromContext(c), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			responses.NotFound(c, "Achievement")
			return
		}
		responses.InternalServerError(c, "Failed to delete achievement")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Achievement deleted", gin.H{"id": id})
}

// UploadCollateral godoc
// @Summary Upload a marketing collateral asset
// @Description Stores the file in object storage and appends its metadata to
// the academy profile.
// @Tags Academy
// @Accept multipart/form-data
// @Param file formData file true "Asset file"
// @Success 201 {object} responses.SuccessResponse
// @Router /academy/collaterals [post]
func (ac *AcademyController) UploadCollateral(c *gin.Context) {
	if ac.storage == nil {
		responses.SendError(c, http.StatusServiceUnavailable, "Object storage is not configured")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		responses.BadRequest(c, "A file form field is required")
		return
	}
	if fileHeader.Size > maxCollateralSize {
		responses.BadRequest(c, "File exceeds the 20MB collateral limit")
		return
	}

	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Authentication required")
		return
	}
	academyID := common.GetAcademyIDFromContext(c)

	id := uuid.NewString()
	key := "collaterals/" + academyID + "/" + id + filepath.Ext(fileHeader.Filename)
	url, err := ac.storage.Upload(c.Request.Context(), fileHeader, key)
	if err != nil {
		responses.InternalServerError(c, "Failed to upload collateral")
		return
	}

	col := Collateral{
		ID:          id,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		URL:         url,
		Size:        fileHeader.Size,
		UploadedBy:  userID,
		UploadedAt:  time.Now(),
	}
	if err := ac.repo.AppendCollateral(c.Request.Context(), academyID, col); err != nil {
		responses.InternalServerError(c, "Failed to save collateral metadata")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Collateral uploaded", col)
}
