package batch

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/sahilparmar-7/ams/internal/common"
	"github.com/sahilparmar-7/ams/internal/store"
	"github.com/sahilparmar-7/ams/pkg/responses"
	"github.com/sahilparmar-7/ams/pkg/validator"
)

// BatchController handles batch requests. Ownership is enforced here, not in
// UI code: only the creating coach or a management role may modify a batch.
type BatchController struct {
	repo BatchRepository
	st   *store.Store
}

func NewBatchController(repo BatchRepository, st *store.Store) *BatchController {
	return &BatchController{repo: repo, st: st}
}

// CreateBatch godoc
// @Summary Create a batch
// @Tags Batches
// @Param request body CreateBatchRequest true "Batch payload"
// @Success 201 {object} responses.SuccessResponse
// @Router /batches [post]
func (bc *BatchController) CreateBatch(c *gin.Context) {
	var req CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": validator.ParseError(err)})
		return
	}

	actorID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	coachIDs := req.CoachIDs
	if len(coachIDs) == 0 && common.GetRoleFromContext(c) == common.RoleCoach {
		coachIDs = []string{actorID}
	}
	now := time.Now()
	b := &Batch{
		BatchID:   uuid.NewString(),
		Name:      req.Name,
		AcademyID: common.GetAcademyIDFromContext(c),
		CoachIDs:  coachIDs,
		Players:   req.Players,
		CreatedBy: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if b.CoachIDs == nil {
		b.CoachIDs = []string{}
	}
	if b.Players == nil {
		b.Players = []string{}
	}

	if err := bc.repo.Create(c.Request.Context(), b); err != nil {
		responses.InternalServerError(c, "Failed to create batch")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Batch created", b)
}

// ListBatches godoc
// @Summary List batches of the caller's academy
// @Description Coaches see only batches they are assigned to.
// @Tags Batches
// @Success 200 {object} responses.SuccessResponse
// @Router /batches [get]
func (bc *BatchController) ListBatches(c *gin.Context) {
	academyID := common.GetAcademyIDFromContext(c)

	var batches []Batch
	var err error
	if common.GetRoleFromContext(c) == common.RoleCoach {
		actorID, _ := common.GetUserIDFromContext(c)
		batches, err = bc.repo.ListByCoach(c.Request.Context(), academyID, actorID)
	} else {
		batches, err = bc.repo.ListByAcademy(c.Request.Context(), academyID)
	}
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch batches")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Batches retrieved successfully", batches)
}

// GetBatch godoc
// @Summary Get a batch with coaches and players resolved
// @Tags Batches
// @Param batch_id path string true "Batch ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /batches/{batch_id} [get]
func (bc *BatchController) GetBatch(c *gin.Context) {
	b, ok := bc.fetchScoped(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	academyFilter := bson.M{"academyId": b.AcademyID}
	coachIdx := store.Index(bc.st.FetchOrEmpty(ctx, store.Users, academyFilter))
	playerIdx := store.Index(bc.st.FetchOrEmpty(ctx, store.PlayerData, academyFilter))

	detail := Detail{Batch: b}
	for _, id := range b.CoachIDs {
		detail.Coaches = append(detail.Coaches, MemberRef{ID: id, Name: store.LookupStr(coachIdx, id, "name")})
	}
	for _, id := range b.Players {
		detail.Players = append(detail.Players, MemberRef{ID: id, Name: store.LookupStr(playerIdx, id, "name")})
	}
	responses.SendSuccess(c, http.StatusOK, "", detail)
}

// UpdateBatch godoc
// @Summary Update a batch
// @Description Only the creating coach or a management role may update.
// @Tags Batches
// @Param batch_id path string true "Batch ID"
// @Param request body UpdateBatchRequest true "Update payload"
// @Success 200 {object} responses.SuccessResponse
// @Router /batches/{batch_id} [put]
func (bc *BatchController) UpdateBatch(c *gin.Context) {
	var req UpdateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": validator.ParseError(err)})
		return
	}

	b, ok := bc.fetchScoped(c)
	if !ok {
		return
	}
	if !bc.canManage(c, b) {
		responses.Forbidden(c, "Only the creating coach or academy management may modify this batch")
		return
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.CoachIDs != nil {
		set["coachIds"] = *req.CoachIDs
	}
	if req.Players != nil {
		set["players"] = *req.Players
	}
	if len(set) == 0 {
		responses.BadRequest(c, "Nothing to update")
		return
	}

	if err := bc.repo.Update(c.Request.Context(), b.BatchID, set); err != nil {
		responses.InternalServerError(c, "Failed to update batch")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Batch updated", gin.H{"id": b.BatchID})
}

// DeleteBatch godoc
// @Summary Delete a batch
// @Description Only the creating coach or a management role may delete.
// @Tags Batches
// @Param batch_id path string true "Batch ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /batches/{batch_id} [delete]
func (bc *BatchController) DeleteBatch(c *gin.Context) {
	b, ok := bc.fetchScoped(c)
	if !ok {
		return
	}
	if !bc.canManage(c, b) {
		responses.Forbidden(c, "Only the creating coach or academy management may modify this batch")
		return
	}
	if err := bc.repo.Delete(c.Request.Context(), b.BatchID); err != nil {
		responses.InternalServerError(c, "Failed to delete batch")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Batch deleted", gin.H{"id": b.BatchID})
}

// canManage is the per-action authorization guard: creator, or any
// management role of the same academy.
func (bc *BatchController) canManage(c *gin.Context, b *Batch) bool {
	actorID, err := common.GetUserIDFromContext(c)
	if err != nil {
		return false
	}
	if b.CreatedBy == actorID {
		return true
	}
	return common.IsManagementRole(common.GetRoleFromContext(c))
}

func (bc *BatchController) fetchScoped(c *gin.Context) (*Batch, bool) {
	b, err := bc.repo.GetByID(c.Request.Context(), c.Param("batch_id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch batch")
		return nil, false
	}
	if b == nil {
		responses.NotFound(c, "Batch")
		return nil, false
	}
	if b.AcademyID != common.GetAcademyIDFromContext(c) {
		responses.Forbidden(c, "Batch belongs to another academy")
		return nil, false
	}
	return b, true
}
