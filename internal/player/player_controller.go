package player

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sahilparmar-7/ams/internal/common"
	"github.com/sahilparmar-7/ams/pkg/responses"
	"github.com/sahilparmar-7/ams/pkg/stats"
	"github.com/sahilparmar-7/ams/pkg/validator"
)

// PlayerController handles player-data requests.
type PlayerController struct {
	repo PlayerRepository
}

func NewPlayerController(repo PlayerRepository) *PlayerController {
	return &PlayerController{repo: repo}
}

// CreatePlayer godoc
// @Summary Create a player record
// @Tags Players
// @Param request body CreatePlayerRequest true "Player payload"
// @Success 201 {object} responses.SuccessResponse
// @Router /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": validator.ParseError(err)})
		return
	}

	attrs := req.Attrs
	if attrs == nil {
		attrs = map[string]float64{}
	}
	p := &PlayerData{
		PlayerID:           uuid.NewString(),
		AcademyID:          common.GetAcademyIDFromContext(c),
		Name:               req.Name,
		Position:           req.Position,
		Age:                req.Age,
		Attributes:         attrs,
		PerformanceHistory: []PerformanceEntry{},
		Stamina:            req.Stamina,
		LastUpdated:        time.Now(),
	}
	if err := pc.repo.Create(c.Request.Context(), p); err != nil {
		responses.InternalServerError(c, "Failed to create player")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player created", p)
}

// ListPlayers godoc
// @Summary List players of the caller's academy
// @Tags Players
// @Success 200 {object} responses.SuccessResponse
// @Router /players [get]
func (pc *PlayerController) ListPlayers(c *gin.Context) {
	players, err := pc.repo.ListByAcademy(c.Request.Context(), common.GetAcademyIDFromContext(c))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch players")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Players retrieved successfully", players)
}

// GetPlayer godoc
// @Summary Get one player with the derived overall rating
// @Tags Players
// @Param player_id path string true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /players/{player_id} [get]
func (pc *PlayerController) GetPlayer(c *gin.Context) {
	p, ok := pc.fetchScoped(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"player":        p,
		"overallRating": stats.OverallRating(p.Attributes),
	})
}

// UpdateAttributes godoc
// @Summary Merge attribute updates into a player record
// @Description Accepts either attribute vocabulary; untouched keys survive.
// @Tags Players
// @Param player_id path string true "Player ID"
// @Param request body UpdateAttributesRequest true "Attribute payload"
// @Success 200 {object} responses.SuccessResponse
// @Router /players/{player_id}/attributes [put]
func (pc *PlayerController) UpdateAttributes(c *gin.Context) {
	var req UpdateAttributesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": validator.ParseError(err)})
		return
	}
	for k, v := range req.Attributes {
		if v < 0 || v > 10 {
			responses.BadRequest(c, "Attribute '"+k+"' must be between 0 and 10")
			return
		}
	}

	p, ok := pc.fetchScoped(c)
	if !ok {
		return
	}
	if err := pc.repo.MergeAttributes(c.Request.Context(), p.PlayerID, req.Attributes, req.Stamina); err != nil {
		responses.InternalServerError(c, "Failed to update attributes")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Attributes updated", gin.H{"id": p.PlayerID})
}

// RecordPerformance godoc
// @Summary Append a performance entry
// @Description Appends to performanceHistory and recomputes averagePerformance.
// @Tags Players
// @Param player_id path string true "Player ID"
// @Param request body RecordPerformanceRequest true "Performance payload"
// @Success 200 {object} responses.SuccessResponse
// @Router /players/{player_id}/performance [post]
func (pc *PlayerController) RecordPerformance(c *gin.Context) {
	var req RecordPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": validator.ParseError(err)})
		return
	}

	p, ok := pc.fetchScoped(c)
	if !ok {
		return
	}

	entry := PerformanceEntry{Date: time.Now(), Score: req.Score, Notes: req.Notes}
	sum := req.Score
	for _, e := range p.PerformanceHistory {
		sum += e.Score
	}
	newAverage := stats.Round2(sum / float64(len(p.PerformanceHistory)+1))

	if err := pc.repo.AppendPerformance(c.Request.Context(), p.PlayerID, entry, newAverage); err != nil {
		responses.InternalServerError(c, "Failed to record performance")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Performance recorded", gin.H{
		"id":                 p.PlayerID,
		"averagePerformance": newAverage,
	})
}

// DeletePlayer godoc
// @Summary Delete a player record
// @Tags Players
// @Param player_id path string true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /players/{player_id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	p, ok := pc.fetchScoped(c)
	if !ok {
		return
	}
	if err := pc.repo.Delete(c.Request.Context(), p.PlayerID); err != nil {
		responses.InternalServerError(c, "Failed to delete player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player deleted", gin.H{"id": p.PlayerID})
}

// fetchScoped loads the path player and enforces academy scoping. On failure
// it writes the response and returns ok=false.
func (pc *PlayerController) fetchScoped(c *gin.Context) (*PlayerData, bool) {
	p, err := pc.repo.GetByID(c.Request.Context(), c.Param("player_id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return nil, false
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return nil, false
	}
	if p.AcademyID != common.GetAcademyIDFromContext(c) {
		responses.Forbidden(c, "Player belongs to another academy")
		return nil, false
	}
	return p, true
}
