package attendance

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sahilparmar-7/ams/internal/common"
	"github.com/sahilparmar-7/ams/pkg/responses"
	"github.com/sahilparmar-7/ams/pkg/stats"
	"github.com/sahilparmar-7/ams/pkg/validator"
)

// AttendanceController handles marking and querying attendance.
type AttendanceController struct {
	repo AttendanceRepository
}

func NewAttendanceController(repo AttendanceRepository) *AttendanceController {
	return &AttendanceController{repo: repo}
}

// Mark godoc
// @Summary Mark attendance for one user on one date
// @Description Upserts on (userId, date, type): re-marking replaces the record.
// @Tags Attendance
// @Param request body MarkRequest true "Attendance payload"
// @Success 200 {object} responses.SuccessResponse
// @Router /attendance [post]
func (ac *AttendanceController) Mark(c *gin.Context) {
	var req MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": validator.ParseError(err)})
		return
	}

	markedBy, _ := common.GetUserIDFromContext(c)
	rec := &Record{
		UserID:    req.UserID,
		Date:      req.Date,
		Status:    req.Status,
		Type:      req.Type,
		MarkedBy:  markedBy,
		AcademyID: common.GetAcademyIDFromContext(c),
		MarkedAt:  time.Now(),
	}
	if err := ac.repo.Mark(c.Request.Context(), rec); err != nil {
		responses.InternalServerError(c, "Failed to mark attendance")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Attendance marked", rec)
}

// List godoc
// @Summary List attendance records
// @Tags Attendance
// @Param userId query string false "User filter"
// @Param type query string false "players or coaches"
// @Param date query string false "Date filter (YYYY-MM-DD)"
// @Success 200 {object} responses.SuccessResponse
// @Router /attendance [get]
func (ac *AttendanceController) List(c *gin.Context) {
	records, err := ac.repo.List(c.Request.Context(), common.GetAcademyIDFromContext(c), Filter{
		UserID: c.Query("userId"),
		Type:   c.Query("type"),
		Date:   c.Query("date"),
	})
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch attendance")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Attendance retrieved successfully", records)
}

// GetStats godoc
// @Summary Attendance statistics for one user
// @Description Returns both presence metrics (strict and late-inclusive).
// @Tags Attendance
// @Param user_id path string true "User ID"
// @Param type query string false "players (default) or coaches"
// @Success 200 {object} responses.SuccessResponse
// @Router /attendance/{user_id}/stats [get]
func (ac *AttendanceController) GetStats(c *gin.Context) {
	userID := c.Param("user_id")
	recType := c.DefaultQuery("type", TypePlayers)

	records, err := ac.repo.List(c.Request.Context(), common.GetAcademyIDFromContext(c), Filter{
		UserID: userID,
		Type:   recType,
	})
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch attendance")
		return
	}

	statuses := make([]string, len(records))
	for i, r := range records {
		statuses[i] = r.Status
	}
	responses.SendSuccess(c, http.StatusOK, "", BuildStats(userID, recType, statuses, time.Now()))
}

// BuildStats assembles the summary from raw statuses. Split out of the
// handler so the percentage wiring is testable without HTTP.
func BuildStats(userID, recType string, statuses []string, now time.Time) Stats {
	strict := stats.PresentStrict(statuses)
	inclusive := stats.PresentInclusiveOfLate(statuses)
	days := stats.DaysPassedInYear(now)

	return Stats{
		UserID:                 userID,
		Type:                   recType,
		TotalMarked:            len(statuses),
		PresentStrict:          strict,
		PresentInclusiveOfLate: inclusive,
		DaysPassedInYear:       days,
		PercentStrict:          stats.AttendancePercent(strict, days),
		PercentInclusiveOfLate: stats.AttendancePercent(inclusive, days),
	}
}
