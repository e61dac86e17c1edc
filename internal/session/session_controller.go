package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sahilparmar-7/ams/internal/common"
	"github.com/sahilparmar-7/ams/pkg/responses"
	"github.com/sahilparmar-7/ams/pkg/validator"
)

// SessionController handles training-session requests.
type SessionController struct {
	repo SessionRepository
}

func NewSessionController(repo SessionRepository) *SessionController {
	return &SessionController{repo: repo}
}

// sessionView is a session with its wall-clock-derived status attached.
type sessionView struct {
	Session
	DerivedStatus string `json:"derivedStatus"`
	Duration      int    `json:"durationMinutes"`
}

func view(s Session, now time.Time) sessionView {
	return sessionView{
		Session:       s,
		DerivedStatus: DeriveStatus(&s, now),
		Duration:      DurationMinutes(&s),
	}
}

// CreateSession godoc
// @Summary Create a session
// @Description A session with isRecurring acts as a weekly template; the
// materializer creates its occurrences.
// @Tags Sessions
// @Param request body CreateSessionRequest true "Session payload"
// @Success 201 {object} responses.SuccessResponse
// @Router /sessions [post]
func (sc *SessionController) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": validator.ParseError(err)})
		return
	}
	if req.IsRecurring && len(req.RecurringDays) == 0 {
		responses.BadRequest(c, "recurringDays is required for a recurring session")
		return
	}

	actorID, _ := common.GetUserIDFromContext(c)
	s := &Session{
		SessionID:       uuid.NewString(),
		AcademyID:       common.GetAcademyIDFromContext(c),
		Name:            req.Name,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		AssignedBatch:   req.AssignedBatch,
		AssignedPlayers: req.AssignedPlayers,
		CoachID:         actorID,
		Status:          StatusUpcoming,
		IsRecurring:     req.IsRecurring,
		RecurringDays:   req.RecurringDays,
		Notes:           req.Notes,
		CreatedAt:       time.Now(),
	}
	if s.AssignedPlayers == nil {
		s.AssignedPlayers = []string{}
	}

	if err := sc.repo.Create(c.Request.Context(), s); err != nil {
		responses.InternalServerError(c, "Failed to create session")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Session created", view(*s, time.Now()))
}

// ListSessions godoc
// @Summary List sessions of the caller's academy
// @Description Each session carries a derivedStatus computed from the wall clock.
// @Tags Sessions
// @Success 200 {object} responses.SuccessResponse
// @Router /sessions [get]
func (sc *SessionController) ListSessions(c *gin.Context) {
	sessions, err := sc.repo.ListByAcademy(c.Request.Context(), common.GetAcademyIDFromContext(c))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch sessions")
		return
	}

	now := time.Now()
	views := make([]sessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, view(s, now))
	}
	responses.SendSuccess(c, http.StatusOK, "Sessions retrieved successfully", views)
}

// GetSession godoc
// @Summary Get one session
// @Tags Sessions
// @Param session_id path string true "Session ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /sessions/{session_id} [get]
func (sc *SessionController) GetSession(c *gin.Context) {
	s, ok := sc.fetchScoped(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", view(*s, time.Now()))
}

// CancelSession godoc
// @Summary Cancel a session
// @Tags Sessions
// @Param session_id path string true "Session ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /sessions/{session_id}/cancel [post]
func (sc *SessionController) CancelSession(c *gin.Context) {
	s, ok := sc.fetchScoped(c)
	if !ok {
		return
	}
	if s.CoachID != mustUserID(c) && !common.IsManagementRole(common.GetRoleFromContext(c)) {
		responses.Forbidden(c, "Only the session coach or academy management may cancel this session")
		return
	}
	if err := sc.repo.UpdateStatus(c.Request.Context(), s.SessionID, StatusCancelled); err != nil {
		responses.InternalServerError(c, "Failed to cancel session")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Session cancelled", gin.H{"id": s.SessionID})
}

// DeleteSession godoc
// @Summary Delete a session
// @Tags Sessions
// @Param session_id path string true "Session ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /sessions/{session_id} [delete]
func (sc *SessionController) DeleteSession(c *gin.Context) {
	s, ok := sc.fetchScoped(c)
	if !ok {
		return
	}
	if s.CoachID != mustUserID(c) && !common.IsManagementRole(common.GetRoleFromContext(c)) {
		responses.Forbidden(c, "Only the session coach or academy management may delete this session")
		return
	}
	if err := sc.repo.Delete(c.Request.Context(), s.SessionID); err != nil {
		responses.InternalServerError(c, "Failed to delete session")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Session deleted", gin.H{"id": s.SessionID})
}

func (sc *SessionController) fetchScoped(c *gin.Context) (*Session, bool) {
	s, err := sc.repo.GetByID(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch session")
		return nil, false
	}
	if s == nil {
		responses.NotFound(c, "Session")
		return nil, false
	}
	if s.AcademyID != common.GetAcademyIDFromContext(c) {
		responses.Forbidden(c, "Session belongs to another academy")
		return nil, false
	}
	return s, true
}

func mustUserID(c *gin.Context) string {
	id, _ := common.GetUserIDFromContext(c)
	return id
}
