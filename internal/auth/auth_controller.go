package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sahilparmar-7/ams/config"
	"github.com/sahilparmar-7/ams/internal/common"
	"github.com/sahilparmar-7/ams/internal/user"
	"github.com/sahilparmar-7/ams/pkg/responses"
	"github.com/sahilparmar-7/ams/pkg/token"
	"github.com/sahilparmar-7/ams/pkg/validator"
	"github.com/sahilparmar-7/ams/utils"
)

// AuthController handles signup, login and token refresh.
type AuthController struct {
	repo      AuthRepository
	userRepo  user.UserRepository
	appConfig *config.Config
}

func NewAuthController(repo AuthRepository, userRepo user.UserRepository, appConfig *config.Config) *AuthController {
	return &AuthController{
		repo:      repo,
		userRepo:  userRepo,
		appConfig: appConfig,
	}
}

// Signup godoc
// @Summary Register a new user
// @Tags Auth
// @Param request body SignupRequest true "Signup payload"
// @Success 201 {object} responses.SuccessResponse
// @Router /auth/signup [post]
func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": validator.ParseError(err)})
		return
	}

	existing, err := ac.userRepo.GetByLoginIdentifier(c.Request.Context(), req.Username)
	if err != nil {
		responses.InternalServerError(c, "Failed to check username availability")
		return
	}
	if existing != nil {
		responses.Conflict(c, "Username or email already in use")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Failed to process password")
		return
	}

	now := time.Now()
	u := &user.User{
		UserID:    uuid.NewString(),
		Username:  req.Username,
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		Role:      req.Role,
		AcademyID: req.AcademyID,
		Status:    common.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ac.userRepo.Create(c.Request.Context(), u); err != nil {
		responses.Conflict(c, err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "User registered successfully", u)
}

// Login godoc
// @Summary Log in with username or email
// @Tags Auth
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} responses.SuccessResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": validator.ParseError(err)})
		return
	}

	u, err := ac.userRepo.GetByLoginIdentifier(c.Request.Context(), req.LoginIdentifier)
	if err != nil {
		responses.InternalServerError(c, "Login failed")
		return
	}
	if u == nil || !utils.CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}
	if u.Status == common.StatusInactive {
		responses.Forbidden(c, "Account is inactive")
		return
	}

	pair, err := ac.issueTokenPair(c, u)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue tokens")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Login successful", gin.H{
		"user":   u,
		"tokens": pair,
	})
}

// Refresh godoc
// @Summary Rotate a refresh token for a new token pair
// @Tags Auth
// @Param request body RefreshTokenRequest true "Refresh payload"
// @Success 200 {object} responses.SuccessResponse
// @Router /auth/refresh [post]
func (ac *AuthController) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "refresh_token is required")
		return
	}

	cred, err := ac.repo.GetCredential(c.Request.Context(), req.RefreshToken)
	if err != nil {
		responses.InternalServerError(c, "Refresh failed")
		return
	}
	if cred == nil || cred.ExpiresAt.Before(time.Now()) {
		responses.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	u, err := ac.userRepo.GetByID(c.Request.Context(), cred.UserID)
	if err != nil || u == nil {
		responses.Unauthorized(c, "User no longer exists")
		return
	}

	// Rotation: the presented token is consumed regardless of what follows.
	if err := ac.repo.DeleteCredential(c.Request.Context(), req.RefreshToken); err != nil {
		responses.InternalServerError(c, "Refresh failed")
		return
	}

	pair, err := ac.issueTokenPair(c, u)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue tokens")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Token refreshed", pair)
}

// Logout godoc
// @Summary Revoke all refresh tokens for the authenticated user
// @Tags Auth
// @Success 200 {object} responses.SuccessResponse
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	if err := ac.repo.DeleteCredentialsForUser(c.Request.Context(), userID); err != nil {
		responses.InternalServerError(c, "Logout failed")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Logged out", nil)
}

func (ac *AuthController) issueTokenPair(c *gin.Context, u *user.User) (*TokenPair, error) {
	access, err := token.Generate(u.UserID, u.Role, u.AcademyID,
		ac.appConfig.JWT.AccessTokenSecret, ac.appConfig.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return nil, err
	}

	refresh := utils.GenerateRandomToken(64)
	cred := &Credential{
		UserID:    u.UserID,
		Token:     refresh,
		ExpiresAt: time.Now().AddDate(0, 0, ac.appConfig.JWT.RefreshTokenExpiryDays),
	}
	if err := ac.repo.SaveCredential(c.Request.Context(), cred); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
