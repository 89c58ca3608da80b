package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/user/reelfind/internal/auth"
	"github.com/user/reelfind/internal/config"
	"github.com/user/reelfind/internal/middleware"
	"github.com/user/reelfind/internal/repository"
	"github.com/user/reelfind/internal/service"
	"github.com/user/reelfind/internal/utils"
)

// Handler bundles the HTTP endpoints.
type Handler struct {
	Repos  *repository.Repositories
	Config *config.Config
	Auth   *service.AuthService
	TMDB   *service.TMDBService
	Logger *log.Logger
}

// NewHandler wires the services behind the endpoints.
func NewHandler(repos *repository.Repositories, cfg *config.Config, logger *log.Logger) *Handler {
	return &Handler{
		Repos:  repos,
		Config: cfg,
		Auth:   service.NewAuthService(repos.Users, logger),
		TMDB:   service.NewTMDBService(cfg, logger),
		Logger: logger,
	}
}

// ==================== auth endpoints ====================

// RegisterRequest carries the registration form.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest carries the sign-in form. Redirect is the optional deep
// link the user was heading to before being sent to sign-in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Redirect string `json:"redirect"`
}

// Register creates an account.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithData(c, http.StatusBadRequest, "validation failed", validationDetails(err))
		return
	}

	user, err := h.Auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			utils.BadRequest(c, "user with this email already exists")
			return
		}
		h.Logger.Error("registration failed", "err", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.Created(c, "user created successfully", user)
}

// Login checks credentials, sets the session cookie, and returns the
// resolved post-login redirect target. Exactly one deterministic
// resolution happens here; navigation is the client's single next step.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithData(c, http.StatusBadRequest, "validation failed", validationDetails(err))
		return
	}

	user, err := h.Auth.Authenticate(req.Email, req.Password)
	if err != nil {
		// Same message for unknown email and wrong password.
		utils.Unauthorized(c, service.ErrInvalidCredentials.Error())
		return
	}

	token, err := auth.GenerateToken(user, h.Config.AppSecret, h.Config.SessionTTL)
	if err != nil {
		h.Logger.Error("failed to mint session token", "err", err)
		utils.InternalServerError(c, "sign-in failed, please retry")
		return
	}

	c.SetCookie(middleware.TokenCookie, token, int(h.Config.SessionTTL.Seconds()), "/", "", false, true)

	utils.Success(c, gin.H{
		"user":     user,
		"redirect": auth.ResolveRedirect(req.Redirect, h.Config.SiteURL),
	})
}

// Logout discards the session cookie. Tokens are stateless, so there is
// nothing to revoke server-side.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	utils.Success(c, nil)
}

// Me returns the signed-in user.
func (h *Handler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	user, err := h.Repos.Users.FindByID(userID)
	if err != nil || user == nil {
		utils.Unauthorized(c, "")
		return
	}
	utils.Success(c, user.Public())
}

// validationDetails flattens binding errors into field-level messages.
func validationDetails(err error) map[string]string {
	details := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		details["body"] = "invalid request body"
		return details
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			details[field] = field + " is required"
		case "email":
			details[field] = "invalid email address"
		case "min":
			details[field] = field + " must be at least " + fe.Param() + " characters"
		default:
			details[field] = field + " is invalid"
		}
	}
	return details
}
