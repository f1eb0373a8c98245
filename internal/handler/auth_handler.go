package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"storefront/internal/auth"
	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/service"
)

const refreshCookieName = "refresh_token"

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService   service.AuthService
	secureCookies bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		secureCookies: secureCookies,
	}
}

// CreateUserRequest represents a user registration request.
type CreateUserRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=6"`
	FullName string     `json:"full_name"`
	Role     model.Role `json:"role" validate:"omitempty,oneof=client admin"`
}

// TokenResponse represents a successful token issuance.
type TokenResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	Role        model.Role `json:"role"`
}

// UserResponse is the public view of a user record.
type UserResponse struct {
	Email    string     `json:"email"`
	FullName string     `json:"full_name,omitempty"`
	Role     model.Role `json:"role"`
}

// CreateUser godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Registration data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /users [post]
func (h *AuthHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.FullName, req.Role); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "user created successfully",
	})
}

// Token godoc
// @Summary Login with form credentials
// @Description Returns an access token and sets the refresh token cookie.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	accessToken, refreshToken, user, err := h.authService.Login(c.Request().Context(), username, password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	h.setRefreshCookie(c, refreshToken)

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		Role:        user.Role,
	})
}

// Refresh godoc
// @Summary Rotate tokens using the refresh cookie
// @Tags auth
// @Produce json
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		httpErr := errors.MapErrorToHTTP(errors.ErrMissingToken)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	accessToken, newRefreshToken, user, err := h.authService.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	h.setRefreshCookie(c, newRefreshToken)

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		Role:        user.Role,
	})
}

// Logout godoc
// @Summary Logout
// @Description Clears the refresh token cookie. Already-issued tokens
// @Description remain valid until they expire.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearRefreshCookie(c)
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// Me godoc
// @Summary Get the current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		httpErr := errors.MapErrorToHTTP(errors.ErrInvalidToken)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	user, err := h.authService.Authenticate(c.Request().Context(), token)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, UserResponse{
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	})
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.RefreshTokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
