package v1

import (
	"net/http"
	"strings"

	"jtrack-backend/internal/delivery/http/middleware"
	"jtrack-backend/internal/delivery/http/response"
	"jtrack-backend/internal/domain"
	"jtrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers auth routes on the public and protected groups.
// Sign-in carries the strictest rate limit; sign-up the general auth one.
func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/signup", middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig()), handler.SignUp)
		auth.POST("/signin", middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig()), handler.SignIn)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.POST("/signout", handler.SignOut)
		protectedAuth.GET("/me", handler.Me)
	}
}

// SignUp godoc
// @Summary      Register a new account
// @Description  Create a Supabase auth account with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.SignUpForm  true  "Credentials"
// @Success      201   {object}  response.Response{data=domain.AuthSession}
// @Failure      400   {object}  response.Response
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var form domain.SignUpForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	session, err := h.authUC.SignUp(c.Request.Context(), &form)
	if err != nil {
		c.Error(err)
		return
	}

	message := "Account created"
	if session.AccessToken == "" {
		message = "Account created. Check your email to confirm your address."
	}
	response.Success(c, http.StatusCreated, message, session)
}

// SignIn godoc
// @Summary      Sign in
// @Description  Exchange email and password for an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.SignInForm  true  "Credentials"
// @Success      200   {object}  response.Response{data=domain.AuthSession}
// @Failure      401   {object}  response.Response
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var form domain.SignInForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	session, err := h.authUC.SignIn(c.Request.Context(), &form)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Signed in", session)
}

// SignOut godoc
// @Summary      Sign out
// @Description  Revoke the current session and discard cached data
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/signout [post]
// @Security     BearerAuth
func (h *AuthHandler) SignOut(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	accessToken := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	if err := h.authUC.SignOut(c.Request.Context(), userID, accessToken); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Signed out", nil)
}

// Me godoc
// @Summary      Current user
// @Description  Get the signed-in user's profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved", user)
}
