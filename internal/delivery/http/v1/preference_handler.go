package v1

import (
	"net/http"

	"jtrack-backend/internal/delivery/http/response"
	"jtrack-backend/internal/domain"
	"jtrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	preferenceUC domain.PreferenceUsecase
}

// NewPreferenceHandler registers preference routes
func NewPreferenceHandler(r *gin.RouterGroup, preferenceUC domain.PreferenceUsecase) {
	handler := &PreferenceHandler{preferenceUC: preferenceUC}

	prefs := r.Group("/users/me/preferences")
	{
		prefs.GET("", handler.Get)
		prefs.PUT("", handler.Update)
	}
}

// Get godoc
// @Summary      Get display preferences
// @Description  Get the user's view mode and font size, defaults when never saved
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Preferences}
// @Failure      401  {object}  response.Response
// @Router       /users/me/preferences [get]
// @Security     BearerAuth
func (h *PreferenceHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	prefs, err := h.preferenceUC.Get(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Preferences retrieved", prefs)
}

// Update godoc
// @Summary      Update display preferences
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body      domain.PreferencesForm  true  "Preferences"
// @Success      200   {object}  response.Response{data=domain.Preferences}
// @Failure      400   {object}  response.Response
// @Router       /users/me/preferences [put]
// @Security     BearerAuth
func (h *PreferenceHandler) Update(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var form domain.PreferencesForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	prefs, err := h.preferenceUC.Update(c.Request.Context(), userID, &form)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Preferences updated", prefs)
}
