package v1

import (
	"net/http"
	"strconv"

	"jtrack-backend/internal/delivery/http/response"
	"jtrack-backend/internal/domain"
	"jtrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	referralUC domain.ReferralUsecase
}

// NewReferralHandler registers referral routes
func NewReferralHandler(r *gin.RouterGroup, referralUC domain.ReferralUsecase) {
	handler := &ReferralHandler{referralUC: referralUC}

	referrals := r.Group("/referrals")
	{
		referrals.GET("", handler.List)
		referrals.POST("", handler.Create)
		referrals.GET("/:id", handler.Get)
		referrals.PATCH("/:id", handler.Update)
		referrals.DELETE("/:id", handler.Delete)
	}

	// Per-application listing
	r.GET("/applications/:id/referrals", handler.ListByApplication)
}

// List godoc
// @Summary      List referrals
// @Description  Get referrals across all applications, or for one application via application_id
// @Tags         referrals
// @Produce      json
// @Param        application_id  query     string  false  "Filter by application"
// @Success      200             {object}  response.Response{data=[]domain.Referral}
// @Failure      401             {object}  response.Response
// @Router       /referrals [get]
// @Security     BearerAuth
func (h *ReferralHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	referrals, err := h.referralUC.List(c.Request.Context(), userID, c.Query("application_id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Referrals retrieved", referrals)
}

// ListByApplication godoc
// @Summary      List referrals for an application
// @Tags         referrals
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  response.Response{data=[]domain.Referral}
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/referrals [get]
// @Security     BearerAuth
func (h *ReferralHandler) ListByApplication(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	referrals, err := h.referralUC.List(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Referrals retrieved", referrals)
}

// Create godoc
// @Summary      Add a referral
// @Description  Record who referred the user for an application
// @Tags         referrals
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ReferralForm  true  "Referral data"
// @Success      201   {object}  response.Response{data=domain.Referral}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /referrals [post]
// @Security     BearerAuth
func (h *ReferralHandler) Create(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var form domain.ReferralForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ref, err := h.referralUC.Create(c.Request.Context(), userID, &form)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Referral added", ref)
}

// Get godoc
// @Summary      Get a referral
// @Tags         referrals
// @Produce      json
// @Param        id   path      string  true  "Referral ID"
// @Success      200  {object}  response.Response{data=domain.Referral}
// @Failure      404  {object}  response.Response
// @Router       /referrals/{id} [get]
// @Security     BearerAuth
func (h *ReferralHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	ref, err := h.referralUC.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Referral retrieved", ref)
}

// Update godoc
// @Summary      Update a referral
// @Tags         referrals
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Referral ID"
// @Param        body  body      domain.ReferralUpdateForm  true  "Fields to update"
// @Success      200   {object}  response.Response{data=domain.Referral}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /referrals/{id} [patch]
// @Security     BearerAuth
func (h *ReferralHandler) Update(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var form domain.ReferralUpdateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ref, err := h.referralUC.Update(c.Request.Context(), userID, c.Param("id"), &form)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Referral updated", ref)
}

// Delete godoc
// @Summary      Delete a referral
// @Tags         referrals
// @Produce      json
// @Param        id       path      string  true   "Referral ID"
// @Param        confirm  query     bool    false  "Confirmation flag"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /referrals/{id} [delete]
// @Security     BearerAuth
func (h *ReferralHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	if err := h.referralUC.Delete(c.Request.Context(), userID, c.Param("id"), confirmed); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Referral deleted", nil)
}
