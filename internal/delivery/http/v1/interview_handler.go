package v1

import (
	"net/http"
	"strconv"

	"jtrack-backend/internal/delivery/http/response"
	"jtrack-backend/internal/domain"
	"jtrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

// NewInterviewHandler registers interview routes
func NewInterviewHandler(r *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := r.Group("/interviews")
	{
		interviews.GET("", handler.List)
		interviews.POST("", handler.Create)
		interviews.GET("/:id", handler.Get)
		interviews.PATCH("/:id", handler.Update)
		interviews.DELETE("/:id", handler.Delete)
	}

	// Per-application listing
	r.GET("/applications/:id/interviews", handler.ListByApplication)
}

// List godoc
// @Summary      List interviews
// @Description  Get interviews across all applications, or for one application via application_id
// @Tags         interviews
// @Produce      json
// @Param        application_id  query     string  false  "Filter by application"
// @Success      200             {object}  response.Response{data=[]domain.Interview}
// @Failure      401             {object}  response.Response
// @Router       /interviews [get]
// @Security     BearerAuth
func (h *InterviewHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	interviews, err := h.interviewUC.List(c.Request.Context(), userID, c.Query("application_id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interviews retrieved", interviews)
}

// ListByApplication godoc
// @Summary      List interviews for an application
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  response.Response{data=[]domain.Interview}
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/interviews [get]
// @Security     BearerAuth
func (h *InterviewHandler) ListByApplication(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	interviews, err := h.interviewUC.List(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interviews retrieved", interviews)
}

// Create godoc
// @Summary      Add an interview
// @Description  Record an interview round for an application
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        body  body      domain.InterviewForm  true  "Interview data"
// @Success      201   {object}  response.Response{data=domain.Interview}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /interviews [post]
// @Security     BearerAuth
func (h *InterviewHandler) Create(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var form domain.InterviewForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	iv, err := h.interviewUC.Create(c.Request.Context(), userID, &form)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview added", iv)
}

// Get godoc
// @Summary      Get an interview
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  response.Response{data=domain.Interview}
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [get]
// @Security     BearerAuth
func (h *InterviewHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	iv, err := h.interviewUC.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview retrieved", iv)
}

// Update godoc
// @Summary      Update an interview
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Interview ID"
// @Param        body  body      domain.InterviewUpdateForm  true  "Fields to update"
// @Success      200   {object}  response.Response{data=domain.Interview}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /interviews/{id} [patch]
// @Security     BearerAuth
func (h *InterviewHandler) Update(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var form domain.InterviewUpdateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	iv, err := h.interviewUC.Update(c.Request.Context(), userID, c.Param("id"), &form)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview updated", iv)
}

// Delete godoc
// @Summary      Delete an interview
// @Tags         interviews
// @Produce      json
// @Param        id       path      string  true   "Interview ID"
// @Param        confirm  query     bool    false  "Confirmation flag"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /interviews/{id} [delete]
// @Security     BearerAuth
func (h *InterviewHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	if err := h.interviewUC.Delete(c.Request.Context(), userID, c.Param("id"), confirmed); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview deleted", nil)
}
