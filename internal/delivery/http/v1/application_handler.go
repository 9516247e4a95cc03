package v1

import (
	"net/http"
	"strconv"

	"jtrack-backend/internal/delivery/http/response"
	"jtrack-backend/internal/domain"
	"jtrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := r.Group("/applications")
	{
		applications.GET("", handler.List)
		applications.POST("", handler.Create)
		applications.POST("/sample", handler.CreateSample)
		applications.GET("/:id", handler.Get)
		applications.PATCH("/:id", handler.Update)
		applications.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List applications
// @Description  Get all applications for the current user. sort=date orders by application date, newest first.
// @Tags         applications
// @Produce      json
// @Param        sort  query     string  false  "Sort order"  Enums(date)
// @Success      200   {object}  response.Response{data=[]domain.Application}
// @Failure      401   {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	sorted := c.Query("sort") == "date"

	applications, err := h.applicationUC.List(c.Request.Context(), userID, sorted)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// Create godoc
// @Summary      Create an application
// @Description  Track a new job application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ApplicationForm  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Create(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var form domain.ApplicationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.Create(c.Request.Context(), userID, &form)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application created", app)
}

// CreateSample godoc
// @Summary      Create a sample application
// @Description  Seed the account with one example application
// @Tags         applications
// @Produce      json
// @Success      201  {object}  response.Response{data=domain.Application}
// @Failure      401  {object}  response.Response
// @Router       /applications/sample [post]
// @Security     BearerAuth
func (h *ApplicationHandler) CreateSample(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	app, err := h.applicationUC.CreateSample(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Sample application created", app)
}

// Get godoc
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	app, err := h.applicationUC.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application retrieved", app)
}

// Update godoc
// @Summary      Update an application
// @Description  Partially update an application. Absent fields are unchanged.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Application ID"
// @Param        body  body      domain.ApplicationUpdateForm  true  "Fields to update"
// @Success      200   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) Update(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var form domain.ApplicationUpdateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.Update(c.Request.Context(), userID, c.Param("id"), &form)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application updated", app)
}

// Delete godoc
// @Summary      Delete an application
// @Description  Delete an application and its interviews and referrals. Requires confirm=true.
// @Tags         applications
// @Produce      json
// @Param        id       path      string  true   "Application ID"
// @Param        confirm  query     bool    false  "Confirmation flag"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	if err := h.applicationUC.Delete(c.Request.Context(), userID, c.Param("id"), confirmed); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application deleted", nil)
}
