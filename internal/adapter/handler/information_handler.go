package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/detection-map-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/information"
)

type InformationHandler struct {
	infoSvc InformationService
}

func NewInformationHandler(infoSvc InformationService) *InformationHandler {
	return &InformationHandler{infoSvc: infoSvc}
}

// Root godoc
//
//	@Summary	API liveness
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	response.MessageResponse
//	@Router		/ [get]
func (h *InformationHandler) Root(c *gin.Context) {
	httputil.OK(c, response.MessageResponse{Message: "API is running"})
}

// Health godoc
//
//	@Summary		Database health
//	@Description	Runs a sample query and returns one record when the table is not empty
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	response.HealthResponse
//	@Failure		500	{object}	response.HealthResponse
//	@Router			/health [get]
func (h *InformationHandler) Health(c *gin.Context) {
	status := h.infoSvc.HealthCheck(c.Request.Context())
	if !status.OK {
		c.JSON(http.StatusInternalServerError, response.HealthFromStatus(status))
		return
	}
	httputil.OK(c, response.HealthFromStatus(status))
}

// Create godoc
//
//	@Summary		Create a detection
//	@Tags			information
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.CreateInformationRequest	true	"Detection"
//	@Success		201		{object}	response.InformationResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Router			/information [post]
func (h *InformationHandler) Create(c *gin.Context) {
	var req request.CreateInformationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	info, err := h.infoSvc.Create(c.Request.Context(), information.CreateInput{
		Name:          req.Name,
		Description:   req.Description,
		DetectionDate: req.DetectionDate,
		Feature:       *req.GeoJSON,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.InformationFromEntity(info))
}

// List godoc
//
//	@Summary		List detections
//	@Description	Newest first, optionally restricted to a bounding box
//	@Tags			information
//	@Produce		json
//	@Param			page		query		int		false	"Page"
//	@Param			per_page	query		int		false	"Items per page"
//	@Param			min_lat		query		number	false	"South latitude"
//	@Param			max_lat		query		number	false	"North latitude"
//	@Param			min_lng		query		number	false	"West longitude"
//	@Param			max_lng		query		number	false	"East longitude"
//	@Success		200			{object}	response.InformationListResponse
//	@Failure		400			{object}	httputil.ErrorResponse
//	@Router			/information [get]
func (h *InformationHandler) List(c *gin.Context) {
	var req request.ListInformationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	var bbox *valueobject.BoundingBox
	if req.HasBoundingBox() {
		bbox = valueobject.NewBoundingBox(
			valueobject.NewLatLon(*req.MinLat, *req.MinLng),
			valueobject.NewLatLon(*req.MaxLat, *req.MaxLng),
		)
		if !bbox.IsValid() {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_BBOX", "invalid bounding box")
			return
		}
	}

	items, pageInfo, err := h.infoSvc.List(c.Request.Context(), information.ListInput{
		Page:        req.Page,
		PerPage:     req.PerPage,
		BoundingBox: bbox,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.InformationListFromEntities(items, response.PaginationFromInfo(pageInfo)))
}

// Get godoc
//
//	@Summary	Get a detection with its images
//	@Tags		information
//	@Produce	json
//	@Param		id	path		string	true	"Information ID"
//	@Success	200	{object}	response.InformationResponse
//	@Failure	400	{object}	httputil.ErrorResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/information/{id} [get]
func (h *InformationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid information id")
		return
	}

	info, err := h.infoSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.InformationFromEntity(info))
}
