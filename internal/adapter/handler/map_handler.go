package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/detection-map-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/mapview"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/viewport"
)

type MapHandler struct {
	mapSvc MapService
}

func NewMapHandler(mapSvc MapService) *MapHandler {
	return &MapHandler{mapSvc: mapSvc}
}

// View godoc
//
//	@Summary		Filtered features and camera move
//	@Description	Applies the geometry type toggles and name query, then fits the camera to what is left
//	@Tags			map
//	@Produce		json
//	@Param			types				query		[]string	false	"Enabled geometry types"
//	@Param			disabled			query		[]string	false	"Disabled geometry types"
//	@Param			q					query		string		false	"Name query"
//	@Param			zoom				query		number		false	"Current zoom"
//	@Param			renderer_max_zoom	query		number		false	"Map max zoom"
//	@Param			animate				query		bool		false	"Client supports animated fits"
//	@Param			padding_x			query		int			false	"Horizontal padding"
//	@Param			padding_y			query		int			false	"Vertical padding"
//	@Param			max_zoom			query		number		false	"Fit max zoom"
//	@Success		200					{object}	response.MapViewResponse
//	@Failure		400					{object}	httputil.ErrorResponse
//	@Router			/map/view [get]
func (h *MapHandler) View(c *gin.Context) {
	var req request.MapViewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	state, err := filterState(req)
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_GEOMETRY_TYPE", err.Error())
		return
	}

	input := mapview.ComputeInput{
		Filter:          state,
		CurrentZoom:     req.Zoom,
		RendererMaxZoom: req.RendererMaxZoom,
		Animate:         req.Animate == nil || *req.Animate,
		MaxZoom:         req.MaxZoom,
	}
	if req.PaddingX != nil || req.PaddingY != nil {
		padding := viewport.DefaultPadding
		if req.PaddingX != nil {
			padding[0] = *req.PaddingX
		}
		if req.PaddingY != nil {
			padding[1] = *req.PaddingY
		}
		input.Padding = &padding
	}

	result, err := h.mapSvc.Compute(c.Request.Context(), input)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.MapViewFromResult(result, state))
}

// Tiles godoc
//
//	@Summary	Base layer catalogue and initial camera
//	@Tags		map
//	@Produce	json
//	@Success	200	{object}	response.TilesResponse
//	@Router		/map/tiles [get]
func (h *MapHandler) Tiles(c *gin.Context) {
	httputil.OK(c, response.TilesFromCatalogue(h.mapSvc.TileProviders(), h.mapSvc.InitialCamera()))
}

type unknownGeometryTypeError string

func (e unknownGeometryTypeError) Error() string {
	return "unknown geometry type: " + string(e)
}

// filterState turns the toggles into a FilterState. When types is given only
// the listed known types stay enabled; disabled then switches off the rest.
func filterState(req request.MapViewRequest) (valueobject.FilterState, error) {
	state := valueobject.DefaultFilterState()

	if types := splitList(req.Types); len(types) > 0 {
		enabled := make(map[valueobject.GeometryType]bool, len(types))
		for _, raw := range types {
			t, ok := valueobject.ParseGeometryType(raw)
			if !ok {
				return state, unknownGeometryTypeError(raw)
			}
			enabled[t] = true
		}
		for _, t := range valueobject.KnownGeometryTypes {
			state = state.WithGeometryType(t, enabled[t])
		}
	}

	for _, raw := range splitList(req.Disabled) {
		t, ok := valueobject.ParseGeometryType(raw)
		if !ok {
			return state, unknownGeometryTypeError(raw)
		}
		state = state.WithGeometryType(t, false)
	}

	return state.WithNameQuery(strings.TrimSpace(req.Query)), nil
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
