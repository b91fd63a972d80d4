package request

// MapViewRequest is the client map state. Types and Disabled accept repeated
// parameters or comma separated lists.
type MapViewRequest struct {
	Types           []string `form:"types"`
	Disabled        []string `form:"disabled"`
	Query           string   `form:"q" binding:"max=255"`
	Zoom            *float64 `form:"zoom" binding:"omitempty,min=0,max=24"`
	RendererMaxZoom *float64 `form:"renderer_max_zoom" binding:"omitempty,min=0,max=24"`
	Animate         *bool    `form:"animate"`
	PaddingX        *int     `form:"padding_x" binding:"omitempty,min=0,max=2000"`
	PaddingY        *int     `form:"padding_y" binding:"omitempty,min=0,max=2000"`
	MaxZoom         *float64 `form:"max_zoom" binding:"omitempty,min=0,max=24"`
}
