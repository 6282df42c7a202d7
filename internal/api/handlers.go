package api

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/youruser/cardforge/internal/faults"
	"github.com/youruser/cardforge/internal/geometry"
	"github.com/youruser/cardforge/internal/render"
	"github.com/youruser/cardforge/internal/template"
)

// Handler serves the rendering API over a shared renderer.
type Handler struct {
	renderer *render.CardRenderer
	log      *zap.Logger
}

// NewHandler builds a handler. A nil logger defaults to nop.
func NewHandler(renderer *render.CardRenderer, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{renderer: renderer, log: log}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// validate builds and validates a template definition without rendering.
func (h *Handler) validate(c *gin.Context) {
	var def template.Definition
	if err := c.BindJSON(&def); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tpl, err := def.Build()
	if err == nil {
		err = tpl.Validate()
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "aspect": tpl.Resolution.Aspect()})
}

type layoutEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Layer   int    `json:"layer"`
	Enabled bool   `json:"enabled"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	W       int    `json:"w"`
	H       int    `json:"h"`
}

// layout resolves every feature's geometry without rendering, in paint
// order, for template preview tooling.
func (h *Handler) layout(c *gin.Context) {
	var def template.Definition
	if err := c.BindJSON(&def); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tpl, err := def.Build()
	if err == nil {
		err = tpl.Validate()
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	w, hgt := tpl.Resolution.Width, tpl.Resolution.Height
	entries := []layoutEntry{}
	for _, f := range tpl.FeaturesByLayer() {
		fd := f.Def()
		box := f.Layout(w, hgt)
		entries = append(entries, layoutEntry{
			ID:      fd.ID,
			Name:    fd.Name,
			Layer:   fd.Layer,
			Enabled: fd.Enabled,
			X:       box.X,
			Y:       box.Y,
			W:       box.W,
			H:       box.H,
		})
	}
	c.JSON(http.StatusOK, gin.H{"canvas": gin.H{"width": w, "height": hgt}, "features": entries})
}

type renderRequest struct {
	Template template.Definition `json:"template"`
	Data     map[string]string   `json:"data"`
}

// renderCard renders one card and responds with the PNG.
func (h *Handler) renderCard(c *gin.Context) {
	var req renderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tpl, err := req.Template.Build()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	img, err := h.renderer.Render(tpl, render.NewCardData(req.Data), render.CardConfig{})
	if err != nil {
		h.log.Warn("render failed", zap.String("template", tpl.Name), zap.Error(err))
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// qr returns a standalone QR PNG for quick previews.
func (h *Handler) qr(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = "cardforge:example"
	}
	size := 400
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			size = v
		}
	}
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// aspect reports the reduced aspect ratio for a resolution, for template
// tooling.
func (h *Handler) aspect(c *gin.Context) {
	w, errW := strconv.Atoi(c.Query("width"))
	hgt, errH := strconv.Atoi(c.Query("height"))
	if errW != nil || errH != nil || w <= 0 || hgt <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "width and height must be positive integers"})
		return
	}
	res := geometry.Resolution{Width: w, Height: hgt}
	c.JSON(http.StatusOK, gin.H{"aspect": res.Aspect()})
}

func statusFor(err error) int {
	switch {
	case faults.IsValidation(err):
		return http.StatusUnprocessableEntity
	case faults.IsResource(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
