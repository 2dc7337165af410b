package handlers

import (
	"net/http"

	"github.com/VihaFernando/TickTocker/internal/auth"
	dom "github.com/VihaFernando/TickTocker/internal/domain"
	"github.com/VihaFernando/TickTocker/internal/dto"
	"github.com/VihaFernando/TickTocker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TimerHandler struct {
	svc       *service.TimerService
	publicURL string
}

// NewTimerHandler returns a TimerHandler. publicURL prefixes share links.
func NewTimerHandler(svc *service.TimerService, publicURL string) *TimerHandler {
	return &TimerHandler{svc: svc, publicURL: publicURL}
}

// Create godoc
// @Summary      Create a timer
// @Description  The first timer of a user becomes the main timer.
// @Tags         timers
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.TimerRequest  true  "Timer body"
// @Success      201   {object}  dto.TimerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /timers [post]
func (h *TimerHandler) Create(c *gin.Context) {
	var req dto.TimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.Create(c.Request.Context(), auth.OwnerIDFromContext(c), req.EventName, req.EventDate.Instant(req.TZOffsetMinutes))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.timerToResponse(t))
}

// List godoc
// @Summary      List the user's timers
// @Description  Ordered by event date, soonest first.
// @Tags         timers
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListTimersResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /timers [get]
func (h *TimerHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), auth.OwnerIDFromContext(c))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]dto.TimerResponse, len(list))
	for i := range list {
		out[i] = h.timerToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListTimersResponse{Items: out})
}

// Main godoc
// @Summary      Get the main timer
// @Description  The flagged main timer, else the soonest upcoming one, else null.
// @Tags         timers
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.MainTimerResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /timers/main [get]
func (h *TimerHandler) Main(c *gin.Context) {
	t, err := h.svc.GetMain(c.Request.Context(), auth.OwnerIDFromContext(c))
	if err != nil {
		writeError(c, err)
		return
	}
	var resp dto.MainTimerResponse
	if t != nil {
		r := h.timerToResponse(*t)
		resp.Timer = &r
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary      Get a timer by ID
// @Tags         timers
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Timer ID"
// @Success      200  {object}  dto.TimerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /timers/{id} [get]
func (h *TimerHandler) GetByID(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.Get(c.Request.Context(), auth.OwnerIDFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.timerToResponse(t))
}

// Update godoc
// @Summary      Update a timer
// @Description  Replaces name and date. The main flag is unchanged.
// @Tags         timers
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string            true  "Timer ID"
// @Param        body  body      dto.TimerRequest  true  "Timer body"
// @Success      200   {object}  dto.TimerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /timers/{id} [put]
func (h *TimerHandler) Update(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.TimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.Update(c.Request.Context(), auth.OwnerIDFromContext(c), id, req.EventName, req.EventDate.Instant(req.TZOffsetMinutes))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.timerToResponse(t))
}

// Delete godoc
// @Summary      Delete a timer
// @Tags         timers
// @Security     CookieAuth
// @Param        id   path  string  true  "Timer ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /timers/{id} [delete]
func (h *TimerHandler) Delete(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), auth.OwnerIDFromContext(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetMain godoc
// @Summary      Make a timer the main timer
// @Tags         timers
// @Security     CookieAuth
// @Param        id   path  string  true  "Timer ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /timers/{id}/main [post]
func (h *TimerHandler) SetMain(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.SetMain(c.Request.Context(), auth.OwnerIDFromContext(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Shared godoc
// @Summary      View a shared timer
// @Description  Public. Only the event name, date and share id are returned.
// @Tags         share
// @Produce      json
// @Param        shareId  path      string  true  "Share ID"
// @Success      200      {object}  dto.PublicTimerResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /share/{shareId} [get]
func (h *TimerHandler) Shared(c *gin.Context) {
	shareID, err := uuid.Parse(c.Param("shareId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	pt, err := h.svc.GetByShareID(c.Request.Context(), shareID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PublicTimerResponse{
		EventName: pt.EventName,
		EventDate: pt.EventDate,
		ShareID:   pt.ShareID.String(),
		Remaining: dto.NewRemainingResponse(pt.EventDate, h.svc.Now()),
	})
}

func (h *TimerHandler) timerToResponse(t dom.Timer) dto.TimerResponse {
	return dto.TimerResponse{
		ID:            t.ID.String(),
		EventName:     t.EventName,
		EventDate:     t.EventDate,
		IsMainDisplay: t.IsMainDisplay,
		ShareID:       t.ShareID.String(),
		ShareURL:      h.publicURL + "/share/" + t.ShareID.String(),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
		Remaining:     dto.NewRemainingResponse(t.EventDate, h.svc.Now()),
	}
}
