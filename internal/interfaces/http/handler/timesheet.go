package handler

import (
	"github.com/gin-gonic/gin"
	contractapp "github.com/hirecoder/backend/internal/application/contract"
)

// TimesheetHandler serves timesheets on hourly contracts
type TimesheetHandler struct {
	BaseHandler
	timesheetService *contractapp.TimesheetService
}

// NewTimesheetHandler creates a new timesheet handler
func NewTimesheetHandler(timesheetService *contractapp.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{timesheetService: timesheetService}
}

// SubmitTimesheet godoc
// @Summary      Log work on an hourly contract
// @Description  total_hours and amount are computed from the times and the contract rate
// @Tags         timesheets
// @Accept       json
// @Produce      json
// @Param        request body contractapp.SubmitTimesheetRequest true "Timesheet"
// @Success      201 {object} dto.Response{data=contractapp.TimesheetResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /timesheets [post]
func (h *TimesheetHandler) SubmitTimesheet(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req contractapp.SubmitTimesheetRequest
	if !h.bindJSON(c, &req) {
		return
	}
	ts, err := h.timesheetService.SubmitTimesheet(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, ts)
}

// GetTimesheet godoc
// @Summary      Get a timesheet
// @Tags         timesheets
// @Produce      json
// @Param        id path string true "Timesheet ID" format(uuid)
// @Success      200 {object} dto.Response{data=contractapp.TimesheetResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /timesheets/{id} [get]
func (h *TimesheetHandler) GetTimesheet(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	ts, err := h.timesheetService.GetTimesheet(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ts)
}

// ListTimesheets godoc
// @Summary      List timesheets
// @Tags         timesheets
// @Produce      json
// @Param        contract_name query string false "Contract name contains"
// @Param        date query string false "Work date (YYYY-MM-DD)"
// @Param        description query string false "Description contains"
// @Param        start_time query string false "Started at or after (HH:MM:SS)"
// @Param        end_time query string false "Ended at or before (HH:MM:SS)"
// @Param        payment_status query string false "PAY_NOW, COMPLETED or FAILED"
// @Param        timesheet_status query string false "PENDING, APPROVED or REJECTED"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]contractapp.TimesheetResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /timesheets [get]
func (h *TimesheetHandler) ListTimesheets(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var q contractapp.TimesheetQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	page, err := h.timesheetService.ListTimesheets(c.Request.Context(), actor, listFilter(c), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessPage(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ReviewTimesheet godoc
// @Summary      Approve or reject a timesheet
// @Description  Only the contract's client, and only timesheet_status may be sent
// @Tags         timesheets
// @Accept       json
// @Produce      json
// @Param        id path string true "Timesheet ID" format(uuid)
// @Param        request body contractapp.ReviewTimesheetRequest true "Decision"
// @Success      200 {object} dto.Response{data=contractapp.TimesheetResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /timesheets/{id} [patch]
// @Router       /timesheets/{id} [put]
func (h *TimesheetHandler) ReviewTimesheet(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req contractapp.ReviewTimesheetRequest
	if !h.bindPatch(c, &req, contractapp.RestrictTimesheetPatch) {
		return
	}
	ts, err := h.timesheetService.ReviewTimesheet(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ts)
}
