package handlers

import (
	"fmt"
	"net/http"

	"catering/models"
	"catering/services/report"
	"catering/services/reservation"
	"catering/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultPerPage = 10

// ReservationHandler serves the official reservations table and its export.
type ReservationHandler struct {
	Reservations reservation.ReservationService
	Reports      report.ReportService
}

func NewReservationHandler(svc reservation.ReservationService, reports report.ReportService) *ReservationHandler {
	return &ReservationHandler{Reservations: svc, Reports: reports}
}

// ListHandler handles GET /api/reservations?page&perPage&start&end.
func (h *ReservationHandler) ListHandler(c *gin.Context) {
	const op = "listReservations"
	page, err := intQuery(c, op, "page", 1)
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	perPage, err := intQuery(c, op, "perPage", defaultPerPage)
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	dr := models.DateRange{From: c.Query("start"), To: c.Query("end")}

	result, err := h.Reservations.List(c.Request.Context(), page, perPage, dr)
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, result)
}

func (h *ReservationHandler) GetHandler(c *gin.Context) {
	id, err := idParam(c, "getReservation")
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	res, err := h.Reservations.Get(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, res)
}

func (h *ReservationHandler) CreateHandler(c *gin.Context) {
	var input models.ReservationInput
	if err := bindJSON(c, "insertReservation", &input); err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	res, err := h.Reservations.Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	getLogger(c).Info("Reservation created", zap.Int64("id", res.ID))
	utils.JSONOK(c, http.StatusCreated, res)
}

func (h *ReservationHandler) UpdateHandler(c *gin.Context) {
	const op = "updateReservation"
	id, err := idParam(c, op)
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	var patch models.ReservationPatch
	if err := bindJSON(c, op, &patch); err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	res, err := h.Reservations.Update(c.Request.Context(), id, patch)
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, res)
}

func (h *ReservationHandler) DeleteHandler(c *gin.Context) {
	id, err := idParam(c, "deleteReservation")
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	if err := h.Reservations.Delete(c.Request.Context(), id); err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	getLogger(c).Info("Reservation deleted", zap.Int64("id", id))
	utils.JSONOK(c, http.StatusOK, nil)
}

// ExportHandler streams the reservations between start and end as a document download.
func (h *ReservationHandler) ExportHandler(c *gin.Context) {
	format, ok := report.ParseFormat(c.Query("format"))
	if !ok {
		utils.JSONError(c, utils.ValidationError("exportReservations", "format must be pdf, csv or xlsx"), nil)
		return
	}
	rep, err := h.Reports.Export(c.Request.Context(), c.Query("start"), c.Query("end"), format)
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rep.FileName))
	c.Data(http.StatusOK, rep.ContentType, rep.Data)
}
