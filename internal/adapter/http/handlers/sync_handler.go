package handlers

import (
	"errors"
	"log"
	"net/http"

	response "billbridge/internal/adapter/http/dto/response"
	"billbridge/internal/usecase"
	"billbridge/internal/usecase/interfaces"
	"billbridge/pkg"

	"github.com/gin-gonic/gin"
)

// SyncHandler exposes the worker's operational status over HTTP.

type SyncHandler struct {
	usecase usecase.ISyncUseCase
	ledger  interfaces.ILedgerClient
}

func NewSyncHandler(uc usecase.ISyncUseCase, ledger interfaces.ILedgerClient) *SyncHandler {
	return &SyncHandler{usecase: uc, ledger: ledger}
}

// GetHealth reports liveness and the Ledger session state.
func (h *SyncHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromHealth(h.ledger.State(), h.ledger.Session()))
}

// GetReport returns the last completed sync run.
func (h *SyncHandler) GetReport(c *gin.Context) {
	rep, ok := h.usecase.LastReport()
	if !ok {
		appErr := pkg.NewDomainErrorSimple("SYNC_REPORT_NOT_FOUND", "No sync run has completed yet", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRunReport(rep))
}

// TriggerRun starts a sync run immediately and returns its report.
func (h *SyncHandler) TriggerRun(c *gin.Context) {
	log.Printf("[sync][handler] manual run requested")
	rep, err := h.usecase.RunAll(c.Request.Context())
	if err != nil {
		log.Printf("[sync][handler] manual run failed err=%v", err)
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sync][handler] manual run done run_id=%s", rep.RunID)
	c.JSON(http.StatusOK, response.FromRunReport(rep))
}

func mapSyncError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRunInProgress):
		return pkg.NewDomainErrorSimple("SYNC_RUN_IN_PROGRESS", "A sync run is already in progress", http.StatusConflict)
	default:
		return pkg.NewDomainError("SYNC_RUN_FAILED", "Sync run aborted", err, http.StatusBadGateway)
	}
}
