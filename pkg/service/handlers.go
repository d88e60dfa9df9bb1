//
//  Copyright © Opsrig Inc. All rights reserved.
//

package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/opsrig/scriptout/pkg/scriptoutput"
)

type handlers struct {
	store    *Store
	maxBytes int
}

func newHandlers(store *Store, maxBytes int) *handlers {
	return &handlers{store: store, maxBytes: maxBytes}
}

func (h *handlers) register(e *echo.Echo) {
	e.POST("/v1/validations", h.createValidation)
	e.GET("/v1/validations/:id", h.getValidation)
	e.GET("/healthz", h.health)
}

// createValidation parses the submitted output and stores the result as
// a replayable record.
func (h *handlers) createValidation(c echo.Context) error {
	var req ValidationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	mode, ok := scriptoutput.ParseMode(req.Mode)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("unsupported mode: %q", req.Mode))
	}
	if mode == scriptoutput.ModeFreeform {
		return echo.NewHTTPError(http.StatusBadRequest,
			"freeform output has no structural format to validate")
	}
	if len(req.Output) > h.maxBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("output exceeds limit of %d bytes", h.maxBytes))
	}

	result := scriptoutput.Parse(req.Output, mode)
	record := newRecord(uuid.NewString(), result, time.Now().UTC())

	h.store.Put(record)
	observeValidation(record)

	logger.Debugf("validated %d record(s), %d error(s) [%s]",
		record.Summary.Total, record.Summary.Errors, record.ID)

	return c.JSON(http.StatusCreated, record)
}

// getValidation replays a stored validation record.
func (h *handlers) getValidation(c echo.Context) error {
	record, ok := h.store.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no such validation")
	}
	return c.JSON(http.StatusOK, record)
}

func (h *handlers) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
