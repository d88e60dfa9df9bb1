//
//  Copyright © Opsrig Inc. All rights reserved.
//

package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T) (*handlers, *echo.Echo) {
	t.Helper()
	return newHandlers(NewStore(8), 1<<20), echo.New()
}

func postValidation(t *testing.T, h *handlers, e *echo.Echo, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/validations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h.createValidation(e.NewContext(req, rec))
}

func TestCreateValidation_Collection(t *testing.T) {
	h, e := newTestHandlers(t)

	rec, err := postValidation(t, h, e, `{"mode":"collection","output":"cpu=1\nmem=2"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var record ValidationRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "collection", string(record.Mode))
	assert.Equal(t, 2, record.Summary.Total)
	assert.Equal(t, 2, record.Summary.Valid)
	assert.Len(t, record.Datapoints, 2)
	assert.Empty(t, record.Instances)
}

func TestCreateValidation_AD(t *testing.T) {
	h, e := newTestHandlers(t)

	rec, err := postValidation(t, h, e, `{"mode":"ad","output":"server1##Server One"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var record ValidationRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	require.Len(t, record.Instances, 1)
	assert.Equal(t, "server1", record.Instances[0].ID)
	assert.Empty(t, record.Datapoints)
}

func TestCreateValidation_UnknownMode(t *testing.T) {
	h, e := newTestHandlers(t)

	_, err := postValidation(t, h, e, `{"mode":"script","output":""}`)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCreateValidation_FreeformRejected(t *testing.T) {
	h, e := newTestHandlers(t)

	_, err := postValidation(t, h, e, `{"mode":"freeform","output":"anything"}`)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCreateValidation_OversizedOutput(t *testing.T) {
	h := newHandlers(NewStore(2), 16)
	e := echo.New()

	_, err := postValidation(t, h, e, `{"mode":"collection","output":"`+strings.Repeat("a=1\\n", 32)+`"}`)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusRequestEntityTooLarge, httpErr.Code)
}

func TestGetValidation_Replay(t *testing.T) {
	h, e := newTestHandlers(t)

	rec, err := postValidation(t, h, e, `{"mode":"batchcollection","output":"eth0.rx=5"}`)
	require.NoError(t, err)

	var created ValidationRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	getRec := httptest.NewRecorder()
	c := e.NewContext(req, getRec)
	c.SetPath("/v1/validations/:id")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)

	require.NoError(t, h.getValidation(c))
	assert.Equal(t, http.StatusOK, getRec.Code)

	var replayed ValidationRecord
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &replayed))
	assert.Equal(t, created.ID, replayed.ID)
	require.Len(t, replayed.Datapoints, 1)
	assert.Equal(t, "eth0", replayed.Datapoints[0].Wildvalue)
}

func TestGetValidation_NotFound(t *testing.T) {
	h, e := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/validations/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.getValidation(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestHealth(t *testing.T) {
	h, e := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
