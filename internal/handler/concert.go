// Package handler contains the HTTP handlers for the concert collection.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"concertd/internal/model"
	"concertd/internal/store"
	"concertd/internal/view"
)

// Error messages shared across handlers.  The wire contract for every
// failure is {"error": "<message>"} with a 4xx status.
const (
	msgMissingFields    = "Missing field(s)"
	msgWrongDatetime    = "Wrong datetime format"
	msgAlreadyExists    = "Resource already exists"
	msgNotFound         = "Resource not found"
	msgMethodNotAllowed = "Method Not Allowed"
	msgBadContentType   = "Incorrect Content-Type"
	msgBadContentOrBody = "Incorrect Content-Type or no JSON payload"
)

// ConcertHandler serves every /concerts route.  It owns no state of its
// own; all reads and mutations go through the injected store.
type ConcertHandler struct {
	Store *store.ConcertStore
	Log   *slog.Logger
}

// CreateConcert handles POST /concerts.  The body must carry artist,
// venue and an ISO-8601 date; an optional id is accepted when unused and
// advances the counter past itself.  On success the response is an empty
// 201 with a Location header pointing at the new resource.
func (h *ConcertHandler) CreateConcert(c echo.Context) error {
	if !isJSONRequest(c) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msgBadContentType})
	}
	var body model.ConcertBody
	if err := c.Bind(&body); err != nil {
		h.Log.Debug("create: bad request body", "err", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msgBadContentType})
	}
	if body.Artist == nil || body.Venue == nil || body.Date == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msgMissingFields})
	}
	date, err := time.Parse(time.RFC3339, *body.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msgWrongDatetime})
	}

	var id int
	if body.ID != nil {
		id = *body.ID
		if _, ok := h.Store.FindIndex(id); ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": msgAlreadyExists})
		}
		h.Store.BumpPast(id)
	} else {
		id = h.Store.NextID()
	}

	h.Store.Insert(model.Concert{ID: id, Artist: *body.Artist, Venue: *body.Venue, Date: date})
	h.Log.Debug("concert created", "id", id)

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/concerts/%d", id))
	return c.NoContent(http.StatusCreated)
}

// PostConcertByID handles POST /concerts/:id.  The endpoint never
// creates anything; it only reports whether the id is taken (409) or
// absent (404).
func (h *ConcertHandler) PostConcertByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msgNotFound})
	}
	if _, ok := h.Store.FindIndex(id); ok {
		return c.JSON(http.StatusConflict, map[string]string{"error": msgAlreadyExists})
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": msgNotFound})
}

// ListConcerts handles GET /concerts.  The result passes through the
// view pipeline: paginate with limit/offset, project onto the requested
// fields, then encode dates.
func (h *ConcertHandler) ListConcerts(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid limit"})
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid offset"})
	}
	fields := c.QueryParam("fields")

	records := view.FromConcerts(h.Store.All())
	records = view.Paginate(records, limit, offset)
	records = view.Project(records, fields)
	records = view.EncodeDates(records, "date")
	return c.JSON(http.StatusOK, records)
}

// GetConcert handles GET /concerts/:id, applying the optional fields
// projection and date encoding to the single matching record.
func (h *ConcertHandler) GetConcert(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msgNotFound})
	}
	idx, ok := h.Store.FindIndex(id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msgNotFound})
	}
	records := []view.Record{view.FromConcert(h.Store.At(idx))}
	records = view.Project(records, c.QueryParam("fields"))
	records = view.EncodeDates(records, "date")
	return c.JSON(http.StatusOK, records[0])
}

// ReplaceConcert handles PUT /concerts/:id.  All three fields are
// required.  An existing record is replaced in full (204); an unknown id
// is created with that id, advancing the counter past it (201).  Neither
// outcome returns a body.
func (h *ConcertHandler) ReplaceConcert(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msgNotFound})
	}
	if !isJSONRequest(c) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msgBadContentOrBody})
	}
	var body model.ConcertBody
	if err := c.Bind(&body); err != nil {
		h.Log.Debug("put: bad request body", "id", id, "err", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msgBadContentOrBody})
	}
	if body.Artist == nil || body.Venue == nil || body.Date == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msgMissingFields})
	}
	date, err := time.Parse(time.RFC3339, *body.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msgWrongDatetime})
	}

	concert := model.Concert{ID: id, Artist: *body.Artist, Venue: *body.Venue, Date: date}
	if idx, ok := h.Store.FindIndex(id); ok {
		h.Store.Replace(idx, concert)
		return c.NoContent(http.StatusNoContent)
	}
	h.Store.BumpPast(id)
	h.Store.Insert(concert)
	h.Log.Debug("concert created via PUT", "id", id)
	return c.NoContent(http.StatusCreated)
}

// PatchConcert handles PATCH /concerts/:id.  Only the fields present in
// the body are merged into the stored record; the date is validated
// before anything is written so a bad request leaves the record intact.
func (h *ConcertHandler) PatchConcert(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msgNotFound})
	}
	if !isJSONRequest(c) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msgBadContentType})
	}
	var body model.ConcertPatch
	if err := c.Bind(&body); err != nil {
		h.Log.Debug("patch: bad request body", "id", id, "err", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msgBadContentType})
	}
	idx, ok := h.Store.FindIndex(id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msgNotFound})
	}

	concert := h.Store.At(idx)
	if body.Date != nil {
		date, err := time.Parse(time.RFC3339, *body.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": msgWrongDatetime})
		}
		concert.Date = date
	}
	if body.Artist != nil {
		concert.Artist = *body.Artist
	}
	if body.Venue != nil {
		concert.Venue = *body.Venue
	}
	h.Store.Replace(idx, concert)
	return c.NoContent(http.StatusNoContent)
}

// DeleteConcert handles DELETE /concerts/:id.  The removed record is
// returned date-encoded with a 200.
func (h *ConcertHandler) DeleteConcert(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msgNotFound})
	}
	idx, ok := h.Store.FindIndex(id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msgNotFound})
	}
	removed := h.Store.RemoveAt(idx)
	h.Log.Debug("concert deleted", "id", id)
	records := view.EncodeDates([]view.Record{view.FromConcert(removed)}, "date")
	return c.JSON(http.StatusOK, records[0])
}

// MethodNotAllowed rejects collection-level PUT, PATCH and DELETE.
func (h *ConcertHandler) MethodNotAllowed(c echo.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, map[string]string{"error": msgMethodNotAllowed})
}

// parseID reads the :id path parameter as a non-negative integer.
// Non-integer and negative segments fail, which callers map to the same
// 404 the routing layer of the original service produced.
func parseID(c echo.Context) (int, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// queryInt reads an integer query parameter, defaulting to 0 when absent.
func queryInt(c echo.Context, name string) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

// isJSONRequest reports whether the request declares a JSON payload.
func isJSONRequest(c echo.Context) bool {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(strings.TrimSpace(strings.ToLower(ctype)), echo.MIMEApplicationJSON)
}
