package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/lr-explorer-server/internal/domain"
	"github.com/lr-explorer-server/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The API is CORS-open; the websocket endpoint follows the same policy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Request bodies for session mutators

type queryRequest struct {
	Query string `json:"query"`
}

type conditionRequest struct {
	Condition string `json:"condition"`
}

type sortRequest struct {
	Key string `json:"key" binding:"required"`
}

type selectRequest struct {
	Test      string `json:"test" binding:"required"`
	Condition string `json:"condition" binding:"required"`
}

type prevalenceRequest struct {
	Percent float64 `json:"percent"`
}

type polarityRequest struct {
	Polarity string `json:"polarity" binding:"required"`
}

// handleCreateSession creates a new explorer session
func (s *Server) handleCreateSession(c *gin.Context) {
	session := s.sessions.Create()
	c.JSON(http.StatusCreated, session.View())
}

// handleGetSession returns the full session snapshot
func (s *Server) handleGetSession(c *gin.Context) {
	session, ok := s.sessionFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.View())
}

// handleDeleteSession removes a session
func (s *Server) handleDeleteSession(c *gin.Context) {
	if err := s.sessions.Delete(c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// handleSetQuery updates the free-text query
func (s *Server) handleSetQuery(c *gin.Context) {
	session, ok := s.sessionFor(c)
	if !ok {
		return
	}
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session.SetQuery(req.Query)
	c.JSON(http.StatusOK, session.View())
}

// handleSetCondition updates the condition filter
func (s *Server) handleSetCondition(c *gin.Context) {
	session, ok := s.sessionFor(c)
	if !ok {
		return
	}
	var req conditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session.SetConditionFilter(req.Condition)
	c.JSON(http.StatusOK, session.View())
}

// handleRequestSort orders the view by a record field, toggling direction on repeat
func (s *Server) handleRequestSort(c *gin.Context) {
	session, ok := s.sessionFor(c)
	if !ok {
		return
	}
	var req sortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	key, err := domain.ParseSortKey(req.Key)
	if err != nil {
		s.renderError(c, err)
		return
	}
	if err := session.RequestSort(key); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.View())
}

// handleSelect makes a visible record the active record
func (s *Server) handleSelect(c *gin.Context) {
	session, ok := s.sessionFor(c)
	if !ok {
		return
	}
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := session.Select(req.Test, req.Condition); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.View())
}

// handleSetPrevalence updates the prevalence slider (clamped, never rejected)
func (s *Server) handleSetPrevalence(c *gin.Context) {
	session, ok := s.sessionFor(c)
	if !ok {
		return
	}
	var req prevalenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session.SetPrevalence(req.Percent)
	c.JSON(http.StatusOK, session.View())
}

// handleSetPolarity updates the test-result polarity
func (s *Server) handleSetPolarity(c *gin.Context) {
	session, ok := s.sessionFor(c)
	if !ok {
		return
	}
	var req polarityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	polarity, err := domain.ParsePolarity(req.Polarity)
	if err != nil {
		s.renderError(c, err)
		return
	}
	if err := session.SetPolarity(polarity); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.View())
}

// handleListRecords serves a stateless filtered/sorted view of the catalog
func (s *Server) handleListRecords(c *gin.Context) {
	query := c.Query("query")
	condition := c.DefaultQuery("condition", domain.AllConditions)

	key, err := domain.ParseSortKey(c.DefaultQuery("sort", string(domain.SortByTest)))
	if err != nil {
		s.renderError(c, err)
		return
	}
	dir := domain.ASCENDING
	if c.Query("dir") == "desc" {
		dir = domain.DESCENDING
	}

	records := service.SortRecords(service.FilterRecords(s.catalog.Records(), query, condition), key, dir)
	c.JSON(http.StatusOK, gin.H{
		"records":    records,
		"conditions": s.catalog.Conditions(),
		"total":      len(records),
	})
}

// handleStudyNotes looks up the study note for a record. Absence is a normal
// state, reported as available=false rather than an error status.
func (s *Server) handleStudyNotes(c *gin.Context) {
	test := c.Query("test")
	condition := c.Query("condition")
	if test == "" || condition == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "test and condition query parameters are required"})
		return
	}

	note, ok := s.catalog.StudyNotesFor(test, condition)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true, "note": note})
}

// handleCatalogSummary serves descriptive statistics over the catalog
func (s *Server) handleCatalogSummary(c *gin.Context) {
	summary, err := service.Summarize(s.catalog)
	if err != nil {
		s.logger.WithError(err).Error("Failed to summarize catalog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to summarize catalog"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// handleStream upgrades to a websocket and pushes a session snapshot after
// every mutation until the client disconnects.
func (s *Server) handleStream(c *gin.Context) {
	session, ok := s.sessionFor(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	updates := session.Subscribe()
	defer session.Unsubscribe(updates)

	// Initial snapshot so the client renders without waiting for a mutation.
	if err := conn.WriteJSON(session.View()); err != nil {
		return
	}

	// Drain client frames to detect disconnects.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snapshot, open := <-updates:
			if !open {
				return
			}
			if err := conn.WriteJSON(snapshot); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// sessionFor resolves the session from the :id path parameter, rendering the
// error response on failure.
func (s *Server) sessionFor(c *gin.Context) (*service.Session, bool) {
	session, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return nil, false
	}
	return session, true
}

// renderError maps domain errors to HTTP status codes
func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrUnknownRecord):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidSortKey), errors.Is(err, domain.ErrInvalidPolarity):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.WithFields(logrus.Fields{
			"correlation_id": c.GetString("correlation_id"),
			"path":           c.FullPath(),
		}).WithError(err).Error("Unhandled API error")
	}

	c.JSON(status, gin.H{
		"error":          err.Error(),
		"correlation_id": c.GetString("correlation_id"),
	})
}
