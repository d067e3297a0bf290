package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/job-tracker/internal/board"
	"github.com/honeycarbs/job-tracker/internal/domain"
)

type statusForm struct {
	Status domain.JobStatus `json:"status" form:"status" binding:"required,oneof=New Saved Applied Interview Offer Rejected"`
}

type boardResponse struct {
	Filter  domain.JobFilter `json:"filter"`
	Jobs    []domain.Job     `json:"jobs"`
	Columns []board.Column   `json:"columns"`
}

func (h *handler) statuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"statuses": domain.Statuses()})
}

func (h *handler) notifications(c *gin.Context) {
	if since := c.Query("since"); since != "" {
		t, err := time.Parse(time.RFC3339Nano, since)
		if err != nil {
			detail(c, http.StatusBadRequest, "since must be an RFC 3339 timestamp")
			return
		}
		c.JSON(http.StatusOK, gin.H{"notifications": h.Feed.Since(t)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": h.Feed.Recent()})
}

func (h *handler) listJobs(c *gin.Context) {
	var filter domain.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindError(c, err)
		return
	}

	if err := h.Board.SetFilter(c.Request.Context(), filter); err != nil {
		respondError(c, err)
		return
	}

	store := h.Board.Store()
	c.JSON(http.StatusOK, boardResponse{
		Filter:  store.Filter(),
		Jobs:    store.Jobs(),
		Columns: store.Columns(),
	})
}

func (h *handler) createJob(c *gin.Context) {
	var in domain.JobCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	job, n, err := h.Board.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job, "notification": n})
}

func (h *handler) getJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	job, err := h.Jobs.GetJob(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *handler) updateJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var in domain.JobUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	job, n, err := h.Board.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job, "notification": n})
}

func (h *handler) deleteJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	n, err := h.Board.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": n})
}

func (h *handler) moveJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var in statusForm
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	n, err := h.Board.Move(c.Request.Context(), id, in.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": n})
}

func (h *handler) dragEnd(c *gin.Context) {
	var ev board.DragEnd
	if err := c.ShouldBindJSON(&ev); err != nil {
		bindError(c, err)
		return
	}

	out, err := h.Board.HandleDragEnd(c.Request.Context(), ev)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
