package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/job-tracker/internal/domain"
)

func (h *handler) searchJobs(c *gin.Context) {
	var params domain.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.Search.Search(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) saveSearchJob(c *gin.Context) {
	var job domain.SearchJob
	if err := c.ShouldBindJSON(&job); err != nil {
		bindError(c, err)
		return
	}

	res, n, err := h.Search.Save(c.Request.Context(), job)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": res, "notification": n})
}

func (h *handler) exportTargets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"targets": h.Exports.Targets()})
}

func (h *handler) exportBoard(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.Board.Load(ctx); err != nil {
		respondError(c, err)
		return
	}

	res, err := h.Exports.Export(ctx, c.Param("target"), h.Board.Store().Jobs())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
