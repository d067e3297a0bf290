package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/job-tracker/internal/domain"
)

func (h *handler) listReferrals(c *gin.Context) {
	var filter domain.ReferralFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindError(c, err)
		return
	}

	refs, err := h.Referrals.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"referrals": refs})
}

func (h *handler) createReferral(c *gin.Context) {
	var in domain.ReferralCreate
	// user_id defaults to the tracker owner; the service validates after filling it
	if !decodeJSON(c, &in) {
		return
	}

	ref, n, err := h.Referrals.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"referral": ref, "notification": n})
}

func (h *handler) updateReferral(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var in domain.ReferralUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	ref, n, err := h.Referrals.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"referral": ref, "notification": n})
}

func (h *handler) deleteReferral(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	n, err := h.Referrals.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": n})
}
