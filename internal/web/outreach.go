package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/outreach"
)

// contactsForm is the contact finder form; role types arrive as comma separated text
type contactsForm struct {
	CompanyType string `json:"company_type"`
	RoleTypes   string `json:"role_types"`
	Location    string `json:"location"`
	UseLinkedIn bool   `json:"use_linkedin"`
	MaxResults  int    `json:"max_results"`
}

func (h *handler) generateEmail(c *gin.Context) {
	var req domain.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.Outreach.GenerateEmail(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) findContacts(c *gin.Context) {
	var form contactsForm
	if !decodeJSON(c, &form) {
		return
	}

	contacts, err := h.Outreach.FindContacts(c.Request.Context(), domain.ContactRequest{
		CompanyType: form.CompanyType,
		RoleTypes:   outreach.SplitRoles(form.RoleTypes),
		Location:    form.Location,
		UseLinkedIn: form.UseLinkedIn,
		MaxResults:  form.MaxResults,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

func (h *handler) autoApply(c *gin.Context) {
	var req domain.AutoApplyRequest
	if !decodeJSON(c, &req) {
		return
	}

	res, err := h.Outreach.AutoApply(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) customizeResume(c *gin.Context) {
	fh, err := c.FormFile("resume")
	if err != nil {
		detail(c, http.StatusBadRequest, "resume is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		detail(c, http.StatusBadRequest, "resume could not be read")
		return
	}
	defer func() { _ = f.Close() }()

	res, err := h.Outreach.CustomizeResume(c.Request.Context(), domain.CustomizeRequest{
		JobDescription: c.PostForm("job_description_text"),
		FileName:       fh.Filename,
		Resume:         f,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
