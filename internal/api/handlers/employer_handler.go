package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/talentscout/scout/internal/interview"
	"github.com/talentscout/scout/internal/services"
	"github.com/talentscout/scout/internal/utils"
)

type EmployerHandler struct {
	employers  services.EmployerService
	candidates services.CandidateService
}

func NewEmployerHandler(employers services.EmployerService, candidates services.CandidateService) *EmployerHandler {
	return &EmployerHandler{employers: employers, candidates: candidates}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Company  string   `json:"company"`
	Stacks   []string `json:"stacks"`
}

func (h *EmployerHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.Login", "invalid request body", err))
		return
	}

	token, emp, err := h.employers.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		Username: emp.Username,
		Company:  emp.Company,
		Stacks:   emp.Stacks,
	})
}

func (h *EmployerHandler) Candidates(c *gin.Context) {
	if _, ok := requireEmployerID(c); !ok {
		return
	}

	f := interview.Filter{TechSubstring: c.Query("tech")}
	if s := c.Query("min_experience"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.Candidates", "min_experience must be a non-negative integer", err))
			return
		}
		f.MinExperience = n
	}

	records, err := h.candidates.Dashboard(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filter":     f,
		"count":      len(records),
		"candidates": records,
	})
}

func (h *EmployerHandler) ResumeLink(c *gin.Context) {
	if _, ok := requireEmployerID(c); !ok {
		return
	}

	url, err := h.candidates.ResumeLink(c.Request.Context(), c.Param("candidate_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *EmployerHandler) SavedFilter(c *gin.Context) {
	employerID, ok := requireEmployerID(c)
	if !ok {
		return
	}

	f, err := h.employers.SavedFilter(c.Request.Context(), employerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, f)
}

func (h *EmployerHandler) UpdateSavedFilter(c *gin.Context) {
	employerID, ok := requireEmployerID(c)
	if !ok {
		return
	}

	var f interview.Filter
	if err := c.ShouldBindJSON(&f); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.UpdateSavedFilter", "invalid request body", err))
		return
	}

	if err := h.employers.UpdateSavedFilter(c.Request.Context(), employerID, f); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, f)
}
