package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supportbot/internal/common"
)

func (h *Handler) ListFAQs(c *gin.Context) {
	faqs, err := h.FAQSvc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to list faqs")
		return
	}
	common.Ok(c, gin.H{"faqs": faqs})
}

type createFAQReq struct {
	Question string   `json:"question" binding:"required"`
	Answer   string   `json:"answer" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Keywords []string `json:"keywords"`
}

func (h *Handler) CreateFAQ(c *gin.Context) {
	var req createFAQReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	f, err := h.FAQSvc.Create(c.Request.Context(), req.Question, req.Answer, req.Category, req.Keywords)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to create faq")
		return
	}
	common.Ok(c, gin.H{"faq": f})
}
