package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awaissaddiqui/Flask-Server/internal/usecase"
)

// SatisfactionHandler handles satisfaction prediction requests
type SatisfactionHandler struct {
	satisfactionUC usecase.SatisfactionUsecase
}

// NewSatisfactionHandler creates a new satisfaction handler
func NewSatisfactionHandler(satisfactionUC usecase.SatisfactionUsecase) *SatisfactionHandler {
	return &SatisfactionHandler{satisfactionUC: satisfactionUC}
}

// PredictSatisfaction handles POST /predict_satisfaction
func (h *SatisfactionHandler) PredictSatisfaction(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		HandleUnexpectedError(c, err)
		return
	}

	records, err := DecodeCourseRecords(body)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			HandleNoData(c)
			return
		}
		HandleUnexpectedError(c, err)
		return
	}

	results, err := h.satisfactionUC.Predict(c.Request.Context(), records)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, results)
}
