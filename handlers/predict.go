package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-revenue-dashboard/models"
	"hotel-revenue-dashboard/schema"
	"hotel-revenue-dashboard/services"
)

// PredictOptions returns the categorical choices for the prediction form,
// ordered the way the model encodes them.
func (h *Dashboard) PredictOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"room_types":        schema.Options(schema.RoomTypes),
		"customer_segments": schema.Options(schema.CustomerSegments),
		"payment_methods":   schema.Options(schema.PaymentMethods),
		"seasons":           schema.Options(schema.Seasons),
		"days_of_week":      schema.Options(schema.DaysOfWeek),
		"event_types":       schema.Options(schema.EventTypes),
		"feedback_levels":   schema.Options(schema.FeedbackLevels),
		"extra_services":    schema.Options(schema.ExtraServices),
	})
}

// Predict assembles the feature vector from the submitted form and scores
// it with the revenue model. Bad input is a 400; a missing or mismatched
// model artifact is a 500 and leaves the chart endpoints untouched.
func (h *Dashboard) Predict(c *gin.Context) {
	var input models.PredictionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid prediction input: " + err.Error()})
		return
	}

	vector, err := services.BuildFeatureVector(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	revenue, err := h.model.Predict(vector)
	if err != nil {
		h.logger.Error("Prediction failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"predicted_revenue": revenue,
		"features":          vector,
	})
}
