package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/moodflowapp/moodflow-backend/internal/dto"
	"github.com/moodflowapp/moodflow-backend/internal/identity"
	"github.com/moodflowapp/moodflow-backend/internal/services"
)

type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// GetStatus returns the authenticated user's premium entitlement.
func (h *SubscriptionHandler) GetStatus(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	sub, err := h.subscriptionService.ActiveForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch subscription",
		})
	}

	if sub == nil {
		return c.JSON(dto.SubscriptionStatusResponse{Active: false})
	}
	return c.JSON(dto.SubscriptionStatusResponse{
		Active:    true,
		ProductID: sub.ProductID,
		ExpiresAt: sub.CurrentPeriodEnd.UTC().Format(time.RFC3339),
	})
}
