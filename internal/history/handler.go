package history

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quefood/internal/middleware"
)

// CustomerChecker reports whether a phone number belongs to a registered
// customer. Satisfied by auth.Service.
type CustomerChecker interface {
	Exists(ctx context.Context, phoneNumber string) (bool, error)
}

type Handler struct {
	service   *Service
	customers CustomerChecker
}

func NewHandler(service *Service, customers CustomerChecker) *Handler {
	return &Handler{service: service, customers: customers}
}

type recordRequest struct {
	OrderNumber string `json:"order_number" binding:"required"`
}

// Record links an order number to the authenticated customer.
func (h *Handler) Record(c *gin.Context) {
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	phoneNumber := c.GetString(middleware.PhoneNumberKey)
	created, err := h.service.Record(c.Request.Context(), phoneNumber, req.OrderNumber)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "order already in history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order added to history"})
}

// Orders lists the authenticated customer's past orders, newest first.
func (h *Handler) Orders(c *gin.Context) {
	phoneNumber := c.GetString(middleware.PhoneNumberKey)

	orders, err := h.service.Orders(c.Request.Context(), phoneNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		out = append(out, gin.H{
			"order_number":    o.OrderNumber,
			"due_date":        o.DueDate,
			"status":          o.Status,
			"restaurant_id":   o.RestaurantID,
			"restaurant_name": o.RestaurantName,
			"items_count":     o.ItemsCount,
			"subtotal":        o.Subtotal,
			"taxes":           o.Taxes,
			"total":           o.Total(),
			"fooditems":       o.Items,
		})
	}
	c.JSON(http.StatusOK, out)
}

// DecodeToken echoes the phone number carried by the bearer token,
// confirming the customer still exists.
func (h *Handler) DecodeToken(c *gin.Context) {
	phoneNumber := c.GetString(middleware.PhoneNumberKey)

	exists, err := h.customers.Exists(c.Request.Context(), phoneNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"phone_number": phoneNumber})
}
