package cart

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createCartRequest struct {
	PhoneNumber  string `json:"phone_number" binding:"required,len=10"`
	RestaurantID int    `json:"restaurant_id" binding:"required"`
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCustomerNotFound),
		errors.Is(err, ErrRestaurantNotFound),
		errors.Is(err, ErrAddressNotFound),
		errors.Is(err, ErrMenuItemNotFound),
		errors.Is(err, ErrCartNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// --------------------------------------------------
// Get-or-create
// --------------------------------------------------
func (h *Handler) CreateOrGet(c *gin.Context) {
	var req createCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	order, err := h.service.GetOrCreate(c.Request.Context(), req.PhoneNumber, req.RestaurantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// --------------------------------------------------
// Reads
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	order, err := h.service.OpenCart(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetByCustomerAndRestaurant(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	order, err := h.service.CartFor(c.Request.Context(), c.Param("phone_number"), restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ListByCustomer(c *gin.Context) {
	carts, err := h.service.CartsFor(c.Request.Context(), c.Param("phone_number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, carts)
}

// --------------------------------------------------
// Item mutation
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	var in ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item payload"})
		return
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	order, err := h.service.AddItem(c.Request.Context(), c.Param("order_number"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// RemoveItem keys on the body payload; the path's menu_id is kept for
// route shape compatibility only.
func (h *Handler) RemoveItem(c *gin.Context) {
	var in struct {
		MenuID   int    `json:"menu_id" binding:"required"`
		FoodName string `json:"food_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item payload"})
		return
	}

	order, err := h.service.RemoveItem(c.Request.Context(), c.Param("order_number"), in.MenuID, in.FoodName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// --------------------------------------------------
// Lifecycle
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	order, err := h.service.Checkout(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) Prepare(c *gin.Context) {
	order, err := h.service.Advance(c.Request.Context(), c.Param("order_number"), StatusPrepare)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) Delete(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	order, err := h.service.Delete(c.Request.Context(), c.Param("phone_number"), restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
