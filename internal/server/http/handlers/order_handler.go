package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhdn/gameshop/internal/domain/model"
	"github.com/minhdn/gameshop/internal/domain/repository"
	"github.com/minhdn/gameshop/internal/server/http/dto"
)

// OrderHandler serves purchases, order history and the storefront banner.
type OrderHandler struct {
	facade OrderFacade
	banner BannerCache
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, banner BannerCache) *OrderHandler {
	return &OrderHandler{facade: facade, banner: banner}
}

func toOrderResponse(order *model.Order, includeBuyer bool) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:            order.ID,
		GameAccountID: order.GameAccountID,
		PricePaid:     order.PricePaid,
		CategoryName:  order.CategoryName,
		Description:   order.Description,
		CreatedAt:     order.CreatedAt,
	}
	if includeBuyer {
		resp.BuyerEmail = order.BuyerEmail
	}
	return resp
}

// Purchase handles POST /api/user/purchase.
func (h *OrderHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.Purchase(c.Request.Context(), CurrentUserID(c), req.GameAccountID)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order, false))
}

// MyOrders handles GET /api/user/orders.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	page, limit := Pagination(c)
	orders, total, err := h.facade.MyOrders(c.Request.Context(), CurrentUserID(c), page, limit)
	if err != nil {
		WriteError(c, err)
		return
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, toOrderResponse(&orders[i], false))
	}
	c.JSON(http.StatusOK, dto.NewPage(items, total, page, limit))
}

// Order handles GET /api/user/orders/:id.
func (h *OrderHandler) Order(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	role := CurrentRole(c)
	order, err := h.facade.Order(c.Request.Context(), CurrentUserID(c), role, id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order, role == model.RoleAdmin))
}

// AllOrders handles GET /api/admin/orders.
func (h *OrderHandler) AllOrders(c *gin.Context) {
	page, limit := Pagination(c)
	filter := repository.OrdersFilter{
		UserID:        QueryID(c, "user_id"),
		GameAccountID: QueryID(c, "game_account_id"),
		Page:          page,
		Limit:         limit,
	}

	orders, total, err := h.facade.AllOrders(c.Request.Context(), filter)
	if err != nil {
		WriteError(c, err)
		return
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, toOrderResponse(&orders[i], true))
	}
	c.JSON(http.StatusOK, dto.NewPage(items, total, page, limit))
}

// Banner handles GET /api/banner. Served from the worker cache, never the
// database.
func (h *OrderHandler) Banner(c *gin.Context) {
	entries := h.banner.Entries()
	resp := make([]dto.BannerEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.BannerEntryResponse{
			GameName:    e.GameName,
			Description: e.Description,
			BuyerEmail:  e.BuyerEmail,
			SoldAt:      e.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}
