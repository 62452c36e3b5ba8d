package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhdn/gameshop/internal/domain/model"
	"github.com/minhdn/gameshop/internal/domain/repository"
	"github.com/minhdn/gameshop/internal/server/http/dto"
)

// DepositHandler serves balances and the deposit request flow.
type DepositHandler struct {
	facade BalanceFacade
}

// NewDepositHandler constructs DepositHandler.
func NewDepositHandler(facade BalanceFacade) *DepositHandler {
	return &DepositHandler{facade: facade}
}

func toDepositResponse(deposit *model.DepositRequest) dto.DepositResponse {
	return dto.DepositResponse{
		ID:          deposit.ID,
		UserID:      deposit.UserID,
		UserEmail:   deposit.UserEmail,
		Description: deposit.Description,
		ImageURL:    deposit.ImageURL,
		Status:      string(deposit.Status),
		CreatedAt:   deposit.CreatedAt,
	}
}

// Balance handles GET /api/user/balance.
func (h *DepositHandler) Balance(c *gin.Context) {
	money, err := h.facade.Balance(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Money: money})
}

// RequestDeposit handles POST /api/user/deposits. The bill image arrives as
// multipart form data.
func (h *DepositHandler) RequestDeposit(c *gin.Context) {
	fileHeader, err := c.FormFile("bill")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bill image is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	defer file.Close()

	deposit, err := h.facade.RequestDeposit(c.Request.Context(), CurrentUserID(c),
		c.PostForm("description"), fileHeader.Filename, file)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDepositResponse(deposit))
}

// MyDeposits handles GET /api/user/deposits.
func (h *DepositHandler) MyDeposits(c *gin.Context) {
	page, limit := Pagination(c)
	deposits, total, err := h.facade.MyDeposits(c.Request.Context(), CurrentUserID(c), page, limit)
	if err != nil {
		WriteError(c, err)
		return
	}

	items := make([]dto.DepositResponse, 0, len(deposits))
	for i := range deposits {
		items = append(items, toDepositResponse(&deposits[i]))
	}
	c.JSON(http.StatusOK, dto.NewPage(items, total, page, limit))
}

// AdminDeposits handles GET /api/admin/deposits.
func (h *DepositHandler) AdminDeposits(c *gin.Context) {
	page, limit := Pagination(c)
	filter := repository.DepositsFilter{
		UserID: QueryID(c, "user_id"),
		Status: model.DepositStatus(c.Query("status")),
		Page:   page,
		Limit:  limit,
	}

	deposits, total, err := h.facade.AdminDeposits(c.Request.Context(), filter)
	if err != nil {
		WriteError(c, err)
		return
	}

	items := make([]dto.DepositResponse, 0, len(deposits))
	for i := range deposits {
		items = append(items, toDepositResponse(&deposits[i]))
	}
	c.JSON(http.StatusOK, dto.NewPage(items, total, page, limit))
}

// ReviewDeposit handles POST /api/admin/deposits/:id/review.
func (h *DepositHandler) ReviewDeposit(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	var req dto.ReviewDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	deposit, err := h.facade.ReviewDeposit(c.Request.Context(), id, req.Approve)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDepositResponse(deposit))
}

// DeleteDeposit handles DELETE /api/admin/deposits/:id.
func (h *DepositHandler) DeleteDeposit(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	if err := h.facade.DeleteDeposit(c.Request.Context(), id); err != nil {
		WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddMoney handles POST /api/admin/users/:id/money.
func (h *DepositHandler) AddMoney(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	var req dto.AddMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	total, err := h.facade.AddMoney(c.Request.Context(), id, req.Amount)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Money: total})
}
