package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhdn/gameshop/internal/domain/model"
	"github.com/minhdn/gameshop/internal/domain/repository"
	"github.com/minhdn/gameshop/internal/server/http/dto"
)

// CatalogHandler serves categories and the listing catalog.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

func toCategoryResponse(category *model.GameCategory) dto.CategoryResponse {
	return dto.CategoryResponse{ID: category.ID, Name: category.Name, ImageURL: category.ImageURL}
}

func toAccountResponse(account *model.GameAccount) dto.AccountResponse {
	return dto.AccountResponse{
		ID:            account.ID,
		CategoryID:    account.CategoryID,
		CategoryName:  account.CategoryName,
		Status:        string(account.Status),
		OriginalPrice: account.OriginalPrice,
		CurrentPrice:  account.CurrentPrice,
		Description:   account.Description,
		MainImageURL:  account.MainImageURL,
		Type:          string(account.Type),
		CreatedAt:     account.CreatedAt,
	}
}

// Categories handles GET /api/categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		WriteError(c, err)
		return
	}
	resp := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, toCategoryResponse(&categories[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Category handles GET /api/categories/:id.
func (h *CatalogHandler) Category(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	category, err := h.facade.Category(c.Request.Context(), id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(category))
}

// CreateCategory handles POST /api/admin/categories.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	category, err := h.facade.CreateCategory(c.Request.Context(), req.Name, req.ImageURL)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// UpdateCategory handles PUT /api/admin/categories/:id.
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	err := h.facade.UpdateCategory(c.Request.Context(), model.GameCategory{
		ID:       id,
		Name:     req.Name,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCategory handles DELETE /api/admin/categories/:id.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	if err := h.facade.DeleteCategory(c.Request.Context(), id); err != nil {
		WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Listings handles GET /api/accounts.
func (h *CatalogHandler) Listings(c *gin.Context) {
	page, limit := Pagination(c)
	categoryID := QueryID(c, "category_id")
	filter := repository.AccountsFilter{
		CategoryID: categoryID,
		Status:     model.AccountStatus(c.Query("status")),
		Type:       model.AccountType(c.Query("type")),
		Page:       page,
		Limit:      limit,
	}

	accounts, total, err := h.facade.Listings(c.Request.Context(), filter)
	if err != nil {
		WriteError(c, err)
		return
	}
	items := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, toAccountResponse(&accounts[i]))
	}
	c.JSON(http.StatusOK, dto.NewPage(items, total, page, limit))
}

// Listing handles GET /api/accounts/:id.
func (h *CatalogHandler) Listing(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	account, err := h.facade.Listing(c.Request.Context(), id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAccountResponse(account))
}

// CreateListing handles POST /api/admin/accounts.
func (h *CatalogHandler) CreateListing(c *gin.Context) {
	var req dto.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	account, err := h.facade.CreateListing(c.Request.Context(), model.GameAccount{
		CategoryID:    req.CategoryID,
		OriginalPrice: req.OriginalPrice,
		CurrentPrice:  req.CurrentPrice,
		Description:   req.Description,
		MainImageURL:  req.MainImageURL,
		Type:          model.AccountType(req.Type),
	})
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAccountResponse(account))
}

// UpdateListing handles PUT /api/admin/accounts/:id.
func (h *CatalogHandler) UpdateListing(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	var req dto.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	err := h.facade.UpdateListing(c.Request.Context(), model.GameAccount{
		ID:            id,
		CategoryID:    req.CategoryID,
		Status:        model.AccountStatusAvailable,
		OriginalPrice: req.OriginalPrice,
		CurrentPrice:  req.CurrentPrice,
		Description:   req.Description,
		MainImageURL:  req.MainImageURL,
		Type:          model.AccountType(req.Type),
	})
	if err != nil {
		WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteListing handles DELETE /api/admin/accounts/:id.
func (h *CatalogHandler) DeleteListing(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	if err := h.facade.DeleteListing(c.Request.Context(), id); err != nil {
		WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
