package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/cache"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/service/catalog"
)

// ReferenceHandler serves the cascading dropdown data backing the order form.
type ReferenceHandler struct {
	svc    *catalog.Service
	tables *cache.TableCache
	logger *zap.Logger
}

// NewReferenceHandler constructs the HTTP handler adapter.
func NewReferenceHandler(svc *catalog.Service, tables *cache.TableCache, logger *zap.Logger) *ReferenceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReferenceHandler{svc: svc, tables: tables, logger: logger}
}

// Parties lists parties assigned to an employee.
func (h *ReferenceHandler) Parties(c *gin.Context) {
	employee := c.Query("employee")
	if employee == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee is required"})
		return
	}

	parties, err := h.svc.Parties(c.Request.Context(), employee)
	if err != nil {
		h.logger.Error("party lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load reference data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"parties": parties})
}

// Stores lists stores for an (employee, party) pair.
func (h *ReferenceHandler) Stores(c *gin.Context) {
	employee := c.Query("employee")
	party := c.Query("party")
	if employee == "" || party == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee and party are required"})
		return
	}

	stores, err := h.svc.Stores(c.Request.Context(), employee, party)
	if err != nil {
		h.logger.Error("store lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load reference data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stores": stores})
}

// StoreInfo resolves city, visit frequency and visit days for a store.
func (h *ReferenceHandler) StoreInfo(c *gin.Context) {
	employee := c.Query("employee")
	party := c.Query("party")
	store := c.Query("store")
	if employee == "" || party == "" || store == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee, party and store are required"})
		return
	}

	info, found, err := h.svc.StoreInfo(c.Request.Context(), employee, party, store)
	if err != nil {
		h.logger.Error("store info lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load reference data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"store": info, "found": found})
}

// Categories lists all SKU categories.
func (h *ReferenceHandler) Categories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		h.logger.Error("category lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load reference data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// SKUs lists the SKUs within a category.
func (h *ReferenceHandler) SKUs(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	skus, err := h.svc.SKUs(c.Request.Context(), category)
	if err != nil {
		h.logger.Error("sku lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load reference data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"skus": skus})
}

// RefreshCache drops all cached tables, mirroring the manual reload action in
// the order form.
func (h *ReferenceHandler) RefreshCache(c *gin.Context) {
	h.tables.Invalidate()
	c.JSON(http.StatusOK, gin.H{"status": "cache invalidated"})
}
