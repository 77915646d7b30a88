package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openshelf/storefront-api/internal/app/service"
	"github.com/openshelf/storefront-api/internal/middleware"
)

type ProductController struct {
	catalogService service.CatalogService
}

func NewProductController(catalogService service.CatalogService) *ProductController {
	return &ProductController{
		catalogService: catalogService,
	}
}

// GetProducts returns products from the catalog
// GET /api/products?limit=10&sort=desc
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			log.Warn("Invalid limit parameter", map[string]interface{}{
				"limit": raw,
			})
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	sort := c.Query("sort")
	if sort != "" && sort != "asc" && sort != "desc" {
		log.Warn("Invalid sort parameter", map[string]interface{}{
			"sort": sort,
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sort parameter",
		})
		return
	}

	products, err := ctrl.catalogService.ListProducts(c.Request.Context(), limit, sort)
	if err != nil {
		ctrl.respondCatalogError(c, err, "Failed to fetch products")
		return
	}

	log.Info("Products fetched successfully", map[string]interface{}{
		"count": len(products),
	})

	c.JSON(http.StatusOK, products)
}

// GetProduct returns a single product from the catalog
// GET /api/products/:id
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid product ID in path", map[string]interface{}{
			"product_id": c.Param("id"),
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, err := ctrl.catalogService.GetProduct(c.Request.Context(), uint(productID))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found", map[string]interface{}{
				"product_id": productID,
			})
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		ctrl.respondCatalogError(c, err, "Failed to fetch product")
		return
	}

	log.Info("Product fetched successfully", map[string]interface{}{
		"product_id": product.ID,
	})

	c.JSON(http.StatusOK, product)
}

// GetCategories returns all catalog category names
// GET /api/products/categories/all
func (ctrl *ProductController) GetCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories, err := ctrl.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		ctrl.respondCatalogError(c, err, "Failed to fetch categories")
		return
	}

	log.Info("Categories fetched successfully", map[string]interface{}{
		"count": len(categories),
	})

	c.JSON(http.StatusOK, categories)
}

// GetProductsByCategory returns catalog products in one category
// GET /api/products/category/:category
func (ctrl *ProductController) GetProductsByCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	category := c.Param("category")

	products, err := ctrl.catalogService.ListByCategory(c.Request.Context(), category)
	if err != nil {
		ctrl.respondCatalogError(c, err, "Failed to fetch category products")
		return
	}

	log.Info("Category products fetched successfully", map[string]interface{}{
		"category": category,
		"count":    len(products),
	})

	c.JSON(http.StatusOK, products)
}

func (ctrl *ProductController) respondCatalogError(c *gin.Context, err error, msg string) {
	log := middleware.GetLoggerFromContext(c)

	if errors.Is(err, service.ErrCatalogUnavailable) {
		log.Error("Catalog upstream unavailable", err, nil)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Catalog service unavailable",
		})
		return
	}

	log.Error(msg, err, nil)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": msg,
	})
}
