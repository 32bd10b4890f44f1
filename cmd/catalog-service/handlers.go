package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshlane/bulkstore/internal/catalog"
	"github.com/freshlane/bulkstore/internal/httpx"
)

// listProductsHandler godoc
// @Summary  List catalogue products
// @Produce  json
// @Success  200 {array}  catalog.Product
// @Failure  500 {object} catalog.HTTPError
// @Router   /products [get]
func listProductsHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			log.Printf("[catalog] rid=%s list failed: %v", httpx.RID(c), err)
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to fetch products"})
			return
		}
		if items == nil {
			items = []catalog.Product{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// getProductHandler godoc
// @Summary  Get one product
// @Produce  json
// @Param    id path string true "product id"
// @Success  200 {object} catalog.Product
// @Failure  400 {object} catalog.HTTPError
// @Failure  404 {object} catalog.HTTPError
// @Failure  500 {object} catalog.HTTPError
// @Router   /products/{id} [get]
func getProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid product id"})
			return
		}
		p, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "product not found"})
				return
			}
			log.Printf("[catalog] rid=%s get failed: %v", httpx.RID(c), err)
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// createProductHandler godoc
// @Summary  Create a product
// @Accept   json
// @Produce  json
// @Param    product body catalog.CreateProductRequest true "product"
// @Success  201 {object} catalog.Product
// @Failure  400 {object} catalog.HTTPError
// @Failure  500 {object} catalog.HTTPError
// @Router   /products [post]
func createProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalog.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid json"})
			return
		}
		if req.Name == "" || req.Price == "" {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "product name and price are required"})
			return
		}
		if !catalog.ValidPrice(req.Price) {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "price must be a non-negative number"})
			return
		}
		now := time.Now().UTC()
		p := &catalog.Product{
			ID:        uuid.NewString(),
			Name:      req.Name,
			Price:     req.Price,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(c.Request.Context(), p); err != nil {
			log.Printf("[catalog] rid=%s create failed: %v", httpx.RID(c), err)
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// updateProductHandler godoc
// @Summary  Update name and price
// @Accept   json
// @Produce  json
// @Param    id      path string                       true "product id"
// @Param    product body catalog.UpdateProductRequest true "product"
// @Success  200 {object} catalog.UpdateProductResponse
// @Failure  400 {object} catalog.HTTPError
// @Failure  404 {object} catalog.HTTPError
// @Failure  500 {object} catalog.HTTPError
// @Router   /products/{id} [put]
func updateProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid product id"})
			return
		}
		var req catalog.UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid json"})
			return
		}
		if req.Name == "" || req.Price == "" {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "missing name or price"})
			return
		}
		if !catalog.ValidPrice(req.Price) {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "price must be a non-negative number"})
			return
		}
		p := &catalog.Product{ID: id, Name: req.Name, Price: req.Price}
		if err := repo.Update(c.Request.Context(), p); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "product not found"})
				return
			}
			log.Printf("[catalog] rid=%s update failed: %v", httpx.RID(c), err)
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to update product"})
			return
		}
		// return the stored state, timestamps included
		updated, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "product not found"})
				return
			}
			log.Printf("[catalog] rid=%s update refetch failed: %v", httpx.RID(c), err)
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to update product"})
			return
		}
		c.JSON(http.StatusOK, catalog.UpdateProductResponse{Updated: *updated, Message: "Product updated"})
	}
}

// deleteProductHandler godoc
// @Summary  Delete a product
// @Produce  json
// @Param    id path string true "product id"
// @Success  200 {object} map[string]string
// @Failure  400 {object} catalog.HTTPError
// @Failure  404 {object} catalog.HTTPError
// @Failure  500 {object} catalog.HTTPError
// @Router   /products/{id} [delete]
func deleteProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid product id"})
			return
		}
		ok, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			log.Printf("[catalog] rid=%s delete failed: %v", httpx.RID(c), err)
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to delete product"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
