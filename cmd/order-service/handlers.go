package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshlane/bulkstore/internal/catalog"
	"github.com/freshlane/bulkstore/internal/httpx"
	"github.com/freshlane/bulkstore/internal/identity"
	"github.com/freshlane/bulkstore/internal/order"
)

// listOrdersHandler godoc
// @Summary  List every order
// @Produce  json
// @Success  200 {array}  order.Order
// @Failure  404 {object} catalog.HTTPError
// @Failure  500 {object} catalog.HTTPError
// @Router   /orders [get]
func listOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListAll(c.Request.Context())
		if err != nil {
			log.Printf("[order] rid=%s list failed: %v", httpx.RID(c), err)
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to fetch orders"})
			return
		}
		if len(orders) == 0 {
			c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "no orders found"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// getOrderHandler godoc
// @Summary  Get one order
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} order.Order
// @Failure  400 {object} catalog.HTTPError
// @Failure  404 {object} catalog.HTTPError
// @Failure  500 {object} catalog.HTTPError
// @Router   /orders/{id} [get]
func getOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid order id"})
			return
		}
		o, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, order.ErrNotFound) {
				c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "order not found"})
				return
			}
			log.Printf("[order] rid=%s get failed: %v", httpx.RID(c), err)
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// createOrderHandler godoc
// @Summary  Place an order
// @Accept   json
// @Produce  json
// @Param    order body order.CreateOrderRequest true "draft order"
// @Success  200 {object} order.Order
// @Failure  400 {object} catalog.HTTPError
// @Failure  500 {object} catalog.HTTPError
// @Security BuyerToken
// @Router   /orders [post]
func createOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid json"})
			return
		}
		o, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, order.ErrValidation) || errors.Is(err, order.ErrUnknownProduct) {
				c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: err.Error()})
				return
			}
			log.Printf("[order] rid=%s create failed: %v", httpx.RID(c), err)
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to create order"})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// updateOrderStatusHandler godoc
// @Summary  Set an order's status
// @Accept   json
// @Produce  json
// @Param    id     path string                    true "order id"
// @Param    status body order.UpdateStatusRequest true "new status"
// @Success  200 {object} order.UpdateOrderResponse
// @Failure  400 {object} catalog.HTTPError
// @Failure  404 {object} catalog.HTTPError
// @Failure  500 {object} catalog.HTTPError
// @Security AdminToken
// @Router   /orders/{id} [put]
func updateOrderStatusHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid order id"})
			return
		}
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "missing status"})
			return
		}
		o, err := svc.AdvanceStatus(c.Request.Context(), id, order.Status(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, order.ErrValidation):
				c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: err.Error()})
			case errors.Is(err, order.ErrNotFound):
				c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "order not found"})
			default:
				log.Printf("[order] rid=%s status update failed: %v", httpx.RID(c), err)
				c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to update order"})
			}
			return
		}
		c.JSON(http.StatusOK, order.UpdateOrderResponse{Updated: *o, Message: "Order status updated"})
	}
}

// deleteOrderHandler handles both removal paths behind one route: the
// admin token deletes unconditionally, a buyer token cancels and only
// while the order is still pending.
//
// deleteOrderHandler godoc
// @Summary  Cancel (buyer) or delete (admin) an order
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} order.DeleteOrderResponse
// @Failure  404 {object} catalog.HTTPError
// @Failure  409 {object} catalog.HTTPError
// @Failure  500 {object} catalog.HTTPError
// @Security AdminToken
// @Router   /orders/{id} [delete]
func deleteOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "order not found"})
			return
		}

		var o *order.Order
		var err error
		if identity.RoleFrom(c) == identity.RoleAdmin {
			o, err = svc.Delete(c.Request.Context(), id)
		} else {
			o, err = svc.Cancel(c.Request.Context(), id)
		}
		if err != nil {
			switch {
			case errors.Is(err, order.ErrInvalidState):
				c.JSON(http.StatusConflict, catalog.HTTPError{Error: "order is not pending"})
			case errors.Is(err, order.ErrNotFound):
				c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "order not found"})
			default:
				log.Printf("[order] rid=%s delete failed: %v", httpx.RID(c), err)
				c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to delete order"})
			}
			return
		}
		c.JSON(http.StatusOK, order.DeleteOrderResponse{Deleted: *o, Message: "Order deleted successfully"})
	}
}
