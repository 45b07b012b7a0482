package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericblois/marketplace-backend/internal/auth"
	"github.com/ericblois/marketplace-backend/internal/business"
	"github.com/ericblois/marketplace-backend/internal/httpx"
	"github.com/ericblois/marketplace-backend/internal/order"
	"github.com/ericblois/marketplace-backend/internal/user"
)

func newRouter(orders *order.Service, businesses *business.Service, users *user.Repo, verifier auth.Verifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/", httpx.Auth(verifier.Verify))
	api.POST("/orders", createOrderHandler(orders))
	api.GET("/orders/:id", getOrderHandler(orders))
	api.POST("/orders/:id/response", respondToOrderHandler(orders))
	api.POST("/orders/:id/completion", completeOrderHandler(orders))
	api.POST("/businesses", createBusinessHandler(businesses))
	api.DELETE("/businesses/:id", deleteBusinessHandler(businesses))
	api.GET("/users/me", getProfileHandler(users))
	api.PUT("/users/me", putProfileHandler(users))
	return r
}

func createOrderHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		orderID, err := orders.Create(c.Request.Context(), c.GetString("uid"), req)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"orderID": orderID})
	}
}

func getOrderHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := orders.Get(c.Request.Context(), c.GetString("uid"), c.Param("id"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

func respondToOrderHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.RespondToOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		err := orders.Respond(c.Request.Context(), c.GetString("uid"), req.BusinessID, c.Param("id"), req.AcceptOrder)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func completeOrderHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CompleteOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		err := orders.Complete(c.Request.Context(), c.GetString("uid"), req.BusinessID, c.Param("id"), req.Shipped)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func createBusinessHandler(businesses *business.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		businessID, err := businesses.Create(c.Request.Context(), c.GetString("uid"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"businessID": businessID})
	}
}

func deleteBusinessHandler(businesses *business.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		businessID, err := businesses.Delete(c.Request.Context(), c.GetString("uid"), c.Param("id"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"businessID": businessID})
	}
}

func getProfileHandler(users *user.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := users.Get(c.Request.Context(), c.GetString("uid"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

func putProfileHandler(users *user.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data user.UserData
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if err := users.Set(c.Request.Context(), c.GetString("uid"), data); err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, data)
	}
}
