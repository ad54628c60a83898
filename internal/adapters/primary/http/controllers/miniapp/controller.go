package miniapp

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/usecases/shop"
	"github.com/gin-gonic/gin"
)

// Controller HTTP API для Mini App: витрина и оформление заказа
type Controller struct {
	Shop *shop.Service
	Log  *slog.Logger
}

func New(shopService *shop.Service, log *slog.Logger) *Controller {
	return &Controller{
		Shop: shopService,
		Log:  log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.GET("/products", c.listProducts)
	api.GET("/products/:id", c.getProduct)
	api.POST("/orders", c.createOrder)
}

func (c *Controller) listProducts(ctx *gin.Context) {
	products, err := c.Shop.ProductRepo.ListActive(ctx.Request.Context())
	if err != nil {
		c.Log.Error("failed to list products for mini app", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"products": products})
}

func (c *Controller) getProduct(ctx *gin.Context) {
	var params struct {
		ID int64 `uri:"id" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := c.Shop.ProductRepo.GetByID(ctx.Request.Context(), params.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.Log.Error("failed to get product for mini app",
			"error", err,
			"product_id", params.ID,
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if !product.IsActive() {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"product": product})
}

// createOrderRequest запрос на оформление заказа из Mini App
type createOrderRequest struct {
	UserID          int64  `json:"user_id" binding:"required"`
	Username        string `json:"username"`
	ProductID       int64  `json:"product_id" binding:"required,min=1"`
	PaymentMethodID int64  `json:"payment_method_id" binding:"required,min=1"`
}

func (c *Controller) createOrder(ctx *gin.Context) {
	var req createOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	order, err := c.Shop.CreateOrder(ctx.Request.Context(), req.UserID, req.Username, req.ProductID, req.PaymentMethodID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, domain.ErrPaymentMethodNotFound), errors.Is(err, domain.ErrPaymentMethodRetired):
			ctx.JSON(http.StatusConflict, gin.H{"error": "payment method unavailable"})
		default:
			c.Log.Error("failed to create order from mini app",
				"error", err,
				"user_id", req.UserID,
				"product_id", req.ProductID,
			)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"order": order})
}
