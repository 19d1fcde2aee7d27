package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	ordersvc "github.com/aleksandar-ristic/StarterStore/internal/service/order"
	usersvc "github.com/aleksandar-ristic/StarterStore/internal/service/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type orderService interface {
	Create(ctx context.Context, userID string, in ordersvc.CreateInput) (*domain.Order, error)
	Get(ctx context.Context, requester *domain.User, id string) (*domain.Order, error)
	ListMine(ctx context.Context, userID string) ([]domain.Order, error)
	Pay(ctx context.Context, requester *domain.User, id string, result domain.PaymentResult) (*domain.Order, error)
	Deliver(ctx context.Context, id string) (*domain.Order, error)
}

type userService interface {
	Register(ctx context.Context, in usersvc.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
}

// Deps bundles everything the router needs.
type Deps struct {
	ProductSvc     productService
	OrderSvc       orderService
	UserSvc        userService
	PayPalClientID string
	FrontendOrigin string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.ProductSvc == nil || deps.OrderSvc == nil || deps.UserSvc == nil {
		return nil, errors.New("httpserver: missing dependencies")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(rateLimitMiddleware())
	if deps.FrontendOrigin != "" {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = []string{deps.FrontendOrigin}
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.Use(identifyUser(deps.UserSvc))

	api.GET("/products", listProductsHandler(deps.ProductSvc))
	api.GET("/products/:id", getProductHandler(deps.ProductSvc))
	api.DELETE("/products/:id", authRequired(), adminRequired(), deleteProductHandler(deps.ProductSvc))

	api.POST("/orders", authRequired(), createOrderHandler(deps.OrderSvc))
	api.GET("/orders/mine", authRequired(), myOrdersHandler(deps.OrderSvc))
	api.GET("/orders/:id", authRequired(), getOrderHandler(deps.OrderSvc))
	api.PUT("/orders/:id/pay", authRequired(), payOrderHandler(deps.OrderSvc))
	api.PUT("/orders/:id/deliver", authRequired(), adminRequired(), deliverOrderHandler(deps.OrderSvc))

	api.POST("/users", registerHandler(deps.UserSvc))
	api.POST("/users/login", loginHandler(deps.UserSvc))
	api.GET("/users/profile", authRequired(), profileHandler())

	api.GET("/config/paypal", paypalConfigHandler(deps.PayPalClientID))

	return router, nil
}

// respondError maps domain errors onto the API error envelope. Absent
// resources get a 404 with a caller-supplied message; everything else is an
// unhandled failure.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
