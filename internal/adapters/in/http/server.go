// Package http adapts the generated API surface to the application layer.
// Request handlers translate HTTP payloads into commands and queries and map
// application errors onto status codes.
package http

import (
	"errors"
	"net/http"

	"eshop/internal/core/application/usecases/commands"
	"eshop/internal/core/application/usecases/queries"
	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/core/domain/model/order"
	"eshop/internal/core/domain/model/product"
	"eshop/internal/generated/servers"
	"eshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Headers carrying the acting identity. A gateway in front of this service
// authenticates the caller and stamps these on the forwarded request.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler      commands.PlaceOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	addProductHandler      commands.AddProductCommandHandler

	// Query handlers
	getOrdersHandler   queries.GetOrdersQueryHandler
	getProductsHandler queries.GetProductsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	addProductHandler commands.AddProductCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:      placeOrderHandler,
		transitionOrderHandler: transitionOrderHandler,
		addProductHandler:      addProductHandler,
		getOrdersHandler:       getOrdersHandler,
		getProductsHandler:     getProductsHandler,
	}
}

// GetProducts handles GET /api/v1/products - retrieves the catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery()

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve products",
		})
	}

	response := make([]servers.Product, len(products))
	for i, entry := range products {
		response[i] = servers.Product{
			Id:    entry.ID.Bytes(),
			Name:  entry.Name,
			Price: float32(entry.Price.InexactFloat64()),
			Stock: entry.Stock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products - adds a catalog entry.
func (s *Server) CreateProduct(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid actor headers: " + err.Error(),
		})
	}

	if !actor.IsStaff() {
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: "Only staff may manage the catalog",
		})
	}

	var newProduct servers.NewProduct
	if err = ctx.Bind(&newProduct); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAddProductCommand(kernel.NewUUID(), newProduct.Name,
		decimal.NewFromFloat32(newProduct.Price), newProduct.Stock)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product data: " + err.Error(),
		})
	}

	added, err := s.addProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to add product")
	}

	return ctx.JSON(http.StatusCreated, servers.Product{
		Id:    added.ID().Bytes(),
		Name:  added.Name(),
		Price: float32(added.Price().InexactFloat64()),
		Stock: added.Stock(),
	})
}

// GetOrders handles GET /api/v1/orders - retrieves every order for review.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetMyOrders handles GET /api/v1/orders/mine - retrieves the caller's orders.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid actor headers: " + err.Error(),
		})
	}

	query, err := queries.NewGetOrdersQueryForUser(actor.UserID())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid user filter: " + err.Error(),
		})
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid actor headers: " + err.Error(),
		})
	}

	var newOrder servers.NewOrder
	if err = ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines := make([]commands.OrderLine, 0, len(newOrder.Items))
	for _, item := range newOrder.Items {
		productID, idErr := kernel.UUIDFromBytes(item.ProductId[:])
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid product ID: " + idErr.Error(),
			})
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), actor.UserID(), newOrder.Address, lines)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(placed))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId} - staff decisions.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var update servers.StatusUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(string(update.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid target status: " + err.Error(),
		})
	}

	return s.transition(ctx, orderId, target)
}

// CancelOrder handles PATCH /api/v1/orders/{orderId}/cancel - customer cancellation.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, order.Canceled)
}

// transition runs a finalization command for the acting identity and writes
// the outcome, sharing the error mapping between the two PATCH endpoints.
func (s *Server) transition(ctx echo.Context, orderId openapi_types.UUID, target order.Status) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid actor headers: " + err.Error(),
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, actor)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid transition request: " + err.Error(),
		})
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to update order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// actorFromRequest reads the acting identity from the request headers.
func actorFromRequest(ctx echo.Context) (kernel.Actor, error) {
	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorID))
	if err != nil {
		return kernel.Actor{}, err
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(HeaderActorRole))
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(userID, role)
}

// errorResponse maps application errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error, fallback string) error {
	var code int
	switch {
	case errors.Is(err, commands.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, product.ErrUnknownProduct):
		code = http.StatusNotFound
	case errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrStorageUnavailable):
		code = http.StatusServiceUnavailable
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: err.Error(),
	})
}

// toOrderResponse maps a freshly placed aggregate onto the API shape.
func toOrderResponse(placed *order.Order) servers.Order {
	items := make([]servers.OrderItem, 0, len(placed.Items()))
	for _, item := range placed.Items() {
		items = append(items, servers.OrderItem{
			ProductId: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: float32(item.UnitPrice().InexactFloat64()),
		})
	}

	return servers.Order{
		Id:          placed.ID().Bytes(),
		UserId:      placed.UserID().Bytes(),
		Address:     placed.Address(),
		Status:      servers.OrderStatus(placed.Status().String()),
		CreatedAt:   placed.CreatedAt(),
		TotalAmount: float32(placed.TotalAmount().InexactFloat64()),
		Items:       items,
	}
}

// toOrderResponses maps order read models onto the API shape.
func toOrderResponses(orders []queries.GetOrdersQueryResponse) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, entry := range orders {
		items := make([]servers.OrderItem, 0, len(entry.Items))
		for _, item := range entry.Items {
			items = append(items, servers.OrderItem{
				ProductId: item.ProductID.Bytes(),
				Quantity:  item.Quantity,
				UnitPrice: float32(item.UnitPrice.InexactFloat64()),
			})
		}

		response[i] = servers.Order{
			Id:          entry.ID.Bytes(),
			UserId:      entry.UserID.Bytes(),
			Address:     entry.Address,
			Status:      servers.OrderStatus(entry.Status.String()),
			CreatedAt:   entry.CreatedAt,
			TotalAmount: float32(entry.TotalAmount.InexactFloat64()),
			Items:       items,
		}
	}
	return response
}
