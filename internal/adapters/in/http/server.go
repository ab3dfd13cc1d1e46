package http

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handler contracts the server depends on.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}

	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error)
	}
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	apiKey string
	tokens *TokenIssuer

	// Command handlers
	createOrderHandler CreateOrderHandler
	updateOrderHandler UpdateOrderHandler
	deleteOrderHandler DeleteOrderHandler

	// Query handlers
	getOrderHandler   GetOrderHandler
	listOrdersHandler ListOrdersHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	apiKey string,
	tokens *TokenIssuer,
	createOrderHandler CreateOrderHandler,
	updateOrderHandler UpdateOrderHandler,
	deleteOrderHandler DeleteOrderHandler,
	getOrderHandler GetOrderHandler,
	listOrdersHandler ListOrdersHandler,
) *Server {
	return &Server{
		apiKey:             apiKey,
		tokens:             tokens,
		createOrderHandler: createOrderHandler,
		updateOrderHandler: updateOrderHandler,
		deleteOrderHandler: deleteOrderHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
	}
}

// Login handles POST /auth/login - exchanges the API key for a bearer token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	if err := ctx.Validate(&req); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("apiKey", err)
	}

	if subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(s.apiKey)) != 1 {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: MsgInvalidCredentials})
	}

	token, err := s.tokens.Issue(tokenUser)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Message: MsgLoginSucceeded, Token: token})
}

// CreateOrder handles POST /order - creates an order with its items.
func (s *Server) CreateOrder(ctx echo.Context) error {
	body, err := decodeBody(ctx)
	if err != nil {
		return err
	}

	payload, err := commands.MapOrderPayload(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(payload)
	if err != nil {
		return err
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// ListOrders handles GET /order/list - retrieves every order.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromReadModel(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /order/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context, id string) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(found))
}

// UpdateOrder handles PUT /order/:id - applies a partial update.
func (s *Server) UpdateOrder(ctx echo.Context, id string) error {
	body, err := decodeBody(ctx)
	if err != nil {
		return err
	}

	payload, err := commands.MapUpdatePayload(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(id, payload)
	if err != nil {
		return err
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// DeleteOrder handles DELETE /order/:id - removes an order and its items.
func (s *Server) DeleteOrder(ctx echo.Context, id string) error {
	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// decodeBody reads a JSON object keeping numbers as json.Number so amounts
// reach the mapper without float rounding.
func decodeBody(ctx echo.Context) (map[string]any, error) {
	decoder := json.NewDecoder(ctx.Request().Body)
	decoder.UseNumber()

	var body map[string]any
	if err := decoder.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errs.NewValueIsRequiredError("body")
		}
		return nil, errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	if body == nil {
		body = map[string]any{}
	}

	return body, nil
}
