package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iswarpatel123/braintree-render/internal/handler"
	"github.com/iswarpatel123/braintree-render/internal/middleware"
	"github.com/iswarpatel123/braintree-render/internal/service"
)

type Server struct {
	echo            *echo.Echo
	checkoutHandler *handler.CheckoutHandler
}

func NewServer(checkoutService service.CheckoutService) *Server {
	e := echo.New()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.CORS())

	checkoutHandler := handler.NewCheckoutHandler(checkoutService)

	s := &Server{
		echo:            e,
		checkoutHandler: checkoutHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/ping", s.checkoutHandler.Ping)
	s.echo.GET("/client_token", s.checkoutHandler.ClientToken)
	s.echo.POST("/checkout", s.checkoutHandler.Checkout)

	s.echo.GET("/orders/:orderID", s.checkoutHandler.GetOrder)

	// -------- support tooling --------
	s.echo.GET("/reconciliation", s.checkoutHandler.ListReconciliation)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
