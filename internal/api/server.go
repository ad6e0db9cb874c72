package api

import "github.com/RoyceAzure/lab/megano/internal/api/handler"

type Server struct {
	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	CatalogHandler *handler.CatalogHandler
	BasketHandler  *handler.BasketHandler
	OrderHandler   *handler.OrderHandler
	PaymentHandler *handler.PaymentHandler
}

func NewServer(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	catalogHandler *handler.CatalogHandler,
	basketHandler *handler.BasketHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
) *Server {
	return &Server{
		AuthHandler:    authHandler,
		ProfileHandler: profileHandler,
		CatalogHandler: catalogHandler,
		BasketHandler:  basketHandler,
		OrderHandler:   orderHandler,
		PaymentHandler: paymentHandler,
	}
}
