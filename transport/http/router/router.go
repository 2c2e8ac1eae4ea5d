package router

import (
	"github.com/go-chi/chi/v5"

	"hotelier/internal/handlers/auth"
	"hotelier/internal/handlers/booking"
	"hotelier/internal/handlers/customer"
	"hotelier/internal/handlers/review"
	"hotelier/internal/handlers/room"
	"hotelier/internal/handlers/stats"
	"hotelier/internal/handlers/user"
	"hotelier/transport/http/middleware"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Customer customer.Handler
	Room     room.Handler
	Booking  booking.Handler
	Review   review.Handler
	Stats    stats.Handler
	User     user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.AuthMiddleware.Auth)

			r.DomainHandlers.Customer.Router(protected)
			r.DomainHandlers.Room.Router(protected)
			r.DomainHandlers.Booking.Router(protected)
			r.DomainHandlers.Review.Router(protected)
			r.DomainHandlers.Stats.Router(protected)
			r.DomainHandlers.User.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}
