package router

import (
	"github.com/go-chi/chi/v5"

	"stayhub/internal/handlers/auth"
	"stayhub/internal/handlers/booking"
	"stayhub/internal/handlers/payment"
	"stayhub/internal/handlers/property"
	"stayhub/internal/handlers/review"
	"stayhub/internal/handlers/user"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Property property.Handler
	Booking  booking.Handler
	Payment  payment.Handler
	Review   review.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
