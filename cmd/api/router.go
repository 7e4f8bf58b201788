package main

import (
	"log/slog"
	"net/http"
	"time"

	"flowworks-backend/internal/admin"
	"flowworks-backend/internal/auth"
	"flowworks-backend/internal/casestudies"
	"flowworks-backend/internal/config"
	"flowworks-backend/internal/contact"
	"flowworks-backend/internal/middleware"
	"flowworks-backend/internal/services"
	"flowworks-backend/internal/site"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type routerDeps struct {
	cfg         *config.Config
	log         *slog.Logger
	jwt         *auth.Manager
	caseStudies *casestudies.Handler
	services    *services.Handler
	contact     *contact.Handler
	admin       *admin.Handler
	site        *site.Handler
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.log))
	r.Use(middleware.CORS(d.cfg.FrontendOrigins))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	r.Get("/healthz", d.site.Health)

	contactLimiter := middleware.NewRateLimiter(d.cfg.RateLimitContact, time.Duration(d.cfg.RateLimitWindowSec)*time.Second)
	requireAdmin := middleware.AdminAuth(d.cfg.AdminAPIKey, d.jwt)

	registerRoutes := func(api chi.Router) {
		api.Get("/site", d.site.Info)
		api.Route("/case-studies", d.caseStudies.Routes)
		api.Get("/testimonials", d.caseStudies.Testimonials)
		api.Route("/services", d.services.Routes)
		api.Get("/phone/format", d.contact.FormatPhone)
		api.With(contactLimiter.Middleware).Post("/contact", d.contact.Submit)

		api.Route("/admin", func(adm chi.Router) {
			d.admin.Routes(adm)
			adm.Group(func(protected chi.Router) {
				protected.Use(requireAdmin)
				protected.Route("/contacts", d.contact.AdminRoutes)
			})
		})
	}

	r.Route("/api", registerRoutes)
	r.Route("/api/v1", registerRoutes)
	return r
}
