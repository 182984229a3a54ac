package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"videoserver/internal/http/handlers"
	"videoserver/internal/infra"
	"videoserver/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/config", app.ConfigShow)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(cfg.JWTSecret))

		r.Route("/v1/videos", func(r chi.Router) {
			r.Get("/", app.VideosList)
			r.Post("/validate-script", app.VideosValidateScript)
		})

		r.Route("/v1/users", func(r chi.Router) {
			r.Post("/signup", app.UsersSignup)
			r.Get("/me", app.UsersMe)
		})

		r.Get("/v1/products", app.ProductsList)
		r.Get("/v1/credits", app.CreditsBalance)
		r.Post("/v1/payments/applepay", app.PaymentsApplePay)
		r.Post("/v1/feedback", app.FeedbackCreate)
	})

	return r
}
