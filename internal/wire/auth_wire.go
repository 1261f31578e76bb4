package wire

import (
	"time"

	"recipe-sharing/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
) {
	// ==================== PUBLIC ROUTES ====================
	// Public routes (tanpa auth middleware), dengan rate limit
	// untuk mitigasi brute force di credential endpoints
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(10, 1*time.Minute))

		r.Post("/api/register", authHandler.Register)
		r.Post("/api/login", authHandler.Login)
	})
}
