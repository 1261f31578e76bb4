package wire

import (
	"recipe-sharing/internal/adaptor"
	"recipe-sharing/pkg/middleware"
	"recipe-sharing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user management routes.
// Role check (admin only utk listing & delete) dilakukan di service layer
// lewat policy table, bukan di middleware.
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	issuer *utils.TokenIssuer,
	log *zap.Logger,
) {
	// ==================== PROTECTED USER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(issuer, log))

		// GET /api/user/profile - own profile
		r.Get("/api/user/profile", userHandler.GetProfile)

		// GET /api/users - admin sees all, others see self
		r.Get("/api/users", userHandler.GetUsers)

		// ==================== ADMIN ROUTES ====================
		r.Route("/api/admin/users", func(r chi.Router) {
			r.Get("/", userHandler.GetAllUsers)       // GET /api/admin/users?page=1&per_page=10
			r.Delete("/{id}", userHandler.DeleteUser) // DELETE /api/admin/users/{user-id}
		})
	})
}
