package wire

import (
	"recipe-sharing/internal/adaptor"
	"recipe-sharing/pkg/middleware"
	"recipe-sharing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	issuer *utils.TokenIssuer,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(issuer, log))

		// GET /api/reviews - list reviews dengan writer
		r.Get("/api/reviews", reviewHandler.GetAllReviews)

		// GET /api/reviews/{id} - review detail
		r.Get("/api/reviews/{id}", reviewHandler.GetReviewByID)

		// GET /api/user/reviews - caller's own reviews
		r.Get("/api/user/reviews", reviewHandler.GetUserReviews)

		// POST /api/reviews - create review
		r.Post("/api/reviews", reviewHandler.CreateReview)

		// DELETE /api/reviews/{id} - delete review (any authenticated caller)
		r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
	})
}
