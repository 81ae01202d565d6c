package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/ystas1205/Educational-project/internal/auth"
	"github.com/ystas1205/Educational-project/internal/domain/category"
	"github.com/ystas1205/Educational-project/internal/domain/product"
	"github.com/ystas1205/Educational-project/internal/domain/review"
	"github.com/ystas1205/Educational-project/internal/domain/user"
)

// Pinger reports database readiness.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Deps struct {
	Users      *user.Service
	Sessions   *auth.Sessions
	Guard      *auth.Guard
	Categories *category.Service
	Products   *product.Service
	Reviews    *review.Service
	DB         Pinger

	// LoginRatePerMin and LoginBurst bound POST /users/token per client IP.
	LoginRatePerMin int
	LoginBurst      int
}

type Handler struct {
	userSvc     *user.Service
	sessions    *auth.Sessions
	categorySvc *category.Service
	productSvc  *product.Service
	reviewSvc   *review.Service
	db          Pinger
}

func NewRouter(d Deps) http.Handler {
	h := &Handler{
		userSvc:     d.Users,
		sessions:    d.Sessions,
		categorySvc: d.Categories,
		productSvc:  d.Products,
		reviewSvc:   d.Reviews,
		db:          d.DB,
	}

	perMin := d.LoginRatePerMin
	if perMin <= 0 {
		perMin = 10
	}
	burst := d.LoginBurst
	if burst <= 0 {
		burst = 5
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(RequestLogger)
	r.Use(CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/ready", h.handleReady)
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	g := d.Guard

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.handleRegister)
		r.With(RateLimitLogin(rate.Every(time.Minute/time.Duration(perMin)), burst)).Post("/token", h.handleLogin)
		r.Post("/refresh-token", h.handleRefreshToken)
		r.Post("/new_token", h.handleNewToken)
		r.With(RequireRoles(g, auth.Authenticated...)).Get("/me", h.handleMe)
		r.With(RequireRoles(g, auth.AdminOnly...)).Patch("/{id}/deactivate", h.handleDeactivateUser)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.handleListCategories)
		r.With(RequireRoles(g, auth.AdminOnly...)).Post("/", h.handleCreateCategory)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.handleListProducts)
		r.Get("/category/{id}", h.handleProductsByCategory)
		r.Get("/{id}", h.handleGetProduct)

		r.Group(func(r chi.Router) {
			r.Use(RequireRoles(g, auth.SellerOnly...))
			r.Post("/", h.handleCreateProduct)
			r.Put("/{id}", h.handleUpdateProduct)
			r.Delete("/{id}", h.handleDeleteProduct)
		})
	})

	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", h.handleListReviews)
		r.Get("/products/{id}", h.handleProductReviews)
		r.With(RequireRoles(g, auth.BuyerOnly...)).Post("/", h.handleCreateReview)
		r.With(RequireRoles(g, auth.AdminOnly...)).Delete("/{id}", h.handleDeleteReview)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	idStr := chi.URLParam(r, name)
	return strconv.ParseInt(idStr, 10, 64)
}

// @Summary     Readiness probe
// @Tags        health
// @Produce     json
// @Success     200  {object}  map[string]string
// @Failure     503  {object}  errorBody  "database not ready"
// @Router      /ready [get]
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "db_unavailable",
			"message": "database not configured",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "db_unavailable",
			"message": "database not ready",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
