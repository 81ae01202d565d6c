package api

import (
	"errors"
	"net/http"

	"github.com/ystas1205/Educational-project/internal/auth"
	"github.com/ystas1205/Educational-project/internal/domain/category"
	"github.com/ystas1205/Educational-project/internal/domain/policy"
	"github.com/ystas1205/Educational-project/internal/domain/product"
	"github.com/ystas1205/Educational-project/internal/domain/review"
	"github.com/ystas1205/Educational-project/internal/domain/user"
	"github.com/ystas1205/Educational-project/internal/metrics"
	"github.com/ystas1205/Educational-project/internal/platform/apperr"
	jwtpkg "github.com/ystas1205/Educational-project/internal/platform/jwt"
)

func errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	appErr := mapError(err)
	switch appErr.Kind {
	case apperr.KindStore:
		slogLogger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	case apperr.KindAuthentication:
		w.Header().Set("WWW-Authenticate", "Bearer")
		slogLogger.Warn("authentication failed",
			"path", r.URL.Path,
			"code", appErr.Code,
			"error", err,
		)
	}
	writeJSON(w, appErr.StatusCode(), errorBody{Error: appErr.Code, Message: appErr.Message})
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// rejectToken counts a token failure before answering with it.
func rejectToken(w http.ResponseWriter, r *http.Request, err error) {
	if reason := jwtpkg.Reason(err); reason != "unknown" {
		metrics.IncTokenRejection(reason)
	}
	errorResponse(w, r, err)
}

func mapError(err error) *apperr.AppError {
	if err == nil {
		return apperr.Store(errors.New("nil error"))
	}

	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, auth.ErrInvalidRefresh):
		return apperr.Unauthorized("invalid_refresh_token", "could not validate refresh token", err)
	case errors.Is(err, jwtpkg.ErrTokenExpired):
		return apperr.Unauthorized("token_expired", "token has expired", err)
	case errors.Is(err, jwtpkg.ErrTokenWrongType):
		return apperr.Unauthorized("invalid_token_type", "unexpected token type", err)
	case errors.Is(err, jwtpkg.ErrTokenRevoked):
		return apperr.Unauthorized("token_revoked", "token has been revoked", err)
	case errors.Is(err, jwtpkg.ErrTokenMalformed):
		return apperr.Unauthorized("invalid_token", "could not validate credentials", err)
	case errors.Is(err, auth.ErrUnauthenticated):
		return apperr.Unauthorized("not_authenticated", "could not validate credentials", err)
	case errors.Is(err, auth.ErrForbidden):
		return apperr.Forbidden("forbidden", "you are not authorized to use this method", err)

	case errors.Is(err, user.ErrInvalidCredentials):
		return apperr.Unauthorized("invalid_credentials", "invalid authentication credentials", err)
	case errors.Is(err, user.ErrInactiveUser):
		return apperr.Unauthorized("inactive_user", "user is inactive", err)
	case errors.Is(err, user.ErrEmailTaken):
		return apperr.Validation("email_taken", "email already registered", err)
	case errors.Is(err, user.ErrInvalidRole):
		return apperr.Validation("invalid_role", "role must be one of buyer, seller", err)
	case errors.Is(err, user.ErrAdminRegistration):
		return apperr.Validation("invalid_role", "admin accounts cannot be self-registered", err)
	case errors.Is(err, user.ErrMissingCredentials):
		return apperr.Validation("missing_credentials", "email and password are required", err)
	case errors.Is(err, user.ErrNotFound):
		return apperr.NotFound("user_not_found", "user not found", err)

	case errors.Is(err, category.ErrParentMissing):
		return apperr.Validation("invalid_parent", "parent category not found", err)
	case errors.Is(err, category.ErrNotFound):
		return apperr.NotFound("category_not_found", "category not found or inactive", err)

	case errors.Is(err, product.ErrCategoryInvalid):
		return apperr.Validation("invalid_category", "category not found or inactive", err)
	case errors.Is(err, product.ErrInvalidPage):
		return apperr.Validation("invalid_page", "page must be >= 1 and page_size between 1 and 100", err)
	case errors.Is(err, product.ErrNotFound):
		return apperr.NotFound("product_not_found", "product not found or inactive", err)
	case errors.Is(err, policy.ErrNotOwner):
		return apperr.Forbidden("not_owner", "you are not the owner of this product", err)

	case errors.Is(err, review.ErrDuplicate):
		return apperr.Conflict("review_exists", "you have already reviewed this product", err)
	case errors.Is(err, review.ErrInvalidGrade):
		return apperr.Validation("invalid_grade", "grade must be between 1 and 5", err)
	case errors.Is(err, review.ErrNotFound):
		return apperr.NotFound("review_not_found", "review not found", err)

	default:
		return apperr.Store(err)
	}
}
