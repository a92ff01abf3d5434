// internal/app/features/tenants/handler.go
package tenants

import (
	"context"
	"net/http"

	societystore "github.com/avasuite/ava/internal/app/store/societies"
	userstore "github.com/avasuite/ava/internal/app/store/users"
	"github.com/avasuite/ava/internal/app/system/authutil"
	"github.com/avasuite/ava/internal/app/system/authz"
	"github.com/avasuite/ava/internal/app/system/httpjson"
	"github.com/avasuite/ava/internal/app/system/normalize"
	"github.com/avasuite/ava/internal/app/system/timeouts"
	"github.com/avasuite/ava/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves tenant account management for administrators.
type Handler struct {
	Users     *userstore.Store
	Societies *societystore.Store
	Log       *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Users:     userstore.New(db),
		Societies: societystore.New(db),
		Log:       logger,
	}
}

type createRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Unit     string `json:"unit"`
}

// Create handles POST /api/admin/tenants. The caller must already own
// a society; the new tenant is bound to it.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	_, _, adminID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = normalize.Email(req.Email)
	req.Name = normalize.Name(req.Name)
	req.Unit = normalize.Unit(req.Unit)
	switch {
	case req.Name == "":
		httpjson.Error(w, http.StatusBadRequest, "name is required")
		return
	case !authutil.IsValidEmail(req.Email):
		httpjson.Error(w, http.StatusBadRequest, "a valid email is required")
		return
	case len(req.Password) < authutil.MinPasswordLength:
		httpjson.Error(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	case req.Unit == "":
		httpjson.Error(w, http.StatusBadRequest, "unit is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	soc, err := h.Societies.GetByAdminID(ctx, adminID)
	if err != nil {
		if err == societystore.ErrNotFound {
			httpjson.Error(w, http.StatusBadRequest, "create a society before adding tenants")
			return
		}
		h.Log.Error("society lookup failed", zap.Error(err), zap.String("admin_id", adminID.Hex()))
		httpjson.InternalError(w)
		return
	}

	hash, err := authutil.HashPassword(req.Password)
	if err != nil {
		h.Log.Error("password hashing failed", zap.Error(err))
		httpjson.InternalError(w)
		return
	}

	tenant, err := h.Users.Create(ctx, models.User{
		FullName:     req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleTenant,
		SocietyID:    &soc.ID,
		Unit:         req.Unit,
	})
	if err != nil {
		if err == userstore.ErrDuplicateEmail {
			httpjson.Error(w, http.StatusBadRequest, "an account with this email already exists")
			return
		}
		h.Log.Error("tenant create failed", zap.Error(err), zap.String("admin_id", adminID.Hex()))
		httpjson.InternalError(w)
		return
	}

	// PasswordHash has json:"-" so the hash never leaves the server.
	httpjson.Write(w, http.StatusCreated, tenant)
}

// List handles GET /api/admin/tenants.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	_, _, adminID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	soc, err := h.Societies.GetByAdminID(ctx, adminID)
	if err != nil {
		if err == societystore.ErrNotFound {
			httpjson.Error(w, http.StatusBadRequest, "create a society before listing tenants")
			return
		}
		h.Log.Error("society lookup failed", zap.Error(err), zap.String("admin_id", adminID.Hex()))
		httpjson.InternalError(w)
		return
	}

	list, err := h.Users.ListTenantsBySociety(ctx, soc.ID)
	if err != nil {
		h.Log.Error("tenant list failed", zap.Error(err), zap.String("society_id", soc.ID.Hex()))
		httpjson.InternalError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, list)
}
