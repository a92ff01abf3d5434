// internal/app/features/tenantauth/handler.go
package tenantauth

import (
	"context"
	"net/http"

	societystore "github.com/avasuite/ava/internal/app/store/societies"
	userstore "github.com/avasuite/ava/internal/app/store/users"
	"github.com/avasuite/ava/internal/app/system/authutil"
	"github.com/avasuite/ava/internal/app/system/authz"
	"github.com/avasuite/ava/internal/app/system/httpjson"
	"github.com/avasuite/ava/internal/app/system/timeouts"
	"github.com/avasuite/ava/internal/app/system/tokens"
	"github.com/avasuite/ava/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves tenant login and profile.
type Handler struct {
	Users     *userstore.Store
	Societies *societystore.Store
	Tokens    *tokens.Service
	Log       *zap.Logger
}

func NewHandler(db *mongo.Database, tok *tokens.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Users:     userstore.New(db),
		Societies: societystore.New(db),
		Tokens:    tok,
		Log:       logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Tenant models.User `json:"tenant"`
	Token  string      `json:"token"`
}

// Login handles POST /api/tenant/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpjson.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	tenant, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil || tenant.Role != models.RoleTenant || !authutil.CheckPassword(tenant.PasswordHash, req.Password) {
		httpjson.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	societyID := ""
	if tenant.SocietyID != nil {
		societyID = tenant.SocietyID.Hex()
	}
	token, err := h.Tokens.Issue(tenant.ID.Hex(), tenant.Role, societyID)
	if err != nil {
		h.Log.Error("token issue failed", zap.Error(err))
		httpjson.InternalError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, loginResponse{Tenant: *tenant, Token: token})
}

type profileResponse struct {
	Tenant  models.User     `json:"tenant"`
	Society *models.Society `json:"society,omitempty"`
}

// Profile handles GET /api/tenant/profile. The society document is
// expanded inline so the client does not need a second round trip.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	_, _, tenantID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	tenant, err := h.Users.GetByID(ctx, tenantID)
	if err != nil {
		h.Log.Error("tenant lookup failed", zap.Error(err), zap.String("tenant_id", tenantID.Hex()))
		httpjson.Error(w, http.StatusNotFound, "account not found")
		return
	}

	resp := profileResponse{Tenant: *tenant}
	if tenant.SocietyID != nil {
		if soc, err := h.Societies.GetByID(ctx, *tenant.SocietyID); err == nil {
			resp.Society = soc
		}
	}

	httpjson.Write(w, http.StatusOK, resp)
}
