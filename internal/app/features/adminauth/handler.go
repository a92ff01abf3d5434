// internal/app/features/adminauth/handler.go
package adminauth

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
	"github.com/avasuite/ava/internal/app/system/tokens"
	"github.com/avasuite/ava/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves admin signup, login, and profile.
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

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Admin models.User `json:"admin"`
	Token string      `json:"token"`
}

// Signup handles POST /api/admin/signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = normalize.Email(req.Email)
	req.Name = normalize.Name(req.Name)
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
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Fast-path check; the unique index still backstops the race.
	if exists, err := h.Users.EmailExists(ctx, req.Email); err != nil {
		h.Log.Error("signup email check failed", zap.Error(err), zap.String("path", r.URL.Path))
		httpjson.InternalError(w)
		return
	} else if exists {
		httpjson.Error(w, http.StatusBadRequest, "an account with this email already exists")
		return
	}

	hash, err := authutil.HashPassword(req.Password)
	if err != nil {
		h.Log.Error("password hashing failed", zap.Error(err))
		httpjson.InternalError(w)
		return
	}

	admin, err := h.Users.Create(ctx, models.User{
		FullName:     req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
	if err != nil {
		if err == userstore.ErrDuplicateEmail {
			httpjson.Error(w, http.StatusBadRequest, "an account with this email already exists")
			return
		}
		h.Log.Error("admin create failed", zap.Error(err))
		httpjson.InternalError(w)
		return
	}

	token, err := h.Tokens.Issue(admin.ID.Hex(), admin.Role, "")
	if err != nil {
		h.Log.Error("token issue failed", zap.Error(err))
		httpjson.InternalError(w)
		return
	}

	httpjson.Write(w, http.StatusCreated, authResponse{Admin: admin, Token: token})
}

// Login handles POST /api/admin/login.
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

	admin, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil || admin.Role != models.RoleAdmin || !authutil.CheckPassword(admin.PasswordHash, req.Password) {
		// One message for every failure mode; no account probing.
		httpjson.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	societyID := ""
	if admin.SocietyID != nil {
		societyID = admin.SocietyID.Hex()
	}
	token, err := h.Tokens.Issue(admin.ID.Hex(), admin.Role, societyID)
	if err != nil {
		h.Log.Error("token issue failed", zap.Error(err))
		httpjson.InternalError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, authResponse{Admin: *admin, Token: token})
}

type profileResponse struct {
	Admin   models.User     `json:"admin"`
	Society *models.Society `json:"society,omitempty"`
}

// Profile handles GET /api/admin/profile.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	_, _, adminID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	admin, err := h.Users.GetByID(ctx, adminID)
	if err != nil {
		h.Log.Error("admin lookup failed", zap.Error(err), zap.String("admin_id", adminID.Hex()))
		httpjson.Error(w, http.StatusNotFound, "account not found")
		return
	}

	resp := profileResponse{Admin: *admin}
	if admin.SocietyID != nil {
		if soc, err := h.Societies.GetByID(ctx, *admin.SocietyID); err == nil {
			resp.Society = soc
		}
	}

	httpjson.Write(w, http.StatusOK, resp)
}
