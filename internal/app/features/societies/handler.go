// internal/app/features/societies/handler.go
package societies

import (
	"context"
	"net/http"

	societystore "github.com/avasuite/ava/internal/app/store/societies"
	"github.com/avasuite/ava/internal/app/system/authz"
	"github.com/avasuite/ava/internal/app/system/httpjson"
	"github.com/avasuite/ava/internal/app/system/normalize"
	"github.com/avasuite/ava/internal/app/system/timeouts"
	"github.com/avasuite/ava/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves society creation and lookup for administrators.
type Handler struct {
	Societies *societystore.Store
	Log       *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Societies: societystore.New(db),
		Log:       logger,
	}
}

type createRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	TotalUnits int    `json:"totalUnits"`
}

// Create handles POST /api/admin/society. Each administrator owns at
// most one society; the unique admin_id index rejects a second.
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

	req.Name = normalize.Name(req.Name)
	req.Address = normalize.Name(req.Address)
	switch {
	case req.Name == "":
		httpjson.Error(w, http.StatusBadRequest, "name is required")
		return
	case req.Address == "":
		httpjson.Error(w, http.StatusBadRequest, "address is required")
		return
	case req.TotalUnits <= 0:
		httpjson.Error(w, http.StatusBadRequest, "totalUnits must be a positive number")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	soc, err := h.Societies.Create(ctx, models.Society{
		Name:       req.Name,
		Address:    req.Address,
		TotalUnits: req.TotalUnits,
	}, adminID)
	if err != nil {
		if err == societystore.ErrSocietyExists {
			httpjson.Error(w, http.StatusBadRequest, "you have already created a society")
			return
		}
		h.Log.Error("society create failed", zap.Error(err), zap.String("admin_id", adminID.Hex()))
		httpjson.InternalError(w)
		return
	}

	httpjson.Write(w, http.StatusCreated, soc)
}

// Get handles GET /api/admin/society.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	_, _, adminID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	soc, err := h.Societies.GetByAdminID(ctx, adminID)
	if err != nil {
		if err == societystore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "no society found for this account")
			return
		}
		h.Log.Error("society lookup failed", zap.Error(err), zap.String("admin_id", adminID.Hex()))
		httpjson.InternalError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, soc)
}
