// internal/app/features/notices/handler.go
package notices

import (
	"context"
	"net/http"

	noticestore "github.com/avasuite/ava/internal/app/store/notices"
	"github.com/avasuite/ava/internal/app/system/authz"
	"github.com/avasuite/ava/internal/app/system/httpjson"
	"github.com/avasuite/ava/internal/app/system/normalize"
	"github.com/avasuite/ava/internal/app/system/timeouts"
	"github.com/avasuite/ava/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves society notice boards.
type Handler struct {
	Notices *noticestore.Store
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Notices: noticestore.New(db),
		Log:     logger,
	}
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetRole  string `json:"targetRole"`
}

// Create handles POST /api/notices. The notice is stamped with the
// author and the author's society; callers without a society are
// rejected before any write.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	_, _, authorID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if !authz.HasSociety(r) {
		httpjson.Error(w, http.StatusBadRequest, "create a society before posting notices")
		return
	}

	var req createRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Title = normalize.Name(req.Title)
	req.TargetRole = normalize.Role(req.TargetRole)
	switch {
	case req.Title == "":
		httpjson.Error(w, http.StatusBadRequest, "title is required")
		return
	case req.Description == "":
		httpjson.Error(w, http.StatusBadRequest, "description is required")
		return
	case !models.IsValidRole(req.TargetRole):
		httpjson.Error(w, http.StatusBadRequest, "targetRole must be admin or tenant")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	notice, err := h.Notices.Create(ctx, models.Notice{
		Title:      req.Title,
		Body:       req.Description,
		TargetRole: req.TargetRole,
		SocietyID:  authz.SocietyID(r),
		AuthorID:   authorID,
	})
	if err != nil {
		h.Log.Error("notice create failed", zap.Error(err), zap.String("author_id", authorID.Hex()))
		httpjson.InternalError(w)
		return
	}

	httpjson.Write(w, http.StatusCreated, notice)
}

// ListForAdmins handles GET /api/notices/admin.
func (h *Handler) ListForAdmins(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.RoleAdmin)
}

// ListForTenants handles GET /api/notices/tenant.
func (h *Handler) ListForTenants(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.RoleTenant)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, audience string) {
	if !authz.HasSociety(r) {
		httpjson.Error(w, http.StatusBadRequest, "no society associated with this account")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Notices.ListBySocietyAndAudience(ctx, authz.SocietyID(r), audience)
	if err != nil {
		h.Log.Error("notice list failed", zap.Error(err), zap.String("audience", audience))
		httpjson.InternalError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, list)
}
