package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawsitiveapps/pet-scheduler/internal/audit"
	"github.com/pawsitiveapps/pet-scheduler/internal/domain/catalog"
	"github.com/pawsitiveapps/pet-scheduler/internal/dto"
	"github.com/pawsitiveapps/pet-scheduler/internal/httperr"
)

// ListingCache holds the rendered public listing between requests.
// cache.ServiceListing is the Redis-backed implementation.
type ListingCache interface {
	Get(ctx context.Context) ([]byte, bool)
	Set(ctx context.Context, payload []byte)
	Invalidate(ctx context.Context)
}

type CatalogHandler struct {
	repo    catalog.Repository
	listing ListingCache
	audit   *audit.Dispatcher
}

func NewCatalogHandler(
	repo catalog.Repository,
	listing ListingCache,
	dispatcher *audit.Dispatcher,
) *CatalogHandler {
	return &CatalogHandler{
		repo:    repo,
		listing: listing,
		audit:   dispatcher,
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

type UpdateServiceRequest struct {
	Name            catalog.Optional[string] `json:"name"`
	DurationMinutes catalog.Optional[int]    `json:"durationMinutes"`
	IsActive        catalog.Optional[bool]   `json:"isActive"`
}

// --------- Handlers ---------

func (h *CatalogHandler) ListPublic(c *gin.Context) {
	ctx := c.Request.Context()

	if payload, ok := h.listing.Get(ctx); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	services, err := h.repo.ListActive(ctx)
	if err != nil {
		httperr.Internal(c, "storage_error", err.Error())
		return
	}

	out := make([]dto.PublicServiceDTO, 0, len(services))
	for _, s := range services {
		out = append(out, dto.PublicService(s))
	}

	body := gin.H{"services": out}
	if payload, err := json.Marshal(body); err == nil {
		h.listing.Set(ctx, payload)
	}

	c.JSON(http.StatusOK, body)
}

func (h *CatalogHandler) ListAdmin(c *gin.Context) {
	services, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "storage_error", err.Error())
		return
	}

	out := make([]dto.AdminServiceDTO, 0, len(services))
	for _, s := range services {
		out = append(out, dto.AdminService(s))
	}

	c.JSON(http.StatusOK, gin.H{"services": out})
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, catalog.ErrCodeValidation, "Missing name or durationMinutes")
		return
	}

	service, err := h.repo.Create(c.Request.Context(), catalog.CreateServiceInput{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		if httperr.IsBusiness(err, catalog.ErrCodeValidation) {
			httperr.BadRequest(c, catalog.ErrCodeValidation, "Missing name or durationMinutes")
			return
		}
		httperr.Internal(c, "storage_error", err.Error())
		return
	}

	h.listing.Invalidate(c.Request.Context())
	h.audit.Dispatch(audit.Event{
		Action:   "service.created",
		Entity:   "service",
		EntityID: service.ID,
		Metadata: req,
	})

	c.JSON(http.StatusCreated, gin.H{"service": dto.AdminService(*service)})
}

func (h *CatalogHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, catalog.ErrCodeValidation, "Invalid request body")
		return
	}

	service, err := h.repo.Update(c.Request.Context(), id, catalog.UpdateServiceInput{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		IsActive:        req.IsActive,
	})
	if err != nil {
		if httperr.IsBusiness(err, catalog.ErrCodeNotFound) {
			httperr.NotFound(c, catalog.ErrCodeNotFound, "Not found")
			return
		}
		if httperr.IsBusiness(err, catalog.ErrCodeValidation) {
			httperr.BadRequest(c, catalog.ErrCodeValidation, "Invalid service fields")
			return
		}
		httperr.Internal(c, "storage_error", err.Error())
		return
	}

	changes := map[string]any{}
	if req.Name.Present() {
		changes["name"] = req.Name.Value
	}
	if req.DurationMinutes.Present() {
		changes["durationMinutes"] = req.DurationMinutes.Value
	}
	if req.IsActive.Present() {
		changes["isActive"] = req.IsActive.Value
	}

	h.listing.Invalidate(c.Request.Context())
	h.audit.Dispatch(audit.Event{
		Action:   "service.updated",
		Entity:   "service",
		EntityID: service.ID,
		Metadata: changes,
	})

	c.JSON(http.StatusOK, gin.H{"service": dto.AdminService(*service)})
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, catalog.ErrCodeNotFound) {
			httperr.NotFound(c, catalog.ErrCodeNotFound, "Not found")
			return
		}
		httperr.Internal(c, "storage_error", err.Error())
		return
	}

	h.listing.Invalidate(c.Request.Context())
	h.audit.Dispatch(audit.Event{
		Action:   "service.deleted",
		Entity:   "service",
		EntityID: id,
	})

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
