package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"medtour-server/internal/cache"
	"medtour-server/internal/models"
	"medtour-server/internal/store"
	"medtour-server/internal/utils"
)

// DoctorHandler serves the public doctor listing and the admin doctor CRUD.
type DoctorHandler struct {
	Repo  store.DoctorRepository
	Cache cache.DoctorCache // optional
	Log   zerolog.Logger
}

// NewDoctorHandler creates a new DoctorHandler. c may be nil.
func NewDoctorHandler(repo store.DoctorRepository, c cache.DoctorCache, log zerolog.Logger) *DoctorHandler {
	return &DoctorHandler{Repo: repo, Cache: c, Log: log}
}

// DoctorRequest is the body for creating or replacing a doctor.
type DoctorRequest struct {
	Name        string         `json:"name" binding:"required"`
	Hospital    string         `json:"hospital"`
	City        string         `json:"city"`
	Specialty   string         `json:"specialty"`
	Languages   string         `json:"languages"`
	Price       *utils.FlexInt `json:"price" binding:"required"`
	Description string         `json:"description"`
	ImageURL    string         `json:"image_url"`
}

func (r DoctorRequest) toModel() models.Doctor {
	return models.Doctor{
		Name:        r.Name,
		Hospital:    r.Hospital,
		City:        r.City,
		Specialty:   r.Specialty,
		Languages:   r.Languages,
		Price:       r.Price.Int(),
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

// MsgResponse is the acknowledgement returned by admin writes.
type MsgResponse struct {
	Msg string `json:"msg"`
}

// ListDoctors handles GET /api/doctors?city=. "All" or no city lists everything.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	city := c.DefaultQuery("city", store.AllCities)
	if city == "" {
		city = store.AllCities
	}
	ctx := c.Request.Context()

	// the generation is read before the store so a concurrent admin write
	// cannot be overwritten by this listing
	cached := h.Cache != nil
	var gen int64
	if cached {
		var err error
		gen, err = h.Cache.Generation(ctx)
		if err != nil {
			h.Log.Warn().Err(err).Msg("doctor cache unavailable")
			cached = false
		}
	}

	if cached {
		doctors, ok, err := h.Cache.Get(ctx, gen, city)
		if err != nil {
			h.Log.Warn().Err(err).Str("city", city).Msg("doctor cache read failed")
		} else if ok {
			c.JSON(http.StatusOK, doctors)
			return
		}
	}

	doctors, err := h.Repo.ListDoctors(ctx, city)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}

	if cached {
		if err := h.Cache.Set(ctx, gen, city, doctors); err != nil {
			h.Log.Warn().Err(err).Str("city", city).Msg("doctor cache write failed")
		}
	}

	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor handles POST /api/admin/doctors.
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req DoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor := req.toModel()
	doctor.EnsureImage()

	if err := h.Repo.CreateDoctor(c.Request.Context(), &doctor); err != nil {
		utils.InternalServerError(c, "Failed to create doctor: "+err.Error())
		return
	}
	h.invalidate(c.Request.Context())

	c.JSON(http.StatusOK, MsgResponse{Msg: "ok"})
}

// UpdateDoctor handles PUT /api/admin/doctors/:id as a full replace.
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req DoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor := req.toModel()
	if err := h.Repo.UpdateDoctor(c.Request.Context(), id, &doctor); err != nil {
		utils.InternalServerError(c, "Failed to update doctor: "+err.Error())
		return
	}
	h.invalidate(c.Request.Context())

	c.JSON(http.StatusOK, MsgResponse{Msg: "updated"})
}

// DeleteDoctor handles DELETE /api/admin/doctors/:id.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.Repo.DeleteDoctor(c.Request.Context(), id); err != nil {
		utils.InternalServerError(c, "Failed to delete doctor: "+err.Error())
		return
	}
	h.invalidate(c.Request.Context())

	c.JSON(http.StatusOK, MsgResponse{Msg: "deleted"})
}

func (h *DoctorHandler) invalidate(ctx context.Context) {
	if h.Cache == nil {
		return
	}
	if err := h.Cache.Invalidate(ctx); err != nil {
		h.Log.Error().Err(err).Msg("doctor cache invalidation failed")
	}
}
