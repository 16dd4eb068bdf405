package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

func newVendorHandler(vs portssvc.VendorSvcFacade) *vendorHandler {
	return &vendorHandler{vendorService: vs}
}

// registerVendorRoutes sets up the vendor directory routes.
func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := newVendorHandler(vendorService)

	vendors := rg.Group("/vendors")
	{
		vendors.GET("", h.listVendors)
		vendors.POST("", h.createVendor)
		vendors.PUT("/:id", h.updateVendor)
		vendors.DELETE("/:id", h.deleteVendor)
	}
}

func (h *vendorHandler) listVendors(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	vendors, err := h.vendorService.ListVendors(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

func (h *vendorHandler) createVendor(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.VendorForm
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

func (h *vendorHandler) updateVendor(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.VendorForm
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func (h *vendorHandler) deleteVendor(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.vendorService.DeleteVendor(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
