package handler

import (
	"net/http"

	"chequesaathi/internal/middleware"
	"chequesaathi/internal/repository"
	"chequesaathi/internal/service"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

type CustomerRequest struct {
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	BusinessName *string `json:"businessName"`
	Address      *string `json:"address"`
	Notes        *string `json:"notes"`
}

type CustomerPatchRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	BusinessName *string `json:"businessName"`
	Address      *string `json:"address"`
	Notes        *string `json:"notes"`
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	customer, err := h.svc.Create(c.Request.Context(), middleware.GetUserID(c), service.CustomerInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		BusinessName: req.BusinessName,
		Address:      req.Address,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Customer created successfully",
		"customer": customer,
	})
}

func (h *CustomerHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	customers, pagination, err := h.svc.List(c.Request.Context(), repository.CustomerFilter{Search: c.Query("search")}, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers, "pagination": pagination})
}

func (h *CustomerHandler) Get(c *gin.Context) {
	detail, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": detail})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req CustomerPatchRequest
	if !bindJSON(c, &req) {
		return
	}
	customer, err := h.svc.Update(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), service.CustomerPatch{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		BusinessName: req.BusinessName,
		Address:      req.Address,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Customer updated successfully",
		"customer": customer,
	})
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
