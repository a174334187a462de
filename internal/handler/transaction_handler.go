package handler

import (
	"net/http"
	"strings"
	"time"

	"chequesaathi/internal/domain"
	"chequesaathi/internal/export"
	"chequesaathi/internal/middleware"
	"chequesaathi/internal/models"
	"chequesaathi/internal/repository"
	"chequesaathi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	svc *service.TransactionService
	loc *time.Location
}

func NewTransactionHandler(svc *service.TransactionService, loc *time.Location) *TransactionHandler {
	if loc == nil {
		loc = time.Local
	}
	return &TransactionHandler{svc: svc, loc: loc}
}

type TransactionRequest struct {
	CustomerID string          `json:"customerId"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	Method     string          `json:"method"`
	Date       string          `json:"date"`
	Reference  *string         `json:"reference"`
	Category   *string         `json:"category"`
	Notes      *string         `json:"notes"`
}

type TransactionPatchRequest struct {
	Amount    *decimal.Decimal `json:"amount"`
	Type      *string          `json:"type"`
	Method    *string          `json:"method"`
	Date      *string          `json:"date"`
	Reference *string          `json:"reference"`
	Category  *string          `json:"category"`
	Notes     *string          `json:"notes"`
}

func transactionViews(txns []models.CashTransaction) []models.TransactionView {
	out := make([]models.TransactionView, len(txns))
	for i := range txns {
		out[i] = txns[i].View()
	}
	return out
}

func (h *TransactionHandler) filter(c *gin.Context) (repository.TransactionFilter, error) {
	f := repository.TransactionFilter{
		CustomerID: c.Query("customerId"),
		Type:       domain.TransactionType(c.Query("type")),
		Method:     domain.PaymentMethod(c.Query("method")),
		Category:   strings.TrimSpace(c.Query("category")),
		SortBy:     queryOr(c, "sortBy", "date"),
		SortOrder:  queryOr(c, "sortOrder", "desc"),
	}
	if f.Type != "" && !f.Type.Valid() {
		return f, domain.Validation("Invalid type %q", f.Type)
	}
	if f.Method != "" && !f.Method.Valid() {
		return f, domain.Validation("Invalid method %q", f.Method)
	}
	if !repository.ValidTransactionSort(f.SortBy) {
		return f, domain.Validation("Invalid sortBy %q", f.SortBy)
	}
	if s := c.Query("startDate"); s != "" {
		t, err := parseDate(s, h.loc)
		if err != nil {
			return f, domain.Validation("Invalid startDate")
		}
		f.StartDate = &t
	}
	if s := c.Query("endDate"); s != "" {
		t, err := parseDate(s, h.loc)
		if err != nil {
			return f, domain.Validation("Invalid endDate")
		}
		t = endOfDay(s, t)
		f.EndDate = &t
	}
	return f, nil
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var req TransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	d := dates{loc: h.loc}
	in := service.TransactionInput{
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Type:       domain.TransactionType(req.Type),
		Method:     domain.PaymentMethod(req.Method),
		Date:       d.required(req.Date, "date"),
		Reference:  req.Reference,
		Category:   req.Category,
		Notes:      req.Notes,
	}
	if d.err != nil {
		respondError(c, d.err)
		return
	}
	txn, err := h.svc.Create(c.Request.Context(), middleware.GetUserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Transaction created successfully",
		"transaction": txn.View(),
	})
}

func (h *TransactionHandler) List(c *gin.Context) {
	f, err := h.filter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	page, limit := pageParams(c)
	txns, pagination, err := h.svc.List(c.Request.Context(), f, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": transactionViews(txns), "pagination": pagination})
}

func (h *TransactionHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}
	f, err := h.filter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	txns, err := h.svc.Export(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Type", format.ContentType())
	c.Header("Content-Disposition", `attachment; filename="`+format.Filename("transactions", time.Now().In(h.loc))+`"`)
	if err := export.Transactions(c.Writer, format, txns, h.loc); err != nil {
		_ = c.Error(err)
	}
}

func (h *TransactionHandler) Get(c *gin.Context) {
	txn, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": txn.View()})
}

func (h *TransactionHandler) Update(c *gin.Context) {
	var req TransactionPatchRequest
	if !bindJSON(c, &req) {
		return
	}
	d := dates{loc: h.loc}
	p := service.TransactionPatch{
		Amount:    req.Amount,
		Date:      d.optional(req.Date, "date"),
		Reference: req.Reference,
		Category:  req.Category,
		Notes:     req.Notes,
	}
	if d.err != nil {
		respondError(c, d.err)
		return
	}
	if req.Type != nil {
		t := domain.TransactionType(*req.Type)
		p.Type = &t
	}
	if req.Method != nil {
		m := domain.PaymentMethod(*req.Method)
		p.Method = &m
	}
	txn, err := h.svc.Update(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Transaction updated successfully",
		"transaction": txn.View(),
	})
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
