package handler

import (
	"net/http"
	"strings"
	"time"

	"chequesaathi/internal/domain"
	"chequesaathi/internal/export"
	"chequesaathi/internal/lifecycle"
	"chequesaathi/internal/middleware"
	"chequesaathi/internal/models"
	"chequesaathi/internal/repository"
	"chequesaathi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ChequeHandler struct {
	svc *service.ChequeService
	loc *time.Location
}

func NewChequeHandler(svc *service.ChequeService, loc *time.Location) *ChequeHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ChequeHandler{svc: svc, loc: loc}
}

type ChequeRequest struct {
	CustomerID   string          `json:"customerId"`
	ChequeNumber string          `json:"chequeNumber"`
	Amount       decimal.Decimal `json:"amount"`
	BankName     string          `json:"bankName"`
	BranchName   *string         `json:"branchName"`
	IFSCCode     *string         `json:"ifscCode"`
	ChequeType   string          `json:"chequeType"`
	Direction    string          `json:"direction"`
	DrawerName   string          `json:"drawerName"`
	PayeeName    string          `json:"payeeName"`
	IssueDate    string          `json:"issueDate"`
	DueDate      string          `json:"dueDate"`
	Notes        *string         `json:"notes"`
}

type ChequePatchRequest struct {
	ChequeNumber *string          `json:"chequeNumber"`
	Amount       *decimal.Decimal `json:"amount"`
	BankName     *string          `json:"bankName"`
	BranchName   *string          `json:"branchName"`
	IFSCCode     *string          `json:"ifscCode"`
	ChequeType   *string          `json:"chequeType"`
	Direction    *string          `json:"direction"`
	DrawerName   *string          `json:"drawerName"`
	PayeeName    *string          `json:"payeeName"`
	IssueDate    *string          `json:"issueDate"`
	DueDate      *string          `json:"dueDate"`
	Notes        *string          `json:"notes"`
}

type StatusRequest struct {
	Status       string  `json:"status"`
	DepositDate  *string `json:"depositDate"`
	ClearedDate  *string `json:"clearedDate"`
	BouncedDate  *string `json:"bouncedDate"`
	BounceReason *string `json:"bounceReason"`
}

func views(cheques []models.Cheque) []models.ChequeView {
	out := make([]models.ChequeView, len(cheques))
	for i := range cheques {
		out[i] = cheques[i].View()
	}
	return out
}

// chequeFilter reads the listing filters shared by List and Export.
func chequeFilter(c *gin.Context) (repository.ChequeFilter, error) {
	f := repository.ChequeFilter{
		Search:     strings.TrimSpace(c.Query("search")),
		CustomerID: c.Query("customerId"),
		Status:     domain.ChequeStatus(c.Query("status")),
		ChequeType: domain.ChequeType(c.Query("chequeType")),
		Direction:  domain.ChequeDirection(c.Query("direction")),
		SortBy:     queryOr(c, "sortBy", "dueDate"),
		SortOrder:  queryOr(c, "sortOrder", "desc"),
	}
	if f.Status != "" && !f.Status.Valid() {
		return f, domain.Validation("Invalid status %q", f.Status)
	}
	if f.ChequeType != "" && !f.ChequeType.Valid() {
		return f, domain.Validation("Invalid chequeType %q", f.ChequeType)
	}
	if f.Direction != "" && !f.Direction.Valid() {
		return f, domain.Validation("Invalid direction %q", f.Direction)
	}
	if !repository.ValidChequeSort(f.SortBy) {
		return f, domain.Validation("Invalid sortBy %q", f.SortBy)
	}
	return f, nil
}

func (h *ChequeHandler) Create(c *gin.Context) {
	var req ChequeRequest
	if !bindJSON(c, &req) {
		return
	}
	d := dates{loc: h.loc}
	in := service.ChequeInput{
		CustomerID:   req.CustomerID,
		ChequeNumber: req.ChequeNumber,
		Amount:       req.Amount,
		BankName:     req.BankName,
		BranchName:   req.BranchName,
		IFSCCode:     req.IFSCCode,
		ChequeType:   domain.ChequeType(req.ChequeType),
		Direction:    domain.ChequeDirection(req.Direction),
		DrawerName:   req.DrawerName,
		PayeeName:    req.PayeeName,
		IssueDate:    d.required(req.IssueDate, "issueDate"),
		DueDate:      d.required(req.DueDate, "dueDate"),
		Notes:        req.Notes,
	}
	if d.err != nil {
		respondError(c, d.err)
		return
	}
	cheque, err := h.svc.Create(c.Request.Context(), middleware.GetUserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Cheque created successfully",
		"cheque":  cheque.View(),
	})
}

func (h *ChequeHandler) List(c *gin.Context) {
	f, err := chequeFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	page, limit := pageParams(c)
	cheques, pagination, err := h.svc.List(c.Request.Context(), f, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cheques": views(cheques), "pagination": pagination})
}

// Export streams every matching cheque as CSV or XLSX.
func (h *ChequeHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}
	f, err := chequeFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	cheques, err := h.svc.Export(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Type", format.ContentType())
	c.Header("Content-Disposition", `attachment; filename="`+format.Filename("cheques", time.Now().In(h.loc))+`"`)
	if err := export.Cheques(c.Writer, format, cheques, h.loc); err != nil {
		_ = c.Error(err)
	}
}

func (h *ChequeHandler) Get(c *gin.Context) {
	cheque, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cheque": cheque.View()})
}

func (h *ChequeHandler) Update(c *gin.Context) {
	var req ChequePatchRequest
	if !bindJSON(c, &req) {
		return
	}
	d := dates{loc: h.loc}
	p := service.ChequePatch{
		ChequeNumber: req.ChequeNumber,
		Amount:       req.Amount,
		BankName:     req.BankName,
		BranchName:   req.BranchName,
		IFSCCode:     req.IFSCCode,
		DrawerName:   req.DrawerName,
		PayeeName:    req.PayeeName,
		IssueDate:    d.optional(req.IssueDate, "issueDate"),
		DueDate:      d.optional(req.DueDate, "dueDate"),
		Notes:        req.Notes,
	}
	if d.err != nil {
		respondError(c, d.err)
		return
	}
	if req.ChequeType != nil {
		t := domain.ChequeType(*req.ChequeType)
		p.ChequeType = &t
	}
	if req.Direction != nil {
		dir := domain.ChequeDirection(*req.Direction)
		p.Direction = &dir
	}
	cheque, err := h.svc.Update(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Cheque updated successfully",
		"cheque":  cheque.View(),
	})
}

func (h *ChequeHandler) UpdateStatus(c *gin.Context) {
	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	d := dates{loc: h.loc}
	data := lifecycle.Data{
		DepositDate:  d.optional(req.DepositDate, "depositDate"),
		ClearedDate:  d.optional(req.ClearedDate, "clearedDate"),
		BouncedDate:  d.optional(req.BouncedDate, "bouncedDate"),
		BounceReason: req.BounceReason,
	}
	if d.err != nil {
		respondError(c, d.err)
		return
	}
	target := domain.ChequeStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	cheque, err := h.svc.UpdateStatus(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), target, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Cheque status updated successfully",
		"cheque":  cheque.View(),
	})
}

func (h *ChequeHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cheque deleted successfully"})
}
