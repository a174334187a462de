// Package export renders cheque and transaction listings as CSV or XLSX.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"chequesaathi/internal/domain"
	"chequesaathi/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat defaults to CSV when s is empty.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", domain.Validation("Unsupported export format %q (use csv or xlsx)", s)
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Filename names an export file after what it holds and the day it was made.
func (f Format) Filename(what string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", what, now.Format("20060102"), f)
}

// table is a header plus rows of cells. Cells are string, decimal.Decimal,
// time.Time or *time.Time.
type table struct {
	sheet   string
	headers []string
	rows    [][]interface{}
}

var chequeHeaders = []string{
	"Cheque Number", "Customer", "Amount", "Bank", "Branch", "IFSC", "Type", "Direction",
	"Drawer", "Payee", "Issue Date", "Due Date", "Status", "Deposit Date", "Cleared Date",
	"Bounced Date", "Bounce Reason", "Notes",
}

func chequeTable(cheques []models.Cheque) table {
	t := table{sheet: "Cheques", headers: chequeHeaders}
	for i := range cheques {
		c := &cheques[i]
		customer := ""
		if c.Customer != nil {
			customer = c.Customer.Name
		}
		t.rows = append(t.rows, []interface{}{
			c.ChequeNumber, customer, c.Amount, c.BankName, str(c.BranchName), str(c.IFSCCode),
			string(c.ChequeType), string(c.Direction), c.DrawerName, c.PayeeName,
			c.IssueDate, c.DueDate, string(c.Status), c.DepositDate, c.ClearedDate,
			c.BouncedDate, str(c.BounceReason), str(c.Notes),
		})
	}
	return t
}

var transactionHeaders = []string{
	"Date", "Customer", "Type", "Method", "Amount", "Reference", "Category", "Notes",
}

func transactionTable(txns []models.CashTransaction) table {
	t := table{sheet: "Transactions", headers: transactionHeaders}
	for i := range txns {
		tx := &txns[i]
		customer := ""
		if tx.Customer != nil {
			customer = tx.Customer.Name
		}
		t.rows = append(t.rows, []interface{}{
			tx.Date, customer, string(tx.Type), string(tx.PaymentMethod), tx.Amount,
			str(tx.Reference), str(tx.Category), str(tx.Notes),
		})
	}
	return t
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Cheques writes cheques to w. Dates are rendered in loc.
func Cheques(w io.Writer, f Format, cheques []models.Cheque, loc *time.Location) error {
	return write(w, f, chequeTable(cheques), loc)
}

// Transactions writes transactions to w. Dates are rendered in loc.
func Transactions(w io.Writer, f Format, txns []models.CashTransaction, loc *time.Location) error {
	return write(w, f, transactionTable(txns), loc)
}

func write(w io.Writer, f Format, t table, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	switch f {
	case FormatCSV:
		return writeCSV(w, t, loc)
	case FormatXLSX:
		return writeXLSX(w, t, loc)
	}
	return domain.Validation("Unsupported export format %q (use csv or xlsx)", f)
}

func formatDate(v interface{}, loc *time.Location) (string, bool) {
	switch d := v.(type) {
	case time.Time:
		return d.In(loc).Format("2006-01-02"), true
	case *time.Time:
		if d == nil {
			return "", true
		}
		return d.In(loc).Format("2006-01-02"), true
	}
	return "", false
}

func writeCSV(w io.Writer, t table, loc *time.Location) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.headers); err != nil {
		return err
	}
	record := make([]string, len(t.headers))
	for _, row := range t.rows {
		for i, v := range row {
			if s, ok := formatDate(v, loc); ok {
				record[i] = s
				continue
			}
			switch x := v.(type) {
			case decimal.Decimal:
				record[i] = x.StringFixed(2)
			default:
				record[i] = fmt.Sprint(x)
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, t table, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", t.sheet); err != nil {
		return err
	}
	header := make([]interface{}, len(t.headers))
	for i, h := range t.headers {
		header[i] = h
	}
	if err := f.SetSheetRow(t.sheet, "A1", &header); err != nil {
		return err
	}
	for r, row := range t.rows {
		cells := make([]interface{}, len(row))
		for i, v := range row {
			if s, ok := formatDate(v, loc); ok {
				cells[i] = s
				continue
			}
			if d, ok := v.(decimal.Decimal); ok {
				cells[i] = d.InexactFloat64()
				continue
			}
			cells[i] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(t.sheet, cell, &cells); err != nil {
			return err
		}
	}
	last, err := excelize.ColumnNumberToName(len(t.headers))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(t.sheet, "A", last, 16); err != nil {
		return err
	}
	return f.Write(w)
}
