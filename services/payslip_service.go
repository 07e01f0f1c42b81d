package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/shopspring/decimal"

	"github.com/madiharazzak/WEIC-Time-Tracking/models"
)

const payslipTemplatePath = "templates/payslip.html"

type payslipRow struct {
	Date          string
	CheckIn       string
	CheckOut      string
	HoursWorked   string
	BillableHours string
	Pay           string
}

type payslipData struct {
	TeacherName   string
	Period        string
	HourlyRate    string
	Rows          []payslipRow
	TotalHours    string
	TotalBillable string
	TotalPay      string
	GeneratedAt   string
}

// GeneratePayslipPDF renders one teacher's month of completed entries into a
// printable PDF pay statement. The entries are expected pre-filtered to the
// period and to completed sessions.
func GeneratePayslipPDF(teacher *models.Teacher, entries []models.TimeEntry, month time.Month, year int) ([]byte, error) {
	html, err := renderPayslipHTML(teacher, entries, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to render payslip HTML: %w", err)
	}
	return printToPDF(html)
}

func renderPayslipHTML(teacher *models.Teacher, entries []models.TimeEntry, month time.Month, year int) (string, error) {
	tmpl, err := template.ParseFiles(payslipTemplatePath)
	if err != nil {
		return "", err
	}

	totalHours := decimal.Zero
	totalBillable := decimal.Zero
	totalPay := decimal.Zero

	rows := make([]payslipRow, 0, len(entries))
	for _, e := range entries {
		if e.CheckOutTime == nil {
			continue
		}
		row := payslipRow{
			Date:          e.Date,
			CheckIn:       e.CheckInTime.Format("15:04"),
			CheckOut:      e.CheckOutTime.Format("15:04"),
			HoursWorked:   e.HoursWorked.StringFixed(2),
			BillableHours: e.BillableHours.StringFixed(2),
		}
		totalHours = totalHours.Add(e.HoursWorked)
		totalBillable = totalBillable.Add(e.BillableHours)
		if e.Pay != nil {
			row.Pay = e.Pay.StringFixed(2)
			totalPay = totalPay.Add(*e.Pay)
		}
		rows = append(rows, row)
	}

	data := payslipData{
		TeacherName:   teacher.Name,
		Period:        fmt.Sprintf("%s %d", month.String(), year),
		HourlyRate:    teacher.HourlyRate.StringFixed(2),
		Rows:          rows,
		TotalHours:    totalHours.StringFixed(2),
		TotalBillable: totalBillable.StringFixed(2),
		TotalPay:      totalPay.StringFixed(2),
		GeneratedAt:   time.Now().Format("January 2, 2006"),
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func printToPDF(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}
