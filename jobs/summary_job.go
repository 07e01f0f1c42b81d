package jobs

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	config "github.com/madiharazzak/WEIC-Time-Tracking/configs"
	"github.com/madiharazzak/WEIC-Time-Tracking/models"
	"github.com/madiharazzak/WEIC-Time-Tracking/notifications"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
)

// SendDailySummary emails today's completed work sessions to the address in
// REPORT_EMAIL. Does nothing when no recipient is configured.
func SendDailySummary(st store.Store, loc *time.Location) {
	recipient := config.Config("REPORT_EMAIL")
	if recipient == "" {
		return
	}
	log.Println("Running job: SendDailySummary...")

	if loc == nil {
		loc = time.Local
	}
	today := time.Now().In(loc).Format(models.DateLayout)

	ctx := context.Background()
	open := false
	entries, err := st.ListTimeEntries(ctx, store.TimeEntryFilter{Date: &today, Open: &open})
	if err != nil {
		log.Printf("Error loading time entries for daily summary: %v", err)
		return
	}
	if len(entries) == 0 {
		log.Println("No completed sessions today, skipping summary email.")
		return
	}

	teachers, err := st.ListTeachers(ctx)
	if err != nil {
		log.Printf("Error loading teachers for daily summary: %v", err)
		return
	}
	names := make(map[uuid.UUID]string, len(teachers))
	for _, t := range teachers {
		names[t.ID] = t.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h1>Daily Summary for %s</h1>", today)
	b.WriteString("<table border='1' cellpadding='6' cellspacing='0'>")
	b.WriteString("<tr><th>Teacher</th><th>Check In</th><th>Check Out</th><th>Billable Hours</th><th>Pay</th></tr>")

	totalHours := decimal.Zero
	totalPay := decimal.Zero
	for _, e := range entries {
		name, ok := names[e.TeacherID]
		if !ok {
			name = "Unknown"
		}
		pay := decimal.Zero
		if e.Pay != nil {
			pay = *e.Pay
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			name,
			e.CheckInTime.In(loc).Format(time.Kitchen),
			e.CheckOutTime.In(loc).Format(time.Kitchen),
			e.BillableHours.StringFixed(2),
			pay.StringFixed(2),
		)
		totalHours = totalHours.Add(e.BillableHours)
		totalPay = totalPay.Add(pay)
	}
	fmt.Fprintf(&b, "<tr><td colspan='3'><b>Total</b></td><td><b>%s</b></td><td><b>%s</b></td></tr>",
		totalHours.StringFixed(2), totalPay.StringFixed(2))
	b.WriteString("</table>")

	subject := fmt.Sprintf("Daily Time Tracking Summary - %s", today)
	go notifications.SendEmail("Payroll", recipient, subject, b.String())
}
