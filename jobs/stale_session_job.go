package jobs

import (
	"context"
	"log"

	config "github.com/madiharazzak/WEIC-Time-Tracking/configs"
	"github.com/madiharazzak/WEIC-Time-Tracking/services"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
)

// SweepStaleSessions checks out every teacher still marked as checked in.
// Scheduled shortly before midnight so a forgotten badge-out doesn't leave a
// session spanning days. Opt-in via AUTO_CHECKOUT=true since some schools
// prefer to correct entries by hand.
func SweepStaleSessions(svc *services.TimeclockService, st store.Store) {
	if config.Config("AUTO_CHECKOUT") != "true" {
		return
	}
	log.Println("Running job: SweepStaleSessions...")

	ctx := context.Background()
	teachers, err := st.ListTeachers(ctx)
	if err != nil {
		log.Printf("Error listing teachers for stale session sweep: %v", err)
		return
	}

	swept := 0
	for _, teacher := range teachers {
		if !teacher.IsCheckedIn {
			continue
		}
		if _, err := svc.CheckOut(ctx, teacher.ID); err != nil {
			log.Printf("Error checking out teacher %s: %v", teacher.Name, err)
			continue
		}
		swept++
	}

	if swept == 0 {
		log.Println("No stale sessions found.")
		return
	}
	log.Printf("Checked out %d teacher(s) with stale sessions.", swept)
}
