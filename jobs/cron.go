package jobs

import (
	"log"

	"lesnoy/config"
	"lesnoy/services"
	"lesnoy/validator"

	"github.com/robfig/cron/v3"
)

// InitCronJobs registers the scheduled maintenance jobs and starts the
// scheduler. At midnight, confirmed bookings whose stay is over are
// marked completed.
func InitCronJobs(c *cron.Cron) {
	_, err := c.AddFunc("0 0 * * *", func() {
		completed, err := services.CompletePastBookings(config.DB, validator.Today())
		if err != nil {
			log.Printf("Failed to complete past bookings: %v", err)
			return
		}
		if completed > 0 {
			log.Printf("Marked %d past bookings as completed", completed)
		}
	})
	if err != nil {
		log.Printf("Failed to register booking completion job: %v", err)
		return
	}

	c.Start()
	log.Println("Cron jobs started")
}
