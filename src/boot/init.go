package boot

import (
	"log"
	"os"

	"vrms/src/config"
	"vrms/src/db"
	"vrms/src/lib"
	"vrms/src/models"
	"vrms/src/utils"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Branch{},
		&models.Staff{},
		&models.Customer{},
		&models.Vehicle{},
		&models.Rental{},
		&models.Payment{},
		&models.Maintenance{},
		&models.BankAccount{},
		&models.RentalAudit{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

func InitStorage() {
	if err := os.MkdirAll(config.SlipDir(), 0o755); err != nil {
		log.Printf("Could not create slip directory: %s\n", err.Error())
	}
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	j, err := sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(1, 0, 0))),
		gocron.NewTask(utils.SweepOverdueRentals),
	)
	if err != nil {
		log.Printf("Error running job: %s\n", err.Error())
		return
	}
	log.Printf("Job ID: %s %s\n", j.Name(), j.ID().String())
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	err = sched.Shutdown()
	if err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
		return
	}
}
