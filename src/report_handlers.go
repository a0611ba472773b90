package main

import (
	"log"
	"net/http"

	"vrms/src/db"
	"vrms/src/models"
	"vrms/src/types"

	"github.com/gin-gonic/gin"
)

type statusCount struct {
	Status string
	Count  int64
}

func reportHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/rental-audits", func(ctx *gin.Context) {
			var audits []models.RentalAudit
			db := db.GetDb()
			if err := db.
				Model(&models.RentalAudit{}).
				Order("created_at desc").
				Limit(500).
				Find(&audits).
				Error; err != nil {
				log.Printf("Error retrieving RentalAudits: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": audits})
		}).
		GET("/rental-audits/rental/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var audits []models.RentalAudit
			db := db.GetDb()
			if err := db.
				Model(&models.RentalAudit{}).
				Where(&models.RentalAudit{RentalID: params.ID}).
				Order("created_at asc").
				Find(&audits).
				Error; err != nil {
				log.Printf("Error retrieving RentalAudits for rental [%d]: %s\n", params.ID, err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": audits})
		}).
		GET("/dashboard/summary", func(ctx *gin.Context) {
			db := db.GetDb()
			summary := types.DashboardSummary{
				Vehicles: map[types.AvailabilityStatus]int64{},
				Rentals:  map[types.RentalStatus]int64{},
			}

			var vehicleCounts []statusCount
			if err := db.
				Model(&models.Vehicle{}).
				Select("availability_status as status, count(*) as count").
				Group("availability_status").
				Find(&vehicleCounts).
				Error; err != nil {
				log.Printf("Error counting Vehicles: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			for _, row := range vehicleCounts {
				summary.Vehicles[types.AvailabilityStatus(row.Status)] = row.Count
			}

			var rentalCounts []statusCount
			if err := db.
				Model(&models.Rental{}).
				Select("status, count(*) as count").
				Group("status").
				Find(&rentalCounts).
				Error; err != nil {
				log.Printf("Error counting Rentals: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			for _, row := range rentalCounts {
				summary.Rentals[types.RentalStatus(row.Status)] = row.Count
			}

			if err := db.
				Model(&models.Payment{}).
				Where("payment_status", types.PAYMENT_PAID).
				Select("coalesce(sum(amount), 0)").
				Scan(&summary.Revenue).
				Error; err != nil {
				log.Printf("Error summing revenue: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}

			ctx.JSON(http.StatusOK, gin.H{"data": summary})
		})
	return g
}
