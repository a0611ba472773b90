package main

import (
	"errors"
	"log"
	"net/http"

	"vrms/src/db"
	"vrms/src/models"
	"vrms/src/types"
	"vrms/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func vehicleHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/vehicles", func(ctx *gin.Context) {
			var vehicles []models.Vehicle
			db := db.GetDb()
			if err := db.
				Model(&models.Vehicle{}).
				Order("created_at desc").
				Find(&vehicles).
				Error; err != nil {
				log.Printf("Error retrieving Vehicles: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": vehicles})
		}).
		GET("/vehicles/available", func(ctx *gin.Context) {
			vehicles, err := utils.GetAvailableVehicles()
			if err != nil {
				log.Printf("Error retrieving available Vehicles: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": vehicles})
		}).
		GET("/vehicles/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var vehicle models.Vehicle
			db := db.GetDb()
			if err := db.
				Model(&models.Vehicle{}).
				Where(&models.Vehicle{ID: params.ID}).
				Preload("Branch").
				First(&vehicle).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": vehicle})
		}).
		POST("/vehicles", func(ctx *gin.Context) {
			var body types.CreateVehicleRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			status := types.VEHICLE_AVAILABLE
			if body.Status != nil {
				if !body.Status.Valid() {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown availability status"})
					return
				}
				status = *body.Status
			}
			vehicle := models.Vehicle{
				VehicleType:    body.VehicleType,
				Brand:          body.Brand,
				Model:          body.Model,
				RegistrationNo: body.RegistrationNo,
				DailyRate:      body.DailyRate,
				BranchID:       body.BranchID,
				Status:         status,
			}
			db := db.GetDb()
			if err := db.Create(&vehicle).Error; err != nil {
				log.Printf("Error creating Vehicle: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": vehicle.ID})
		}).
		PUT("/vehicles/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateVehicleRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var vehicle models.Vehicle
			db := db.GetDb()
			if err := db.
				Model(&models.Vehicle{}).
				Where(&models.Vehicle{ID: params.ID}).
				First(&vehicle).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			values := map[string]any{}
			if body.VehicleType != nil {
				values["vehicle_type"] = *body.VehicleType
			}
			if body.Brand != nil {
				values["brand"] = *body.Brand
			}
			if body.Model != nil {
				values["model"] = *body.Model
			}
			if body.RegistrationNo != nil {
				values["registration_no"] = *body.RegistrationNo
			}
			if body.DailyRate != nil {
				values["daily_rate"] = *body.DailyRate
			}
			if body.BranchID != nil {
				values["branch_id"] = *body.BranchID
			}
			if len(values) > 0 {
				if err := db.
					Model(&models.Vehicle{}).
					Where("id", vehicle.ID).
					Updates(values).
					Error; err != nil {
					log.Printf("Error updating Vehicle [%d]: %s\n", vehicle.ID, err.Error())
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
			}
			// Status moves through a compare-and-set so a concurrent rental
			// cannot be overwritten blindly.
			if body.Status != nil {
				if !body.Status.Valid() {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown availability status"})
					return
				}
				res := db.
					Model(&models.Vehicle{}).
					Where("id = ? AND availability_status = ?", vehicle.ID, vehicle.Status).
					Update("availability_status", *body.Status)
				if res.Error != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": res.Error.Error()})
					return
				}
				if res.RowsAffected == 0 {
					ctx.JSON(http.StatusConflict, gin.H{"error": "vehicle status changed concurrently"})
					return
				}
				utils.InvalidateAvailableVehicles()
			}
			ctx.JSON(http.StatusOK, gin.H{"id": vehicle.ID})
		}).
		DELETE("/vehicles/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var vehicle models.Vehicle
			db := db.GetDb()
			if err := db.
				Model(&models.Vehicle{}).
				Where(&models.Vehicle{ID: params.ID}).
				First(&vehicle).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if vehicle.Status == types.VEHICLE_RENTED {
				ctx.JSON(http.StatusConflict, gin.H{"error": "vehicle is currently rented"})
				return
			}
			if err := db.Delete(&models.Vehicle{}, vehicle.ID).Error; err != nil {
				log.Printf("Error deleting Vehicle [%d]: %s\n", vehicle.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
