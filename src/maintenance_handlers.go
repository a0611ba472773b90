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

func maintenanceHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/maintenances", func(ctx *gin.Context) {
			var maintenances []models.Maintenance
			db := db.GetDb()
			if err := db.
				Model(&models.Maintenance{}).
				Preload("Vehicle").
				Order("maintenance_date desc").
				Find(&maintenances).
				Error; err != nil {
				log.Printf("Error retrieving Maintenances: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": maintenances})
		}).
		GET("/maintenances/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var maintenance models.Maintenance
			db := db.GetDb()
			if err := db.
				Model(&models.Maintenance{}).
				Where(&models.Maintenance{ID: params.ID}).
				Preload("Vehicle").
				First(&maintenance).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": maintenance})
		}).
		POST("/maintenances", func(ctx *gin.Context) {
			var body types.CreateMaintenanceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			id, err := utils.CreateMaintenance(&body)
			if err != nil {
				log.Printf("error creating maintenance: %s", err.Error())
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown vehicle reference"})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": id})
		}).
		PUT("/maintenances/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateMaintenanceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var maintenance models.Maintenance
			db := db.GetDb()
			if err := db.
				Model(&models.Maintenance{}).
				Where(&models.Maintenance{ID: params.ID}).
				First(&maintenance).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			values := map[string]any{}
			if body.MaintenanceDate != nil {
				date, err := utils.ParseDate(*body.MaintenanceDate)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				values["maintenance_date"] = date
			}
			if body.Description != nil {
				values["description"] = *body.Description
			}
			if body.Cost != nil {
				values["cost"] = *body.Cost
			}
			if body.NextServiceDate != nil {
				date, err := utils.ParseDate(*body.NextServiceDate)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				values["next_service_date"] = date
			}
			if len(values) > 0 {
				if err := db.
					Model(&models.Maintenance{}).
					Where("id", maintenance.ID).
					Updates(values).
					Error; err != nil {
					log.Printf("Error updating Maintenance [%d]: %s\n", maintenance.ID, err.Error())
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"id": maintenance.ID})
		}).
		POST("/maintenances/:id/complete", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var maintenance models.Maintenance
			if err := db.
				Model(&models.Maintenance{}).
				Where(&models.Maintenance{ID: params.ID}).
				First(&maintenance).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			res := db.
				Model(&models.Vehicle{}).
				Where("id = ? AND availability_status = ?", maintenance.VehicleID, types.VEHICLE_MAINTENANCE).
				Update("availability_status", types.VEHICLE_AVAILABLE)
			if res.Error != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": res.Error.Error()})
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusConflict, gin.H{"error": "vehicle is not under maintenance"})
				return
			}
			utils.InvalidateAvailableVehicles()
			ctx.JSON(http.StatusOK, gin.H{"id": maintenance.ID, "vehicle_id": maintenance.VehicleID})
		}).
		DELETE("/maintenances/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var maintenance models.Maintenance
			db := db.GetDb()
			if err := db.
				Model(&models.Maintenance{}).
				Where(&models.Maintenance{ID: params.ID}).
				First(&maintenance).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := db.Delete(&models.Maintenance{}, maintenance.ID).Error; err != nil {
				log.Printf("Error deleting Maintenance [%d]: %s\n", maintenance.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
