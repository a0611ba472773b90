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

func rentalStatusError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, utils.ErrInvalidTransition), errors.Is(err, utils.ErrVehicleUnavailable):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func rentalHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/rentals", func(ctx *gin.Context) {
			var rentals []models.Rental
			db := db.GetDb()
			if err := db.
				Model(&models.Rental{}).
				Preload("Customer").
				Preload("Vehicle").
				Preload("Staff").
				Order("created_at desc").
				Find(&rentals).
				Error; err != nil {
				log.Printf("Error retrieving Rentals: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": rentals})
		}).
		GET("/rentals/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var rental models.Rental
			db := db.GetDb()
			if err := db.
				Model(&models.Rental{}).
				Where(&models.Rental{ID: params.ID}).
				Preload("Customer").
				Preload("Vehicle").
				Preload("Staff").
				Preload("Payment").
				First(&rental).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": rental})
		}).
		GET("/rentals/user/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var rentals []models.Rental
			db := db.GetDb()
			if err := db.
				Model(&models.Rental{}).
				Where(&models.Rental{CustomerID: params.ID}).
				Preload("Vehicle").
				Order("created_at desc").
				Find(&rentals).
				Error; err != nil {
				log.Printf("Error retrieving Rentals for customer [%d]: %s\n", params.ID, err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": rentals})
		}).
		POST("/rentals", func(ctx *gin.Context) {
			var body types.CreateRentalRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			id, err := utils.CreateRental(&body, ctx.GetString("username"))
			if err != nil {
				log.Printf("error creating rental: %s", err.Error())
				if errors.Is(err, utils.ErrVehicleUnavailable) {
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
					return
				}
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown customer, staff or vehicle reference"})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": id})
		}).
		POST("/rentals/:id/complete", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := utils.SetRentalStatus(params.ID, types.RENTAL_COMPLETED, ctx.GetString("username")); err != nil {
				rentalStatusError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": params.ID, "status": types.RENTAL_COMPLETED})
		}).
		PUT("/rentals/:id/approve", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := utils.SetRentalStatus(params.ID, types.RENTAL_COMPLETED, ctx.GetString("username")); err != nil {
				rentalStatusError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": params.ID, "status": types.RENTAL_COMPLETED})
		}).
		PUT("/rentals/:id/reject", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := utils.SetRentalStatus(params.ID, types.RENTAL_CANCELLED, ctx.GetString("username")); err != nil {
				rentalStatusError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": params.ID, "status": types.RENTAL_CANCELLED})
		}).
		DELETE("/rentals/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := utils.DeleteRental(params.ID, ctx.GetString("username")); err != nil {
				rentalStatusError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
