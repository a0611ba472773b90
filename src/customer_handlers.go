package main

import (
	"errors"
	"log"
	"net/http"

	"vrms/src/db"
	"vrms/src/models"
	"vrms/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func customerHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/customers", func(ctx *gin.Context) {
			var customers []models.Customer
			db := db.GetDb()
			if err := db.
				Model(&models.Customer{}).
				Order("created_at desc").
				Find(&customers).
				Error; err != nil {
				log.Printf("Error retrieving Customers: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": customers})
		}).
		GET("/customers/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var customer models.Customer
			db := db.GetDb()
			if err := db.
				Model(&models.Customer{}).
				Where(&models.Customer{ID: params.ID}).
				Preload("Rentals").
				First(&customer).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": customer})
		}).
		POST("/customers", func(ctx *gin.Context) {
			var body types.CreateCustomerRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			customer := models.Customer{
				FullName:      body.FullName,
				NicPassportNo: body.NicPassportNo,
				PhoneNo:       body.PhoneNo,
				Email:         body.Email,
				Address:       body.Address,
				LicenseNo:     body.LicenseNo,
				Username:      body.Username,
			}
			db := db.GetDb()
			if err := db.Create(&customer).Error; err != nil {
				log.Printf("Error creating Customer: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": customer.ID})
		}).
		PUT("/customers/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateCustomerRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var customer models.Customer
			db := db.GetDb()
			if err := db.
				Model(&models.Customer{}).
				Where(&models.Customer{ID: params.ID}).
				First(&customer).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := db.
				Model(&models.Customer{}).
				Where("id", customer.ID).
				Updates(map[string]any{
					"full_name":       body.FullName,
					"nic_passport_no": body.NicPassportNo,
					"phone_no":        body.PhoneNo,
					"email":           body.Email,
					"address":         body.Address,
					"license_no":      body.LicenseNo,
				}).
				Error; err != nil {
				log.Printf("Error updating Customer [%d]: %s\n", customer.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": customer.ID})
		}).
		DELETE("/customers/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var customer models.Customer
			db := db.GetDb()
			if err := db.
				Model(&models.Customer{}).
				Where(&models.Customer{ID: params.ID}).
				First(&customer).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var active int64
			if err := db.
				Model(&models.Rental{}).
				Where(&models.Rental{CustomerID: customer.ID, Status: types.RENTAL_ONGOING}).
				Count(&active).
				Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if active > 0 {
				ctx.JSON(http.StatusConflict, gin.H{"error": "customer has ongoing rentals"})
				return
			}
			if err := db.Delete(&models.Customer{}, customer.ID).Error; err != nil {
				log.Printf("Error deleting Customer [%d]: %s\n", customer.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
