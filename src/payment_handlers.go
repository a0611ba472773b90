package main

import (
	"errors"
	"log"
	"net/http"
	"path"

	"vrms/src/config"
	"vrms/src/db"
	"vrms/src/middlewares"
	"vrms/src/models"
	"vrms/src/types"
	"vrms/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func paymentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/payments", func(ctx *gin.Context) {
			var payments []models.Payment
			db := db.GetDb()
			if err := db.
				Model(&models.Payment{}).
				Preload("Rental").
				Order("created_at desc").
				Find(&payments).
				Error; err != nil {
				log.Printf("Error retrieving Payments: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": payments})
		}).
		GET("/payments/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var payment models.Payment
			db := db.GetDb()
			if err := db.
				Model(&models.Payment{}).
				Where(&models.Payment{ID: params.ID}).
				Preload("Rental").
				First(&payment).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": payment})
		}).
		GET("/payments/:id/slip", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var payment models.Payment
			db := db.GetDb()
			if err := db.
				Model(&models.Payment{}).
				Where(&models.Payment{ID: params.ID}).
				First(&payment).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if payment.SlipFileName == nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "no slip on record for this payment"})
				return
			}
			ctx.FileAttachment(path.Join(config.SlipDir(), *payment.SlipFileName), *payment.SlipFileName)
		}).
		POST("/payments", func(ctx *gin.Context) {
			var body types.CreatePaymentRequestBody
			if err := ctx.ShouldBind(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !body.Method.Valid() {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown payment method"})
				return
			}
			status := types.PAYMENT_PENDING
			if body.Status != nil {
				if !body.Status.Valid() {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown payment status"})
					return
				}
				status = *body.Status
			}
			paymentDate, err := utils.ParseDate(body.PaymentDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			db := db.GetDb()
			var rental models.Rental
			if err := db.
				Model(&models.Rental{}).
				Where(&models.Rental{ID: body.RentalID}).
				First(&rental).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown rental reference"})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var count int64
			if err := db.
				Model(&models.Payment{}).
				Where(&models.Payment{RentalID: rental.ID}).
				Count(&count).
				Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if count > 0 {
				ctx.JSON(http.StatusConflict, gin.H{"error": "rental already has a payment"})
				return
			}

			var slipFileName *string
			if file, err := ctx.FormFile("slip"); err == nil {
				name, err := utils.SaveSlipFile(ctx, file)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				slipFileName = &name
			}

			payment := models.Payment{
				RentalID:       rental.ID,
				PaymentDate:    paymentDate,
				Method:         body.Method,
				Amount:         body.Amount,
				Status:         status,
				TransactionRef: body.TransactionRef,
				SlipFileName:   slipFileName,
				Notes:          body.Notes,
			}
			if err := db.Create(&payment).Error; err != nil {
				log.Printf("Error creating Payment: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": payment.ID, "payment_status": payment.Status})
		}).
		PUT("/payments/:id", middlewares.RoleMiddleware(types.ROLE_ADMIN), func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdatePaymentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !body.Method.Valid() || !body.Status.Valid() {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown payment method or status"})
				return
			}
			paymentDate, err := utils.ParseDate(body.PaymentDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var payment models.Payment
			db := db.GetDb()
			if err := db.
				Model(&models.Payment{}).
				Where(&models.Payment{ID: params.ID}).
				First(&payment).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			values := map[string]any{
				"payment_date":   paymentDate,
				"payment_method": body.Method,
				"amount":         body.Amount,
				"payment_status": body.Status,
				"notes":          body.Notes,
			}
			if body.TransactionRef != nil {
				values["transaction_ref"] = *body.TransactionRef
			}
			if err := db.
				Model(&models.Payment{}).
				Where("id", payment.ID).
				Updates(values).
				Error; err != nil {
				log.Printf("Error updating Payment [%d]: %s\n", payment.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": payment.ID})
		}).
		DELETE("/payments/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var payment models.Payment
			db := db.GetDb()
			if err := db.
				Model(&models.Payment{}).
				Where(&models.Payment{ID: params.ID}).
				First(&payment).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := db.Delete(&models.Payment{}, payment.ID).Error; err != nil {
				log.Printf("Error deleting Payment [%d]: %s\n", payment.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
