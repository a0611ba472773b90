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

func bankAccountHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/bank-accounts", func(ctx *gin.Context) {
			var accounts []models.BankAccount
			db := db.GetDb()
			if err := db.
				Model(&models.BankAccount{}).
				Order("created_at desc").
				Find(&accounts).
				Error; err != nil {
				log.Printf("Error retrieving BankAccounts: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": accounts})
		}).
		GET("/bank-accounts/active", func(ctx *gin.Context) {
			var accounts []models.BankAccount
			db := db.GetDb()
			if err := db.
				Model(&models.BankAccount{}).
				Where("is_active", true).
				Order("created_at desc").
				Find(&accounts).
				Error; err != nil {
				log.Printf("Error retrieving active BankAccounts: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": accounts})
		}).
		GET("/bank-accounts/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var account models.BankAccount
			db := db.GetDb()
			if err := db.
				Model(&models.BankAccount{}).
				Where(&models.BankAccount{ID: params.ID}).
				First(&account).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": account})
		}).
		POST("/bank-accounts", func(ctx *gin.Context) {
			var body types.CreateBankAccountRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			isActive := true
			if body.IsActive != nil {
				isActive = *body.IsActive
			}
			account := models.BankAccount{
				BankName:          body.BankName,
				Branch:            body.Branch,
				AccountNumber:     body.AccountNumber,
				AccountHolderName: body.AccountHolderName,
				AccountType:       body.AccountType,
				IsActive:          isActive,
			}
			db := db.GetDb()
			if err := db.Create(&account).Error; err != nil {
				log.Printf("Error creating BankAccount: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": account.ID})
		}).
		PUT("/bank-accounts/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateBankAccountRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var account models.BankAccount
			db := db.GetDb()
			if err := db.
				Model(&models.BankAccount{}).
				Where(&models.BankAccount{ID: params.ID}).
				First(&account).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			values := map[string]any{
				"bank_name":           body.BankName,
				"branch":              body.Branch,
				"account_number":      body.AccountNumber,
				"account_holder_name": body.AccountHolderName,
				"account_type":        body.AccountType,
			}
			if body.IsActive != nil {
				values["is_active"] = *body.IsActive
			}
			if err := db.
				Model(&models.BankAccount{}).
				Where("id", account.ID).
				Updates(values).
				Error; err != nil {
				log.Printf("Error updating BankAccount [%d]: %s\n", account.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": account.ID})
		}).
		DELETE("/bank-accounts/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var account models.BankAccount
			db := db.GetDb()
			if err := db.
				Model(&models.BankAccount{}).
				Where(&models.BankAccount{ID: params.ID}).
				First(&account).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := db.Delete(&models.BankAccount{}, account.ID).Error; err != nil {
				log.Printf("Error deleting BankAccount [%d]: %s\n", account.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
