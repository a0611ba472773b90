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

func staffHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/staff", func(ctx *gin.Context) {
			var staff []models.Staff
			db := db.GetDb()
			if err := db.
				Model(&models.Staff{}).
				Preload("Branch").
				Order("created_at desc").
				Find(&staff).
				Error; err != nil {
				log.Printf("Error retrieving Staff: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": staff})
		}).
		GET("/staff/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var member models.Staff
			db := db.GetDb()
			if err := db.
				Model(&models.Staff{}).
				Where(&models.Staff{ID: params.ID}).
				Preload("Branch").
				First(&member).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": member})
		}).
		POST("/staff", func(ctx *gin.Context) {
			var body types.CreateStaffRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			member := models.Staff{
				FullName: body.FullName,
				Role:     body.Role,
				PhoneNo:  body.PhoneNo,
				Email:    body.Email,
				Username: body.Username,
				BranchID: body.BranchID,
			}
			db := db.GetDb()
			if err := db.Create(&member).Error; err != nil {
				log.Printf("Error creating Staff: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": member.ID})
		}).
		PUT("/staff/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateStaffRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var member models.Staff
			db := db.GetDb()
			if err := db.
				Model(&models.Staff{}).
				Where(&models.Staff{ID: params.ID}).
				First(&member).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			values := map[string]any{
				"full_name": body.FullName,
				"role":      body.Role,
				"phone_no":  body.PhoneNo,
				"email":     body.Email,
			}
			if body.BranchID != nil {
				values["branch_id"] = *body.BranchID
			}
			if err := db.
				Model(&models.Staff{}).
				Where("id", member.ID).
				Updates(values).
				Error; err != nil {
				log.Printf("Error updating Staff [%d]: %s\n", member.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": member.ID})
		}).
		DELETE("/staff/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var member models.Staff
			db := db.GetDb()
			if err := db.
				Model(&models.Staff{}).
				Where(&models.Staff{ID: params.ID}).
				First(&member).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := db.Delete(&models.Staff{}, member.ID).Error; err != nil {
				log.Printf("Error deleting Staff [%d]: %s\n", member.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
