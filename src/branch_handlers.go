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

func branchHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/branches", func(ctx *gin.Context) {
			var branches []models.Branch
			db := db.GetDb()
			if err := db.
				Model(&models.Branch{}).
				Preload("Manager").
				Order("created_at desc").
				Find(&branches).
				Error; err != nil {
				log.Printf("Error retrieving Branches: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": branches})
		}).
		GET("/branches/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var branch models.Branch
			db := db.GetDb()
			if err := db.
				Model(&models.Branch{}).
				Where(&models.Branch{ID: params.ID}).
				Preload("Manager").
				Preload("Vehicles").
				First(&branch).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": branch})
		}).
		POST("/branches", func(ctx *gin.Context) {
			var body types.CreateBranchRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			branch := models.Branch{
				BranchName: body.BranchName,
				Location:   body.Location,
				ContactNo:  body.ContactNo,
				ManagerID:  body.ManagerID,
			}
			db := db.GetDb()
			if err := db.Create(&branch).Error; err != nil {
				log.Printf("Error creating Branch: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": branch.ID})
		}).
		PUT("/branches/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateBranchRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var branch models.Branch
			db := db.GetDb()
			if err := db.
				Model(&models.Branch{}).
				Where(&models.Branch{ID: params.ID}).
				First(&branch).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			values := map[string]any{
				"branch_name": body.BranchName,
				"location":    body.Location,
				"contact_no":  body.ContactNo,
			}
			if body.ManagerID != nil {
				values["manager_id"] = *body.ManagerID
			}
			if err := db.
				Model(&models.Branch{}).
				Where("id", branch.ID).
				Updates(values).
				Error; err != nil {
				log.Printf("Error updating Branch [%d]: %s\n", branch.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": branch.ID})
		}).
		DELETE("/branches/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var branch models.Branch
			db := db.GetDb()
			if err := db.
				Model(&models.Branch{}).
				Where(&models.Branch{ID: params.ID}).
				First(&branch).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var assigned int64
			if err := db.
				Model(&models.Vehicle{}).
				Where("branch_id", branch.ID).
				Count(&assigned).
				Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if assigned > 0 {
				ctx.JSON(http.StatusConflict, gin.H{"error": "branch still has vehicles assigned"})
				return
			}
			if err := db.Delete(&models.Branch{}, branch.ID).Error; err != nil {
				log.Printf("Error deleting Branch [%d]: %s\n", branch.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
