package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"vrms/src/db"
	"vrms/src/lib"
	"vrms/src/models"
	"vrms/src/types"
	"vrms/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthResponse struct {
	Token      string `json:"token"`
	Role       string `json:"role"`
	UserID     uint   `json:"userId"`
	CustomerID *uint  `json:"customerId,omitempty"`
}

// AuthSignup creates the login account and, for customer signups, the
// customer profile in the same transaction.
func AuthSignup(ctx *gin.Context) (userId *uint, status int, err error) {
	var body types.SignupRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var count int64
	if err := db.
		Model(&models.User{}).
		Where(&models.User{Username: body.Username}).
		Count(&count).
		Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if count > 0 {
		return nil, http.StatusBadRequest, errors.New("username is already taken")
	}

	hash, err := utils.HashPassword(body.Password)
	if err != nil {
		log.Printf("Error hashing password: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}

	role := body.Role
	if role == "" {
		role = types.ROLE_CUSTOMER
	}
	user := models.User{
		Username: body.Username,
		Password: hash,
		Role:     role,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if role == types.ROLE_CUSTOMER {
			customer := models.Customer{
				FullName:      body.FullName,
				NicPassportNo: body.NicPassportNo,
				PhoneNo:       body.PhoneNo,
				Email:         body.Email,
				Address:       body.Address,
				LicenseNo:     body.LicenseNo,
				Username:      body.Username,
			}
			if err := tx.Create(&customer).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error registering user %s: %s\n", body.Username, err.Error())
		return nil, http.StatusBadRequest, err
	}
	return &user.ID, http.StatusCreated, nil
}

// AuthLogin verifies the credentials and returns a signed token together
// with the account role and ids.
func AuthLogin(ctx *gin.Context) (res *AuthResponse, status int, err error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var user models.User
	if err := db.
		Model(&models.User{}).
		Where(&models.User{Username: body.Username}).
		First(&user).
		Error; err != nil {
		return nil, http.StatusUnauthorized, errors.New("invalid username or password")
	}
	if !utils.CheckPassword(user.Password, body.Password) {
		return nil, http.StatusUnauthorized, errors.New("invalid username or password")
	}

	var customerId *uint
	var customer models.Customer
	if err := db.
		Model(&models.Customer{}).
		Where(&models.Customer{Username: user.Username}).
		First(&customer).
		Error; err == nil {
		customerId = &customer.ID
	}

	token, err := utils.GenerateJWT(user.Username, user.ID, user.Role, customerId)
	if err != nil {
		log.Printf("Error signing token for user [%d]: %s\n", user.ID, err.Error())
		return nil, http.StatusInternalServerError, err
	}

	rd := lib.GetRedisClient()
	if rd != nil {
		if payload, err := json.Marshal(&user); err == nil {
			if err := rd.Set(context.Background(), fmt.Sprintf("%d:user", user.ID), payload, 24*time.Hour).Err(); err != nil {
				log.Printf("[redis] Error updating user cache: %s\n", err.Error())
			}
		}
	}

	return &AuthResponse{
		Token:      token,
		Role:       user.Role,
		UserID:     user.ID,
		CustomerID: customerId,
	}, http.StatusOK, nil
}
