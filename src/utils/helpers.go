package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path"
	"time"

	"vrms/src/config"
	"vrms/src/db"
	"vrms/src/lib"
	"vrms/src/models"
	"vrms/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

var (
	ErrVehicleUnavailable = errors.New("vehicle is not available for rental")
	ErrInvalidTransition  = errors.New("invalid rental status transition")
)

func GenerateJWT(username string, userId uint, role string, customerId *uint) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &types.Claims{
		Username:   username,
		Role:       role,
		CustomerID: customerId,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userId),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPassword(hash string, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(config.DATE_PARSE_FORMAT, value)
	if err != nil {
		log.Printf("Error parsing date %q: %s\n", value, err.Error())
		return time.Time{}, err
	}
	return date, nil
}

// CreateRental validates the customer, staff and vehicle references, claims
// the vehicle with a conditional update and creates the rental as Ongoing.
// All writes share one transaction.
func CreateRental(params *types.CreateRentalRequestBody, changedBy string) (uint, error) {
	rentalDate, err := ParseDate(params.RentalDate)
	if err != nil {
		return 0, err
	}
	returnDate, err := ParseDate(params.ReturnDate)
	if err != nil {
		return 0, err
	}

	var rentalId uint
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.
			Model(&models.Vehicle{}).
			Where(&models.Vehicle{ID: params.VehicleID}).
			First(&vehicle).
			Error; err != nil {
			return err
		}
		if vehicle.Status != types.VEHICLE_AVAILABLE {
			return ErrVehicleUnavailable
		}

		var customer models.Customer
		if err := tx.
			Model(&models.Customer{}).
			Where(&models.Customer{ID: params.CustomerID}).
			First(&customer).
			Error; err != nil {
			return err
		}
		var staff models.Staff
		if err := tx.
			Model(&models.Staff{}).
			Where(&models.Staff{ID: params.StaffID}).
			First(&staff).
			Error; err != nil {
			return err
		}

		// Claim the vehicle only if it is still Available. Two concurrent
		// rental requests against the same vehicle race on this row; the
		// loser sees zero affected rows.
		res := tx.
			Model(&models.Vehicle{}).
			Where("id = ? AND availability_status = ?", vehicle.ID, types.VEHICLE_AVAILABLE).
			Update("availability_status", types.VEHICLE_RENTED)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVehicleUnavailable
		}

		rental := models.Rental{
			CustomerID:  customer.ID,
			VehicleID:   vehicle.ID,
			StaffID:     staff.ID,
			RentalDate:  rentalDate,
			ReturnDate:  returnDate,
			TotalAmount: params.TotalAmount,
			Status:      types.RENTAL_ONGOING,
		}
		if err := tx.Create(&rental).Error; err != nil {
			return err
		}
		rentalId = rental.ID

		audit := models.RentalAudit{
			RentalID:  rental.ID,
			Action:    types.AUDIT_CREATED,
			NewStatus: string(types.RENTAL_ONGOING),
			ChangedBy: changedBy,
		}
		if err := tx.Create(&audit).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("CreateRental failed: %s\n", err.Error())
		return 0, err
	}
	InvalidateAvailableVehicles()
	return rentalId, nil
}

// SetRentalStatus moves a rental through the lifecycle table. Transitions to
// a terminal status release the paired vehicle in the same transaction.
func SetRentalStatus(id uint, to types.RentalStatus, changedBy string) error {
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var rental models.Rental
		if err := tx.
			Model(&models.Rental{}).
			Where(&models.Rental{ID: id}).
			First(&rental).
			Error; err != nil {
			return err
		}
		if rental.Status == to {
			return nil
		}
		if !rental.Status.CanTransition(to) {
			return ErrInvalidTransition
		}

		res := tx.
			Model(&models.Rental{}).
			Where("id = ? AND status = ?", rental.ID, rental.Status).
			Update("status", to)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// the rental moved under us
			return ErrInvalidTransition
		}

		if to == types.RENTAL_COMPLETED || to == types.RENTAL_CANCELLED {
			if err := tx.
				Model(&models.Vehicle{}).
				Where("id = ? AND availability_status = ?", rental.VehicleID, types.VEHICLE_RENTED).
				Update("availability_status", types.VEHICLE_AVAILABLE).
				Error; err != nil {
				return err
			}
		}

		audit := models.RentalAudit{
			RentalID:  rental.ID,
			Action:    types.AUDIT_STATUS,
			OldStatus: string(rental.Status),
			NewStatus: string(to),
			ChangedBy: changedBy,
		}
		if err := tx.Create(&audit).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	if to == types.RENTAL_COMPLETED || to == types.RENTAL_CANCELLED {
		InvalidateAvailableVehicles()
	}
	return nil
}

// DeleteRental removes the rental record only. The vehicle keeps whatever
// status it had.
func DeleteRental(id uint, changedBy string) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var rental models.Rental
		if err := tx.
			Model(&models.Rental{}).
			Where(&models.Rental{ID: id}).
			First(&rental).
			Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Rental{}, rental.ID).Error; err != nil {
			return err
		}
		audit := models.RentalAudit{
			RentalID:  rental.ID,
			Action:    types.AUDIT_DELETED,
			OldStatus: string(rental.Status),
			ChangedBy: changedBy,
		}
		if err := tx.Create(&audit).Error; err != nil {
			return err
		}
		return nil
	})
}

// CreateMaintenance records a maintenance entry and forces the vehicle into
// Maintenance status inside the same transaction.
func CreateMaintenance(params *types.CreateMaintenanceRequestBody) (uint, error) {
	maintenanceDate, err := ParseDate(params.MaintenanceDate)
	if err != nil {
		return 0, err
	}
	var nextServiceDate *time.Time
	if params.NextServiceDate != nil {
		date, err := ParseDate(*params.NextServiceDate)
		if err != nil {
			return 0, err
		}
		nextServiceDate = &date
	}

	var maintenanceId uint
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.
			Model(&models.Vehicle{}).
			Where(&models.Vehicle{ID: params.VehicleID}).
			First(&vehicle).
			Error; err != nil {
			return err
		}
		maintenance := models.Maintenance{
			VehicleID:       vehicle.ID,
			MaintenanceDate: maintenanceDate,
			Description:     params.Description,
			Cost:            params.Cost,
			NextServiceDate: nextServiceDate,
		}
		if err := tx.Create(&maintenance).Error; err != nil {
			return err
		}
		maintenanceId = maintenance.ID

		if err := tx.
			Model(&models.Vehicle{}).
			Where("id = ?", vehicle.ID).
			Update("availability_status", types.VEHICLE_MAINTENANCE).
			Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("CreateMaintenance failed: %s\n", err.Error())
		return 0, err
	}
	InvalidateAvailableVehicles()
	return maintenanceId, nil
}

// SaveSlipFile stores an uploaded payment slip under the slip directory with
// a uuid-prefixed name and returns the stored file name.
func SaveSlipFile(ctx *gin.Context, file *multipart.FileHeader) (string, error) {
	slipDir := config.SlipDir()
	if err := os.MkdirAll(slipDir, 0o755); err != nil {
		return "", err
	}
	fileName := fmt.Sprintf("%s_%s", uuid.NewString(), file.Filename)
	target := path.Join(slipDir, fileName)
	if err := ctx.SaveUploadedFile(file, target); err != nil {
		log.Printf("Error saving slip file %s: %s\n", fileName, err.Error())
		return "", err
	}
	return fileName, nil
}

const availableVehiclesCacheKey = "vehicles:available"

// InvalidateAvailableVehicles drops the cached availability listing after a
// vehicle changes status, so readers never see a stale claim.
func InvalidateAvailableVehicles() {
	rd := lib.GetRedisClient()
	if rd == nil {
		return
	}
	if err := rd.Del(context.Background(), availableVehiclesCacheKey).Err(); err != nil {
		log.Printf("[redis] Error invalidating available vehicles cache: %s\n", err.Error())
	}
}

// GetAvailableVehicles lists vehicles with status Available, serving from the
// redis cache when a fresh entry exists.
func GetAvailableVehicles() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	rd := lib.GetRedisClient()
	if rd != nil {
		cached, err := rd.Get(context.Background(), availableVehiclesCacheKey).Result()
		if err == nil {
			if err := json.Unmarshal([]byte(cached), &vehicles); err == nil {
				return vehicles, nil
			}
		}
	}

	db := db.GetDb()
	err := db.
		Model(&models.Vehicle{}).
		Where(&models.Vehicle{Status: types.VEHICLE_AVAILABLE}).
		Order("id asc").
		Find(&vehicles).
		Error
	if err != nil {
		return nil, err
	}

	if rd != nil {
		if payload, err := json.Marshal(&vehicles); err == nil {
			if err := rd.Set(context.Background(), availableVehiclesCacheKey, payload, 30*time.Second).Err(); err != nil {
				log.Printf("[redis] Error caching available vehicles: %s\n", err.Error())
			}
		}
	}
	return vehicles, nil
}

// SweepOverdueRentals writes an overdue audit row for every Ongoing rental
// whose return date has passed. Runs from the scheduler.
func SweepOverdueRentals() {
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var rentals []models.Rental
		if err := tx.
			Model(&models.Rental{}).
			Where(&models.Rental{Status: types.RENTAL_ONGOING}).
			Where("return_date < ?", time.Now()).
			Find(&rentals).
			Error; err != nil {
			return err
		}
		for _, rental := range rentals {
			audit := models.RentalAudit{
				RentalID:  rental.ID,
				Action:    types.AUDIT_OVERDUE,
				OldStatus: string(rental.Status),
				NewStatus: string(rental.Status),
				ChangedBy: "scheduler",
			}
			if err := tx.Create(&audit).Error; err != nil {
				return err
			}
		}
		if len(rentals) > 0 {
			log.Printf("Flagged %d overdue rentals\n", len(rentals))
		}
		return nil
	})
	if err != nil {
		log.Printf("Error while sweeping overdue rentals: %s\n", err.Error())
	}
}
