package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type AvailabilityStatus string

const (
	VEHICLE_AVAILABLE   AvailabilityStatus = "Available"
	VEHICLE_RENTED      AvailabilityStatus = "Rented"
	VEHICLE_MAINTENANCE AvailabilityStatus = "Maintenance"
)

func (s AvailabilityStatus) Valid() bool {
	switch s {
	case VEHICLE_AVAILABLE, VEHICLE_RENTED, VEHICLE_MAINTENANCE:
		return true
	}
	return false
}

type RentalStatus string

const (
	RENTAL_PENDING   RentalStatus = "Pending"
	RENTAL_ONGOING   RentalStatus = "Ongoing"
	RENTAL_COMPLETED RentalStatus = "Completed"
	RENTAL_CANCELLED RentalStatus = "Cancelled"
)

// rentalTransitions is the closed transition table for the rental lifecycle.
// Pending -> Completed stays reachable for the administrative approve path.
var rentalTransitions = map[RentalStatus]map[RentalStatus]struct{}{
	RENTAL_PENDING: {
		RENTAL_ONGOING:   {},
		RENTAL_COMPLETED: {},
		RENTAL_CANCELLED: {},
	},
	RENTAL_ONGOING: {
		RENTAL_COMPLETED: {},
		RENTAL_CANCELLED: {},
	},
	RENTAL_COMPLETED: {},
	RENTAL_CANCELLED: {},
}

// CanTransition reports whether a rental may move from one status to another.
func (s RentalStatus) CanTransition(to RentalStatus) bool {
	if s == to {
		return true
	}
	allowed, ok := rentalTransitions[s]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

func (s RentalStatus) Valid() bool {
	_, ok := rentalTransitions[s]
	return ok
}

type PaymentStatus string

const (
	PAYMENT_PAID    PaymentStatus = "Paid"
	PAYMENT_PENDING PaymentStatus = "Pending"
	PAYMENT_FAILED  PaymentStatus = "Failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PAYMENT_PAID, PAYMENT_PENDING, PAYMENT_FAILED:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PAYMENT_CASH   PaymentMethod = "Cash"
	PAYMENT_CARD   PaymentMethod = "Card"
	PAYMENT_ONLINE PaymentMethod = "Online"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PAYMENT_CASH, PAYMENT_CARD, PAYMENT_ONLINE:
		return true
	}
	return false
}

const (
	ROLE_ADMIN    = "ADMIN"
	ROLE_STAFF    = "STAFF"
	ROLE_CUSTOMER = "CUSTOMER"
)

const (
	AUDIT_CREATED = "created"
	AUDIT_STATUS  = "status_change"
	AUDIT_OVERDUE = "overdue"
	AUDIT_DELETED = "deleted"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateVehicleRequestBody struct {
	VehicleType    string              `json:"vehicle_type" binding:"required"`
	Brand          string              `json:"brand" binding:"required"`
	Model          string              `json:"model" binding:"required"`
	RegistrationNo string              `json:"registration_no" binding:"required"`
	DailyRate      float64             `json:"daily_rate" binding:"required"`
	BranchID       *uint               `json:"branch_id,omitempty"`
	Status         *AvailabilityStatus `json:"availability_status,omitempty"`
}

type UpdateVehicleRequestBody struct {
	VehicleType    *string             `json:"vehicle_type,omitempty"`
	Brand          *string             `json:"brand,omitempty"`
	Model          *string             `json:"model,omitempty"`
	RegistrationNo *string             `json:"registration_no,omitempty"`
	DailyRate      *float64            `json:"daily_rate,omitempty"`
	BranchID       *uint               `json:"branch_id,omitempty"`
	Status         *AvailabilityStatus `json:"availability_status,omitempty"`
}

type CreateRentalRequestBody struct {
	CustomerID  uint    `json:"customer_id" binding:"required"`
	VehicleID   uint    `json:"vehicle_id" binding:"required"`
	StaffID     uint    `json:"staff_id" binding:"required"`
	RentalDate  string  `json:"rental_date" binding:"required"`
	ReturnDate  string  `json:"return_date" binding:"required,gtdate=RentalDate"`
	TotalAmount float64 `json:"total_amount" binding:"required"`
}

type CreatePaymentRequestBody struct {
	RentalID       uint           `form:"rental_id" binding:"required"`
	PaymentDate    string         `form:"payment_date" binding:"required"`
	Method         PaymentMethod  `form:"payment_method" binding:"required"`
	Amount         float64        `form:"amount" binding:"required"`
	Status         *PaymentStatus `form:"payment_status,omitempty"`
	TransactionRef *string        `form:"transaction_ref,omitempty"`
	Notes          string         `form:"notes,omitempty"`
}

type UpdatePaymentRequestBody struct {
	PaymentDate    string        `json:"payment_date" binding:"required"`
	Method         PaymentMethod `json:"payment_method" binding:"required"`
	Amount         float64       `json:"amount" binding:"required"`
	Status         PaymentStatus `json:"payment_status" binding:"required"`
	TransactionRef *string       `json:"transaction_ref,omitempty"`
	Notes          string        `json:"notes,omitempty"`
}

type CreateMaintenanceRequestBody struct {
	VehicleID       uint    `json:"vehicle_id" binding:"required"`
	MaintenanceDate string  `json:"maintenance_date" binding:"required"`
	Description     string  `json:"description,omitempty"`
	Cost            float64 `json:"cost,omitempty"`
	NextServiceDate *string `json:"next_service_date,omitempty"`
}

type UpdateMaintenanceRequestBody struct {
	MaintenanceDate *string  `json:"maintenance_date,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Cost            *float64 `json:"cost,omitempty"`
	NextServiceDate *string  `json:"next_service_date,omitempty"`
}

type CreateCustomerRequestBody struct {
	FullName      string `json:"full_name" binding:"required"`
	NicPassportNo string `json:"nic_passport_no" binding:"required"`
	PhoneNo       string `json:"phone_no,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	LicenseNo     string `json:"license_no,omitempty"`
	Username      string `json:"username,omitempty"`
}

type CreateStaffRequestBody struct {
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role,omitempty"`
	PhoneNo  string `json:"phone_no,omitempty"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	BranchID *uint  `json:"branch_id,omitempty"`
}

type CreateBranchRequestBody struct {
	BranchName string `json:"branch_name" binding:"required"`
	Location   string `json:"location,omitempty"`
	ContactNo  string `json:"contact_no,omitempty"`
	ManagerID  *uint  `json:"manager_id,omitempty"`
}

type CreateBankAccountRequestBody struct {
	BankName          string `json:"bank_name" binding:"required"`
	Branch            string `json:"branch,omitempty"`
	AccountNumber     string `json:"account_number" binding:"required"`
	AccountHolderName string `json:"account_holder_name,omitempty"`
	AccountType       string `json:"account_type,omitempty"`
	IsActive          *bool  `json:"is_active,omitempty"`
}

type SignupRequestBody struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required,min=8"`
	Role          string `json:"role,omitempty"`
	FullName      string `json:"full_name,omitempty"`
	NicPassportNo string `json:"nic_passport_no,omitempty"`
	PhoneNo       string `json:"phone_no,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	LicenseNo     string `json:"license_no,omitempty"`
}

type LoginRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type DashboardSummary struct {
	Vehicles map[AvailabilityStatus]int64 `json:"vehicles"`
	Rentals  map[RentalStatus]int64       `json:"rentals"`
	Revenue  float64                      `json:"revenue"`
}
