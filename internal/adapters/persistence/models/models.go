package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Accounts
// ============================================================

// Role is the authorization role attached to an Account
type Role string

const (
	RoleAdmin Role = "ADMIN"
)

// Account represents accounts table.
// Only one admin account is expected; the seeder creates it.
type Account struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      Role      `gorm:"size:20;not null;default:'ADMIN'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// ============================================================
// Donors
// ============================================================

// Blood types (ABO/Rh)
const (
	BloodAPos  = "A+"
	BloodANeg  = "A-"
	BloodBPos  = "B+"
	BloodBNeg  = "B-"
	BloodABPos = "AB+"
	BloodABNeg = "AB-"
	BloodOPos  = "O+"
	BloodONeg  = "O-"
)

// Donor represents donors table
type Donor struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"size:100;not null" json:"name"`
	Email           string     `gorm:"size:100;not null" json:"email"`
	Phone           string     `gorm:"size:20;not null" json:"phone"`
	Age             int        `json:"age"`
	Gender          string     `gorm:"size:20" json:"gender"`
	Weight          float64    `json:"weight"`
	BloodType       string     `gorm:"size:3;not null;index" json:"bloodType"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	LastDonation    *time.Time `json:"lastDonation"`
	HealthCondition string     `gorm:"type:text" json:"healthCondition"`
	Medications     string     `gorm:"type:text" json:"medications"`
	RecentIllness   string     `gorm:"type:text" json:"recentIllness"`
	IsDonated       bool       `gorm:"default:false;index" json:"isDonated"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Donor) TableName() string {
	return "donors"
}

// EligibleAt reports whether the donor may be reactivated at the given time.
// A donor is eligible when the last donation is at least two calendar months
// old; the cutoff uses year/month rollover, not a fixed-day window, so the
// same day-of-month two months back is already eligible. A donor with no
// recorded donation is always eligible.
func (d *Donor) EligibleAt(now time.Time) bool {
	if d.LastDonation == nil {
		return true
	}
	cutoff := now.AddDate(0, -2, 0)
	return !d.LastDonation.After(cutoff)
}

// ============================================================
// Blood requests
// ============================================================

// Request statuses
const (
	RequestStatusPending   = "pending"
	RequestStatusCompleted = "completed"
	RequestStatusCancelled = "cancelled"
)

// IsValidRequestStatus reports whether s is one of the known statuses
func IsValidRequestStatus(s string) bool {
	switch s {
	case RequestStatusPending, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// BloodRequest represents blood_requests table
type BloodRequest struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PatientName    string    `gorm:"size:100;not null" json:"patientName"`
	ContactName    string    `gorm:"size:100;not null" json:"contactName"`
	Relationship   string    `gorm:"size:50" json:"relationship"`
	Email          string    `gorm:"size:100;not null" json:"email"`
	Phone          string    `gorm:"size:20;not null" json:"phone"`
	BloodType      string    `gorm:"size:3;not null;index" json:"bloodType"`
	UnitsNeeded    int       `json:"unitsNeeded"`
	Hospital       string    `gorm:"size:200" json:"hospital"`
	Urgency        string    `gorm:"size:20" json:"urgency"`
	Reason         string    `gorm:"type:text" json:"reason"`
	AdditionalInfo string    `gorm:"type:text" json:"additionalInfo"`
	RequestDate    time.Time `gorm:"not null" json:"requestDate"`
	Status         string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BloodRequest) TableName() string {
	return "blood_requests"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Account{},
		&Donor{},
		&BloodRequest{},
	)
}
