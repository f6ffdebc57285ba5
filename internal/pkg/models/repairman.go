package models

import (
	"time"
)

// Repairman is a field technician registered by the admin team
type Repairman struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	PhoneNumber  string    `json:"phone_number" db:"phone_number"`
	ServiceType  string    `json:"service_type" db:"service_type"`
	EmployeeType string    `json:"employee_type" db:"employee_type"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RepairmanCreate is the admin payload for registering a repairman
type RepairmanCreate struct {
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	ServiceType  string `json:"service_type"`
	EmployeeType string `json:"employee_type"`
}
