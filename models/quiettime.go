package models

import "time"

// QuietTimeStatus enumerates the lifecycle of a quiet time request.
// Requests start as pending and a manager moves them to approved or rejected.
type QuietTimeStatus string

const (
	QuietTimePending  QuietTimeStatus = "pending"
	QuietTimeApproved QuietTimeStatus = "approved"
	QuietTimeRejected QuietTimeStatus = "rejected"
)

type QuietTime struct {
	ID         int64           `gorm:"column:id;primaryKey" json:"id"`
	UserID     int64           `gorm:"column:userId;not null;index" json:"user_id"`
	StoreID    int64           `gorm:"column:storeId;not null;index" json:"store_id"`
	Date       time.Time       `gorm:"column:date;type:date;not null" json:"date"`
	TimeWindow string          `gorm:"column:timewindow;not null;type:varchar(100)" json:"time_window"`
	Reason     *string         `gorm:"column:reason;type:text" json:"reason,omitempty"`
	Status     QuietTimeStatus `gorm:"column:status;type:varchar(20);default:pending" json:"status"`
}

// TableName keeps the legacy singular table name
func (QuietTime) TableName() string {
	return "quiettime"
}

// ManagerQuietTimeResponse is the per-store listing row shown on the manager dashboard
type ManagerQuietTimeResponse struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"userId"`
	UserName      string          `json:"userName"`
	StoreLocation string          `json:"storeLocation"`
	Date          string          `json:"date"`
	TimeWindow    string          `json:"timeWindow"`
	Reason        *string         `json:"reason"`
	Status        QuietTimeStatus `json:"status"`
}

// UserQuietTimeResponse is the per-user listing row shown to the requesting customer
type UserQuietTimeResponse struct {
	ID            int64           `json:"id"`
	StoreID       int64           `json:"storeId"`
	StoreLocation string          `json:"storeLocation"`
	Date          string          `json:"date"`
	TimeWindow    string          `json:"timeWindow"`
	Reason        *string         `json:"reason"`
	Status        QuietTimeStatus `json:"status"`
}

// QuietTimeDateFormat is the calendar-date-only serialization used by both listings
const QuietTimeDateFormat = "2006-01-02"
