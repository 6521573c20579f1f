package models

import "time"

type Announcement struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Title     string    `gorm:"column:title;not null;type:varchar(255)" json:"title"`
	Descrip   *string   `gorm:"column:descrip;type:text" json:"descrip,omitempty"`
	StoreID   int64     `gorm:"column:storeId;not null;index" json:"store_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName keeps the legacy singular table name
func (Announcement) TableName() string {
	return "announcement"
}

// AnnouncementResponse represents the announcement data returned in API responses
type AnnouncementResponse struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Descrip   *string `json:"descrip,omitempty"`
	StoreID   int64   `json:"storeId"`
	CreatedAt string  `json:"createdAt"`
}

// ToResponse converts an Announcement model to an AnnouncementResponse
func (a *Announcement) ToResponse() *AnnouncementResponse {
	return &AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Descrip:   a.Descrip,
		StoreID:   a.StoreID,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
