package models

// Store is read-only from the application's perspective: rows are seeded,
// never created or updated through the API.
type Store struct {
	StoreID         int64  `gorm:"column:storeId;primaryKey" json:"storeId"`
	ManagerEmail    string `gorm:"column:managerEmail;not null;type:varchar(100)" json:"managerEmail"`
	ManagerPassword string `gorm:"column:managerPassword;not null" json:"-"`
	StoreLocation   string `gorm:"column:storeLocation;not null;type:varchar(255)" json:"storeLocation"`
}

// TableName keeps the legacy singular table name
func (Store) TableName() string {
	return "store"
}

// StoreResponse represents the store record returned on manager login
type StoreResponse struct {
	StoreID       int64  `json:"storeId"`
	ManagerEmail  string `json:"managerEmail"`
	StoreLocation string `json:"storeLocation"`
}

// ToResponse converts a Store model to a StoreResponse
func (s *Store) ToResponse() *StoreResponse {
	return &StoreResponse{
		StoreID:       s.StoreID,
		ManagerEmail:  s.ManagerEmail,
		StoreLocation: s.StoreLocation,
	}
}
