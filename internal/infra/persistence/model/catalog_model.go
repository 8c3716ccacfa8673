package model

import (
	"time"

	"github.com/google/uuid"
)

// RegionModel mirrors the 'regions' table.
type RegionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:text"`
	Latitude    float64   `gorm:"not null"`
	Longitude   float64   `gorm:"not null"`
	LegendID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Legend *LegendModel `gorm:"foreignKey:LegendID"`
}

// TableName explicitly sets the table name for GORM.
func (RegionModel) TableName() string {
	return "regions"
}

// HotelModel mirrors the 'hotels' table.
type HotelModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null;index"`
	Address   string    `gorm:"type:varchar(255)"`
	Latitude  float64   `gorm:"not null"`
	Longitude float64   `gorm:"not null"`
	Rating    int
	Website   string `gorm:"type:varchar(255)"`
	Phone     string `gorm:"type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HotelModel) TableName() string {
	return "hotels"
}

// RestaurantModel mirrors the 'restaurants' table.
type RestaurantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null;index"`
	Address   string    `gorm:"type:varchar(255)"`
	Latitude  float64   `gorm:"not null"`
	Longitude float64   `gorm:"not null"`
	Rating    int
	Category  string `gorm:"type:varchar(100)"`
	Website   string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// LegendModel mirrors the 'legends' table.
type LegendModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:varchar(255);column:image_url"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LegendModel) TableName() string {
	return "legends"
}

// MythStoryModel mirrors the 'myth_stories' table. Rows cascade with both the
// region and the contributing user.
type MythStoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:text;not null"`
	ImageURL  string    `gorm:"type:varchar(255);column:image_url"`
	RegionID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time

	Region *RegionModel `gorm:"foreignKey:RegionID;constraint:OnDelete:CASCADE"`
	User   *UserModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MythStoryModel) TableName() string {
	return "myth_stories"
}

// EventPlaceModel mirrors the 'event_places' table. HotelID and RestaurantID
// are mutually exclusive; the usecase layer rejects rows carrying both.
type EventPlaceModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string     `gorm:"type:varchar(150);not null;index"`
	Description  string     `gorm:"type:text;not null"`
	Latitude     float64    `gorm:"not null"`
	Longitude    float64    `gorm:"not null"`
	Type         string     `gorm:"type:varchar(20);not null;index"`
	RegionID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	LegendID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	HotelID      *uuid.UUID `gorm:"type:uuid"`
	RestaurantID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Region     *RegionModel     `gorm:"foreignKey:RegionID;constraint:OnDelete:CASCADE"`
	Legend     *LegendModel     `gorm:"foreignKey:LegendID"`
	Hotel      *HotelModel      `gorm:"foreignKey:HotelID;constraint:OnDelete:SET NULL"`
	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (EventPlaceModel) TableName() string {
	return "event_places"
}

// ReviewModel mirrors the 'reviews' table. TargetType distinguishes hotel and
// restaurant reviews sharing one table.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	TargetType string    `gorm:"type:varchar(20);not null;index:idx_reviews_target"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_target"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
