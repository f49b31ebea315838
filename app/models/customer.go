package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID            string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name          string `gorm:"size:200;not null" json:"name"`
	Email         string `gorm:"size:254;index" json:"email"`
	Phone         string `gorm:"size:15" json:"phone"`
	Address       string `gorm:"type:text" json:"address"`
	City          string `gorm:"size:100" json:"city"`
	State         string `gorm:"size:100" json:"state"`
	Pincode       string `gorm:"size:10" json:"pincode"`
	PanNumber     string `gorm:"size:10" json:"pan_number"`
	Gstin         string `gorm:"size:15" json:"gstin"`
	PlaceOfSupply string `gorm:"size:100" json:"place_of_supply"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// FullAddress returns the single-line postal address used on invoices.
func (c *Customer) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s, %s", c.Address, c.City, c.State, c.Pincode)
}
