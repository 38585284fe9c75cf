package models

// Laptop is an inventory row. BrandID is stored as-is; the brands table is
// not validated against.
type Laptop struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null" json:"name"`
	Price   float64 `gorm:"not null" json:"price"`
	Stock   int     `gorm:"not null;check:stock >= 0" json:"stock"`
	BrandID uint    `gorm:"column:brand_id;not null" json:"brand_id"`
}

// TableName defaults to the configured laptop table; gorm gateways override
// it per call, so this only covers migrations.
func (Laptop) TableName() string {
	return "laptop"
}
