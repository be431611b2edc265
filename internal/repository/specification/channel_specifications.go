package specification

import "gorm.io/gorm"

type ByChannelId struct {
	Id string
}

func (s ByChannelId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.Id)
}

type ByTenant struct {
	Tenant string
}

func (s ByTenant) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tenant = ?", s.Tenant)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type WithDetails struct{}

func (s WithDetails) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Details")
}
