package model

import "time"

// Link maps one short code to its original URL plus a click counter.
type Link struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"uniqueIndex;not null" json:"code"`
	OriginalUrl string    `gorm:"column:original_url;not null" json:"originalUrl"`
	Clicks      int64     `gorm:"default:0" json:"clicks"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Link) TableName() string {
	return "links"
}
