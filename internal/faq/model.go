package faq

import "time"

type FAQ struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Category  string    `gorm:"type:varchar(64);index;not null" json:"category"`
	Keywords  []string  `gorm:"serializer:json;type:text" json:"keywords"`
	CreatedAt time.Time `json:"created_at"`
}

func (FAQ) TableName() string { return "faqs" }
