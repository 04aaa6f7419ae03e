package db

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"supportbot/internal/chat"
	"supportbot/internal/faq"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&faq.FAQ{}, &chat.Session{}, &chat.Message{})
}
