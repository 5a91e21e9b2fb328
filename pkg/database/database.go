package database

import (
	"fmt"
	"log"

	"sam_awards_backend/internal/config"
	"sam_awards_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbc := &cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbc.User,
		dbc.Password,
		dbc.Host,
		dbc.Port,
		dbc.DBName,
		dbc.Charset,
		dbc.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// In release mode the schema only changes when migration is asked
	// for explicitly (-migrate / -migrate-only).
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.Nomination{},
			&model.Attachment{},
			&model.EligibilityCheck{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")
	}

	return db, nil
}

// SeedAdmin creates the initial admin account when the users table is
// empty, using the credentials from the config.
func SeedAdmin(db *gorm.DB, cfg *config.AwardConfig) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.User{}).Where("role = ?", model.Admin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:     "Awards Administrator",
		Email:    cfg.AdminEmail,
		Password: string(hashed),
		Role:     model.Admin,
		Language: "ar",
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Println("Seeded initial admin account")
	return nil
}
