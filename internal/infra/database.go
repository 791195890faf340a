package infra

import (
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormConfig is shared by both connections. TranslateError must stay on:
// the services match on gorm.ErrDuplicatedKey to detect lost correlative
// races and duplicate co_ven / rif inserts, and without translation the
// drivers surface their own error types instead.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
}

// NewERPDatabase opens the SQL Server connection to the external ERP schema
// (encabezado, renglones, clientes, art, docum_cc, ...). The schema is owned
// by the ERP vendor: no AutoMigrate, no DDL of any kind is ever issued here.
func NewERPDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlserver.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// NewUsersDatabase opens the MySQL connection holding the application's own
// tables (users, media). It lives apart from the ERP database, so seller and
// client lookups across the two are resolved in-process, never with joins.
func NewUsersDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}
