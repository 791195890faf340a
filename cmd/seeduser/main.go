// cmd/seeduser/main.go — Crea/actualiza usuario administrador de demo.
// Uso: go run cmd/seeduser/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("USERS_DATABASE_URL")
	if dsn == "" {
		dsn = "profit:profit@tcp(localhost:3306)/profit_users?parseTime=true"
	}
	coVen := "ADM01"
	password := "1234"
	nombre := "Admin Demo"
	email := "admin@profit.local"
	rol := 1 // administrador

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	result := db.WithContext(context.Background()).Exec(`
		INSERT INTO users (co_ven, nombre, email, password_hash, rol, activo)
		VALUES (?, ?, ?, ?, ?, true)
		ON DUPLICATE KEY UPDATE
		    password_hash = VALUES(password_hash),
		    nombre = VALUES(nombre),
		    email = VALUES(email),
		    rol = VALUES(rol),
		    activo = true
	`, coVen, nombre, email, string(hash), rol)

	if result.Error != nil {
		log.Fatalf("insert error: %v", result.Error)
	}
	fmt.Printf("✅ Usuario '%s' creado/actualizado con password '%s'\n", coVen, password)
}
