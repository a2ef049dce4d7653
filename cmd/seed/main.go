package main

import (
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/emmanuelronoh/backend/internal/model"
	"github.com/emmanuelronoh/backend/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding development data...")

	user1 := seedUser(db, "user1@example.com", "password123")
	user2 := seedUser(db, "user2@example.com", "password456")

	note1 := seedNote(db, "First Note", "hey this is my first content", []string{"tag1", "tag2"}, user1.Id)
	note2 := seedNote(db, "Second Note", "hey this is my first content", []string{"tag1", "tag2"}, user2.Id)

	seedSnapshot(db, note1.Id, "This is the content of the first note.")
	seedSnapshot(db, note2.Id, "This is the content of the second note.")

	seedContact(db, "John Doe", "john@example.com", "Hello", "This is a test message.")
	seedContact(db, "Jane Smith", "jane@example.com", "Inquiry", "I would like to know more.")

	color.Green("Database seeded!")
}

func seedUser(db *gorm.DB, email, password string) *model.User {
	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("User %s already exists, skipping...", email)
		return &existing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing password for %s: %v", email, err)
	}

	user := model.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Error creating user %s: %v", email, err)
	}

	color.Green("Created user: %s", email)
	return &user
}

func seedNote(db *gorm.DB, title, content string, tags []string, userId uint) *model.Note {
	note := model.Note{
		Title:       title,
		Content:     content,
		Tags:        datatypes.NewJSONSlice(tags),
		DateCreated: time.Now(),
		UserId:      userId,
	}
	if err := db.Create(&note).Error; err != nil {
		log.Fatalf("Error creating note %q: %v", title, err)
	}

	color.Green("Created note: %s (user %d)", title, userId)
	return &note
}

func seedSnapshot(db *gorm.DB, noteId uint, content string) {
	snapshot := model.EditorContent{
		NoteId:  noteId,
		Content: content,
	}
	if err := db.Create(&snapshot).Error; err != nil {
		log.Fatalf("Error creating editor content for note %d: %v", noteId, err)
	}
}

func seedContact(db *gorm.DB, name, email, subject, message string) {
	msg := model.ContactMessage{
		Name:        name,
		Email:       email,
		Subject:     subject,
		Message:     message,
		DateCreated: time.Now(),
	}
	if err := db.Create(&msg).Error; err != nil {
		log.Fatalf("Error creating contact message from %s: %v", name, err)
	}

	color.Green("Created contact message from: %s", name)
}
