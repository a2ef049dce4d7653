package specification

import "gorm.io/gorm"

// OwnedBy scopes notes to their owning user. Every note query goes through
// this so a missing note and a foreign note are indistinguishable.
type OwnedBy struct {
	UserID uint
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByTitle struct {
	Title string
}

func (s ByTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}
