package models

import (
	"time"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/storage"
	"gorm.io/gorm"
)

const PostPreviewLength = 15

type Post struct {
	BaseModel

	Text        string    `json:"text" gorm:"type:text;not null"`
	Language    string    `json:"language"`
	Image       string    `json:"-"`
	ImageURL    string    `json:"image" gorm:"-"`
	PublishedAt time.Time `json:"published_at" gorm:"index;not null"`

	AuthorID uint    `json:"author_id" gorm:"not null;index"`
	Author   Account `json:"author" gorm:"constraint:OnDelete:CASCADE"`

	GroupID *uint  `json:"group_id" gorm:"index"`
	Group   *Group `json:"group,omitempty" gorm:"constraint:OnDelete:SET NULL"`
}

func (v Post) String() string {
	runes := []rune(v.Text)
	if len(runes) > PostPreviewLength {
		return string(runes[:PostPreviewLength])
	}
	return v.Text
}

// Image holds the storage key, clients only ever see the public address.
func (v *Post) AfterFind(tx *gorm.DB) error {
	v.ImageURL = storage.URL(v.Image)
	return nil
}

func (v *Post) AfterSave(tx *gorm.DB) error {
	v.ImageURL = storage.URL(v.Image)
	return nil
}
