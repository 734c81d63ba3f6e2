package models

type Group struct {
	BaseModel

	Title       string `json:"title" gorm:"size:200;not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:50;not null"`
	Description string `json:"description" gorm:"type:text"`
}
