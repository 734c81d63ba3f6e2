package models

// Follow is a directed edge, UserID follows AuthorID.
// The pair is unique, a second identical edge is rejected by the database.
type Follow struct {
	BaseModel

	UserID   uint    `json:"user_id" gorm:"not null;uniqueIndex:idx_follow_edge"`
	User     Account `json:"user" gorm:"constraint:OnDelete:CASCADE"`
	AuthorID uint    `json:"author_id" gorm:"not null;uniqueIndex:idx_follow_edge;index"`
	Author   Account `json:"author" gorm:"constraint:OnDelete:CASCADE"`
}
