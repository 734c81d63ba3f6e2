package models

// Account is the local reference of an external identity.
// Nothing but the username is owned here, it exists so posts, comments
// and follow edges have a row to point at.
type Account struct {
	BaseModel

	Username string `json:"username" gorm:"uniqueIndex;size:150;not null"`
}
