package models

// Category is a user-visible grouping of notes and tasks. The record is
// keyed by Name in the store; ID is assigned once and survives renames, so
// clients can track a category across them.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	UserDefined bool   `json:"userDefined"`

	IsDeleted     bool    `json:"isDeleted"`
	DeleteSession *string `json:"deleteSession"`
}
