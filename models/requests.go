package models

// NoteUpsert is the request body of POST /addNote and POST /addTask.
//
// Optional boolean and string fields are pointers so the engine can tell
// "field omitted" apart from "field set to its zero value": an update that
// omits a field keeps the stored value, with one exception: omitting
// Protected clears both Protected and Password on the stored record
// (protection must be reaffirmed on every write).
type NoteUpsert struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   *string    `json:"content"`
	Timestamp string     `json:"timestamp"`
	Category  string     `json:"category"`
	Pinned    *bool      `json:"pinned"`
	Protected *bool      `json:"protected"`
	Password  *string    `json:"password"`
	Items     []TaskItem `json:"items"`
	Bg        string     `json:"bg"`
}

// CategoryUpsert is the request body of POST /addCategory.
type CategoryUpsert struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	UserDefined *bool  `json:"userDefined"`
}

// RenameCategory is the request body of PUT /updateCategory/{oldName}.
type RenameCategory struct {
	NewName string `json:"newName"`
}
