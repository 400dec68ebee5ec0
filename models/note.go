package models

// Note is a synchronized note or task record. Notes and tasks share one
// keyspace and one lifecycle; IsTask tags the variant and Items/Bg carry the
// task-specific payload.
//
// Password and DeleteSession are pointers so that their absence serializes as
// an explicit JSON null, which is what the client expects. The password is an
// opaque string encoded on the client; the server stores it verbatim and
// never interprets it.
//
// Items carries no omitempty: a task's empty checklist serializes as [] (the
// normalizer guarantees a non-nil slice on tasks) and a note's absent
// checklist as null.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Category  string `json:"category"`
	Pinned    bool   `json:"pinned"`
	Protected bool   `json:"protected"`

	Password *string `json:"password"`

	// IsDeleted marks the record as a tombstone: it stays in the store and in
	// fetch-all output until an explicit permanent delete.
	IsDeleted bool `json:"isDeleted"`

	// DeleteSession is the opaque session token of the device that performed
	// the most recent soft delete. Cleared on reactivation.
	DeleteSession *string `json:"deleteSession"`

	IsTask bool       `json:"isTask"`
	Items  []TaskItem `json:"items"`
	Bg     string     `json:"bg,omitempty"`
}

// TaskItem is a single checklist entry of a task.
type TaskItem struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}
