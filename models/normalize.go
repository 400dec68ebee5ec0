package models

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Defaults applied by the normalizers. Icon and color are rendered verbatim
// by the client, so their values are part of the wire contract.
const (
	DefaultNoteContent  = "No content"
	DefaultNoteCategory = "General"
	DefaultTaskCategory = "Tasks"
	DefaultTaskTitle    = "Untitled task"
	DefaultTaskBg       = "bg-default"

	DefaultCategoryIcon  = "ri-folder-line"
	DefaultCategoryColor = "bg-gray-500"
)

// titleRuneLimit caps the derived note title, counted in runes so multibyte
// content never gets split mid-character.
const titleRuneLimit = 60

// titleMarkupCutset holds the leading markup punctuation stripped from
// derived titles, in addition to whitespace.
const titleMarkupCutset = "#*->!`"

// NormalizeNote returns the fully-populated canonical form of n. Every
// optional field receives a deterministic default; now supplies the timestamp
// for records written for the first time. Normalizing an already-normalized
// record returns it unchanged.
func NormalizeNote(n Note, now time.Time) Note {
	if n.Title == "" {
		if n.IsTask {
			n.Title = DefaultTaskTitle
		} else {
			n.Title = DeriveNoteTitle(n.Content)
		}
	}

	if n.Content == "" && !n.IsTask {
		n.Content = DefaultNoteContent
	}

	if n.Timestamp == "" {
		n.Timestamp = now.UTC().Format(time.RFC3339)
	}

	if n.Category == "" {
		if n.IsTask {
			n.Category = DefaultTaskCategory
		} else {
			n.Category = DefaultNoteCategory
		}
	}

	if n.IsTask {
		if n.Items == nil {
			n.Items = []TaskItem{}
		}
		if n.Bg == "" {
			n.Bg = DefaultTaskBg
		}
	}

	if n.Password != nil && *n.Password == "" {
		n.Password = nil
	}

	return n
}

// NormalizeCategory returns the canonical form of c. The name is the store
// key and is left untouched; id assignment is the caller's job (the engine
// assigns it on add, the startup migration backfills legacy records).
func NormalizeCategory(c Category) Category {
	if c.Icon == "" {
		c.Icon = DefaultCategoryIcon
	}
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	return c
}

// DeriveNoteTitle builds a display title from note content: the first 60
// runes, stripped of leading markup punctuation and whitespace and of
// trailing line breaks, trimmed, with an ellipsis appended when the content
// was longer than the cap. Empty content derives an empty title.
func DeriveNoteTitle(content string) string {
	head := content
	overflow := false
	if utf8.RuneCountInString(content) > titleRuneLimit {
		head = string([]rune(content)[:titleRuneLimit])
		overflow = true
	}

	head = strings.TrimLeftFunc(head, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(titleMarkupCutset, r)
	})
	head = strings.TrimRight(head, "\r\n")
	head = strings.TrimSpace(head)

	if overflow {
		head += "..."
	}

	return head
}
