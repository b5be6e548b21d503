package state

import (
	"github.com/aura-workspace/aura/internal/model"
	"github.com/aura-workspace/aura/internal/validate"
)

// SanitizeCollection escapes markup in the user-entered text fields of one
// collection. It runs on the external write paths only, so text is escaped
// once at the point it enters the system; loading already-stored data does
// not escape again. Snippet code and bookmark URLs are left alone: one is
// rendered as code, the other is an address, not markup.
func (s *AppState) SanitizeCollection(name string) {
	switch name {
	case model.CollectionNotes:
		for i := range s.Notes {
			n := &s.Notes[i]
			n.Title = validate.SanitizeText(n.Title)
			n.Content = validate.SanitizeText(n.Content)
			n.Category = validate.SanitizeText(n.Category)
			sanitizeAll(n.Tags)
		}
	case model.CollectionTasks:
		for i := range s.Tasks {
			t := &s.Tasks[i]
			t.Title = validate.SanitizeText(t.Title)
			t.Description = validate.SanitizeText(t.Description)
		}
	case model.CollectionSnippets:
		for i := range s.Snippets {
			sn := &s.Snippets[i]
			sn.Title = validate.SanitizeText(sn.Title)
			sn.Language = validate.SanitizeText(sn.Language)
			sanitizeAll(sn.Tags)
		}
	case model.CollectionSchedule:
		for i := range s.Schedule {
			it := &s.Schedule[i]
			it.Subject = validate.SanitizeText(it.Subject)
			it.Description = validate.SanitizeText(it.Description)
			it.Location = validate.SanitizeText(it.Location)
		}
	case model.CollectionBookmarks:
		for i := range s.Bookmarks {
			b := &s.Bookmarks[i]
			b.Title = validate.SanitizeText(b.Title)
			b.Description = validate.SanitizeText(b.Description)
			b.Category = validate.SanitizeText(b.Category)
			sanitizeAll(b.Tags)
		}
	case model.CollectionSearchHistory:
		sanitizeAll(s.SearchHistory)
	case model.CollectionUserProfile:
		s.UserProfile.Name = validate.SanitizeText(s.UserProfile.Name)
		s.UserProfile.Goal = validate.SanitizeText(s.UserProfile.Goal)
	}
}

func sanitizeAll(ss []string) {
	for i := range ss {
		ss[i] = validate.SanitizeText(ss[i])
	}
}
