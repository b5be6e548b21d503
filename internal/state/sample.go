package state

import (
	"time"

	"github.com/aura-workspace/aura/internal/model"
)

// Sample returns the demo workspace seeded on first run, when the store
// holds no data at all.
func Sample(now time.Time) *AppState {
	s := NewDefault()
	created := now.UTC().Format(time.RFC3339)
	due := now.AddDate(0, 0, 3).Format("2006-01-02")

	s.Notes = []model.Note{
		{
			ID:       now.UnixMilli(),
			Title:    "Welcome to Aura",
			Content:  "# Welcome\n\nThis workspace keeps notes, tasks, snippets and your schedule in one place. Everything is stored locally.",
			Tags:     []string{"getting-started"},
			Category: "General",
			Created:  created,
		},
	}
	s.Tasks = []model.Task{
		{
			ID:          now.UnixMilli() + 1,
			Title:       "Explore the workspace",
			Description: "Open each section and poke around.",
			Priority:    model.PriorityMedium,
			DueDate:     due,
			Status:      model.StatusTodo,
		},
	}
	s.Snippets = []model.Snippet{
		{
			ID:       now.UnixMilli() + 2,
			Title:    "Hello",
			Language: "go",
			Code:     "fmt.Println(\"hello\")",
			Tags:     []string{"example"},
		},
	}
	s.Bookmarks = []model.Bookmark{
		{
			ID:          now.UnixMilli() + 3,
			Title:       "Aura documentation",
			URL:         "https://example.com/aura",
			Category:    "Reference",
			Tags:        []string{"docs"},
			Description: "How the workspace fits together.",
		},
	}
	return s
}
