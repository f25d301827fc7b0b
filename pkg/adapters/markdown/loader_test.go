package markdown_test

import (
	"testing"
	"testing/fstest"

	"github.com/aretw0/ferris/pkg/adapters/markdown"
	"github.com/aretw0/ferris/pkg/domain"
	contract "github.com/aretw0/ferris/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownershipDoc = `---
action: ownership
title: Ownership
summary: Moves and borrows
---
First page

  indented code
<!-- advance -->
Second page
<!-- advance -->
`

const structsDoc = "---\r\naction: Structs\r\n---\r\nOnly page\r\n"

func TestLoader_Contract(t *testing.T) {
	fsys := fstest.MapFS{
		"ownership.md": {Data: []byte(ownershipDoc)},
		"structs.md":   {Data: []byte(structsDoc)},
		"README.txt":   {Data: []byte("ignored")},
	}

	loader, err := markdown.New(fsys)
	require.NoError(t, err)

	contract.LessonLoaderContractTest(t, loader, map[domain.MenuAction]domain.Lesson{
		domain.MenuOwnership: {Title: "Ownership", Pages: make([]domain.Page, 2)},
		domain.MenuStructs:   {Title: "Structs", Pages: make([]domain.Page, 1)},
	})
}

func TestParse(t *testing.T) {
	lesson, err := markdown.Parse([]byte(ownershipDoc))
	require.NoError(t, err)

	assert.Equal(t, domain.MenuOwnership, lesson.Action)
	assert.Equal(t, "Ownership", lesson.Title)
	assert.Equal(t, "Moves and borrows", lesson.Summary)
	require.Len(t, lesson.Pages, 2)
	assert.Equal(t, "First page\n\n  indented code", lesson.Pages[0].Body)
	assert.Equal(t, "Second page", lesson.Pages[1].Body)
}

func TestParse_DefaultTitle(t *testing.T) {
	lesson, err := markdown.Parse([]byte(structsDoc))
	require.NoError(t, err)
	assert.Equal(t, domain.MenuStructs, lesson.Action)
	assert.Equal(t, "Structs", lesson.Title)
	assert.Equal(t, []domain.Page{{Body: "Only page"}}, lesson.Pages)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"No Front Matter", "just text"},
		{"Unterminated", "---\naction: enums\nbody"},
		{"Bad YAML", "---\naction: [enums\n---\nbody"},
		{"Unknown Action", "---\naction: traits\n---\nbody"},
		{"Quit Has No Lesson", "---\naction: quit\n---\nbody"},
		{"Wrong Type", "---\naction:\n  nested: true\n---\nbody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := markdown.Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, domain.ErrInvalidLesson)
		})
	}
}

func TestNew_Duplicate(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md": {Data: []byte(structsDoc)},
		"b.md": {Data: []byte(structsDoc)},
	}
	_, err := markdown.New(fsys)
	assert.ErrorIs(t, err, domain.ErrInvalidLesson)
}
