package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"already lowercase", "hello world", "hello-world"},
		{"punctuation collapsed", "Go, Postgres & Redis!", "go-postgres-redis"},
		{"leading and trailing noise", "  --Hello--  ", "hello"},
		{"multiple spaces", "a   b", "a-b"},
		{"digits kept", "Top 10 Posts of 2024", "top-10-posts-of-2024"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.title))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	assert.Equal(t, Slugify("Hello World"), Slugify("Hello World"))
}

func TestEstimateReadTime(t *testing.T) {
	assert.Equal(t, 1, EstimateReadTime(""))
	assert.Equal(t, 1, EstimateReadTime("short post"))

	long := ""
	for i := 0; i < 450; i++ {
		long += "word "
	}
	assert.Equal(t, 3, EstimateReadTime(long))
}

func TestStatusCanTransition(t *testing.T) {
	testCases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusDraft, StatusPublished, true},
		{StatusDraft, StatusArchived, true},
		{StatusPublished, StatusArchived, true},
		{StatusPublished, StatusPublished, true},
		{StatusPublished, StatusDraft, false},
		{StatusArchived, StatusPublished, false},
		{StatusArchived, StatusDraft, false},
		{StatusArchived, StatusArchived, true},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
