package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortClause(t *testing.T) {
	allowed := map[string]string{
		"date":  "date",
		"title": "title",
	}

	assert.Equal(t, "date ASC", sortClause("date", "date", allowed))
	assert.Equal(t, "date DESC", sortClause("-date", "date", allowed))
	assert.Equal(t, "title ASC", sortClause("title", "date", allowed))
}

func TestSortClauseFallback(t *testing.T) {
	allowed := map[string]string{"position": "position"}

	assert.Equal(t, "position ASC", sortClause("", "position", allowed))
	assert.Equal(t, "position ASC", sortClause("sneaky; DROP TABLE", "position", allowed))
	assert.Equal(t, "created_at DESC", sortClause("", "-created_at", allowed))
}
