package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestGameErrOnlyMapsNoRows(t *testing.T) {
	assert.ErrorIs(t, latestGameErr(sql.ErrNoRows), ErrNoGame)

	err := latestGameErr(context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrNoGame)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
