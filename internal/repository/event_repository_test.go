package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// TestEventList verifies date formatting, nullable durations, and that
// the query orders ascending by date.
func TestEventList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	openHouse := time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)
	showcase := time.Date(2026, 11, 20, 18, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, date, duration FROM events ORDER BY date ASC, id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "date", "duration"}).
			AddRow(1, "Open House", openHouse, "90 min").
			AddRow(2, "Fall Showcase", showcase, nil))

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "Open House", events[0].Name)
	require.Equal(t, "2026-09-05T10:00:00Z", events[0].Date)
	require.NotNil(t, events[0].Duration)
	require.Equal(t, "90 min", *events[0].Duration)
	require.Nil(t, events[1].Duration)
	require.NoError(t, mock.ExpectationsWereMet())
}

// TestEventListEmpty verifies an empty slice when no events exist.
func TestEventListEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectQuery(`SELECT id, name, date, duration FROM events`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "date", "duration"}))

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, events)
	require.Empty(t, events)
	require.NoError(t, mock.ExpectationsWereMet())
}
