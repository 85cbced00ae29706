package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *sql.DB {
	t.Helper()
	dbh, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })
	return dbh
}

func TestRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	dbh := openTest(t)
	calcID, timerID := uuid.NewString(), uuid.NewString()

	first := &Line{WidgetID: calcID, Kind: KindCalc, Expr: "5 + 3", Result: "8"}
	require.NoError(t, Record(ctx, dbh, first))
	assert.NotZero(t, first.ID)
	assert.False(t, first.At.IsZero())

	require.NoError(t, Record(ctx, dbh, &Line{WidgetID: calcID, Kind: KindCalc, Expr: "8 ÷ 0", Result: "Error", Failed: true}))
	require.NoError(t, Record(ctx, dbh, &Line{WidgetID: timerID, Kind: KindTimer, Expr: "00:01:30", Result: "Time's up!"}))

	lines, err := Recent(ctx, dbh, 2)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, KindTimer, lines[0].Kind)
	assert.Equal(t, "8 ÷ 0", lines[1].Expr)
	assert.True(t, lines[1].Failed)

	mine, err := ByWidget(ctx, dbh, calcID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "5 + 3", mine[0].Expr)

	sum, err := Summary(ctx, dbh)
	require.NoError(t, err)
	assert.Equal(t, []KindCount{
		{Kind: KindCalc, Lines: 2, Failed: 1},
		{Kind: KindTimer, Lines: 1, Failed: 0},
	}, sum)
}

func TestEachOpenIsEmpty(t *testing.T) {
	ctx := context.Background()
	a := openTest(t)
	require.NoError(t, Record(ctx, a, &Line{WidgetID: "w", Kind: KindCalc, Expr: "1 + 1", Result: "2"}))

	b := openTest(t)
	lines, err := Recent(ctx, b, 10)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRecordRejectsUnknownKind(t *testing.T) {
	dbh := openTest(t)
	err := Record(context.Background(), dbh, &Line{WidgetID: "w", Kind: "clock", Expr: "x", Result: "y"})
	assert.Error(t, err)
}
