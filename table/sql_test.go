package table

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestFromSQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	created := time.Date(2023, 4, 5, 13, 37, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "score", "created_at"}).
			AddRow(int64(1), "alice", 9.5, created).
			AddRow(int64(2), nil, 7.0, created),
	)

	rows, err := db.Query("SELECT id, name, score, created_at FROM users")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	defer rows.Close()

	tbl, err := FromSQL(rows)
	if err != nil {
		t.Fatalf("FromSQL: %v", err)
	}

	if tbl.NumRows() != 2 || tbl.NumCols() != 4 {
		t.Fatalf("got %dx%d, want 2x4", tbl.NumRows(), tbl.NumCols())
	}
	if tbl.ColName(3) != "created_at" {
		t.Errorf("ColName(3) = %q", tbl.ColName(3))
	}
	if tbl.ColType(0) != Int || tbl.ColType(2) != Float || tbl.ColType(3) != Datetime {
		t.Errorf("column types = %v, %v, %v, %v",
			tbl.ColType(0), tbl.ColType(1), tbl.ColType(2), tbl.ColType(3))
	}
	if got := tbl.Cell(0, 1); got.Str() != "alice" {
		t.Errorf("Cell(0,1) = %v", got)
	}
	if got := tbl.Cell(1, 1); !got.IsNull() {
		t.Errorf("Cell(1,1) = %v, want null", got)
	}
	if got := tbl.Cell(1, 3); !got.Time().Equal(created) {
		t.Errorf("Cell(1,3) = %v, want %v", got.Time(), created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
