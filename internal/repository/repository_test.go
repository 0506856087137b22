package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentwell/supervision_scheduler/internal/model"
	"github.com/studentwell/supervision_scheduler/internal/schedule"
)

// stubRows отдаёт подготовленные строки и завершает итерацию с заданной
// ошибкой, имитируя обрыв соединения посреди чтения
type stubRows struct {
	rows [][]any
	idx  int
	err  error
}

func (s *stubRows) Close()                                       {}
func (s *stubRows) Err() error                                   { return s.err }
func (s *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (s *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (s *stubRows) Values() ([]any, error)                       { return nil, nil }
func (s *stubRows) RawValues() [][]byte                          { return nil }
func (s *stubRows) Conn() *pgx.Conn                              { return nil }

func (s *stubRows) Next() bool {
	if s.idx < len(s.rows) {
		s.idx++
		return true
	}
	return false
}

func (s *stubRows) Scan(dest ...any) error {
	row := s.rows[s.idx-1]
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

func meetingRow(id int64) []any {
	return []any{
		id,
		uuid.New(),
		int64(1),
		int64(2),
		time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		int(13 * 60),
		int(13*60 + 30),
		"",
		time.Now(),
		time.Now(),
	}
}

func TestCollectMeetings(t *testing.T) {
	t.Run("All Rows Scanned", func(t *testing.T) {
		rows := &stubRows{rows: [][]any{meetingRow(1), meetingRow(2)}}

		meetings, err := collectMeetings(rows)
		require.NoError(t, err)
		require.Len(t, meetings, 2)
		assert.Equal(t, int64(1), meetings[0].ID)
		assert.Equal(t, schedule.NewTimeOfDay(13, 0), meetings[0].StartTime)
	})

	t.Run("Iteration Error Is Not Truncation", func(t *testing.T) {
		// Обрыв после первой строки не должен выглядеть как короткий,
		// но корректный список
		rows := &stubRows{
			rows: [][]any{meetingRow(1)},
			err:  errors.New("unexpected EOF"),
		}

		meetings, err := collectMeetings(rows)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "iterate meetings")
		assert.Nil(t, meetings)
	})
}

func TestCollectStudents(t *testing.T) {
	studentRow := []any{
		int64(5), int64(10), int64(2), 7, (*time.Time)(nil),
		int64(10), "Ben", "Carter", "ben@student.edu", "hash", model.RoleStudent, time.Now(),
	}

	t.Run("All Rows Scanned", func(t *testing.T) {
		students, err := collectStudents(&stubRows{rows: [][]any{studentRow}})
		require.NoError(t, err)
		require.Len(t, students, 1)
		assert.Equal(t, int64(5), students[0].StudentID)
	})

	t.Run("Iteration Error Surfaces", func(t *testing.T) {
		rows := &stubRows{rows: [][]any{studentRow}, err: errors.New("conn closed")}

		students, err := collectStudents(rows)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "iterate students")
		assert.Nil(t, students)
	})
}

// fakeQuerier записывает выполненные запросы, чтобы проверить через какое
// соединение репозиторий их отправляет
type fakeQuerier struct {
	execSQL     []string
	queryRowSQL []string
	row         stubRow
	tag         pgconn.CommandTag
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	return f.tag, nil
}

func (f *fakeQuerier) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return &stubRows{}, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	f.queryRowSQL = append(f.queryRowSQL, sql)
	return f.row
}

type stubRow struct {
	vals []any
}

func (r stubRow) Scan(dest ...any) error {
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.vals[i]))
	}
	return nil
}

// fakeTx подменяет только методы Querier; остальное от pgx.Tx не нужно
type fakeTx struct {
	pgx.Tx
	q *fakeQuerier
}

func (t fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.q.Exec(ctx, sql, args...)
}

func (t fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.q.Query(ctx, sql, args...)
}

func (t fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.q.QueryRow(ctx, sql, args...)
}

func TestRepositoriesWithTx(t *testing.T) {
	now := time.Now()
	q := &fakeQuerier{
		row: stubRow{vals: []any{int64(7), now, now}},
		tag: pgconn.NewCommandTag("UPDATE 1"),
	}
	tx := fakeTx{q: q}

	t.Run("Meeting Create Runs On The Transaction", func(t *testing.T) {
		repo := NewMeetingRepository(nil).WithTx(tx)

		meeting := &model.Meeting{
			StudentID:    1,
			SupervisorID: 2,
			MeetingDate:  time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
			StartTime:    schedule.NewTimeOfDay(13, 0),
			EndTime:      schedule.NewTimeOfDay(13, 30),
		}
		require.NoError(t, repo.Create(context.Background(), meeting))

		assert.Equal(t, int64(7), meeting.ID)
		assert.NotEqual(t, uuid.Nil, meeting.Reference)
		require.Len(t, q.queryRowSQL, 1)
		assert.Contains(t, q.queryRowSQL[0], "INSERT INTO meetings")
	})

	t.Run("Counter Bump Runs On The Transaction", func(t *testing.T) {
		repo := NewSupervisorRepository(nil).WithTx(tx)

		require.NoError(t, repo.RecordMeetingBooked(context.Background(), 2))

		require.Len(t, q.execSQL, 1)
		assert.Contains(t, q.execSQL[0], "UPDATE supervisors")
	})
}
