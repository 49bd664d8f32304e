package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

type MockDB struct {
	mock.Mock
}

func (m *MockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	ret := m.Called(append([]any{ctx, sql}, args...)...)
	return ret.Get(0).(pgx.Row)
}

func (m *MockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ret := m.Called(append([]any{ctx, sql}, args...)...)
	return ret.Get(0).(pgconn.CommandTag), ret.Error(1)
}

func (m *MockDB) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type fakeRow struct {
	payload []byte
	err     error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.payload
	return nil
}

func TestNewSlotRepository(t *testing.T) {
	db := &MockDB{}
	repo := NewSlotRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestSlotRepository_Read(t *testing.T) {
	tests := []struct {
		name    string
		row     fakeRow
		want    []byte
		wantErr error
	}{
		{name: "found", row: fakeRow{payload: []byte(`[]`)}, want: []byte(`[]`)},
		{name: "missing", row: fakeRow{err: pgx.ErrNoRows}, wantErr: model.ErrSlotNotFound},
		{name: "driver error", row: fakeRow{err: errors.New("conn reset")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &MockDB{}
			db.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), "scamNumbers").Return(tt.row)

			got, err := NewSlotRepository(db).Read(context.Background(), "scamNumbers")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.row.err != nil:
				assert.ErrorContains(t, err, "failed to get slot")
				assert.NotErrorIs(t, err, model.ErrSlotNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestSlotRepository_Write(t *testing.T) {
	tests := []struct {
		name    string
		tag     pgconn.CommandTag
		execErr error
		wantErr bool
	}{
		{name: "inserted", tag: pgconn.NewCommandTag("INSERT 0 1")},
		{name: "exec error", execErr: errors.New("disk full"), wantErr: true},
		{name: "no rows", tag: pgconn.NewCommandTag("INSERT 0 0"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &MockDB{}
			db.On("Exec", mock.Anything, mock.AnythingOfType("string"), "scamNumbers", []byte(`[]`)).Return(tt.tag, tt.execErr)

			err := NewSlotRepository(db).Write(context.Background(), "scamNumbers", []byte(`[]`))

			if tt.wantErr {
				assert.ErrorContains(t, err, "failed to upsert slot")
			} else {
				assert.NoError(t, err)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestSlotRepository_Ping(t *testing.T) {
	db := &MockDB{}
	db.On("Ping", mock.Anything).Return(nil)

	assert.NoError(t, NewSlotRepository(db).Ping(context.Background()))
}
