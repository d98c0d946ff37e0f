package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
)

// fakeRuleRows implements RowScanner over canned rule rows.
type fakeRuleRows struct {
	rows [][]any
	idx  int
}

func (f *fakeRuleRows) Next() bool {
	if f.idx >= len(f.rows) {
		return false
	}
	f.idx++
	return true
}

func (f *fakeRuleRows) Scan(dest ...any) error {
	row := f.rows[f.idx-1]
	*dest[0].(*int64) = row[0].(int64)
	*dest[1].(*string) = row[1].(string)
	*dest[2].(*string) = row[2].(string)
	*dest[3].(*string) = row[3].(string)
	return nil
}

func (f *fakeRuleRows) Err() error   { return nil }
func (f *fakeRuleRows) Close() error { return nil }

type fakeRulesDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
}

func (f *fakeRulesDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return nil, errors.New("unexpected exec")
}

func (f *fakeRulesDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRuleRows{}, nil
}

// ------------------------------------------------------------
// LIST RULES
// ------------------------------------------------------------

func TestActionRulesRepository_ListRules(t *testing.T) {
	db := &fakeRulesDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRuleRows{rows: [][]any{
				{int64(1), "$pageview", "", "contains"},
				{int64(2), "", "https://example.com/pricing", "exact"},
			}}, nil
		},
	}
	repo := NewActionRulesRepository(db)

	rules, err := repo.ListRules(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}

	if rules[0].ActionID != 1 || rules[0].EventName != "$pageview" {
		t.Fatalf("unexpected first rule: %+v", rules[0])
	}
	if rules[1].URL != "https://example.com/pricing" || rules[1].URLMatching != "exact" {
		t.Fatalf("unexpected second rule: %+v", rules[1])
	}

	if !strings.Contains(db.lastQuery, "NOT a.deleted") {
		t.Fatalf("deleted actions must be excluded: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 1 || db.lastArgs[0] != int64(7) {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}
}

func TestActionRulesRepository_ListRules_Empty(t *testing.T) {
	repo := NewActionRulesRepository(&fakeRulesDB{})

	rules, err := repo.ListRules(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rules) != 0 {
		t.Fatalf("expected no rules, got %d", len(rules))
	}
}

func TestActionRulesRepository_ListRules_QueryError(t *testing.T) {
	db := &fakeRulesDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, errors.New("db error")
		},
	}
	repo := NewActionRulesRepository(db)

	if _, err := repo.ListRules(context.Background(), 7); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
