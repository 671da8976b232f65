package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("teams").
		Where(Eq("nhl_id", int64(10)), IsNull("deleted_at")).
		OrderBy("id").
		Limit(5).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT id, name FROM teams WHERE nhl_id = $1 AND deleted_at IS NULL ORDER BY id LIMIT 5"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{int64(10)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("teams").
		Set("nhl_id", int64(10)).
		Set("name", "Toronto Maple Leafs").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO teams (nhl_id, name) VALUES ($1, $2) RETURNING id"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("teams").
		Set("name", "Utah Mammoth").
		Set("active", true).
		Where(Eq("nhl_id", int64(59))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE teams SET name = $1, active = $2 WHERE nhl_id = $3"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateBuilder_RequiresSets(t *testing.T) {
	if _, _, err := Update("teams").ToSQL(); err == nil {
		t.Fatal("expected error for missing set clauses")
	}
}
