package project

import (
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestUpdateColumnsOnlySupplied(t *testing.T) {
	cols := updateColumns(&UpdateProjectRequest{
		Category:    strPtr("Web"),
		Description: strPtr(""),
		DemoLink:    strPtr(""),
	})

	wantNames := []string{"description", "category", "demo_link"}
	if !reflect.DeepEqual(cols.Names(), wantNames) {
		t.Fatalf("names = %v, want %v", cols.Names(), wantNames)
	}

	values := cols.Values()
	if values[0] != "" {
		t.Fatalf("description should stay empty string, got %#v", values[0])
	}
	if values[1] != "Web" {
		t.Fatalf("category = %#v", values[1])
	}
	if values[2] != nil {
		t.Fatalf("empty demo_link should be NULL, got %#v", values[2])
	}
}

func TestUpdateColumnsEmpty(t *testing.T) {
	if !updateColumns(&UpdateProjectRequest{}).Empty() {
		t.Fatal("no supplied fields should produce no columns")
	}
}

func TestInsertColumnsDefaults(t *testing.T) {
	cols := insertColumns(&CreateProjectRequest{Name: "X", Img: ""})

	if len(cols.Names()) != len(projectFields) {
		t.Fatalf("expected every column, got %v", cols.Names())
	}
	got := map[string]interface{}{}
	for i, name := range cols.Names() {
		got[name] = cols.Values()[i]
	}
	if got["name"] != "X" || got["module_code"] != "" || got["description"] != "" {
		t.Fatalf("unexpected text defaults %v", got)
	}
	for _, col := range []string{"img", "category", "github_link", "demo_link"} {
		if got[col] != nil {
			t.Fatalf("%s should default to NULL, got %#v", col, got[col])
		}
	}
}

func TestStatementText(t *testing.T) {
	cols := updateColumns(&UpdateProjectRequest{Name: strPtr("A"), Img: strPtr("i.png")})

	if sql := cols.updateSQL(projectTable); sql != "UPDATE portfolio SET name = ?, img = ? WHERE id = ?" {
		t.Fatalf("update sql = %q", sql)
	}
	if sql := cols.insertSQL(projectTable); sql != "INSERT INTO portfolio (name, img) VALUES (?, ?) RETURNING id" {
		t.Fatalf("insert sql = %q", sql)
	}
}
