package project

import (
	"context"
	"errors"
	"testing"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/database"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/database/dbtest"
)

func newTestService(t *testing.T) (*Service, *database.Accessor) {
	t.Helper()
	db := dbtest.Open(t)
	return NewService(NewRepository(db), NewProjection(db)), db
}

func mustCreate(t *testing.T, svc *Service, req *CreateProjectRequest) int64 {
	t.Helper()
	id, _, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create %q: %v", req.Name, err)
	}
	return id
}

func imageURLs(images []*Image) []string {
	urls := make([]string, len(images))
	for i, img := range images {
		urls[i] = img.ImageURL
	}
	return urls
}

func TestCreateIsRetrievable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, message, err := svc.Create(ctx, &CreateProjectRequest{
		Name:       "Portfolio",
		ModuleCode: "C123",
		ModuleName: "Web Dev",
		Category:   "Web",
		GithubLink: "https://github.com/x/y",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if message != "Portfolio has been added successfully" {
		t.Fatalf("message = %q", message)
	}

	detail, err := svc.Detail(ctx, id)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	p := detail.Project
	if p.Name != "Portfolio" || deref(p.ModuleCode) != "C123" || deref(p.ModuleName) != "Web Dev" {
		t.Fatalf("unexpected project %+v", p)
	}
	if deref(p.Category) != "Web" || deref(p.GithubLink) != "https://github.com/x/y" {
		t.Fatalf("unexpected links %+v", p)
	}
	if p.Img != nil || p.DemoLink != nil {
		t.Fatal("empty optional links should be NULL")
	}
	if deref(p.Description) != "" {
		t.Fatalf("description = %q", deref(p.Description))
	}
}

func TestCreateRequiresName(t *testing.T) {
	svc, db := newTestService(t)

	for _, name := range []string{"", "   "} {
		_, _, err := svc.Create(context.Background(), &CreateProjectRequest{Name: name, AdditionalImages: []string{"a.png"}})
		if !errors.Is(err, ErrNameRequired) {
			t.Fatalf("name %q: expected ErrNameRequired, got %v", name, err)
		}
	}

	var n int
	if err := db.Get(context.Background(), &n, `SELECT COUNT(*) FROM portfolio_images`); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("rejected create wrote %d images", n)
	}
}

func TestImagesOrderedAndReplaced(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id := mustCreate(t, svc, &CreateProjectRequest{Name: "P", AdditionalImages: []string{"a", "b", "c"}})

	images, err := svc.Images(ctx, id)
	if err != nil {
		t.Fatalf("images: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("expected 3 images, got %d", len(images))
	}
	for i, img := range images {
		if img.SortOrder != i+1 || img.ImageURL != []string{"a", "b", "c"}[i] {
			t.Fatalf("image %d = %+v", i, img)
		}
	}

	replacement := []string{"x"}
	if _, err := svc.Update(ctx, id, &UpdateProjectRequest{AdditionalImages: &replacement}); err != nil {
		t.Fatalf("update: %v", err)
	}

	images, err = svc.Images(ctx, id)
	if err != nil {
		t.Fatalf("images: %v", err)
	}
	if len(images) != 1 || images[0].ImageURL != "x" || images[0].SortOrder != 1 {
		t.Fatalf("unexpected replacement %+v", imageURLs(images))
	}

	empty := []string{}
	if _, err := svc.Update(ctx, id, &UpdateProjectRequest{AdditionalImages: &empty}); err != nil {
		t.Fatalf("update: %v", err)
	}
	images, _ = svc.Images(ctx, id)
	if len(images) != 0 {
		t.Fatalf("empty list should clear images, got %v", imageURLs(images))
	}
}

func TestUpdateChangesOnlySuppliedFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id := mustCreate(t, svc, &CreateProjectRequest{
		Name:        "Keep",
		Description: "original",
		Img:         "thumb.png",
		Category:    "Mobile",
		DemoLink:    "https://demo",
	})

	message, err := svc.Update(ctx, id, &UpdateProjectRequest{
		Category: strPtr("Web"),
		Img:      strPtr(""),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if message != "Keep was updated successfully" {
		t.Fatalf("message = %q", message)
	}

	detail, err := svc.Detail(ctx, id)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	p := detail.Project
	if p.Name != "Keep" || deref(p.Description) != "original" || deref(p.DemoLink) != "https://demo" {
		t.Fatalf("omitted fields changed: %+v", p)
	}
	if deref(p.Category) != "Web" {
		t.Fatalf("category = %q", deref(p.Category))
	}
	if p.Img != nil {
		t.Fatalf("empty img should be NULL, got %q", *p.Img)
	}
}

func TestUpdateMessageUsesSuppliedName(t *testing.T) {
	svc, _ := newTestService(t)
	id := mustCreate(t, svc, &CreateProjectRequest{Name: "Old"})

	message, err := svc.Update(context.Background(), id, &UpdateProjectRequest{Name: strPtr("New")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if message != "New was updated successfully" {
		t.Fatalf("message = %q", message)
	}
}

func TestUpdateErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	id := mustCreate(t, svc, &CreateProjectRequest{Name: "P"})
	images := []string{"a"}

	tests := []struct {
		name string
		id   int64
		req  *UpdateProjectRequest
		want error
	}{
		{"nothing supplied", id, &UpdateProjectRequest{}, ErrNoUpdates},
		{"blank name", id, &UpdateProjectRequest{Name: strPtr(" ")}, ErrNameRequired},
		{"missing id with fields", 999, &UpdateProjectRequest{Category: strPtr("Web")}, ErrProjectNotFound},
		{"missing id with images only", 999, &UpdateProjectRequest{AdditionalImages: &images}, ErrProjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Update(ctx, tt.id, tt.req); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	stored, err := svc.Images(ctx, 999)
	if err != nil {
		t.Fatalf("images: %v", err)
	}
	if len(stored) != 0 {
		t.Fatal("images must not be written for a missing project")
	}
}

func TestCategories(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	for _, c := range []string{"Web", "", "AI", "Web", "   ", "Mobile"} {
		mustCreate(t, svc, &CreateProjectRequest{Name: "p", Category: c})
	}
	dbtest.Exec(t, db, `INSERT INTO portfolio (name, category) VALUES (?, NULL)`, "null category")
	dbtest.Exec(t, db, `INSERT INTO portfolio (name, category) VALUES (?, ?)`, "padded", " AI ")

	got, err := svc.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	want := []string{"AI", "Mobile", "Web"}
	if len(got) != len(want) {
		t.Fatalf("categories = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %q, want %q", got, want)
		}
	}
}

func TestDetailOrdering(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	id := mustCreate(t, svc, &CreateProjectRequest{Name: "P"})
	dbtest.Exec(t, db, `INSERT INTO portfolio_images (portfolio_id, image_url, sort_order) VALUES (?, ?, ?)`, id, "second", 2)
	dbtest.Exec(t, db, `INSERT INTO portfolio_images (portfolio_id, image_url, sort_order) VALUES (?, ?, ?)`, id, "first-a", 1)
	dbtest.Exec(t, db, `INSERT INTO portfolio_images (portfolio_id, image_url, sort_order) VALUES (?, ?, ?)`, id, "first-b", 1)

	for _, name := range []string{"React", "Go", "Postgres"} {
		dbtest.Exec(t, db, `INSERT INTO tags (name, skill_category) VALUES (?, ?)`, name, "stack")
	}
	dbtest.Exec(t, db, `INSERT INTO portfolio_tags (portfolio_id, tag_id) SELECT ?, id FROM tags`, id)

	detail, err := svc.Detail(ctx, id)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}

	gotImages := imageURLs(detail.Images)
	wantImages := []string{"first-a", "first-b", "second"}
	for i := range wantImages {
		if gotImages[i] != wantImages[i] {
			t.Fatalf("images = %v, want %v", gotImages, wantImages)
		}
	}

	wantTags := []string{"Go", "Postgres", "React"}
	if len(detail.Tags) != len(wantTags) {
		t.Fatalf("expected %d tags, got %d", len(wantTags), len(detail.Tags))
	}
	for i, tag := range detail.Tags {
		if tag.Name != wantTags[i] {
			t.Fatalf("tag %d = %q, want %q", i, tag.Name, wantTags[i])
		}
	}
}

func TestDetailNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Detail(context.Background(), 404); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestDeleteCascades(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	id := mustCreate(t, svc, &CreateProjectRequest{Name: "Doomed", AdditionalImages: []string{"a", "b"}})
	other := mustCreate(t, svc, &CreateProjectRequest{Name: "Other", AdditionalImages: []string{"c"}})
	dbtest.Exec(t, db, `INSERT INTO tags (name) VALUES (?)`, "Go")
	dbtest.Exec(t, db, `INSERT INTO portfolio_tags (portfolio_id, tag_id) SELECT ?, id FROM tags`, id)

	message, err := svc.Delete(ctx, id)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if message != "Doomed has been deleted" {
		t.Fatalf("message = %q", message)
	}

	if _, err := svc.Detail(ctx, id); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound after delete, got %v", err)
	}

	var images, links, tags int
	if err := db.Get(ctx, &images, `SELECT COUNT(*) FROM portfolio_images`); err != nil {
		t.Fatalf("count: %v", err)
	}
	if err := db.Get(ctx, &links, `SELECT COUNT(*) FROM portfolio_tags`); err != nil {
		t.Fatalf("count: %v", err)
	}
	if err := db.Get(ctx, &tags, `SELECT COUNT(*) FROM tags`); err != nil {
		t.Fatalf("count: %v", err)
	}
	if images != 1 || links != 0 || tags != 1 {
		t.Fatalf("images=%d links=%d tags=%d after delete", images, links, tags)
	}

	if rest, _ := svc.Images(ctx, other); len(rest) != 1 {
		t.Fatal("other project's images must survive")
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Delete(context.Background(), 7); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestListStorageOrder(t *testing.T) {
	svc, _ := newTestService(t)
	for _, name := range []string{"b", "a", "c"} {
		mustCreate(t, svc, &CreateProjectRequest{Name: name})
	}

	projects, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(projects) != 3 || projects[0].Name != "b" || projects[2].Name != "c" {
		t.Fatalf("unexpected order")
	}
}

func TestUpdateReportsRowGoneBeforeWrite(t *testing.T) {
	svc, db := newTestService(t)
	id := mustCreate(t, svc, &CreateProjectRequest{Name: "Vanishing"})

	// the row still answers the lookup but the write touches nothing,
	// as when another request deletes it in between
	dbtest.Exec(t, db, `CREATE TRIGGER skip_update BEFORE UPDATE ON portfolio BEGIN SELECT RAISE(IGNORE); END`)

	_, err := svc.Update(context.Background(), id, &UpdateProjectRequest{Name: strPtr("Renamed")})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestDeleteReportsRowGoneBeforeWrite(t *testing.T) {
	svc, db := newTestService(t)
	id := mustCreate(t, svc, &CreateProjectRequest{Name: "Vanishing"})

	dbtest.Exec(t, db, `CREATE TRIGGER skip_delete BEFORE DELETE ON portfolio BEGIN SELECT RAISE(IGNORE); END`)

	_, err := svc.Delete(context.Background(), id)
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
