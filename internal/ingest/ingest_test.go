package ingest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jobfolio/jobhub/internal/database"
	"github.com/jobfolio/jobhub/internal/ingest"
	"github.com/jobfolio/jobhub/internal/services"
)

// newTestStore opens a fresh SQLite database in a temp dir and returns a
// JobService over it.
func newTestStore(t *testing.T) *services.JobService {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}
	return services.NewJobService(db)
}

func writeFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listings.jsonl")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

func TestImportFile_EndToEnd(t *testing.T) {
	store := newTestStore(t)
	path := writeFile(t,
		`{"id":"job_001","title":"Software Engineer","company":"TechCorp","location":"Remote","job_url":"https://test.com/job_001"}`,
	)

	jobs, err := ingest.ImportFile(path, "test_source", store)
	if err != nil {
		t.Fatalf("ImportFile error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("extracted %d records, want 1", len(jobs))
	}

	j := jobs[0]
	if j.ID != "job_001" {
		t.Errorf("id = %q, want job_001", j.ID)
	}
	if j.Title == nil || *j.Title != "Software Engineer" {
		t.Errorf("title = %v, want Software Engineer", j.Title)
	}
	if j.Company == nil || *j.Company != "TechCorp" {
		t.Errorf("company = %v, want TechCorp", j.Company)
	}
	if j.Location == nil || *j.Location != "Remote" {
		t.Errorf("location = %v, want Remote", j.Location)
	}
	if j.JobURL == nil || *j.JobURL != "https://test.com/job_001" {
		t.Errorf("job_url = %v, want https://test.com/job_001", j.JobURL)
	}
	if j.Source != "test_source" {
		t.Errorf("source = %q, want test_source", j.Source)
	}
	if j.IsRemote {
		t.Error("is_remote should default to false")
	}
	if j.EmploymentType != nil || j.DatePosted != nil || j.Description != nil || j.Email != nil {
		t.Error("unset fields should remain nil")
	}

	count, err := store.CountJobs()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("store holds %d rows, want 1", count)
	}

	stored, err := store.GetJob("job_001")
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if stored.Title == nil || *stored.Title != "Software Engineer" {
		t.Errorf("stored title = %v, want Software Engineer", stored.Title)
	}
}

func TestImportFile_SkipsInvalidLines(t *testing.T) {
	store := newTestStore(t)
	path := writeFile(t,
		`{"id":"a","title":"One"}`,
		`{not valid json`,
		`{"id":"b","title":"Two"}`,
		`also not json :(`,
		`{"id":"c","title":"Three"}`,
	)

	jobs, err := ingest.ImportFile(path, "s", store)
	if err != nil {
		t.Fatalf("ImportFile error: %v", err)
	}
	if len(jobs) != 3 {
		t.Errorf("extracted %d records, want 3", len(jobs))
	}

	count, _ := store.CountJobs()
	if count != 3 {
		t.Errorf("store holds %d rows, want 3", count)
	}
}

func TestImportFile_ArrayAndObjectLines(t *testing.T) {
	store := newTestStore(t)
	path := writeFile(t,
		`[{"id":"a"},{"id":"b"},{"id":"c"}]`,
		`{"id":"d"}`,
	)

	jobs, err := ingest.ImportFile(path, "s", store)
	if err != nil {
		t.Fatalf("ImportFile error: %v", err)
	}
	if len(jobs) != 4 {
		t.Errorf("extracted %d records, want 4", len(jobs))
	}
}

func TestImportFile_ScalarLineIgnored(t *testing.T) {
	store := newTestStore(t)
	path := writeFile(t,
		`42`,
		`"just a string"`,
		`{"id":"a"}`,
	)

	jobs, err := ingest.ImportFile(path, "s", store)
	if err != nil {
		t.Fatalf("ImportFile error: %v", err)
	}
	if len(jobs) != 1 {
		t.Errorf("extracted %d records, want 1 (scalars ignored)", len(jobs))
	}
}

func TestImportFile_ReimportIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	path := writeFile(t,
		`{"id":"a","title":"Original Title"}`,
		`{"id":"b"}`,
	)

	if _, err := ingest.ImportFile(path, "s", store); err != nil {
		t.Fatalf("first import: %v", err)
	}

	// Second pass still reports both records as extracted...
	jobs, err := ingest.ImportFile(path, "s", store)
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if len(jobs) != 2 {
		t.Errorf("second import extracted %d records, want 2", len(jobs))
	}

	// ...but the store is unchanged.
	count, _ := store.CountJobs()
	if count != 2 {
		t.Errorf("store holds %d rows after re-import, want 2", count)
	}
	stored, err := store.GetJob("a")
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if stored.Title == nil || *stored.Title != "Original Title" {
		t.Errorf("re-import altered the stored row: title = %v", stored.Title)
	}
}

func TestImportFile_MissingIDGetsSyntheticKey(t *testing.T) {
	store := newTestStore(t)
	path := writeFile(t, `{"title":"No ID Here"}`)

	jobs, err := ingest.ImportFile(path, "s", store)
	if err != nil {
		t.Fatalf("ImportFile error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("extracted %d records, want 1", len(jobs))
	}
	if !strings.HasPrefix(jobs[0].ID, "gen-") {
		t.Errorf("expected synthetic gen- id, got %q", jobs[0].ID)
	}

	// No dedup identity: re-ingesting inserts a second row under a new key.
	if _, err := ingest.ImportFile(path, "s", store); err != nil {
		t.Fatalf("second import: %v", err)
	}
	count, _ := store.CountJobs()
	if count != 2 {
		t.Errorf("store holds %d rows, want 2", count)
	}
}

func TestImportFile_MissingFile(t *testing.T) {
	store := newTestStore(t)
	if _, err := ingest.ImportFile(filepath.Join(t.TempDir(), "nope.jsonl"), "s", store); err == nil {
		t.Error("expected error for missing file")
	}
}
