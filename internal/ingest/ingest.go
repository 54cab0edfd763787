package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jobfolio/jobhub/internal/models"
)

// Store is the slice of the persistence layer the pipeline needs: an insert
// that is a silent no-op when a row with the same id already exists.
type Store interface {
	InsertJobIfAbsent(job *models.Job) error
}

// ImportFile reads a newline-delimited JSON file of job listings, normalizes
// each record and persists it through store. A line may hold either a single
// job object or an array of them; the two feed exports we consume mix both.
//
// Failure policy:
//   - a line that is not valid JSON is logged and skipped, the import continues
//   - a line that parses to a scalar is logged and skipped as well
//   - a storage error aborts the import and is returned
//
// The returned slice holds every record extracted from the file, including
// ones whose insert was a no-op because the id was already present. Callers
// that care about "new rows" vs "rows seen" count against the store, not
// against this return value.
func ImportFile(path, source string, store Store) ([]models.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	defer f.Close()

	var extracted []models.Job

	scanner := bufio.NewScanner(f)
	// Listing descriptions can push a single line past the default 64K cap.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var payload any
		if err := json.Unmarshal([]byte(line), &payload); err != nil {
			log.Printf("Skipping invalid JSON line %d in %s: %v", lineNo, path, err)
			continue
		}

		switch v := payload.(type) {
		case []any:
			for _, item := range v {
				obj, ok := item.(map[string]any)
				if !ok {
					log.Printf("Skipping non-object array element on line %d in %s", lineNo, path)
					continue
				}
				job, err := persist(obj, source, store)
				if err != nil {
					return extracted, err
				}
				extracted = append(extracted, job)
			}
		case map[string]any:
			job, err := persist(v, source, store)
			if err != nil {
				return extracted, err
			}
			extracted = append(extracted, job)
		default:
			// Bare scalars (a stray number or string) carry no job data.
			log.Printf("Skipping non-object line %d in %s (%T)", lineNo, path, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return extracted, fmt.Errorf("import %s: %w", path, err)
	}

	return extracted, nil
}

// persist normalizes one raw object and runs it through the idempotent
// insert. Records without a source id get a synthetic key so the primary key
// stays non-null; such records have no dedup identity and re-ingesting them
// produces a fresh row each time.
func persist(raw map[string]any, source string, store Store) (models.Job, error) {
	job := Normalize(raw, source)
	if job.ID == "" {
		job.ID = "gen-" + uuid.NewString()
	}
	if err := store.InsertJobIfAbsent(&job); err != nil {
		return job, fmt.Errorf("insert job %s: %w", job.ID, err)
	}
	return job, nil
}
