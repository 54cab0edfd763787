package services

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jobfolio/jobhub/internal/ingest"
	"github.com/jobfolio/jobhub/internal/models"
	"gorm.io/gorm"
)

// IngestWatcher polls a drop directory and imports any new job-listing files
// it finds. Each file is imported once: processed names are recorded in the
// processed_files table, so restarts don't re-ingest old files (re-importing
// is harmless for rows with real ids, but would duplicate id-less records).
type IngestWatcher struct {
	DB         *gorm.DB
	JobService *JobService
	Dir        string
	Interval   time.Duration
}

func NewIngestWatcher(db *gorm.DB, jobs *JobService, dir string, interval time.Duration) *IngestWatcher {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &IngestWatcher{DB: db, JobService: jobs, Dir: dir, Interval: interval}
}

// StartWatcher starts the background polling loop. A missing directory just
// disables the watcher.
func (w *IngestWatcher) StartWatcher() {
	if w.Dir == "" {
		log.Println("⚠️ Ingest watcher disabled (no watch directory configured).")
		return
	}

	ticker := time.NewTicker(w.Interval)

	// Run immediately on startup
	go w.Sync()

	go func() {
		for range ticker.C {
			w.Sync()
		}
	}()
}

// Sync scans the drop directory once and imports every unseen file.
func (w *IngestWatcher) Sync() {
	entries, err := os.ReadDir(w.Dir)
	if err != nil {
		log.Printf("❌ Ingest watcher: cannot read %s: %v", w.Dir, err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".json" && ext != ".jsonl" {
			continue
		}

		// Dedup check against the ledger.
		var count int64
		w.DB.Model(&models.ProcessedFile{}).Where("name = ?", name).Count(&count)
		if count > 0 {
			continue
		}

		// The source tag is the file basename, so rows stay traceable to
		// the batch that produced them.
		source := strings.TrimSuffix(name, ext)
		path := filepath.Join(w.Dir, name)

		log.Printf("📥 Ingesting %s (source=%s)...", path, source)
		jobs, err := ingest.ImportFile(path, source, w.JobService)
		if err != nil {
			log.Printf("❌ Import of %s failed: %v", path, err)
			continue
		}
		log.Printf("✅ Imported %d records from %s", len(jobs), name)

		w.DB.Create(&models.ProcessedFile{Name: name})
	}
}
