package diagnostics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/simplejobbot/jobbot/internal/models"
)

// ListRecent scans the output root for package folders and returns up to
// limit summaries. Folder names carry a second-precision timestamp, so a
// reverse name sort approximates reverse chronological order. Folders without
// a readable meta.json are skipped; a missing root yields an empty list.
func ListRecent(root string, limit int) []models.JobSummary {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	summaries := make([]models.JobSummary, 0, limit)
	for _, name := range names {
		if len(summaries) >= limit {
			break
		}
		data, err := os.ReadFile(filepath.Join(root, name, "meta.json"))
		if err != nil {
			continue
		}
		var meta models.Meta
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		summaries = append(summaries, models.JobSummary{
			Company:    meta.Company,
			Title:      meta.Title,
			Location:   meta.Location,
			FitScore:   meta.FitScore,
			FitLabel:   meta.FitLabel,
			FolderName: name,
			HostFolder: meta.HostFolder,
		})
	}
	return summaries
}

// OutputStats summarizes the output root for the dashboard.
type OutputStats struct {
	TotalJobs  int   `json:"total_jobs"`
	TotalBytes int64 `json:"total_bytes"`
}

// Stats counts package folders and their total size. Best effort: entries
// that disappear mid-walk are ignored.
func Stats(root string) OutputStats {
	var stats OutputStats

	entries, err := os.ReadDir(root)
	if err != nil {
		return stats
	}
	for _, entry := range entries {
		if entry.IsDir() {
			stats.TotalJobs++
		}
	}

	_ = filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			stats.TotalBytes += info.Size()
		}
		return nil
	})

	return stats
}
