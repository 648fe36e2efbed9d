package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/leandrobouwier/Brev.ly/model"
)

func TestBuildCSV(t *testing.T) {
	createdAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	links := []model.Link{
		{ID: 2, Code: "newer", OriginalUrl: "https://example.com/b", Clicks: 7, CreatedAt: createdAt.Add(time.Hour)},
		{ID: 1, Code: "older", OriginalUrl: "https://example.com/a", Clicks: 0, CreatedAt: createdAt},
	}

	out := string(BuildCSV(links))

	if !strings.HasPrefix(out, "\uFEFF") {
		t.Errorf("CSV is missing the BOM")
	}

	lines := strings.Split(strings.TrimPrefix(out, "\uFEFF"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "id;code;original_url;clicks;created_at" {
		t.Errorf("Wrong header: %s", lines[0])
	}
	if lines[1] != "2;newer;https://example.com/b;7;2025-03-10T13:00:00Z" {
		t.Errorf("Wrong first row: %s", lines[1])
	}
	if lines[2] != "1;older;https://example.com/a;0;2025-03-10T12:00:00Z" {
		t.Errorf("Wrong second row: %s", lines[2])
	}
}

func TestBuildCSVEmpty(t *testing.T) {
	out := string(BuildCSV(nil))
	if out != "\uFEFFid;code;original_url;clicks;created_at" {
		t.Errorf("Empty export should be header only, got %q", out)
	}
}

func TestLocalDownloadDeliver(t *testing.T) {
	content := []byte("id;code")

	result, err := LocalDownload{}.Deliver(context.Background(), "report.csv", content)
	if err != nil {
		t.Fatalf("Deliver failed: %v", err)
	}
	if result.FileUrl != "" {
		t.Errorf("Local delivery should not produce a file URL")
	}
	if string(result.Content) != "id;code" {
		t.Errorf("Local delivery changed the content: %q", result.Content)
	}
}
