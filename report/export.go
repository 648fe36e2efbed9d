package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/leandrobouwier/Brev.ly/model"
	"github.com/leandrobouwier/Brev.ly/shared"
)

// Byte-order marker so spreadsheet tools pick up the UTF-8 encoding.
const bom = "\uFEFF"

const csvHeader = "id;code;original_url;clicks;created_at"

// BuildCSV renders the link set as semicolon-separated text, one row
// per link in the given order, header first.
func BuildCSV(links []model.Link) []byte {
	var sb strings.Builder
	sb.WriteString(bom)
	sb.WriteString(csvHeader)

	for _, link := range links {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%d;%s;%s;%d;%s",
			link.ID, link.Code, link.OriginalUrl, link.Clicks,
			link.CreatedAt.Format(time.RFC3339)))
	}

	return []byte(sb.String())
}

// Result is what a Target hands back: either an inline CSV body or a
// temporary download URL, never both.
type Result struct {
	FileUrl string
	Content []byte
}

// Target is one way of delivering a finished report to the caller.
type Target interface {
	Deliver(ctx context.Context, key string, content []byte) (*Result, error)
}

// LocalDownload streams the CSV straight back in the response.
type LocalDownload struct{}

func (LocalDownload) Deliver(ctx context.Context, key string, content []byte) (*Result, error) {
	return &Result{Content: content}, nil
}

// SignedRemoteURL uploads the CSV to object storage and answers with
// a presigned download link.
type SignedRemoteURL struct {
	Storage *shared.ObjectStorage
	Expiry  time.Duration
}

func (t *SignedRemoteURL) Deliver(ctx context.Context, key string, content []byte) (*Result, error) {
	if err := t.Storage.Put(ctx, key, "text/csv", content); err != nil {
		return nil, fmt.Errorf("upload report: %w", err)
	}

	url, err := t.Storage.PresignGet(ctx, key, t.Expiry)
	if err != nil {
		return nil, fmt.Errorf("presign report: %w", err)
	}

	return &Result{FileUrl: url}, nil
}
