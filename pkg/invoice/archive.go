package invoice

import (
	"context"
	"time"

	"github.com/dmitrymomot/invoicekit/pkg/storage"
)

// ArchiveDir is the key prefix of archived documents.
const ArchiveDir = "invoices"

// Archive stores the rendered HTML under a unique key derived from the
// invoice number and issued date t.
func (d *Document) Archive(ctx context.Context, s storage.Storage, t time.Time) (*storage.Object, error) {
	key := storage.NewKey(ArchiveDir, d.Number, ".html", t)
	return s.Put(ctx, key, []byte(d.HTML), "text/html; charset=utf-8")
}
