package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// RunPut сохраняет новую локальную ревизию документа
func (c *Cli) RunPut(ctx context.Context, path, content string) error {
	doc, err := c.dataService.Put(ctx, path, content)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	c.io.Printf("✓ Saved %s (revision %s)\n", doc.Path, doc.Revision)
	if doc.IsDirty() {
		c.io.Println("Run 'docsync sync' to push the change.")
	}
	return nil
}

// RunShow печатает документ
func (c *Cli) RunShow(ctx context.Context, path string) error {
	doc, err := c.dataService.Get(ctx, path)
	if err != nil {
		return err
	}

	if err := documentTmpl.Execute(c.io, doc); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	return nil
}

// RunCat печатает только содержимое документа
func (c *Cli) RunCat(ctx context.Context, path string) error {
	doc, err := c.dataService.Get(ctx, path)
	if err != nil {
		return err
	}

	_, err = c.io.Write([]byte(doc.Content))
	return err
}

// RunList печатает таблицу документов
func (c *Cli) RunList(ctx context.Context) error {
	docs, err := c.dataService.List(ctx)
	if err != nil {
		return err
	}

	if len(docs) == 0 {
		c.io.Println("No documents.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tREVISION\tMODIFIED\tSTATE")
	for _, doc := range docs {
		state := "synced"
		if doc.IsDirty() {
			state = "modified"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			doc.Path, shortRevision(doc.Revision), formatTime(doc.ModifiedAt), state)
	}
	return w.Flush()
}

// RunRemove удаляет документ (soft delete)
func (c *Cli) RunRemove(ctx context.Context, path string) error {
	doc, err := c.dataService.Remove(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	c.io.Printf("✓ Deleted %s (revision %s)\n", doc.Path, doc.Revision)
	return nil
}

// shortRevision обрезает хеш ревизии для таблиц
func shortRevision(rev string) string {
	const maxLen = 12
	if len(rev) <= maxLen {
		return rev
	}
	return rev[:maxLen]
}
