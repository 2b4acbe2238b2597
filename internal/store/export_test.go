package store

import (
	"context"
	"testing"

	"github.com/rcliao/czas/internal/model"
)

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)

	src.Put(ctx, PutParams{Input: "a", Text: "alpha", Source: model.SourceNow})
	src.Put(ctx, PutParams{Input: "b", Text: "beta", Style: "upper"})

	exported, err := src.ExportAll(ctx, "")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(exported) != 2 || exported[0].Text != "alpha" {
		t.Fatalf("expected 2 records oldest first, got %v", exported)
	}

	onlyNow, _ := src.ExportAll(ctx, model.SourceNow)
	if len(onlyNow) != 1 {
		t.Errorf("expected 1 'now' record, got %d", len(onlyNow))
	}

	dst := newTestStore(t)
	exported = append(exported, model.Record{Input: "c", Text: ""})
	n, err := dst.Import(ctx, exported)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 imported, got %d", n)
	}

	list, _ := dst.List(ctx, ListParams{Source: model.SourceImport})
	if len(list) != 2 {
		t.Fatalf("expected 2 imported records, got %d", len(list))
	}
	if list[0].Style != "upper" {
		t.Errorf("expected style to survive import, got %q", list[0].Style)
	}
}
