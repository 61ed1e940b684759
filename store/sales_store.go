package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"bistro/models"
)

// SalesHeader is the fixed first line of the ledger file.
const SalesHeader = "date,item,qty"

// SalesLedger is a CSV-backed store of daily sale quantities per item.
// The file format is the header line followed by one `date,item,qty` row per
// sale, newline-terminated, with no quoting. All read-modify-write cycles are
// serialized behind a mutex so concurrent requests cannot clobber each
// other's writes.
type SalesLedger struct {
	mu   sync.Mutex
	path string
}

// NewSalesLedger returns a ledger backed by the CSV file at path. The file is
// created lazily on the first write.
func NewSalesLedger(path string) *SalesLedger {
	return &SalesLedger{path: path}
}

// List returns every ledger row in file order. A missing file is an empty
// ledger, not an error.
func (l *SalesLedger) List() ([]models.SaleRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readAll()
}

// Snapshot returns the raw CSV contents of the ledger, creating the file
// (header only) if it does not exist yet.
func (l *SalesLedger) Snapshot() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureFile(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return "", fmt.Errorf("read sales ledger: %w", err)
	}
	return string(data), nil
}

// Merge appends each record that does not collide with an existing
// (date, item) pair. Records with qty <= 0 are skipped silently. It returns
// the number of rows appended and the number skipped as same-day duplicates.
func (l *SalesLedger) Merge(records []models.SaleRecord) (added, dups int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureFile(); err != nil {
		return 0, 0, err
	}
	existing, err := l.readAll()
	if err != nil {
		return 0, 0, err
	}

	seen := make(map[string]bool, len(existing))
	for _, r := range existing {
		seen[saleKey(r.Date, r.Item)] = true
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, 0, fmt.Errorf("open sales ledger: %w", err)
	}
	defer f.Close()

	for _, r := range records {
		if seen[saleKey(r.Date, r.Item)] {
			dups++
			continue
		}
		if r.Qty <= 0 {
			continue
		}
		if _, err := fmt.Fprintf(f, "%s,%s,%d\n", r.Date, r.Item, r.Qty); err != nil {
			return added, dups, fmt.Errorf("append sale: %w", err)
		}
		seen[saleKey(r.Date, r.Item)] = true
		added++
	}
	return added, dups, nil
}

// Update replaces the quantity of the record matching (date, item) and
// rewrites the file. Returns ErrNotFound if no row matches; the file is left
// untouched in that case.
func (l *SalesLedger) Update(rec models.SaleRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.readAll()
	if err != nil {
		return err
	}

	found := false
	for i := range records {
		if records[i].Date == rec.Date && records[i].Item == rec.Item {
			records[i].Qty = rec.Qty
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}
	return l.writeAll(records)
}

// Remove deletes the record matching (date, item). When the last row is
// removed the file is reset to the header line. Returns ErrNotFound if no
// row matches.
func (l *SalesLedger) Remove(date, item string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.readAll()
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if r.Date == date && r.Item == item {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == len(records) {
		return ErrNotFound
	}
	return l.writeAll(kept)
}

func saleKey(date, item string) string {
	return date + "\x00" + item
}

func (l *SalesLedger) ensureFile() error {
	if _, err := os.Stat(l.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat sales ledger: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(l.path, []byte(SalesHeader+"\n"), 0o644); err != nil {
		return fmt.Errorf("create sales ledger: %w", err)
	}
	return nil
}

func (l *SalesLedger) readAll() ([]models.SaleRecord, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read sales ledger: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	var records []models.SaleRecord
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("sales ledger line %d: expected 3 fields, got %d", i+1, len(fields))
		}
		qty, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return nil, fmt.Errorf("sales ledger line %d: bad quantity %q", i+1, fields[2])
		}
		records = append(records, models.SaleRecord{
			Date: strings.TrimSpace(fields[0]),
			Item: strings.TrimSpace(fields[1]),
			Qty:  qty,
		})
	}
	return records, nil
}

func (l *SalesLedger) writeAll(records []models.SaleRecord) error {
	var b strings.Builder
	b.WriteString(SalesHeader + "\n")
	for _, r := range records {
		fmt.Fprintf(&b, "%s,%s,%d\n", r.Date, r.Item, r.Qty)
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(l.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write sales ledger: %w", err)
	}
	return nil
}
