package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"henawys-art/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog CSV exports and inserts/updates products.
// A row with an empty title continues the previous product, contributing
// additional image URLs.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

type csvRow struct {
	ID        string
	Category  string
	Title     string
	Desc      string
	Cents     int64
	Active    bool
	ImageURLs []string
}

// Run parses CSV rows and upserts products grouped by title.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var (
		current  *csvRow
		imported int
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row := parseRow(record, index)
		if row == nil {
			continue
		}

		if row.Title != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = row
			continue
		}

		// Continuation rows (images) belong to the current product.
		if current != nil && len(row.ImageURLs) > 0 {
			current.ImageURLs = append(current.ImageURLs, row.ImageURLs...)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	if row.Title == "" || row.Category == "" || row.Cents == 0 {
		return fmt.Errorf("invalid product row (missing required fields) for title %q", row.Title)
	}
	if row.ID != "" && len(row.ID) != 36 {
		return fmt.Errorf("invalid id for title %q: %s", row.Title, row.ID)
	}

	p := domain.Product{
		ID:          row.ID,
		Category:    domain.ParseCategory(row.Category),
		Title:       row.Title,
		Description: row.Desc,
		PriceCents:  row.Cents,
		Images:      row.ImageURLs,
		Active:      row.Active,
	}

	_, err := i.productRepo.Upsert(ctx, p)
	if err != nil {
		return fmt.Errorf("upsert product %q: %w", row.Title, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[h] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	id := pick(record, index, "id")
	category := pick(record, index, "category")
	title := pick(record, index, "title")
	desc := pick(record, index, "description")
	centStr := pick(record, index, "price_cents")
	activeStr := pick(record, index, "active")
	imageURL := pick(record, index, "image_url")

	if title == "" && imageURL == "" {
		return nil
	}

	var cents int64
	if centStr != "" {
		cents, _ = strconv.ParseInt(centStr, 10, 64)
	}

	active := true
	if activeStr != "" {
		active, _ = strconv.ParseBool(activeStr)
	}

	row := &csvRow{
		ID:       id,
		Category: category,
		Title:    title,
		Desc:     desc,
		Cents:    cents,
		Active:   active,
	}
	if imageURL != "" {
		row.ImageURLs = []string{strings.TrimSpace(imageURL)}
	}
	return row
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
