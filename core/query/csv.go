package query

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"garment-stock/core/reconcile"
	"garment-stock/core/utils"
)

// Header is the first line of every export.
var Header = []string{"type", "code", "color", "size", "fabric", "qty", "notes", "addedAt"}

// ErrNoData is returned when there is nothing to export.
var ErrNoData = errors.New("no data to export")

// WriteCSV writes records in export format. Rows are separated by "\n" with no
// trailing newline.
func WriteCSV(w io.Writer, records []reconcile.Record) error {
	if len(records) == 0 {
		return ErrNoData
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(Header, ",")); err != nil {
		return err
	}
	for _, r := range records {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		if _, err := bw.WriteString(row(r)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeCSV renders records as a string.
func EncodeCSV(records []reconcile.Record) (string, error) {
	var sb strings.Builder
	if err := WriteCSV(&sb, records); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func row(r reconcile.Record) string {
	var qty any
	if r.Qty != 0 {
		qty = r.Qty
	}
	values := []any{r.Type, r.Code, r.Color, r.Size, r.Fabric, qty, r.Notes, r.AddedAt}

	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = `"` + strings.ReplaceAll(utils.ToString(v), `"`, `""`) + `"`
	}
	return strings.Join(fields, ",")
}
