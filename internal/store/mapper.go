package store

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// Row is a single result row keyed by column name, with temporal values
// normalized to their wire form (see mapRow).
type Row map[string]any

// mapRow builds a Row from a result set's column descriptor and the raw
// values of one row. Normalization is driven by the column's type OID, never
// by its name:
//
//   - date columns      -> "YYYY-MM-DD"
//   - time columns      -> "HH:MM:SS"
//   - interval columns  -> "[N mon ][N days ]HH:MM:SS"
//   - everything else   -> passed through unchanged
func mapRow(fields []pgconn.FieldDescription, values []any) Row {
	row := make(Row, len(fields))
	for i, field := range fields {
		if i >= len(values) {
			break
		}
		row[field.Name] = normalizeValue(field.DataTypeOID, values[i])
	}
	return row
}

// normalizeValue renders temporal values as strings. pgx decodes date
// columns to time.Time, time columns to pgtype.Time and interval columns to
// pgtype.Interval; the pgtype fallbacks cover custom type maps.
func normalizeValue(oid uint32, v any) any {
	if v == nil {
		return nil
	}

	switch oid {
	case pgtype.DateOID:
		switch t := v.(type) {
		case time.Time:
			return t.Format("2006-01-02")
		case pgtype.Date:
			if !t.Valid {
				return nil
			}
			return t.Time.Format("2006-01-02")
		}

	case pgtype.TimeOID:
		switch t := v.(type) {
		case pgtype.Time:
			if !t.Valid {
				return nil
			}
			return formatMicroseconds(t.Microseconds)
		case time.Time:
			return t.Format("15:04:05")
		}

	case pgtype.IntervalOID:
		switch t := v.(type) {
		case pgtype.Interval:
			if !t.Valid {
				return nil
			}
			return formatInterval(t)
		case time.Duration:
			return t.String()
		}
	}

	return v
}

// formatMicroseconds renders a time-of-day offset as HH:MM:SS.
func formatMicroseconds(us int64) string {
	seconds := us / 1e6
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
}

// formatInterval renders an interval the way postgres prints it:
// month and day components first, then the sub-day part as HH:MM:SS.
func formatInterval(iv pgtype.Interval) string {
	var out string
	if iv.Months != 0 {
		out += fmt.Sprintf("%d mon ", iv.Months)
	}
	if iv.Days != 0 {
		out += fmt.Sprintf("%d days ", iv.Days)
	}

	us := iv.Microseconds
	sign := ""
	if us < 0 {
		sign = "-"
		us = -us
	}
	return out + sign + formatMicroseconds(us)
}
