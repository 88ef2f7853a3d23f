package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"eventrec.dev/internal/models"
)

const (
	colID          = "id"
	colName        = "name"
	colGenre       = "genre"
	colTicketPrice = "ticket_price"
	colLatitude    = "latitude"
	colLongitude   = "longitude"
	colFoodType    = "food_type"
	colDate        = "date"
	colDescription = "description"
	colEventType   = "event_type"
	colCrowdLevel  = "crowd_level"
)

var requiredColumns = []string{
	colID, colName, colGenre, colTicketPrice, colLatitude, colLongitude, colFoodType, colDate,
}

// ParseEvents reads a CSV catalog with a header row. Every row is validated and
// the first invalid one aborts the parse with a *RecordError.
func ParseEvents(r io.Reader) ([]models.Event, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &RecordError{Line: 1, Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, &RecordError{Line: 1, Err: err}
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, &RecordError{Line: 1, Column: name, Err: errors.New("required column is missing")}
		}
	}

	var events []models.Event
	seen := make(map[string]int)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			return nil, &RecordError{Line: line, Err: err}
		}
		line, _ := reader.FieldPos(0)

		row := rowReader{record: record, columns: columns, line: line}
		event, err := row.event()
		if err != nil {
			return nil, err
		}

		if first, dup := seen[event.ID]; dup {
			return nil, &RecordError{Line: line, Column: colID, Err: fmt.Errorf("duplicate id %q (first seen on line %d)", event.ID, first)}
		}
		seen[event.ID] = line
		events = append(events, event)
	}

	return events, nil
}

type rowReader struct {
	record  []string
	columns map[string]int
	line    int
}

func (r rowReader) text(column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func (r rowReader) required(column string) (string, error) {
	v := r.text(column)
	if v == "" {
		return "", &RecordError{Line: r.line, Column: column, Err: errors.New("value is required")}
	}
	return v, nil
}

func (r rowReader) float(column string, lo, hi float64) (float64, error) {
	raw, err := r.required(column)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return 0, &RecordError{Line: r.line, Column: column, Err: fmt.Errorf("invalid number %q", raw)}
	}
	if v < lo || v > hi {
		return 0, &RecordError{Line: r.line, Column: column, Err: fmt.Errorf("value %v out of range [%v, %v]", v, lo, hi)}
	}
	return v, nil
}

func (r rowReader) event() (models.Event, error) {
	var (
		e   models.Event
		err error
	)

	if e.ID, err = r.required(colID); err != nil {
		return e, err
	}
	if e.Name, err = r.required(colName); err != nil {
		return e, err
	}
	if e.Genre, err = r.required(colGenre); err != nil {
		return e, err
	}
	if e.TicketPrice, err = r.float(colTicketPrice, 0, math.MaxFloat64); err != nil {
		return e, err
	}
	if e.Latitude, err = r.float(colLatitude, -90, 90); err != nil {
		return e, err
	}
	if e.Longitude, err = r.float(colLongitude, -180, 180); err != nil {
		return e, err
	}
	// Food type may legitimately be empty ("no food"), but the column must exist.
	e.FoodType = r.text(colFoodType)
	if e.Date, err = r.required(colDate); err != nil {
		return e, err
	}

	e.Description = r.text(colDescription)
	e.EventType = r.text(colEventType)
	e.CrowdLevel = r.text(colCrowdLevel)

	return e, nil
}
