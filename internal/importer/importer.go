// Package importer turns rows of the static hospital data file into hospital records.
//
// Everything here is pure: callers load the source once, hand it in together with
// whatever stored state is needed and get plain records back.
package importer

import (
	"bytes"
	"strconv"
	"strings"

	"covid-hospital-backend/internal/models"

	"github.com/goccy/go-json"
)

const rowsAll = "all"

// ImportQuery selects which rows of the source are imported
type ImportQuery struct {
	InsertAll bool
	RemoveAll bool
	From      int
	To        int
}

// UpdateSet is the outcome of comparing the source with stored hospitals
type UpdateSet struct {
	Data          []models.Hospital
	SerialNumbers []int
}

// ParseRows interprets the :rows and :remove path parameters.
// rows is "all" or "<from>-<to>"; remove only counts in "all" mode.
// A malformed range selects nothing.
func ParseRows(rows, remove string) ImportQuery {
	if rows == rowsAll {
		return ImportQuery{InsertAll: true, RemoveAll: remove == "true"}
	}

	from, to, ok := strings.Cut(rows, "-")
	start, errFrom := strconv.Atoi(strings.TrimSpace(from))
	end, errTo := strconv.Atoi(strings.TrimSpace(to))
	if !ok || errFrom != nil || errTo != nil {
		return ImportQuery{}
	}
	return ImportQuery{From: start, To: end}
}

// PrepareImport returns the records for the selected rows, each with its slug set
func PrepareImport(rows []Row, query ImportQuery) []models.Hospital {
	selected := rows
	if !query.InsertAll {
		selected = slice(rows, query.From, query.To)
	}

	records := make([]models.Hospital, 0, len(selected))
	for _, row := range selected {
		if h, ok := toHospital(row); ok {
			records = append(records, h)
		}
	}
	return records
}

// PrepareUpdate returns, in source order, the records that are new or differ
// from the stored hospital with the same slug, plus their serial numbers.
func PrepareUpdate(rows []Row, stored map[string]models.Hospital) UpdateSet {
	set := UpdateSet{Data: []models.Hospital{}, SerialNumbers: []int{}}
	for _, row := range rows {
		h, ok := toHospital(row)
		if !ok {
			continue
		}
		if current, found := stored[h.NameSlug]; found && sameContent(current, h) {
			continue
		}
		set.Data = append(set.Data, h)
		set.SerialNumbers = append(set.SerialNumbers, h.SerialNumber)
	}
	return set
}

// IndexBySlug keys hospitals by slug, the first one wins
func IndexBySlug(hospitals []models.Hospital) map[string]models.Hospital {
	index := make(map[string]models.Hospital, len(hospitals))
	for _, h := range hospitals {
		if _, dup := index[h.NameSlug]; !dup {
			index[h.NameSlug] = h
		}
	}
	return index
}

// slice mirrors JavaScript's Array.prototype.slice for non-negative bounds
func slice(rows []Row, from, to int) []Row {
	from = max(0, min(from, len(rows)))
	to = max(0, min(to, len(rows)))
	if from >= to {
		return nil
	}
	return rows[from:to]
}

func toHospital(row Row) (models.Hospital, bool) {
	name, _ := row["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Hospital{}, false
	}

	h := models.Hospital{
		Name:     name,
		NameSlug: Slugify(name),
	}
	details := map[string]any{}
	for key, value := range row {
		switch key {
		case "name":
		case "sn", "serialNumber":
			h.SerialNumber = toInt(value)
		case "covid", "isCovid":
			h.IsCovid = toBool(value)
		default:
			details[key] = value
		}
	}
	if len(details) > 0 {
		h.Details = details
	}
	return h, true
}

func toInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(n))
		return i
	}
	return 0
}

func toBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "yes", "y", "true", "1":
			return true
		}
	}
	return false
}

func sameContent(stored, incoming models.Hospital) bool {
	if stored.Name != incoming.Name || stored.SerialNumber != incoming.SerialNumber || stored.IsCovid != incoming.IsCovid {
		return false
	}
	return bytes.Equal(canonical(stored.Details), canonical(incoming.Details))
}

// canonical encodes details with sorted keys so equal content compares equal
func canonical(details map[string]any) []byte {
	if len(details) == 0 {
		return nil
	}
	b, err := json.Marshal(details)
	if err != nil {
		return nil
	}
	return b
}
