package vietnamese

import (
	"maps"
	"slices"
	"strings"
)

// CollationKey returns a string whose byte order is the Vietnamese
// alphabetical order of s. Every letter of the Vietnamese alphabet which
// does not sort like plain Latin is replaced by a two-letter code: base
// letter plus variant, in the order a à ả ã á ạ ă ằ ẳ ẵ ắ ặ â ầ ẩ ẫ ấ ậ.
// d and đ become "da" and "db", so đ sorts after every d. Upper case codes
// are upper case, which puts capitals before lower case letters.
func CollationKey(s string) string {
	p := tables()
	var b strings.Builder
	b.Grow(2 * len(s))
	for _, r := range compose(s) {
		if code, ok := p.collation[r]; ok {
			b.WriteString(code)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Record is a row of named fields, for sorting by one or more fields.
type Record map[string]string

// SortWords returns items sorted in Vietnamese alphabetical order. The sort
// is stable; items is not modified.
//
//	SortWords([]string{"Ă", "A", "Â", "À", "Á"}) => ["A", "À", "Á", "Ă", "Â"]
func SortWords(items []string) []string {
	return sortByColumns(items, func(s string) []string {
		return []string{s}
	})
}

// SortRecords returns records sorted by the given fields in Vietnamese
// alphabetical order: by the first field, records with equal first fields by
// the second, and so on. A missing field sorts like an empty one. The sort
// is stable; without keys the order is kept.
func SortRecords(records []Record, keys ...string) []Record {
	return sortByColumns(records, func(r Record) []string {
		cols := make([]string, len(keys))
		for i, k := range keys {
			cols[i] = r[k]
		}
		return cols
	})
}

// SortPeopleNames formats names with FormatName and sorts them the way
// Vietnamese names are sorted: by given name (the last part) first, then by
// the rest, family name first.
//
//	SortPeopleNames([]string{"nguyễn văn đảnh", "Nguyễn Anh Đang"})
//	=> ["Nguyễn Anh Đang", "Nguyễn Văn Đảnh"]
func SortPeopleNames(names []string) []string {
	type person struct {
		given, surname string
	}
	people := make([]person, len(names))
	for i, name := range names {
		given, surname := splitName(FormatName(name))
		people[i] = person{given: given, surname: surname}
	}
	people = sortByColumns(people, func(p person) []string {
		return []string{p.given, p.surname}
	})
	sorted := make([]string, len(people))
	for i, p := range people {
		sorted[i] = strings.TrimSpace(p.surname + " " + p.given)
	}
	return sorted
}

// SortPeopleRecords sorts records by the person's name held in field
// nameKey, as SortPeopleNames does, then by the remaining keys. The name
// field of the returned records is formatted with FormatName; the records
// are copies, records itself is not modified.
func SortPeopleRecords(records []Record, nameKey string, keys ...string) []Record {
	type person struct {
		record         Record
		given, surname string
	}
	people := make([]person, len(records))
	for i, r := range records {
		r = maps.Clone(r)
		if r == nil {
			r = Record{}
		}
		name := FormatName(r[nameKey])
		r[nameKey] = name
		given, surname := splitName(name)
		people[i] = person{record: r, given: given, surname: surname}
	}
	people = sortByColumns(people, func(p person) []string {
		cols := []string{p.given, p.surname}
		for _, k := range keys {
			cols = append(cols, p.record[k])
		}
		return cols
	})
	sorted := make([]Record, len(people))
	for i, p := range people {
		sorted[i] = p.record
	}
	return sorted
}

// splitName splits a formatted name into given name and the rest.
func splitName(name string) (given, surname string) {
	i := strings.LastIndexByte(name, ' ')
	if i < 0 {
		return name, ""
	}
	return name[i+1:], name[:i]
}

// sortByColumns sorts a copy of items stably by the collation keys of the
// columns extracted from each item, compared left to right.
func sortByColumns[T any](items []T, columns func(T) []string) []T {
	type row struct {
		item T
		keys []string
	}
	rows := make([]row, len(items))
	for i, item := range items {
		cols := columns(item)
		for j := range cols {
			cols[j] = CollationKey(cols[j])
		}
		rows[i] = row{item: item, keys: cols}
	}
	slices.SortStableFunc(rows, func(a, b row) int {
		return slices.Compare(a.keys, b.keys)
	})
	sorted := make([]T, len(rows))
	for i, r := range rows {
		sorted[i] = r.item
	}
	return sorted
}
