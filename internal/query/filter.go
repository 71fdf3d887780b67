package query

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	dateTimeLayout = "2006-01-02T15:04:05"
	dateLayout     = "2006-01-02"

	startSuffix = "_start"
	stopSuffix  = "_stop"
)

// Condition is one WHERE fragment with its arguments.
type Condition struct {
	Expr string
	Args []any
}

// Filter is an AND-composed set of conditions over one entity.
type Filter []Condition

// Apply chains every condition onto the gorm query.
func (f Filter) Apply(db *gorm.DB) *gorm.DB {
	for _, c := range f {
		db = db.Where(c.Expr, c.Args...)
	}
	return db
}

// Build translates ad-hoc request parameters into a Filter against the
// given registry. Malformed values, unknown names and non-matchable kinds
// degrade to "no constraint from this field" rather than failing the whole
// listing; clients with a typo in one filter box still get a page back.
// A field supplied both plainly and with a range suffix contributes the
// range form only.
func Build(reg Registry, params map[string]string) Filter {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var filter Filter
	processed := make(map[string]bool)

	for _, key := range keys {
		if processed[key] {
			continue
		}

		if strings.HasSuffix(key, startSuffix) || strings.HasSuffix(key, stopSuffix) {
			base := strings.TrimSuffix(strings.TrimSuffix(key, startSuffix), stopSuffix)
			start, hasStart := params[base+startSuffix]
			stop, hasStop := params[base+stopSuffix]
			processed[base+startSuffix] = true
			processed[base+stopSuffix] = true

			if c := rangeCondition(reg, base, start, hasStart, stop, hasStop); c != nil {
				filter = append(filter, *c)
			}
			continue
		}

		// The range interpretation wins when both forms are present.
		if _, ok := params[key+startSuffix]; ok {
			continue
		}
		if _, ok := params[key+stopSuffix]; ok {
			continue
		}

		processed[key] = true
		if c := simpleCondition(reg, key, params[key]); c != nil {
			filter = append(filter, *c)
		}
	}

	return filter
}

// simpleCondition builds an exact/prefix predicate for one field=value pair,
// or nil when the field is unknown or the value does not fit its kind.
func simpleCondition(reg Registry, name, value string) *Condition {
	f, ok := reg[name]
	if !ok {
		return nil
	}

	switch f.Kind {
	case KindString:
		return &Condition{Expr: f.Column + " LIKE ?", Args: []any{value + "%"}}
	case KindInt, KindRelation:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil
		}
		return &Condition{Expr: f.Column + " = ?", Args: []any{n}}
	case KindFloat:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil
		}
		return &Condition{Expr: f.Column + " = ?", Args: []any{n}}
	case KindBool:
		// Anything but a literal "true" counts as false.
		return &Condition{Expr: f.Column + " = ?", Args: []any{strings.EqualFold(value, "true")}}
	default:
		// Date kinds have no plain-equality form; only ranges apply.
		return nil
	}
}

// rangeCondition builds an inclusive bound predicate from _start/_stop
// values. Any unparsable bound drops the whole field.
func rangeCondition(reg Registry, name, start string, hasStart bool, stop string, hasStop bool) *Condition {
	f, ok := reg[name]
	if !ok {
		return nil
	}
	if !hasStart && !hasStop {
		return nil
	}

	var startVal, stopVal any
	var err error

	if hasStart {
		startVal, err = parseBound(f.Kind, start)
		if err != nil {
			return nil
		}
	}
	if hasStop {
		stopVal, err = parseBound(f.Kind, stop)
		if err != nil {
			return nil
		}
	}

	switch {
	case hasStart && hasStop:
		return &Condition{Expr: f.Column + " BETWEEN ? AND ?", Args: []any{startVal, stopVal}}
	case hasStart:
		return &Condition{Expr: f.Column + " >= ?", Args: []any{startVal}}
	default:
		return &Condition{Expr: f.Column + " <= ?", Args: []any{stopVal}}
	}
}

func parseBound(kind Kind, value string) (any, error) {
	switch kind {
	case KindInt:
		return strconv.ParseInt(value, 10, 64)
	case KindFloat:
		return strconv.ParseFloat(value, 64)
	case KindDateTime:
		return time.Parse(dateTimeLayout, ensureDateTime(value))
	case KindDate:
		return time.Parse(dateLayout, value)
	default:
		// Strings, booleans and relations have no range form.
		return nil, errNotRangeable
	}
}

// ensureDateTime widens a date-only bound to midnight so a 10-character
// date can bound a date-time field.
func ensureDateTime(value string) string {
	if len(value) == len(dateLayout) {
		return value + "T00:00:00"
	}
	return value
}

var errNotRangeable = errors.New("field kind has no range form")
