// Package document renders report documents into printable artifacts.
// A single section model feeds every output format so layout, ordering and
// rounding behavior cannot diverge between the PDF and print paths.
package document

import (
	"sort"
	"strconv"

	"github.com/hotel-ops/backend/internal/domain/entity"
	"github.com/hotel-ops/backend/internal/domain/valueobject"
)

// Section is one renderable block of the document: a header plus, when
// details are requested, an itemized table of decomposed movements ordered
// by timestamp ascending.
type Section struct {
	Key           string
	Title         string
	MovementCount int
	Rows          []entity.DecomposedMovement
	Summary       *entity.ShiftSummary // Set when grouping by shift
}

// BuildSections partitions the document into sections according to its
// grouping key. The default partition is one section per shift; other keys
// re-partition the detail rows while the per-shift summaries stay untouched.
//
// Zero-movement shift sections are skipped only when details are off and the
// shift filter is unrestricted: an explicitly requested shift always shows,
// even with no activity.
func BuildSections(doc *entity.ReportDocument) []Section {
	if valueobject.GroupKey(doc.GroupBy) == valueobject.GroupByShift || doc.GroupBy == "" {
		return shiftSections(doc)
	}
	return keyedSections(doc)
}

func shiftSections(doc *entity.ReportDocument) []Section {
	rowsByShift := make(map[int][]entity.DecomposedMovement)
	for _, movement := range doc.Movements {
		number := entity.UnassignedShiftNumber
		if movement.Shift != nil {
			number = *movement.Shift
		}
		rowsByShift[number] = append(rowsByShift[number], movement)
	}

	unrestricted := len(doc.Shifts) == 0
	sections := make([]Section, 0, len(doc.Summaries))

	for i := range doc.Summaries {
		summary := &doc.Summaries[i]
		if summary.MovementCount == 0 && !doc.IncludeDetail && unrestricted {
			continue
		}

		section := Section{
			Key:           strconv.Itoa(summary.Number),
			Title:         summary.Name,
			MovementCount: summary.MovementCount,
			Summary:       summary,
		}
		if doc.IncludeDetail {
			section.Rows = rowsByShift[summary.Number]
		}
		sections = append(sections, section)
	}

	return sections
}

func keyedSections(doc *entity.ReportDocument) []Section {
	keyOf := sectionKeyFunc(valueobject.GroupKey(doc.GroupBy))

	grouped := make(map[string][]entity.DecomposedMovement)
	for _, movement := range doc.Movements {
		key := keyOf(&movement)
		grouped[key] = append(grouped[key], movement)
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sections := make([]Section, 0, len(keys))
	for _, key := range keys {
		rows := grouped[key]
		section := Section{
			Key:           key,
			Title:         key,
			MovementCount: len(rows),
		}
		if doc.IncludeDetail {
			section.Rows = rows
		}
		sections = append(sections, section)
	}

	return sections
}

func sectionKeyFunc(groupBy valueobject.GroupKey) func(*entity.DecomposedMovement) string {
	switch groupBy {
	case valueobject.GroupByDate:
		return func(m *entity.DecomposedMovement) string {
			return m.OccurredAt.Format("2006-01-02")
		}
	case valueobject.GroupByUser:
		return func(m *entity.DecomposedMovement) string {
			if m.UserName == "" {
				return "sistema"
			}
			return m.UserName
		}
	case valueobject.GroupByCurrency:
		return func(m *entity.DecomposedMovement) string {
			return string(m.Currency)
		}
	case valueobject.GroupByPaymentType:
		return func(m *entity.DecomposedMovement) string {
			return string(m.PaymentType)
		}
	default:
		return func(m *entity.DecomposedMovement) string {
			number := entity.UnassignedShiftNumber
			if m.Shift != nil {
				number = *m.Shift
			}
			return strconv.Itoa(number)
		}
	}
}
