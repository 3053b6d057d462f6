package dictionary

// Entry represents a single row of the Entries relation. Dictionary files
// differ in which descriptive columns they carry (definitions, part of
// speech, etymology, ...), so rows are kept as column name to value maps
// and passed through untouched. Only the headword column is guaranteed.
type Entry map[string]any

// HeadColumn is the indexed headword column every dictionary file carries.
const HeadColumn = "head"

// Head returns the entry's headword, or an empty string if the row has no
// head column.
func (e Entry) Head() string {
	head, ok := e[HeadColumn].(string)
	if !ok {
		return ""
	}
	return head
}
