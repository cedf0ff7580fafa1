package monday

import (
	"strconv"
	"strings"

	"rolesync/internal/domain"
)

// ColumnValues maps one role onto the board's column ids, one column per
// Role field. ID and numeric fields go out as text because the board's
// columns are text-typed.
func ColumnValues(r domain.Role) map[string]any {
	// date column takes the date part only, and an explicit null when the
	// source never set opened_at (an empty string would read as a value)
	var opened any
	if r.OpenedAt != "" {
		date, _, _ := strings.Cut(r.OpenedAt, "T")
		opened = date
	}

	return map[string]any{
		"job_title__1":  strconv.FormatInt(r.JobID, 10),
		"department__1": r.Department,
		"text__1":       r.Location,
		"text2__1":      r.Studio,
		"text1__1":      domain.DaysOpenText(r.DaysOpen),
		"date_Mjj5SQ4B": opened,
		"text_Mjj5V04k": r.Recruiters,
		"text_Mjj5gr7J": r.Coordinators,
	}
}
