package roster

import (
	"strings"

	"jadwal/internal/model"
)

// CanonicalDays the five day buckets, Sunday through Thursday, in
// schedule order. Friday and Saturday are the weekend and never appear.
var CanonicalDays = []string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس"}

// English day spellings mapped to their Arabic bucket label. Full name,
// 3-letter abbreviation and lowercase all occur in real rosters.
var dayAliases = map[string]string{
	"Sunday": "الأحد", "Sun": "الأحد", "sunday": "الأحد",
	"Monday": "الاثنين", "Mon": "الاثنين", "monday": "الاثنين",
	"Tuesday": "الثلاثاء", "Tue": "الثلاثاء", "tuesday": "الثلاثاء",
	"Wednesday": "الأربعاء", "Wed": "الأربعاء", "wednesday": "الأربعاء",
	"Thursday": "الخميس", "Thu": "الخميس", "thursday": "الخميس",
}

// CanonicalizeDay trims the raw token and maps recognized English
// spellings to the Arabic bucket label. Unrecognized tokens pass
// through trimmed; whether they land in a bucket is decided by
// matchDay.
func CanonicalizeDay(raw string) string {
	day := strings.TrimSpace(raw)
	if mapped, ok := dayAliases[day]; ok {
		return mapped
	}
	return day
}

// matchDay finds the bucket index for a canonicalized day token: exact
// match first, then substring containment so shortened tokens ("أحد")
// still land in their bucket. Deliberately lenient; a token matching no
// bucket returns -1 and the course is dropped silently.
func matchDay(schedule []model.DaySchedule, day string) int {
	for i := range schedule {
		if schedule[i].DayName == day || strings.Contains(schedule[i].DayName, day) {
			return i
		}
	}
	return -1
}
