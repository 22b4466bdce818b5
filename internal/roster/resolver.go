package roster

// Header alias groups, highest priority first. Sheets arrive with
// Arabic or English headers in no predictable casing; the resolver
// probes each spelling in order and the first present column wins.
var (
	traineeIDKeys   = []string{"الرقم التدريبي", "traineeId", "id", "ID", "رقم المتدرب"}
	traineeNameKeys = []string{"اسم المتدرب", "traineeName", "name", "Name", "الاسم"}
	departmentKeys  = []string{"التخصص", "department", "dept", "Major"}
	dayKeys         = []string{"اليوم", "day", "Day"}
	courseNameKeys  = []string{"المقرر", "course", "Course", "Subject", "المادة"}
	courseCodeKeys  = []string{"الرمز", "code", "Code"}
	startTimeKeys   = []string{"بداية", "start", "Start", "من"}
	endTimeKeys     = []string{"نهاية", "end", "End", "إلى"}
	roomKeys        = []string{"القاعة", "room", "Room", "المعمل"}
	refNumberKeys   = []string{"الرقم المرجعي", "رقم الشعبة", "CRN", "Section", "Reference"}
)

// Resolve returns the value of the first candidate key present in the
// row. Presence means the column exists, not that its value is
// non-empty; an empty cell under a matching header still wins over a
// lower-priority alias.
func (r Row) Resolve(keys []string) (string, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok {
			return v, true
		}
	}
	return "", false
}

// resolveOr resolves with a default for absent or empty values.
func (r Row) resolveOr(keys []string, fallback string) string {
	if v, ok := r.Resolve(keys); ok && v != "" {
		return v
	}
	return fallback
}
