package model

// Course one scheduled class occurrence. The id is generated at parse
// time and is unique within the owning schedule; every other field is
// carried verbatim (stringified) from the source row.
type Course struct {
	ID         string `json:"id"`
	CourseName string `json:"courseName"`
	CourseCode string `json:"courseCode"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Room       string `json:"room"`
	RefNumber  string `json:"refNumber"` // section / CRN identifier
}

// DaySchedule one weekday's course list, insertion order = row order.
type DaySchedule struct {
	DayName string   `json:"dayName"`
	Courses []Course `json:"courses"`
}

// TraineeSchedule the canonical record for one trainee. TraineeID is
// the merge key across all uploads and departments. Schedule always
// holds exactly the five canonical day buckets, Sunday..Thursday.
type TraineeSchedule struct {
	TraineeID   string        `json:"traineeId"`
	TraineeName string        `json:"traineeName"`
	Department  string        `json:"department"`
	Schedule    []DaySchedule `json:"schedule"`
}

// Clone deep-copies the record so callers never alias store-owned slices.
func (t *TraineeSchedule) Clone() *TraineeSchedule {
	out := &TraineeSchedule{
		TraineeID:   t.TraineeID,
		TraineeName: t.TraineeName,
		Department:  t.Department,
		Schedule:    make([]DaySchedule, len(t.Schedule)),
	}
	for i, d := range t.Schedule {
		courses := make([]Course, len(d.Courses))
		copy(courses, d.Courses)
		out.Schedule[i] = DaySchedule{DayName: d.DayName, Courses: courses}
	}
	return out
}

// UploadStats four independent monotonically-increasing counters, one
// per upload category. Reset to zero only by a full store reset.
type UploadStats struct {
	EnginesCount         int `json:"enginesCount"`
	ManufCount           int `json:"manufCount"`
	EnginesFreshmanCount int `json:"enginesFreshmanCount"`
	ManufFreshmanCount   int `json:"manufFreshmanCount"`
}

// Database the persisted shape: all schedules plus the upload counters.
type Database struct {
	Schedules []*TraineeSchedule `json:"schedules"`
	Stats     UploadStats        `json:"stats"`
}

// EmptyDatabase a fresh database with no records and zeroed counters.
func EmptyDatabase() *Database {
	return &Database{Schedules: []*TraineeSchedule{}, Stats: UploadStats{}}
}
