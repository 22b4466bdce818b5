package roster

import (
	"strings"

	"github.com/google/uuid"

	"jadwal/internal/model"
)

// unknownTrainee sentinel name for rows that carry an id but no name.
const unknownTrainee = "غير معروف"

// Build folds decoded rows into one TraineeSchedule per distinct
// trainee id, in first-seen order. Rows without a resolvable id are
// skipped; rows without both a day and a course name still create the
// trainee record but contribute no course. Courses accumulate across
// rows in sheet order.
func Build(rows []Row, defaultDepartment string) []*model.TraineeSchedule {
	byID := make(map[string]*model.TraineeSchedule)
	var order []string

	for _, row := range rows {
		rawID, ok := row.Resolve(traineeIDKeys)
		if !ok {
			continue
		}
		id := strings.TrimSpace(rawID)
		if id == "" {
			continue
		}

		trainee, seen := byID[id]
		if !seen {
			trainee = &model.TraineeSchedule{
				TraineeID:   id,
				TraineeName: row.resolveOr(traineeNameKeys, unknownTrainee),
				Department:  row.resolveOr(departmentKeys, defaultDepartment),
				Schedule:    emptyWeek(),
			}
			byID[id] = trainee
			order = append(order, id)
		}

		day, _ := row.Resolve(dayKeys)
		courseName, _ := row.Resolve(courseNameKeys)
		if day == "" || courseName == "" {
			continue
		}

		idx := matchDay(trainee.Schedule, CanonicalizeDay(day))
		if idx < 0 {
			continue
		}

		bucket := &trainee.Schedule[idx]
		bucket.Courses = append(bucket.Courses, model.Course{
			ID:         uuid.NewString(),
			CourseName: courseName,
			CourseCode: row.resolveOr(courseCodeKeys, ""),
			StartTime:  row.resolveOr(startTimeKeys, ""),
			EndTime:    row.resolveOr(endTimeKeys, ""),
			Room:       row.resolveOr(roomKeys, ""),
			RefNumber:  row.resolveOr(refNumberKeys, ""),
		})
	}

	out := make([]*model.TraineeSchedule, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}

// emptyWeek the five canonical day buckets, all empty, in fixed order.
func emptyWeek() []model.DaySchedule {
	week := make([]model.DaySchedule, len(CanonicalDays))
	for i, name := range CanonicalDays {
		week[i] = model.DaySchedule{DayName: name, Courses: []model.Course{}}
	}
	return week
}
