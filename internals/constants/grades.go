package constants

// GradeGraduated is the terminal pseudo-grade after grade 8.
const GradeGraduated = "GRADUATED"

// gradeProgression is the fixed promotion table. Grades outside the table
// (SPED, UNGRADED, ...) are never advanced automatically.
var gradeProgression = map[string]string{
	"PK": "K",
	"K":  "1",
	"1":  "2",
	"2":  "3",
	"3":  "4",
	"4":  "5",
	"5":  "6",
	"6":  "7",
	"7":  "8",
	"8":  GradeGraduated,
}

// NextGrade returns the grade following g, and whether g is in the
// progression table at all.
func NextGrade(g string) (string, bool) {
	next, ok := gradeProgression[g]
	return next, ok
}

// ElementaryGrades are the grade bands the homeroom auto-sync considers.
var ElementaryGrades = []string{"K", "1", "2", "3", "4", "5"}
