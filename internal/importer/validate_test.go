package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validMinimalSnapshot() *Snapshot {
	return &Snapshot{
		Version: 1,
		Projects: []SnapshotProject{
			{ID: "p1", Name: "Home", Color: "green"},
		},
		Tasks: []SnapshotTask{
			{ProjectID: "p1", Title: "Water plants", Deadline: "2024-03-10", Period: "morning", Priority: "standard"},
		},
	}
}

func TestValidateSnapshot_ValidMinimal(t *testing.T) {
	errs := ValidateSnapshot(validMinimalSnapshot(), nil)
	assert.Empty(t, errs)
}

func TestValidateSnapshot_AcceptsDisplayLabels(t *testing.T) {
	s := validMinimalSnapshot()
	s.Tasks[0].Priority = "Urgent"
	s.Tasks[0].Status = "In Review"
	s.Tasks[0].Period = "Evening"

	assert.Empty(t, ValidateSnapshot(s, nil))
}

func TestValidateSnapshot_CollectsAllErrors(t *testing.T) {
	s := &Snapshot{
		Version: 1,
		Projects: []SnapshotProject{
			{ID: "p1", Name: "", Color: "mauve"},
		},
		Tasks: []SnapshotTask{
			{ProjectID: "p1", Title: "", Deadline: "10/03/2024", Period: "night", Priority: "high", Status: "wip"},
		},
	}
	errs := ValidateSnapshot(s, nil)

	// name, color, title, deadline, period, priority, status
	assert.Len(t, errs, 7)
}

func TestValidateSnapshot_UnknownProjectReference(t *testing.T) {
	s := validMinimalSnapshot()
	s.Tasks[0].ProjectID = "elsewhere"

	errs := ValidateSnapshot(s, nil)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "unknown project")

	assert.Empty(t, ValidateSnapshot(s, map[string]bool{"elsewhere": true}),
		"a project already in the store may be referenced")
}

func TestValidateSnapshot_MissingDeadline(t *testing.T) {
	s := validMinimalSnapshot()
	s.Tasks[0].Deadline = ""

	errs := ValidateSnapshot(s, nil)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "deadline")
}

func TestValidateSnapshot_DuplicateIDs(t *testing.T) {
	s := validMinimalSnapshot()
	s.Projects = append(s.Projects, SnapshotProject{ID: "p1", Name: "Again"})
	s.Tasks[0].ID = "t1"
	s.Tasks = append(s.Tasks, s.Tasks[0])

	errs := ValidateSnapshot(s, nil)
	assert.Len(t, errs, 2)
}

func TestValidateSnapshot_NewerVersion(t *testing.T) {
	s := validMinimalSnapshot()
	s.Version = SnapshotVersion + 1

	assert.Len(t, ValidateSnapshot(s, nil), 1)
}
