package board

import "github.com/alexanderramin/quadro/internal/domain"

// Progress summarizes the non-archived tasks of one project.
type Progress struct {
	Total   int
	Done    int
	Doing   int
	Pending int
	Percent float64
}

func SummarizeProject(tasks []domain.Task, projectID string) Progress {
	var p Progress
	for _, t := range Match(tasks, NotArchived, ByProject(projectID)) {
		p.Total++
		switch t.Status {
		case domain.StatusDone:
			p.Done++
		case domain.StatusDoing:
			p.Doing++
		}
	}
	p.Pending = p.Total - p.Done
	if p.Total > 0 {
		p.Percent = float64(p.Done) / float64(p.Total) * 100
	}
	return p
}
