package enum

// ProjectStatus represents the phase a project is in
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "Planning"
	ProjectStatusActive    ProjectStatus = "Actief"
	ProjectStatusCompleted ProjectStatus = "Afgerond"
	ProjectStatusOnHold    ProjectStatus = "On Hold"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	}
	return false
}
