package azuredevops

import "github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"

// Repository represents a git repository hosted in an Azure DevOps project
type Repository struct {
	ID            string
	Name          string
	DefaultBranch string
	WebURL        string
	IsDisabled    bool
}

func newRepository(r git.GitRepository) Repository {
	repository := Repository{
		Name:          deref(r.Name),
		DefaultBranch: deref(r.DefaultBranch),
		WebURL:        deref(r.WebUrl),
		IsDisabled:    deref(r.IsDisabled),
	}
	if r.Id != nil {
		repository.ID = r.Id.String()
	}
	return repository
}

// RepositoryNames returns the names of the given repositories, keeping their order
func RepositoryNames(repositories []Repository) []string {
	names := make([]string, len(repositories))
	for i, r := range repositories {
		names[i] = r.Name
	}
	return names
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
