package azuredevops

import (
	"strings"
	"time"

	strip "github.com/grokify/html-strip-tags-go"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
)

// Project represents an Azure DevOps project
type Project struct {
	ID          string
	Name        string
	Description string
	URL         string
	State       string
	LastUpdated time.Time
	Visibility  string
}

func newProject(p *core.TeamProject) *Project {
	if p == nil {
		return &Project{}
	}
	project := &Project{
		Name:        deref(p.Name),
		Description: normalizeDescription(deref(p.Description)),
		URL:         deref(p.Url),
		State:       string(deref(p.State)),
		Visibility:  string(deref(p.Visibility)),
	}
	if p.Id != nil {
		project.ID = p.Id.String()
	}
	if p.LastUpdateTime != nil {
		project.LastUpdated = p.LastUpdateTime.Time
	}
	return project
}

// Replaces line breaks and common entities, then strips remaining tags
func normalizeDescription(data string) string {
	data = strings.NewReplacer(
		"<br>", "\n",
		"<br />", "\n",
		"<br/>", "\n",
		"&nbsp;", " ",
		"\u00A0", " ",
	).Replace(data)
	return strings.TrimSpace(strip.StripTags(data))
}
