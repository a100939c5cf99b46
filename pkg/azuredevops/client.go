package azuredevops

import (
	"context"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
)

// accessToken is a variable so tests can avoid shelling out to az
var accessToken = azAccessTokenFor

type repositoryLister interface {
	GetRepositories(context.Context, git.GetRepositoriesArgs) (*[]git.GitRepository, error)
}

type projectGetter interface {
	GetProject(context.Context, core.GetProjectArgs) (*core.TeamProject, error)
}

// Client represents an Azure DevOps client scoped to one project
type Client struct {
	Config *Config

	repos    repositoryLister
	projects projectGetter
}

// NewClient creates a new Azure DevOps client. It authenticates with the
// configured personal access token, or with the az CLI login when none is set.
func NewClient(ctx context.Context, config *Config) (*Client, error) {
	connection, err := newConnection(config)
	if err != nil {
		return nil, &FetchError{Op: "authenticating", Err: err}
	}

	gitClient, err := git.NewClient(ctx, connection)
	if err != nil {
		return nil, &FetchError{Op: "connecting to " + config.Organization, Err: err}
	}
	coreClient, err := core.NewClient(ctx, connection)
	if err != nil {
		return nil, &FetchError{Op: "connecting to " + config.Organization, Err: err}
	}

	return &Client{
		Config:   config,
		repos:    gitClient,
		projects: coreClient,
	}, nil
}

func newConnection(config *Config) (*azuredevops.Connection, error) {
	if config.Token != "" {
		return azuredevops.NewPatConnection(config.Organization, config.Token), nil
	}

	token, err := accessToken()
	if err != nil {
		return nil, err
	}
	connection := azuredevops.NewAnonymousConnection(config.Organization)
	connection.AuthorizationString = "Bearer " + token
	return connection, nil
}

// ListRepositories retrieves the git repositories of the configured project
func (c *Client) ListRepositories(ctx context.Context) ([]Repository, error) {
	project := c.Config.Project
	response, err := c.repos.GetRepositories(ctx, git.GetRepositoriesArgs{Project: &project})
	if err != nil {
		return nil, &FetchError{Op: "fetching repositories", Err: err}
	}
	if response == nil {
		return []Repository{}, nil
	}

	repositories := make([]Repository, 0, len(*response))
	for _, r := range *response {
		repositories = append(repositories, newRepository(r))
	}
	return repositories, nil
}

// ListItems returns the repository names of the configured project, in the order the service returned them
func (c *Client) ListItems(ctx context.Context) ([]string, error) {
	repositories, err := c.ListRepositories(ctx)
	if err != nil {
		return nil, err
	}
	return RepositoryNames(repositories), nil
}

// GetProject retrieves the configured project's details
func (c *Client) GetProject(ctx context.Context) (*Project, error) {
	projectID := c.Config.Project
	response, err := c.projects.GetProject(ctx, core.GetProjectArgs{ProjectId: &projectID})
	if err != nil {
		return nil, &FetchError{Op: "fetching project '" + projectID + "'", Err: err}
	}
	return newProject(response), nil
}
