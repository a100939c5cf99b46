package azuredevops

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const defaultHost = "https://dev.azure.com/"

// Config holds the Azure DevOps connection settings
type Config struct {
	// Organization is the organization URL, e.g. https://dev.azure.com/contoso
	Organization string
	Project      string
	// Token is a personal access token. When empty the az CLI login is used.
	Token string
}

var (
	organizationVars = []string{"ADO_ORGANIZATION", "AZURE_DEVOPS_ORG"}
	projectVars      = []string{"ADO_PROJECT", "AZURE_DEVOPS_PROJECT"}
	tokenVars        = []string{"AZURE_DEVOPS_EXT_PAT", "AZURE_DEVOPS_TOKEN"}
)

// NewConfig creates a new Config from environment variables, falling back to
// the defaults of the az devops CLI config file
func NewConfig() (*Config, error) {
	org := firstEnv(organizationVars)
	project := firstEnv(projectVars)

	if org == "" || project == "" {
		fileOrg, fileProject := readConfigFromFile()
		if org == "" {
			org = fileOrg
		}
		if project == "" {
			project = fileProject
		}
	}

	var missingVars []string
	if org == "" {
		missingVars = append(missingVars, organizationVars[0])
	}
	if project == "" {
		missingVars = append(missingVars, projectVars[0])
	}
	if len(missingVars) > 0 {
		return nil, &ConfigError{Missing: missingVars}
	}

	return &Config{
		Organization: organizationURL(org),
		Project:      project,
		Token:        firstEnv(tokenVars),
	}, nil
}

// LoadEnvFile loads variables from a dotenv file. Variables already present in
// the environment are kept. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func firstEnv(names []string) string {
	for _, name := range names {
		if value := strings.TrimSpace(os.Getenv(name)); value != "" {
			return value
		}
	}
	return ""
}

// organizationURL accepts either an organization name or its URL
func organizationURL(org string) string {
	org = strings.TrimRight(org, "/")
	if strings.HasPrefix(org, "https://") || strings.HasPrefix(org, "http://") {
		return org
	}
	return defaultHost + org
}

// readConfigFromFile attempts to read the organization and project from ~/.azure/azuredevops/config
// Returns empty strings if file doesn't exist, can't be read, or doesn't contain the values
func readConfigFromFile() (string, string) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}

	file, err := os.Open(filepath.Join(home, ".azure", "azuredevops", "config"))
	if err != nil {
		return "", ""
	}
	defer file.Close()

	// Parse the INI-style config file
	scanner := bufio.NewScanner(file)
	inDefaultsSection := false

	var organization, project string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section := strings.ToLower(line[1 : len(line)-1])
			inDefaultsSection = section == "defaults"
			continue
		}

		if inDefaultsSection && strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			key := strings.ToLower(strings.TrimSpace(parts[0]))
			value := strings.TrimSpace(parts[1])

			switch key {
			case "organization":
				organization = value
			case "project":
				project = value
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return "", ""
	}

	return organization, project
}
