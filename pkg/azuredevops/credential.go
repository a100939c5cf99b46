package azuredevops

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// execCommand is a variable that allows for mocking exec.Command in tests
var execCommand = exec.Command

// azureDevOpsResource is the application ID of Azure DevOps in Microsoft Entra ID
const azureDevOpsResource = "499b84ac-1321-427f-aa17-267ca6975798"

type azAccessToken struct {
	AccessToken string `json:"accessToken"`
	ExpiresOn   string `json:"expiresOn"`
	TokenType   string `json:"tokenType"`
}

// runAzCommand executes an Azure CLI command and returns the output
func runAzCommand(args ...string) ([]byte, error) {
	cmd := execCommand("az", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("az command failed: %w\nStderr: %s", err, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

// azAccessTokenFor asks the signed-in az CLI user for a bearer token scoped to Azure DevOps
func azAccessTokenFor() (string, error) {
	output, err := runAzCommand("account", "get-access-token", "--resource", azureDevOpsResource, "--output", "json")
	if err != nil {
		return "", err
	}

	var token azAccessToken
	if err := json.Unmarshal(output, &token); err != nil {
		return "", fmt.Errorf("error parsing access token: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("az returned an empty access token")
	}

	return token.AccessToken, nil
}
