package api

import (
	"fmt"
	"net/url"
)

// Profile is a build profile as returned by the profile list endpoint.
type Profile struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ProfileDetail is the single-profile view; the branch list is only available
// nested inside it.
type ProfileDetail struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Branches []Branch `json:"branches" yaml:"branches"`
}

type Branch struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Workflow struct {
	ID           string `json:"id" yaml:"id"`
	WorkflowName string `json:"workflowName" yaml:"workflowName"`
}

// Configuration is a build configuration. The API wraps each entry in an
// item1 envelope (see ConfigurationEntry); the envelope is preserved as-is.
type Configuration struct {
	ID                string `json:"id" yaml:"id"`
	ConfigurationName string `json:"configurationName" yaml:"configurationName"`
}

type ConfigurationEntry struct {
	Item1 Configuration `json:"item1" yaml:"item1"`
}

// Commit belongs to a branch. StartDate is kept as the ISO-8601 string the
// API delivers; those sort correctly as plain strings.
type Commit struct {
	ID        string `json:"id" yaml:"id"`
	Hash      string `json:"hash" yaml:"hash"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
	StartDate string `json:"startDate" yaml:"startDate"`
}

// StartBuildOptions is the fully-resolved parameter set for launching a
// build. All three fields are opaque IDs, never names.
type StartBuildOptions struct {
	CommitID        string
	WorkflowID      string
	ConfigurationID string
}

func (c *Client) ListBuildProfiles() ([]Profile, error) {
	var profiles []Profile
	if err := c.Get("/build/v2/profiles", &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *Client) GetBuildProfile(profileID string) (*ProfileDetail, error) {
	var detail ProfileDetail
	if err := c.Get(fmt.Sprintf("/build/v2/profiles/%s", profileID), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListBranches unwraps the branch list from the profile detail view.
func (c *Client) ListBranches(profileID string) ([]Branch, error) {
	detail, err := c.GetBuildProfile(profileID)
	if err != nil {
		return nil, err
	}
	return detail.Branches, nil
}

func (c *Client) ListWorkflows(profileID string) ([]Workflow, error) {
	var workflows []Workflow
	if err := c.Get(fmt.Sprintf("/build/v2/profiles/%s/workflows", profileID), &workflows); err != nil {
		return nil, err
	}
	return workflows, nil
}

func (c *Client) ListConfigurations(profileID string) ([]ConfigurationEntry, error) {
	var configurations []ConfigurationEntry
	if err := c.Get(fmt.Sprintf("/build/v2/profiles/%s/configurations", profileID), &configurations); err != nil {
		return nil, err
	}
	return configurations, nil
}

func (c *Client) ListCommits(profileID, branchID string) ([]Commit, error) {
	var commits []Commit
	path := fmt.Sprintf("/build/v2/commits?profileId=%s&branchId=%s",
		url.QueryEscape(profileID), url.QueryEscape(branchID))
	if err := c.Get(path, &commits); err != nil {
		return nil, err
	}
	return commits, nil
}

// StartBuild launches a build for a resolved commit/workflow/configuration
// tuple and returns the queue response.
func (c *Client) StartBuild(opts StartBuildOptions) (interface{}, error) {
	query := url.Values{}
	query.Set("action", "build")
	query.Set("workflowId", opts.WorkflowID)
	query.Set("configurationId", opts.ConfigurationID)
	path := fmt.Sprintf("/build/v2/commits/%s?%s", opts.CommitID, query.Encode())

	var result interface{}
	if err := c.PostForm(path, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// queueDashboard is the shape of the shared build/publish queue endpoint.
type queueDashboard struct {
	Data []map[string]interface{} `json:"data"`
}

// ActiveBuilds lists queue entries that belong to builds. The queue endpoint
// mixes build and publish tasks; entries without a buildId are publishes.
func (c *Client) ActiveBuilds() ([]map[string]interface{}, error) {
	return c.activeQueueItems("buildId")
}

// ActivePublishes lists queue entries that belong to publish flows.
func (c *Client) ActivePublishes() ([]map[string]interface{}, error) {
	return c.activeQueueItems("publishId")
}

func (c *Client) activeQueueItems(idField string) ([]map[string]interface{}, error) {
	var dashboard queueDashboard
	if err := c.Get("/build/v1/queue/my-dashboard?page=1&size=1000", &dashboard); err != nil {
		return nil, err
	}
	items := []map[string]interface{}{}
	for _, item := range dashboard.Data {
		if item[idField] != nil {
			items = append(items, item)
		}
	}
	return items, nil
}

func (c *Client) ListBuilds(profileID, branchID, commitID string) (interface{}, error) {
	var builds interface{}
	path := fmt.Sprintf("/build/v2/profiles/%s/branches/%s/commits/%s/builds", profileID, branchID, commitID)
	if err := c.Get(path, &builds); err != nil {
		return nil, err
	}
	return builds, nil
}

func (c *Client) GetBuild(profileID, branchID, commitID, buildID string) (interface{}, error) {
	var build interface{}
	path := fmt.Sprintf("/build/v2/profiles/%s/branches/%s/commits/%s/builds/%s", profileID, branchID, commitID, buildID)
	if err := c.Get(path, &build); err != nil {
		return nil, err
	}
	return build, nil
}

func (c *Client) DownloadArtifacts(profileID, branchID, commitID, buildID, outputPath string) error {
	path := fmt.Sprintf("/build/v2/profiles/%s/branches/%s/commits/%s/builds/%s/download", profileID, branchID, commitID, buildID)
	return c.Download(path, outputPath)
}

func (c *Client) DownloadBuildLog(profileID, branchID, commitID, buildID, outputPath string) error {
	path := fmt.Sprintf("/build/v2/profiles/%s/branches/%s/commits/%s/builds/%s/log", profileID, branchID, commitID, buildID)
	return c.Download(path, outputPath)
}

func (c *Client) ListVariableGroups() (interface{}, error) {
	var groups interface{}
	if err := c.Get("/build/v2/variable-groups", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) CreateVariableGroup(name string) (interface{}, error) {
	var group interface{}
	if err := c.Post("/build/v2/variable-groups", map[string]string{"name": name}, &group); err != nil {
		return nil, err
	}
	return group, nil
}

func (c *Client) GetVariableGroup(groupID string) (interface{}, error) {
	var group interface{}
	if err := c.Get(fmt.Sprintf("/build/v2/variable-groups/%s", groupID), &group); err != nil {
		return nil, err
	}
	return group, nil
}

func (c *Client) ListVariables(groupID string) (interface{}, error) {
	var variables interface{}
	if err := c.Get(fmt.Sprintf("/build/v2/variable-groups/%s/variables", groupID), &variables); err != nil {
		return nil, err
	}
	return variables, nil
}

func (c *Client) CreateVariable(groupID string, variable interface{}) (interface{}, error) {
	var created interface{}
	if err := c.Post(fmt.Sprintf("/build/v2/variable-groups/%s/variables", groupID), variable, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UploadVariablesFile(groupID, filePath string) (interface{}, error) {
	var result interface{}
	path := fmt.Sprintf("/build/v1/variable-groups/%s/upload-variables-file", groupID)
	fields := map[string]string{"variableGroupId": groupID}
	if err := c.Upload(path, "envVariablesFile", filePath, fields, &result); err != nil {
		return nil, err
	}
	return result, nil
}
