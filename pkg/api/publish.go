package api

import "fmt"

// Publish module endpoints. Profiles here are scoped by platform ("ios" or
// "android") everywhere.

func (c *Client) ListPublishProfiles(platform string) (interface{}, error) {
	var profiles interface{}
	if err := c.Get(fmt.Sprintf("/publish/v2/profiles/%s", platform), &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *Client) CreatePublishProfile(platform, name string) (interface{}, error) {
	var profile interface{}
	if err := c.Post(fmt.Sprintf("/publish/v2/profiles/%s", platform), map[string]string{"name": name}, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *Client) DeletePublishProfile(platform, profileID string) error {
	return c.Delete(fmt.Sprintf("/publish/v2/profiles/%s/%s", platform, profileID), nil, nil)
}

func (c *Client) RenamePublishProfile(platform, profileID, newName string) (interface{}, error) {
	var profile interface{}
	if err := c.Patch(fmt.Sprintf("/publish/v2/profiles/%s/%s", platform, profileID), map[string]string{"name": newName}, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *Client) GetPublishProfileSettings(platform, profileID string) (interface{}, error) {
	var settings interface{}
	if err := c.Get(fmt.Sprintf("/publish/v2/profiles/%s/%s", platform, profileID), &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *Client) ListPublishProfileVersions(platform, profileID string) (interface{}, error) {
	var versions interface{}
	if err := c.Get(fmt.Sprintf("/publish/v2/profiles/%s/%s/app-versions", platform, profileID), &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

func (c *Client) DeletePublishProfileVersion(platform, profileID, versionID string) error {
	return c.Delete(fmt.Sprintf("/publish/v2/profiles/%s/%s/app-versions/%s", platform, profileID, versionID), nil, nil)
}

func (c *Client) DownloadPublishProfileVersion(platform, profileID, versionID, outputPath string) error {
	path := fmt.Sprintf("/publish/v2/profiles/%s/%s/app-versions/%s?action=download", platform, profileID, versionID)
	return c.Download(path, outputPath)
}

func (c *Client) SetReleaseCandidate(platform, profileID, versionID string, releaseCandidate bool) (interface{}, error) {
	var result interface{}
	path := fmt.Sprintf("/publish/v2/profiles/%s/%s/app-versions/%s?action=releaseCandidate", platform, profileID, versionID)
	if err := c.Patch(path, map[string]bool{"ReleaseCandidate": releaseCandidate}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) UpdatePublishReleaseNote(platform, profileID, versionID, note string) (interface{}, error) {
	var result interface{}
	path := fmt.Sprintf("/publish/v2/profiles/%s/%s/app-versions/%s?action=releaseNotes", platform, profileID, versionID)
	if err := c.Patch(path, map[string]string{"summary": note}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) UploadAppVersion(platform, profileID, appPath string) (interface{}, error) {
	var result interface{}
	path := fmt.Sprintf("/publish/v2/profiles/%s/%s/app-versions", platform, profileID)
	if err := c.Upload(path, "File", appPath, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) StartExistingPublishFlow(platform, profileID, publishID string) (interface{}, error) {
	var result interface{}
	path := fmt.Sprintf("/publish/v2/profiles/%s/%s/publish/%s?action=restart", platform, profileID, publishID)
	if err := c.Post(path, map[string]string{}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) ListPublishVariableGroups() (interface{}, error) {
	var groups interface{}
	if err := c.Get("/publish/v2/variable-groups", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) GetPublishVariableGroup(groupID string) (interface{}, error) {
	var group interface{}
	if err := c.Get(fmt.Sprintf("/publish/v2/variable-groups/%s", groupID), &group); err != nil {
		return nil, err
	}
	return group, nil
}

func (c *Client) CreatePublishVariableGroup(name string) (interface{}, error) {
	var group interface{}
	if err := c.Post("/publish/v2/variable-groups", map[string]string{"name": name}, &group); err != nil {
		return nil, err
	}
	return group, nil
}

func (c *Client) DeletePublishVariableGroup(groupID string) error {
	return c.Delete(fmt.Sprintf("/publish/v2/variable-groups/%s", groupID), nil, nil)
}
