package api

import "fmt"

// Testing distribution endpoints. These are pass-throughs; responses are
// handed back for printing rather than decoded into domain types.

func (c *Client) ListDistributionProfiles() (interface{}, error) {
	var profiles interface{}
	if err := c.Get("/distribution/v2/profiles", &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *Client) GetDistributionProfile(profileID string) (interface{}, error) {
	var profile interface{}
	if err := c.Get(fmt.Sprintf("/distribution/v2/profiles/%s", profileID), &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *Client) CreateDistributionProfile(name string) (interface{}, error) {
	var profile interface{}
	if err := c.Post("/distribution/v1/profiles", map[string]string{"name": name}, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *Client) GetDistributionProfileSettings(profileID string) (interface{}, error) {
	var settings interface{}
	if err := c.Get(fmt.Sprintf("/distribution/v2/profiles/%s/settings", profileID), &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *Client) UpdateDistributionAutoSendSettings(profileID string, testingGroupIDs []string, autoSendEnabled bool) (interface{}, error) {
	var settings interface{}
	body := map[string]interface{}{
		"testingGroupIds": testingGroupIDs,
		"autoSendEnabled": autoSendEnabled,
	}
	if err := c.Patch(fmt.Sprintf("/distribution/v2/profiles/%s/settings", profileID), body, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *Client) UploadTestingDistribution(profileID, appPath, message string) (interface{}, error) {
	var result interface{}
	fields := map[string]string{}
	if message != "" {
		fields["message"] = message
	}
	path := fmt.Sprintf("/distribution/v1/profiles/%s/app-versions", profileID)
	if err := c.Upload(path, "File", appPath, fields, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) UpdateTestingDistributionReleaseNotes(profileID, versionID, message string) (interface{}, error) {
	var result interface{}
	path := fmt.Sprintf("/distribution/v1/profiles/%s/app-versions/%s?action=updateMessage", profileID, versionID)
	if err := c.Patch(path, map[string]string{"message": message}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) ListTestingGroups() (interface{}, error) {
	var groups interface{}
	if err := c.Get("/distribution/v2/testing-groups", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) GetTestingGroup(groupID string) (interface{}, error) {
	var group interface{}
	if err := c.Get(fmt.Sprintf("/distribution/v2/testing-groups/%s", groupID), &group); err != nil {
		return nil, err
	}
	return group, nil
}

func (c *Client) CreateTestingGroup(name string) (interface{}, error) {
	var group interface{}
	if err := c.Post("/distribution/v2/testing-groups", map[string]string{"name": name}, &group); err != nil {
		return nil, err
	}
	return group, nil
}

func (c *Client) DeleteTestingGroup(groupID string) error {
	return c.Delete(fmt.Sprintf("/distribution/v2/testing-groups/%s", groupID), nil, nil)
}

func (c *Client) AddTesterToTestingGroup(groupID, testerEmail string) error {
	return c.Post(fmt.Sprintf("/distribution/v2/testing-groups/%s/testers", groupID), []string{testerEmail}, nil)
}

func (c *Client) RemoveTesterFromTestingGroup(groupID, testerEmail string) error {
	return c.Delete(fmt.Sprintf("/distribution/v2/testing-groups/%s/testers", groupID), []string{testerEmail}, nil)
}
