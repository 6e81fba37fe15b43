package api

import "fmt"

// Enterprise app store endpoints.

func (c *Client) ListEnterpriseProfiles() (interface{}, error) {
	var profiles interface{}
	if err := c.Get("/store/v2/profiles", &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// ListEnterpriseAppVersions lists versions for a profile. publishType is
// "": all, "1": beta, "2": live, mirroring the store API query values.
func (c *Client) ListEnterpriseAppVersions(profileID, publishType string) (interface{}, error) {
	path := fmt.Sprintf("/store/v2/profiles/%s/app-versions", profileID)
	switch publishType {
	case "1":
		path += "?publishtype=Beta"
	case "2":
		path += "?publishtype=Live"
	}
	var versions interface{}
	if err := c.Get(path, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

func (c *Client) PublishEnterpriseAppVersion(profileID, versionID, summary, releaseNotes, publishType string) (interface{}, error) {
	var result interface{}
	path := fmt.Sprintf("/store/v2/profiles/%s/app-versions/%s?action=publish", profileID, versionID)
	body := map[string]string{
		"summary":      summary,
		"releaseNotes": releaseNotes,
		"publishType":  publishType,
	}
	if err := c.Patch(path, body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) UnpublishEnterpriseAppVersion(profileID, versionID string) (interface{}, error) {
	var result interface{}
	path := fmt.Sprintf("/store/v2/profiles/%s/app-versions/%s?action=unpublish", profileID, versionID)
	if err := c.Patch(path, map[string]string{}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) RemoveEnterpriseAppVersion(profileID, versionID string) error {
	return c.Delete(fmt.Sprintf("/store/v2/profiles/%s/app-versions/%s", profileID, versionID), nil, nil)
}

func (c *Client) NotifyEnterpriseAppVersion(profileID, versionID, subject, message string) (interface{}, error) {
	var result interface{}
	path := fmt.Sprintf("/store/v2/profiles/%s/app-versions/%s?action=notify", profileID, versionID)
	if err := c.Post(path, map[string]string{"subject": subject, "message": message}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetEnterpriseDownloadLink(profileID, versionID string) (interface{}, error) {
	var link interface{}
	path := fmt.Sprintf("/store/v2/profiles/%s/app-versions/%s?action=download", profileID, versionID)
	if err := c.Get(path, &link); err != nil {
		return nil, err
	}
	return link, nil
}

func (c *Client) UploadEnterpriseApp(profileID, appPath, name, summary string) (interface{}, error) {
	var result interface{}
	fields := map[string]string{"name": name, "summary": summary}
	path := "/store/v2/app-versions"
	if profileID != "" {
		path = fmt.Sprintf("/store/v2/profiles/%s/app-versions", profileID)
	}
	if err := c.Upload(path, "File", appPath, fields, &result); err != nil {
		return nil, err
	}
	return result, nil
}
