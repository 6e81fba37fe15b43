package api

import (
	"fmt"
	"net/url"
)

// Organization and identity endpoints.

func (c *Client) ListOrganizations() (interface{}, error) {
	var organizations interface{}
	if err := c.Get("/identity/v1/organizations", &organizations); err != nil {
		return nil, err
	}
	return organizations, nil
}

func (c *Client) GetOrganization(organizationID string) (interface{}, error) {
	var organization interface{}
	if err := c.Get(fmt.Sprintf("/identity/v1/organizations/%s", organizationID), &organization); err != nil {
		return nil, err
	}
	return organization, nil
}

func (c *Client) ListOrganizationUsers(organizationID string) (interface{}, error) {
	var users interface{}
	if err := c.Get(fmt.Sprintf("/identity/v1/organizations/%s/users", organizationID), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) InviteUser(organizationID, email string, roles []string) (interface{}, error) {
	var result interface{}
	path := fmt.Sprintf("/identity/v1/users?action=invite&organizationId=%s", url.QueryEscape(organizationID))
	body := map[string]interface{}{
		"userEmail": email,
		"organizationsAndRoles": []map[string]interface{}{
			{"organizationId": organizationID, "roles": roles},
		},
	}
	if err := c.Patch(path, body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) ReInviteUser(organizationID, email string) (interface{}, error) {
	var result interface{}
	path := fmt.Sprintf("/identity/v1/organizations/%s/invitations?action=re-invite", organizationID)
	if err := c.Patch(path, map[string]string{"userEmail": email}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) RemoveInvitation(organizationID, email string) error {
	path := fmt.Sprintf("/identity/v1/organizations/%s/invitations", organizationID)
	return c.Delete(path, map[string]string{"userEmail": email}, nil)
}

func (c *Client) RemoveUser(organizationID, userID string) error {
	path := fmt.Sprintf("/identity/v1/organizations/%s?action=remove&userId=%s", organizationID, url.QueryEscape(userID))
	return c.Delete(path, nil, nil)
}

func (c *Client) GetUserRoles(organizationID, userID string) (interface{}, error) {
	var roles interface{}
	path := fmt.Sprintf("/identity/v1/organizations/%s/users/%s/roles", organizationID, userID)
	if err := c.Get(path, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (c *Client) AddUserRoles(organizationID, userID string, roles []string) (interface{}, error) {
	var result interface{}
	path := fmt.Sprintf("/identity/v1/organizations/%s/users/%s/roles", organizationID, userID)
	if err := c.Post(path, map[string]interface{}{"roles": roles}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) SetUserRoles(organizationID, userID string, roles []string) (interface{}, error) {
	var result interface{}
	path := fmt.Sprintf("/identity/v1/organizations/%s/users/%s/roles", organizationID, userID)
	if err := c.Put(path, map[string]interface{}{"roles": roles}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) RemoveUserRoles(organizationID, userID string, roles []string) error {
	path := fmt.Sprintf("/identity/v1/organizations/%s/users/%s/roles", organizationID, userID)
	return c.Delete(path, map[string]interface{}{"roles": roles}, nil)
}

func (c *Client) ClearUserRoles(organizationID, userID string) error {
	path := fmt.Sprintf("/identity/v1/organizations/%s/users/%s/roles", organizationID, userID)
	return c.Delete(path, nil, nil)
}

func (c *Client) CreateSubOrganization(name string) (interface{}, error) {
	var organization interface{}
	if err := c.Post("/identity/v1/organizations/current/sub-organizations", map[string]string{"name": name}, &organization); err != nil {
		return nil, err
	}
	return organization, nil
}
