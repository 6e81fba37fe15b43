package api

import "fmt"

// Signing identity endpoints: certificates, provisioning profiles, keystores.

func (c *Client) ListCertificates() (interface{}, error) {
	var certificates interface{}
	if err := c.Get("/signing-identity/v2/certificates", &certificates); err != nil {
		return nil, err
	}
	return certificates, nil
}

func (c *Client) GetCertificate(bundleID string) (interface{}, error) {
	var certificate interface{}
	if err := c.Get(fmt.Sprintf("/signing-identity/v2/certificates/%s", bundleID), &certificate); err != nil {
		return nil, err
	}
	return certificate, nil
}

func (c *Client) CreateCertificateSigningRequest(name, email, countryCode string) (interface{}, error) {
	var csr interface{}
	body := map[string]string{"name": name, "email": email, "countryCode": countryCode}
	if err := c.Post("/signing-identity/v2/certificates/csr", body, &csr); err != nil {
		return nil, err
	}
	return csr, nil
}

func (c *Client) UploadCertificate(certPath, password string) (interface{}, error) {
	var certificate interface{}
	fields := map[string]string{"password": password}
	if err := c.Upload("/signing-identity/v2/certificates", "file", certPath, fields, &certificate); err != nil {
		return nil, err
	}
	return certificate, nil
}

func (c *Client) DownloadCertificate(certificateID, outputPath string) error {
	return c.Download(fmt.Sprintf("/signing-identity/v2/certificates/%s/download", certificateID), outputPath)
}

func (c *Client) RemoveCertificate(certificateID string) error {
	return c.Delete(fmt.Sprintf("/signing-identity/v2/certificates/%s", certificateID), nil, nil)
}

func (c *Client) ListProvisioningProfiles() (interface{}, error) {
	var profiles interface{}
	if err := c.Get("/signing-identity/v2/provisioning-profiles", &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *Client) GetProvisioningProfile(profileID string) (interface{}, error) {
	var profile interface{}
	if err := c.Get(fmt.Sprintf("/signing-identity/v2/provisioning-profiles/%s", profileID), &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *Client) UploadProvisioningProfile(profilePath string) (interface{}, error) {
	var profile interface{}
	if err := c.Upload("/signing-identity/v2/provisioning-profiles", "file", profilePath, nil, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *Client) DownloadProvisioningProfile(profileID, outputPath string) error {
	return c.Download(fmt.Sprintf("/signing-identity/v2/provisioning-profiles/%s/download", profileID), outputPath)
}

func (c *Client) RemoveProvisioningProfile(profileID string) error {
	return c.Delete(fmt.Sprintf("/signing-identity/v2/provisioning-profiles/%s", profileID), nil, nil)
}

func (c *Client) ListKeystores() (interface{}, error) {
	var keystores interface{}
	if err := c.Get("/signing-identity/v2/keystores", &keystores); err != nil {
		return nil, err
	}
	return keystores, nil
}

func (c *Client) GetKeystore(keystoreID string) (interface{}, error) {
	var keystore interface{}
	if err := c.Get(fmt.Sprintf("/signing-identity/v2/keystores/%s", keystoreID), &keystore); err != nil {
		return nil, err
	}
	return keystore, nil
}

func (c *Client) CreateKeystore(name, password, alias, aliasPassword string, validity int) (interface{}, error) {
	var keystore interface{}
	body := map[string]interface{}{
		"name":          name,
		"password":      password,
		"alias":         alias,
		"aliasPassword": aliasPassword,
		"validity":      validity,
	}
	if err := c.Post("/signing-identity/v2/keystores", body, &keystore); err != nil {
		return nil, err
	}
	return keystore, nil
}

func (c *Client) UploadKeystore(keystorePath, password, aliasPassword string) (interface{}, error) {
	var keystore interface{}
	fields := map[string]string{"password": password, "aliasPassword": aliasPassword}
	if err := c.Upload("/signing-identity/v2/keystores/upload", "file", keystorePath, fields, &keystore); err != nil {
		return nil, err
	}
	return keystore, nil
}

func (c *Client) DownloadKeystore(keystoreID, outputPath string) error {
	return c.Download(fmt.Sprintf("/signing-identity/v2/keystores/%s/download", keystoreID), outputPath)
}

func (c *Client) RemoveKeystore(keystoreID string) error {
	return c.Delete(fmt.Sprintf("/signing-identity/v2/keystores/%s", keystoreID), nil, nil)
}
