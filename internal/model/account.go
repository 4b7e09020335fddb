package model

// ExchangeCode is the account service's answer to an exchange-code request.
type ExchangeCode struct {
	Code             string `json:"code"`
	ExpiresInSeconds int    `json:"expiresInSeconds"`
	CreatingClientID string `json:"creatingClientId"`
}

// DeviceAuth is a freshly registered device authorization.
type DeviceAuth struct {
	DeviceID         string `json:"deviceId"`
	AccountID        string `json:"accountId"`
	Secret           string `json:"secret"`
	ExpiresInSeconds int    `json:"expiresInSeconds"`
}

// DeviceCredentials are the inputs of a device_auth grant.
type DeviceCredentials struct {
	AccountID string
	DeviceID  string
	Secret    string
}

// AccessToken is the oauth token endpoint's answer.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	AccountID   string `json:"account_id"`
	DisplayName string `json:"displayName"`
}

// Account is a public account record.
type Account struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}
