package packets

type TokenResponse struct {
	Token string `json:"token"`
}

type RefreshResponse struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}
