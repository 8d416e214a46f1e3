package model

type AuthData struct {
	AccessToken  string
	RefreshToken string
}

type Credentials struct {
	ID       string
	Password string
}

type Signup struct {
	ID       string
	Password string
	Name     string
	APIKey   string
}
