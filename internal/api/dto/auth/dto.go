package auth

type SignupRequest struct {
	ID       string `json:"id"`   // Логин пользователя
	Password string `json:"pw"`   // Пароль в открытом виде
	Name     string `json:"name"` // Отображаемое имя
}

type LoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"pw"`
}

type LoginResponse struct {
	UserID string `json:"userId"`
}

type UpdateRequest struct {
	Name     string `json:"name"` // Пусто - не меняем
	Password string `json:"pw"`   // Пусто - не меняем
}

type DeleteRequest struct {
	Password string `json:"pw"`
}

type ValidateResponse struct {
	UserID string `json:"userId"`
}

type UserInfoResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
