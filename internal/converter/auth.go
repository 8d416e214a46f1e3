package converter

import (
	"bookshelf_backend/internal/api/dto/auth"
	"bookshelf_backend/internal/model"
)

func ToSignup(req auth.SignupRequest, apiKey string) model.Signup {
	return model.Signup{
		ID:       req.ID,
		Password: req.Password,
		Name:     req.Name,
		APIKey:   apiKey,
	}
}

func ToCredentials(req auth.LoginRequest) model.Credentials {
	return model.Credentials{
		ID:       req.ID,
		Password: req.Password,
	}
}

func ToProfileUpdate(req auth.UpdateRequest, apiKey string) model.ProfileUpdate {
	return model.ProfileUpdate{
		Name:     req.Name,
		Password: req.Password,
		APIKey:   apiKey,
	}
}

func ToUserInfoResponse(info model.UserInfo) auth.UserInfoResponse {
	return auth.UserInfoResponse{
		ID:   info.ID,
		Name: info.Name,
	}
}
