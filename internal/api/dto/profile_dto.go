package dto

import "github.com/RoyceAzure/lab/megano/internal/domain/model"

type ProfileDTO struct {
	FullName string    `json:"fullName"`
	Email    *string   `json:"email"`
	Phone    *string   `json:"phone"`
	Avatar   *ImageDTO `json:"avatar"`
}

// UpdateProfileDTO 欄位不帶代表不修改, avatar 只能改 alt, 圖片走 /profile/avatar
type UpdateProfileDTO struct {
	FullName *string          `json:"fullName" validate:"omitempty,max=100"`
	Email    *string          `json:"email" validate:"omitempty,email,max=254"`
	Phone    *string          `json:"phone" validate:"omitempty,max=15"`
	Avatar   *UpdateAvatarDTO `json:"avatar"`
}

type UpdateAvatarDTO struct {
	Alt *string `json:"alt" validate:"omitempty,max=128"`
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,max=72"`
}

type AvatarResponseDTO struct {
	Avatar *ImageDTO `json:"avatar"`
}

func NewProfileDTO(p *model.Profile) ProfileDTO {
	res := ProfileDTO{
		FullName: p.FullName,
		Email:    p.Email,
		Phone:    p.Phone,
	}
	if p.Avatar != nil {
		res.Avatar = &ImageDTO{Src: p.Avatar.Src, Alt: p.Avatar.Alt}
	}
	return res
}
