package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/megano/internal/api/dto"
	"github.com/RoyceAzure/lab/megano/internal/constants"
	"github.com/RoyceAzure/lab/megano/internal/pkg/api"
	"github.com/RoyceAzure/lab/megano/internal/service"
	"github.com/rs/zerolog"
)

type ProfileHandler struct {
	profileService service.IProfileService
	logger         *zerolog.Logger
}

func NewProfileHandler(profileService service.IProfileService, logger *zerolog.Logger) *ProfileHandler {
	if profileService == nil {
		panic("profileService cannot be nil")
	}
	return &ProfileHandler{
		profileService: profileService,
		logger:         nopIfNil(logger),
	}
}

// @Summary get profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileDTO "success"
// @Failure 401 {object} api.ResponseError "Authentication credentials were not provided"
// @Router /profile [get]
func (p *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := p.profileService.GetProfile(r.Context(), currentSession(r).ProfileID)
	if err != nil {
		writeError(w, r, p.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewProfileDTO(profile))
}

// @Summary update profile
// @Description partial update, empty email/phone clears the field
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileDTO true "profile fields"
// @Success 200 {object} dto.ProfileDTO "success"
// @Failure 400 {object} api.ResponseError "Invalid request"
// @Failure 401 {object} api.ResponseError "Authentication credentials were not provided"
// @Router /profile [post]
func (p *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in dto.UpdateProfileDTO
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, p.logger, err)
		return
	}
	if err := validateDTO(in); err != nil {
		writeError(w, r, p.logger, err)
		return
	}

	update := service.ProfileUpdate{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
	}
	if in.Avatar != nil {
		update.AvatarAlt = in.Avatar.Alt
	}

	profile, err := p.profileService.UpdateProfile(r.Context(), currentSession(r).ProfileID, update)
	if err != nil {
		writeError(w, r, p.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewProfileDTO(profile))
}

// @Summary change password
// @Tags profile
// @Accept json
// @Produce json
// @Param password body dto.ChangePasswordDTO true "current and new password"
// @Success 200 {object} api.ResponseMessage "Password updated successfully"
// @Failure 400 {object} api.ResponseError "Current password is incorrect"
// @Failure 401 {object} api.ResponseError "Authentication credentials were not provided"
// @Router /profile/password [post]
func (p *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var in dto.ChangePasswordDTO
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, p.logger, err)
		return
	}
	if err := validateDTO(in); err != nil {
		writeError(w, r, p.logger, err)
		return
	}

	if err := p.profileService.ChangePassword(r.Context(), currentSession(r).UserID, in.CurrentPassword, in.NewPassword); err != nil {
		writeError(w, r, p.logger, err)
		return
	}
	api.MessageJSON(w, http.StatusOK, "Password updated successfully")
}

// @Summary upload avatar
// @Description replaces the previous avatar file
// @Tags profile
// @Accept mpfd
// @Produce json
// @Param avatar formData file true "image file"
// @Success 200 {object} dto.AvatarResponseDTO "success"
// @Failure 400 {object} api.ResponseError "Invalid request"
// @Failure 401 {object} api.ResponseError "Authentication credentials were not provided"
// @Router /profile/avatar [post]
func (p *ProfileHandler) Avatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadSize)
	if err := r.ParseMultipartForm(constants.MaxUploadSize); err != nil {
		badRequest(w, map[string]string{"avatar": "The submitted data was not a file."})
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("avatar")
	if err != nil {
		badRequest(w, map[string]string{"avatar": "No file was submitted."})
		return
	}
	defer file.Close()

	profile, err := p.profileService.UpdateAvatar(r.Context(), currentSession(r).ProfileID, header.Filename, file)
	if err != nil {
		writeError(w, r, p.logger, err)
		return
	}
	res := dto.AvatarResponseDTO{}
	if profile.Avatar != nil {
		res.Avatar = &dto.ImageDTO{Src: profile.Avatar.Src, Alt: profile.Avatar.Alt}
	}
	api.SuccessJSON(w, http.StatusOK, res)
}
