package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/megano/internal/infra/storage"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const avatarDir = "avatars"

// ProfileUpdate nil 欄位代表不修改, 空字串的 email/phone 會清成 NULL
type ProfileUpdate struct {
	FullName  *string
	Email     *string
	Phone     *string
	AvatarAlt *string
}

type IProfileService interface {
	GetProfile(ctx context.Context, profileID uint) (*model.Profile, error)
	UpdateProfile(ctx context.Context, profileID uint, in ProfileUpdate) (*model.Profile, error)
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	UpdateAvatar(ctx context.Context, profileID uint, filename string, r io.Reader) (*model.Profile, error)
}

type ProfileService struct {
	userRepo    db.IUserRepository
	profileRepo db.IProfileRepository
	media       storage.MediaStore
	logger      *zerolog.Logger
	hashCost    int
}

func NewProfileService(userRepo db.IUserRepository, profileRepo db.IProfileRepository, media storage.MediaStore, logger *zerolog.Logger) *ProfileService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &ProfileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		media:       media,
		logger:      logger,
		hashCost:    bcrypt.DefaultCost,
	}
}

func (p *ProfileService) GetProfile(ctx context.Context, profileID uint) (*model.Profile, error) {
	profile, err := p.profileRepo.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, notFoundOr(err, ErrProfileNotFound)
	}
	return profile, nil
}

func optional(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

// UpdateProfile 部分更新, email/phone 唯一性排除自己
//
// 錯誤:
//   - 400: 欄位錯誤或 email/phone 已被其他 profile 使用
//   - 404: profile 不存在
func (p *ProfileService) UpdateProfile(ctx context.Context, profileID uint, in ProfileUpdate) (*model.Profile, error) {
	profile, err := p.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	problems := map[string]string{}
	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		switch {
		case name == "":
			problems["fullName"] = "This field may not be blank."
		case len([]rune(name)) > 100:
			problems["fullName"] = "Ensure this field has no more than 100 characters."
		default:
			profile.FullName = name
		}
	}
	if in.Email != nil {
		profile.Email = optional(in.Email)
		if profile.Email != nil {
			taken, err := p.profileRepo.ExistsProfileEmail(ctx, *profile.Email, profileID)
			if err != nil {
				return nil, internal(err)
			}
			if taken {
				problems["email"] = ErrEmailTaken.Message
			}
		}
	}
	if in.Phone != nil {
		profile.Phone = optional(in.Phone)
		if profile.Phone != nil {
			if len(*profile.Phone) > 15 {
				problems["phone"] = "Ensure this field has no more than 15 characters."
			} else {
				taken, err := p.profileRepo.ExistsProfilePhone(ctx, *profile.Phone, profileID)
				if err != nil {
					return nil, internal(err)
				}
				if taken {
					problems["phone"] = ErrPhoneTaken.Message
				}
			}
		}
	}
	if len(problems) > 0 {
		return nil, invalid(problems)
	}

	if err := p.profileRepo.UpdateProfile(ctx, profile); err != nil {
		if errors.Is(err, db.ErrDuplicatedKey) {
			return nil, p.takenContacts(ctx, profile)
		}
		return nil, internal(err)
	}
	if in.AvatarAlt != nil {
		if err := p.profileRepo.UpdateAvatarAlt(ctx, profileID, *in.AvatarAlt); err != nil {
			return nil, internal(err)
		}
	}
	return p.GetProfile(ctx, profileID)
}

// takenContacts 寫入時撞到唯一索引, 重新查出是 email 還是 phone 被搶先使用
func (p *ProfileService) takenContacts(ctx context.Context, profile *model.Profile) error {
	problems := map[string]string{}
	if profile.Email != nil {
		if taken, err := p.profileRepo.ExistsProfileEmail(ctx, *profile.Email, profile.ID); err == nil && taken {
			problems["email"] = ErrEmailTaken.Message
		}
	}
	if profile.Phone != nil {
		if taken, err := p.profileRepo.ExistsProfilePhone(ctx, *profile.Phone, profile.ID); err == nil && taken {
			problems["phone"] = ErrPhoneTaken.Message
		}
	}
	switch {
	case problems["email"] != "":
		return ErrEmailTaken.WithDetails(problems)
	case problems["phone"] != "":
		return ErrPhoneTaken.WithDetails(problems)
	}
	return ErrEmailTaken.WithDetails(map[string]string{"email": ErrEmailTaken.Message})
}

// ChangePassword 需要先驗證目前密碼
func (p *ProfileService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := p.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return notFoundOr(err, ErrProfileNotFound)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrWrongPassword.WithDetails(map[string]string{"currentPassword": ErrWrongPassword.Message})
	}
	if err := checkPassword("newPassword", newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), p.hashCost)
	if err != nil {
		return hashFailure("newPassword", err)
	}
	if err := p.userRepo.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return internal(err)
	}
	p.logger.Info().Uint("user_id", userID).Msg("password changed")
	return nil
}

// UpdateAvatar 新檔寫入成功才替換紀錄, 舊檔最後刪除
func (p *ProfileService) UpdateAvatar(ctx context.Context, profileID uint, filename string, r io.Reader) (*model.Profile, error) {
	profile, err := p.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	src, err := p.media.Save(ctx, avatarDir, filename, r)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedMedia) {
			return nil, invalid(map[string]string{"avatar": "Upload a valid image."})
		}
		return nil, internal(err)
	}

	alt := profile.FullName
	if profile.Avatar != nil && profile.Avatar.Alt != "" {
		alt = profile.Avatar.Alt
	}
	oldSrc, err := p.profileRepo.ReplaceAvatar(ctx, profileID, &model.Avatar{Src: src, Alt: alt})
	if err != nil {
		if derr := p.media.Delete(ctx, src); derr != nil {
			p.logger.Warn().Err(derr).Str("src", src).Msg("failed to remove orphan avatar")
		}
		return nil, notFoundOr(err, ErrProfileNotFound)
	}
	if oldSrc != "" && oldSrc != src {
		if err := p.media.Delete(ctx, oldSrc); err != nil {
			p.logger.Warn().Err(err).Str("src", oldSrc).Msg("failed to remove previous avatar")
		}
	}
	return p.GetProfile(ctx, profileID)
}

var _ IProfileService = (*ProfileService)(nil)
