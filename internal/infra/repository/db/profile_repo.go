package db

import (
	"context"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"gorm.io/gorm"
)

type ProfileRepo struct {
	db *DbDao
}

func NewProfileRepo(db *DbDao) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) GetProfileByID(ctx context.Context, id uint) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).Preload("Avatar").First(&profile, id).Error
	if err != nil {
		return nil, translateErr(err, "get profile %d", id)
	}
	return &profile, nil
}

func (r *ProfileRepo) GetProfileByUserID(ctx context.Context, userID uint) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).Preload("Avatar").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, translateErr(err, "get profile of user %d", userID)
	}
	return &profile, nil
}

func (r *ProfileRepo) ExistsProfileEmail(ctx context.Context, email string, excludeProfileID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("email = ? AND id <> ?", email, excludeProfileID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProfileRepo) ExistsProfilePhone(ctx context.Context, phone string, excludeProfileID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("phone = ? AND id <> ?", phone, excludeProfileID).
		Count(&count).Error
	return count > 0, err
}

// UpdateProfile 只更新聯絡欄位, nil 的 email/phone 會寫入 NULL
func (r *ProfileRepo) UpdateProfile(ctx context.Context, profile *model.Profile) error {
	err := r.db.WithContext(ctx).Model(profile).
		Select("full_name", "email", "phone").
		Updates(map[string]any{
			"full_name": profile.FullName,
			"email":     profile.Email,
			"phone":     profile.Phone,
		}).Error
	return translateErr(err, "update profile %d", profile.ID)
}

// ReplaceAvatar 回傳舊圖片路徑, 由呼叫端刪除檔案
func (r *ProfileRepo) ReplaceAvatar(ctx context.Context, profileID uint, avatar *model.Avatar) (string, error) {
	var oldSrc string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile model.Profile
		if err := tx.Preload("Avatar").First(&profile, profileID).Error; err != nil {
			return err
		}
		if profile.Avatar != nil {
			oldSrc = profile.Avatar.Src
			avatar.ID = profile.Avatar.ID
			return tx.Save(avatar).Error
		}
		if err := tx.Create(avatar).Error; err != nil {
			return err
		}
		return tx.Model(&model.Profile{}).Where("id = ?", profileID).Update("avatar_id", avatar.ID).Error
	})
	if err != nil {
		return "", translateErr(err, "replace avatar of profile %d", profileID)
	}
	return oldSrc, nil
}

func (r *ProfileRepo) UpdateAvatarAlt(ctx context.Context, profileID uint, alt string) error {
	var profile model.Profile
	if err := r.db.WithContext(ctx).First(&profile, profileID).Error; err != nil {
		return translateErr(err, "get profile %d", profileID)
	}
	if profile.AvatarID == nil {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Avatar{}).Where("id = ?", *profile.AvatarID).Update("alt", alt).Error
}
