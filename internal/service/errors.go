package service

import (
	"errors"
	"strings"

	"github.com/RoyceAzure/lab/megano/internal/infra/repository/db"
	er "github.com/RoyceAzure/lab/megano/internal/pkg/rj_error"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthenticated    = er.New(er.UnauthenticatedCode, "")
	ErrInvalidCredentials = er.New(er.UnauthenticatedCode, "Invalid username or password")
	ErrUsernameTaken      = er.New(er.BadRequestCode, "This username is already in use.")
	ErrWrongPassword      = er.New(er.BadRequestCode, "Current password is incorrect")
	ErrEmailTaken         = er.New(er.BadRequestCode, "profile with this email already exists.")
	ErrPhoneTaken         = er.New(er.BadRequestCode, "profile with this phone already exists.")
	ErrInvalidRequest     = er.New(er.BadRequestCode, "")
	ErrInvalidPage        = er.New(er.DataNotExistsCode, "Invalid page.")

	ErrProductNotFound = er.New(er.DataNotExistsCode, "Product not found")
	ErrTagNotFound     = er.New(er.DataNotExistsCode, "Tag not found")
	ErrProfileNotFound = er.New(er.DataNotExistsCode, "Profile not found")
	ErrOrderNotFound   = er.New(er.DataNotExistsCode, "Order not found")

	ErrBasketEmpty       = er.New(er.BadRequestCode, "Basket is empty")
	ErrNotOnlinePayment  = er.New(er.BadRequestCode, "Order payment type is not online")
	ErrPaymentExists     = er.New(er.BadRequestCode, "Payment already exists for this order")
	ErrInvalidCardNumber = er.New(er.BadRequestCode, "Invalid card number")
	ErrPaymentFailed     = er.New(er.BadRequestCode, "Payment error")
	ErrNoPayment         = er.New(er.DataNotExistsCode, "No payment found")
)

// bcrypt 只接受 72 bytes 以內的密碼
const maxPasswordBytes = 72

const passwordTooLongMsg = "Ensure this field has no more than 72 bytes."

// checkPassword 空白或超過 bcrypt 上限回 400
func checkPassword(field, password string) error {
	switch {
	case strings.TrimSpace(password) == "":
		return invalid(map[string]string{field: "This field may not be blank."})
	case len(password) > maxPasswordBytes:
		return invalid(map[string]string{field: passwordTooLongMsg})
	}
	return nil
}

// hashFailure bcrypt 回報密碼過長時仍視為欄位錯誤
func hashFailure(field string, err error) error {
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return invalid(map[string]string{field: passwordTooLongMsg})
	}
	return internal(err)
}

// invalid 欄位錯誤統一回 400
func invalid(details map[string]string) *er.AnaError {
	return ErrInvalidRequest.WithDetails(details)
}

func internal(err error) *er.AnaError {
	return er.Wrap(er.InternalErrorCode, "", err)
}

// notFoundOr 查無資料回傳 notFound, 其餘視為內部錯誤
func notFoundOr(err error, notFound *er.AnaError) error {
	if errors.Is(err, db.ErrRecordNotFound) {
		return er.Wrap(notFound.Code, notFound.Message, err)
	}
	return internal(err)
}
