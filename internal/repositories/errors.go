package repositories

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrAdNotFound         = errors.New("ad not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCityNotFound       = errors.New("city not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrUserHasAds         = errors.New("user still owns ads")
)
