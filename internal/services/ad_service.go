package services

import (
	"context"
	"errors"
	"mime/multipart"

	"furnimarket_backend/internal/appErrors"
	"furnimarket_backend/internal/filters"
	"furnimarket_backend/internal/mapper"
	"furnimarket_backend/internal/models"
	"furnimarket_backend/internal/repositories"
	"furnimarket_backend/internal/services/dto"
	"furnimarket_backend/internal/specifications"

	"gorm.io/gorm"
)

// AdService implements the ad lifecycle and every ad read path. Writes that
// touch both the ad row and its attachment run inside one transaction; the
// filesystem cleanup happens after commit and is best-effort.
type AdService struct {
	db                *gorm.DB
	adRepo            repositories.AdRepository
	attachmentService *AttachmentService
	fileService       *FileService
	mapper            *mapper.Mapper
}

func NewAdService(
	db *gorm.DB,
	adRepo repositories.AdRepository,
	attachmentService *AttachmentService,
	fileService *FileService,
	m *mapper.Mapper,
) *AdService {
	return &AdService{
		db:                db,
		adRepo:            adRepo,
		attachmentService: attachmentService,
		fileService:       fileService,
		mapper:            m,
	}
}

// CreateAd persists a new ad for the given owner and, when an image is
// supplied, stores it and records the attachment in the same transaction.
func (s *AdService) CreateAd(ctx context.Context, userID uint, in dto.AdInsertDTO, image *multipart.FileHeader) (*dto.AdReadOnlyDTO, error) {
	if image != nil {
		if err := s.attachmentService.ValidateImageFile(image); err != nil {
			return nil, err
		}
	}

	var created *models.Ad
	err := s.db.Transaction(func(tx *gorm.DB) error {
		ad, err := s.mapper.AdInsertToModel(tx, in, userID)
		if err != nil {
			return err
		}
		if err := s.adRepo.Create(tx, ad); err != nil {
			return err
		}
		if image != nil {
			if _, err := s.attachmentService.AttachImage(ctx, tx, ad, image); err != nil {
				return err
			}
		}
		created = ad
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetAdByID(created.ID)
}

// UpdateAd modifies an existing ad. Only the owner or an admin may update;
// a new image replaces the previous one.
func (s *AdService) UpdateAd(ctx context.Context, adID, actorID uint, actorRole models.UserRole, in dto.AdInsertDTO, image *multipart.FileHeader) (*dto.AdReadOnlyDTO, error) {
	if image != nil {
		if err := s.attachmentService.ValidateImageFile(image); err != nil {
			return nil, err
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ad, err := s.adRepo.FindByID(tx, adID)
		if err != nil {
			return translateAdError(err)
		}
		if err := requireOwnerOrAdmin(ad.UserID, actorID, actorRole); err != nil {
			return err
		}
		if err := s.mapper.ApplyAdInsert(tx, ad, in); err != nil {
			return err
		}
		if err := s.adRepo.Save(tx, ad); err != nil {
			return err
		}
		if image != nil {
			if _, err := s.attachmentService.AttachImage(ctx, tx, ad, image); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetAdByID(adID)
}

// DeleteAd removes an ad together with its attachment record, then wipes
// the image directory. Only the owner or an admin may delete.
func (s *AdService) DeleteAd(ctx context.Context, adID, actorID uint, actorRole models.UserRole) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		ad, err := s.adRepo.FindByID(tx, adID)
		if err != nil {
			return translateAdError(err)
		}
		if err := requireOwnerOrAdmin(ad.UserID, actorID, actorRole); err != nil {
			return err
		}
		if err := s.attachmentService.DetachImage(ctx, tx, adID); err != nil {
			return err
		}
		return s.adRepo.Delete(tx, ad)
	})
	if err != nil {
		return err
	}

	s.fileService.DeleteAdImage(ctx, adID)
	return nil
}

func (s *AdService) GetAdByID(id uint) (*dto.AdReadOnlyDTO, error) {
	ad, err := s.adRepo.FindByID(s.db, id)
	if err != nil {
		return nil, translateAdError(err)
	}
	out := s.mapper.AdToReadOnly(ad)
	return &out, nil
}

func (s *AdService) GetAvailableAds() ([]dto.AdReadOnlyDTO, error) {
	ads, err := s.adRepo.FindByIsAvailableTrue(s.db)
	if err != nil {
		return nil, err
	}
	return s.mapper.AdsToReadOnly(ads), nil
}

func (s *AdService) GetAdsByUserID(userID uint) ([]dto.AdReadOnlyDTO, error) {
	ads, err := s.adRepo.FindByUserID(s.db, userID)
	if err != nil {
		return nil, err
	}
	return s.mapper.AdsToReadOnly(ads), nil
}

// GetPaginatedAds returns a page of all ads ordered by id ascending.
func (s *AdService) GetPaginatedAds(page, pageSize *int) (*filters.Paginated, error) {
	f := filters.GenericFilters{Page: page, PageSize: pageSize}
	return s.paginate(f)
}

// GetPaginatedSortedAds returns a page of all ads with caller-chosen order.
func (s *AdService) GetPaginatedSortedAds(f filters.GenericFilters) (*filters.Paginated, error) {
	return s.paginate(f)
}

func (s *AdService) paginate(f filters.GenericFilters) (*filters.Paginated, error) {
	total, err := s.adRepo.CountAll(s.db)
	if err != nil {
		return nil, err
	}
	ads, err := s.adRepo.FindAll(s.db, f.Limit(), f.Offset(), f.OrderClause())
	if err != nil {
		return nil, err
	}
	return filters.NewPaginated(s.mapper.AdsToReadOnly(ads), total, f.PageOrDefault(), f.PageSizeOrDefault()), nil
}

// GetAdsFiltered returns every ad matching the filter, unpaged. A nil
// filter matches everything.
func (s *AdService) GetAdsFiltered(f *filters.AdFilters, currentUserID uint) ([]dto.AdReadOnlyDTO, error) {
	if f == nil {
		f = &filters.AdFilters{}
	}
	ads, err := s.adRepo.FindWithFilter(s.db, buildAdSpec(*f, currentUserID))
	if err != nil {
		return nil, err
	}
	return s.mapper.AdsToReadOnly(ads), nil
}

// GetAdsFilteredPaginated returns one page of ads matching the filter,
// together with the total match count.
func (s *AdService) GetAdsFilteredPaginated(f filters.AdFilters, currentUserID uint) (*filters.Paginated, error) {
	spec := buildAdSpec(f, currentUserID)
	ads, total, err := s.adRepo.FindWithFilterPaginated(s.db, spec, f.OrderClause(), f.Limit(), f.Offset())
	if err != nil {
		return nil, err
	}
	return filters.NewPaginated(s.mapper.AdsToReadOnly(ads), total, f.PageOrDefault(), f.PageSizeOrDefault()), nil
}

func buildAdSpec(f filters.AdFilters, currentUserID uint) specifications.Specification {
	return specifications.Compose(
		specifications.AdTitleLike(f.Title),
		specifications.AdDescriptionLike(f.Description),
		specifications.AdCategoryIs(f.CategoryID),
		specifications.AdCategoryNameLike(f.CategoryName),
		specifications.AdConditionIs(f.Condition),
		specifications.AdPriceBetween(f.MinPrice, f.MaxPrice),
		specifications.AdCityIs(f.CityID),
		specifications.AdCityNameLike(f.CityName),
		specifications.AdUserIs(f.UserID),
		specifications.AdIsAvailable(f.IsAvailable),
		specifications.AdIsMyAds(f.MyAds, currentUserID),
	)
}

func translateAdError(err error) error {
	if errors.Is(err, repositories.ErrAdNotFound) {
		return appErrors.NotFound("ad", "ad not found")
	}
	return err
}

func requireOwnerOrAdmin(ownerID, actorID uint, actorRole models.UserRole) error {
	if actorID == ownerID || actorRole == models.UserRoleAdmin {
		return nil
	}
	return appErrors.ErrForbidden
}
