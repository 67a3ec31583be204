package shops

import (
	"context"
	"errors"
	"fmt"

	shopRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/shop"
	"github.com/m04kA/SMC-ReservationService/internal/service/shops/models"
)

// Service сервис справочника магазинов
type Service struct {
	shopRepo ShopRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса магазинов
func NewService(shopRepo ShopRepository, logger Logger) *Service {
	return &Service{
		shopRepo: shopRepo,
		logger:   logger,
	}
}

// ListByArea возвращает все магазины, сгруппированные по районам
// Районы идут в порядке первого появления в выборке
func (s *Service) ListByArea(ctx context.Context) ([]models.AreaShopsResponse, error) {
	shops, err := s.shopRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListByArea: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByArea - repository error: %v", ErrInternal, err)
	}

	result := make([]models.AreaShopsResponse, 0)
	index := make(map[int64]int)

	for _, shop := range shops {
		i, ok := index[shop.AreaID]
		if !ok {
			index[shop.AreaID] = len(result)
			result = append(result, models.AreaShopsResponse{
				AreaID:   shop.AreaID,
				AreaName: shop.AreaName,
				Shop:     []models.ShopResponse{models.FromDomainShop(shop)},
			})
			continue
		}
		result[i].Shop = append(result[i].Shop, models.FromDomainShop(shop))
	}

	s.logger.Info("ListByArea: %d shops in %d areas", len(shops), len(result))
	return result, nil
}

// GetCourses возвращает курсы магазина
func (s *Service) GetCourses(ctx context.Context, shopID int64) ([]models.CourseResponse, error) {
	if shopID <= 0 {
		return nil, fmt.Errorf("%w: shopId must be positive", ErrInvalidInput)
	}

	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			s.logger.Warn("GetCourses: shop id=%d not found", shopID)
			return nil, ErrShopNotFound
		}
		s.logger.Error("GetCourses: repository error for shop id=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: GetCourses - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourses(shop.Courses), nil
}
