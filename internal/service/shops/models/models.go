package models

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Response модели

// AreaShopsResponse магазины одного района
type AreaShopsResponse struct {
	AreaID   int64          `json:"areaId"`
	AreaName string         `json:"areaName"`
	Shop     []ShopResponse `json:"shop"`
}

// ShopResponse карточка магазина в списке
type ShopResponse struct {
	ShopID      int64  `json:"shopId"`
	ShopName    string `json:"shopName"`
	Address     string `json:"shopAddress"`
	OpenTime    string `json:"openTime"`
	CloseTime   string `json:"closeTime"`
	SeatsNumber int    `json:"seatsNumber"`
}

// CourseResponse курс магазина
type CourseResponse struct {
	CourseID      int64           `json:"courseId"`
	CourseName    string          `json:"courseName"`
	Price         decimal.Decimal `json:"price"`
	CourseMinutes int             `json:"courseMinutes"`
}

// FromDomainShop конвертирует domain.Shop в ShopResponse
func FromDomainShop(s *domain.Shop) ShopResponse {
	return ShopResponse{
		ShopID:      s.ID,
		ShopName:    s.Name,
		Address:     s.Address,
		OpenTime:    s.OpenTime.String(),
		CloseTime:   s.CloseTime.String(),
		SeatsNumber: s.SeatsNumber,
	}
}

// FromDomainCourses конвертирует курсы магазина
func FromDomainCourses(courses []domain.Course) []CourseResponse {
	result := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		result = append(result, CourseResponse{
			CourseID:      c.ID,
			CourseName:    c.Name,
			Price:         c.Price,
			CourseMinutes: c.Duration,
		})
	}
	return result
}
