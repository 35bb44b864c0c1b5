package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pawsitiveapps/pet-scheduler/internal/domain/catalog"
	"github.com/pawsitiveapps/pet-scheduler/internal/httperr"
	"github.com/pawsitiveapps/pet-scheduler/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) ListActive(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {

		return nil, fmt.Errorf("list active services: %w", err)
	}
	return services, nil
}

func (r *ServiceGormRepository) ListAll(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&services).Error; err != nil {

		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (r *ServiceGormRepository) Create(ctx context.Context, in catalog.CreateServiceInput) (*models.Service, error) {
	if strings.TrimSpace(in.Name) == "" || in.DurationMinutes <= 0 {
		return nil, httperr.ErrBusiness(catalog.ErrCodeValidation)
	}

	service := models.Service{
		Name:            in.Name,
		DurationMinutes: in.DurationMinutes,
		IsActive:        true,
	}

	if err := r.db.WithContext(ctx).Create(&service).Error; err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return &service, nil
}

func (r *ServiceGormRepository) Update(ctx context.Context, id string, in catalog.UpdateServiceInput) (*models.Service, error) {
	// Explicit nulls are rejected up front so a bad payload never half-applies.
	if (in.Name.Set && in.Name.Null) ||
		(in.DurationMinutes.Set && in.DurationMinutes.Null) ||
		(in.IsActive.Set && in.IsActive.Null) {
		return nil, httperr.ErrBusiness(catalog.ErrCodeValidation)
	}
	if in.Name.Present() && strings.TrimSpace(in.Name.Value) == "" {
		return nil, httperr.ErrBusiness(catalog.ErrCodeValidation)
	}
	if in.DurationMinutes.Present() && in.DurationMinutes.Value <= 0 {
		return nil, httperr.ErrBusiness(catalog.ErrCodeValidation)
	}

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&service).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(catalog.ErrCodeNotFound)
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	if in.Name.Present() {
		service.Name = in.Name.Value
	}
	if in.DurationMinutes.Present() {
		service.DurationMinutes = in.DurationMinutes.Value
	}
	if in.IsActive.Present() {
		service.IsActive = in.IsActive.Value
	}

	if err := r.db.WithContext(ctx).Save(&service).Error; err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return &service, nil
}

func (r *ServiceGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Service{})

	if res.Error != nil {
		return fmt.Errorf("delete service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(catalog.ErrCodeNotFound)
	}
	return nil
}
