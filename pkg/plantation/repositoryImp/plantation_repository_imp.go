package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"alqualis/entities"
	"alqualis/pkg/faults"
	"alqualis/pkg/plantation/repository"
)

type plantationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantationRepository { return &plantationRepo{db} }

func (r *plantationRepo) Create(ctx context.Context, p *entities.Plantation, faceIDs []int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return linkFaces(tx, p.ID, faceIDs)
	})
	if err != nil {
		p.ID = 0
	}
	return faults.Storage("insert plantacao", err)
}

func (r *plantationRepo) Update(ctx context.Context, p *entities.Plantation, faceIDs []int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Plantation{}).Where("id_plantacao = ?", p.ID).Updates(map[string]any{
			"id_produtor":    p.ProducerID,
			"id_variedade":   p.VarietyID,
			"id_comunidade":  p.CommunityID,
			"id_municipio":   p.MunicipalityID,
			"nome_plantacao": p.Name,
			"nome_talhao":    p.Talhao,
			"latitude":       p.Latitude,
			"longitude":      p.Longitude,
			"altitude_media": p.Altitude,
			"meses_colheita": p.HarvestMonths,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return faults.New(faults.NotFoundError, fmt.Sprintf("plantacao %d not found", p.ID))
		}
		if err := tx.Where("id_plantacao = ?", p.ID).Delete(&entities.PlantationFace{}).Error; err != nil {
			return err
		}
		return linkFaces(tx, p.ID, faceIDs)
	})
	return faults.Storage("update plantacao", err)
}

func linkFaces(tx *gorm.DB, plantationID int64, faceIDs []int64) error {
	for _, f := range faceIDs {
		if err := tx.Create(&entities.PlantationFace{FaceID: f, PlantationID: plantationID}).Error; err != nil {
			return fmt.Errorf("link face %d: %w", f, err)
		}
	}
	return nil
}

func (r *plantationRepo) FindByID(ctx context.Context, id int64) (*entities.PlantationDetail, error) {
	db := r.db.WithContext(ctx)
	var p entities.Plantation
	if err := db.Where("id_plantacao = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faults.New(faults.NotFoundError, fmt.Sprintf("plantacao %d not found", id))
		}
		return nil, faults.Storage("find plantacao", err)
	}
	faces := []int64{}
	if err := db.Model(&entities.PlantationFace{}).Where("id_plantacao = ?", id).
		Order("id_face_exposicao_plantacao").Pluck("id_face_exposicao", &faces).Error; err != nil {
		return nil, faults.Storage("find plantacao faces", err)
	}
	if p.HarvestMonths == nil {
		p.HarvestMonths = entities.HarvestMonths{}
	}
	return &entities.PlantationDetail{Plantation: p, FaceIDs: faces}, nil
}

func (r *plantationRepo) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_plantacao = ?", id).Delete(&entities.PlantationFace{}).Error; err != nil {
			return err
		}
		res := tx.Where("id_plantacao = ?", id).Delete(&entities.Plantation{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return faults.New(faults.NotFoundError, fmt.Sprintf("plantacao %d not found", id))
		}
		return nil
	})
	return faults.Storage("delete plantacao", err)
}
