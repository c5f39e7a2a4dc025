package repositoryImp

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"alqualis/entities"
	"alqualis/pkg/faults"
	"alqualis/pkg/producer/repository"
)

type producerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProducerRepository { return &producerRepo{db} }

const withCooperative = `
SELECT p.id_produtor, p.nome_produtor, p.cpf_produtor, p.codigo_produtor,
       c.id_cooperativa, c.nome_cooperativa AS cooperativa
FROM produtor p
LEFT JOIN cooperativa_produtor cp ON cp.id_produtor = p.id_produtor
LEFT JOIN cooperativa c ON c.id_cooperativa = cp.id_cooperativa`

func (r *producerRepo) ExistsCPF(ctx context.Context, cpf string, excludeID int64) (bool, error) {
	return r.exists(ctx, "cpf_produtor", cpf, excludeID)
}

func (r *producerRepo) ExistsCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	return r.exists(ctx, "codigo_produtor", code, excludeID)
}

func (r *producerRepo) exists(ctx context.Context, column, value string, excludeID int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&entities.Producer{}).Where(column+" = ?", value)
	if excludeID != 0 {
		q = q.Where("id_produtor <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, faults.Storage("check "+column, err)
	}
	return n > 0, nil
}

func (r *producerRepo) Create(ctx context.Context, p *entities.Producer, cooperativeID *int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return link(tx, p.ID, cooperativeID)
	})
	return faults.Storage("insert produtor", err)
}

// Update rewrites the producer fields and replaces its cooperative link; a nil
// cooperativeID leaves the producer unaffiliated.
func (r *producerRepo) Update(ctx context.Context, p *entities.Producer, cooperativeID *int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Producer{}).Where("id_produtor = ?", p.ID).Updates(map[string]any{
			"nome_produtor":   p.Name,
			"cpf_produtor":    p.CPF,
			"codigo_produtor": p.Code,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return faults.New(faults.NotFoundError, fmt.Sprintf("produtor %d not found", p.ID))
		}
		if err := tx.Where("id_produtor = ?", p.ID).Delete(&entities.ProducerCooperative{}).Error; err != nil {
			return err
		}
		return link(tx, p.ID, cooperativeID)
	})
	return faults.Storage("update produtor", err)
}

func link(tx *gorm.DB, producerID int64, cooperativeID *int64) error {
	if cooperativeID == nil {
		return nil
	}
	return tx.Create(&entities.ProducerCooperative{CooperativeID: *cooperativeID, ProducerID: producerID}).Error
}

func (r *producerRepo) FindByID(ctx context.Context, id int64) (*entities.ProducerWithCooperative, error) {
	var out []entities.ProducerWithCooperative
	if err := r.db.WithContext(ctx).Raw(withCooperative+` WHERE p.id_produtor = ? LIMIT 1`, id).Scan(&out).Error; err != nil {
		return nil, faults.Storage("find produtor", err)
	}
	if len(out) == 0 {
		return nil, faults.New(faults.NotFoundError, fmt.Sprintf("produtor %d not found", id))
	}
	return &out[0], nil
}

func (r *producerRepo) ListWithCooperative(ctx context.Context) ([]entities.ProducerWithCooperative, error) {
	out := []entities.ProducerWithCooperative{}
	if err := r.db.WithContext(ctx).Raw(withCooperative + ` ORDER BY p.id_produtor`).Scan(&out).Error; err != nil {
		return nil, faults.Storage("list produtor", err)
	}
	return out, nil
}

func (r *producerRepo) CountPlantations(ctx context.Context, id int64) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entities.Plantation{}).Where("id_produtor = ?", id).Count(&n).Error; err != nil {
		return 0, faults.Storage("count plantacao", err)
	}
	return n, nil
}

// Delete removes the cooperative link and the producer in one transaction.
// Callers check CountPlantations first.
func (r *producerRepo) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_produtor = ?", id).Delete(&entities.ProducerCooperative{}).Error; err != nil {
			return err
		}
		res := tx.Where("id_produtor = ?", id).Delete(&entities.Producer{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return faults.New(faults.NotFoundError, fmt.Sprintf("produtor %d not found", id))
		}
		return nil
	})
	return faults.Storage("delete produtor", err)
}

func (r *producerRepo) Last(ctx context.Context) (*entities.Producer, error) {
	var ps []entities.Producer
	if err := r.db.WithContext(ctx).Order("id_produtor DESC").Limit(1).Find(&ps).Error; err != nil {
		return nil, faults.Storage("last produtor", err)
	}
	if len(ps) == 0 {
		return nil, nil
	}
	return &ps[0], nil
}
