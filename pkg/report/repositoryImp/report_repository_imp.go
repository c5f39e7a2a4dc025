package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"alqualis/entities"
	"alqualis/pkg/faults"
	"alqualis/pkg/report/repository"
)

type reportRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReportRepository { return &reportRepo{db} }

const producersSQL = `
SELECT p.id_produtor, p.nome_produtor, p.cpf_produtor, p.codigo_produtor,
       c.id_cooperativa, c.nome_cooperativa AS cooperativa,
       (SELECT COUNT(*) FROM plantacao pl WHERE pl.id_produtor = p.id_produtor) AS total_plantacoes
FROM produtor p
LEFT JOIN cooperativa_produtor cp ON cp.id_produtor = p.id_produtor
LEFT JOIN cooperativa c ON c.id_cooperativa = cp.id_cooperativa
ORDER BY p.id_produtor`

const plantationsSQL = `
SELECT p.id_plantacao,
       p.nome_plantacao,
       pr.nome_produtor   AS produtor,
       v.nome_variedade   AS variedade,
       co.nome_comunidade AS comunidade,
       mu.nome_municipio  AS municipio,
       p.latitude,
       p.longitude,
       p.altitude_media,
       p.nome_talhao,
       GROUP_CONCAT(fe.nome_face_exposicao, ', ') AS faces_exposicao,
       p.meses_colheita
FROM plantacao p
LEFT JOIN produtor pr   ON pr.id_produtor = p.id_produtor
LEFT JOIN variedade v   ON v.id_variedade = p.id_variedade
LEFT JOIN comunidade co ON co.id_comunidade = p.id_comunidade
LEFT JOIN municipio mu  ON mu.id_municipio = p.id_municipio
LEFT JOIN face_exposicao_plantacao fep ON fep.id_plantacao = p.id_plantacao
LEFT JOIN face_exposicao fe            ON fe.id_face_exposicao = fep.id_face_exposicao
GROUP BY p.id_plantacao
ORDER BY p.id_plantacao`

// exportSQL drives from plantacao, so a producer with no plantation has no
// row here even though it is listed by producersSQL.
const exportSQL = `
SELECT p.id_plantacao,
       pr.codigo_produtor,
       pr.nome_produtor,
       pr.cpf_produtor,
       c.nome_cooperativa AS cooperativa,
       p.nome_plantacao,
       p.nome_talhao,
       v.nome_variedade   AS variedade,
       co.nome_comunidade AS comunidade,
       mu.nome_municipio  AS municipio,
       p.latitude,
       p.longitude,
       p.altitude_media,
       GROUP_CONCAT(fe.nome_face_exposicao, ', ') AS faces_exposicao,
       p.meses_colheita
FROM plantacao p
JOIN produtor pr        ON pr.id_produtor = p.id_produtor
LEFT JOIN cooperativa_produtor cp ON cp.id_produtor = pr.id_produtor
LEFT JOIN cooperativa c           ON c.id_cooperativa = cp.id_cooperativa
LEFT JOIN variedade v   ON v.id_variedade = p.id_variedade
LEFT JOIN comunidade co ON co.id_comunidade = p.id_comunidade
LEFT JOIN municipio mu  ON mu.id_municipio = p.id_municipio
LEFT JOIN face_exposicao_plantacao fep ON fep.id_plantacao = p.id_plantacao
LEFT JOIN face_exposicao fe            ON fe.id_face_exposicao = fep.id_face_exposicao
GROUP BY p.id_plantacao
ORDER BY pr.id_produtor, p.id_plantacao`

func (r *reportRepo) ProducersDetailed(ctx context.Context) ([]entities.ProducerReport, error) {
	out := []entities.ProducerReport{}
	if err := r.db.WithContext(ctx).Raw(producersSQL).Scan(&out).Error; err != nil {
		return nil, faults.Storage("list produtores", err)
	}
	return out, nil
}

func (r *reportRepo) PlantationsDetailed(ctx context.Context) ([]entities.PlantationReport, error) {
	out := []entities.PlantationReport{}
	if err := r.db.WithContext(ctx).Raw(plantationsSQL).Scan(&out).Error; err != nil {
		return nil, faults.Storage("list plantacoes", err)
	}
	return emptyMonths(out, func(p *entities.PlantationReport) *entities.HarvestMonths { return &p.HarvestMonths }), nil
}

func (r *reportRepo) UnifiedExport(ctx context.Context) ([]entities.ExportRow, error) {
	out := []entities.ExportRow{}
	if err := r.db.WithContext(ctx).Raw(exportSQL).Scan(&out).Error; err != nil {
		return nil, faults.Storage("export", err)
	}
	return emptyMonths(out, func(e *entities.ExportRow) *entities.HarvestMonths { return &e.HarvestMonths }), nil
}

// emptyMonths turns NULL harvest columns into empty lists.
func emptyMonths[T any](rows []T, months func(*T) *entities.HarvestMonths) []T {
	for i := range rows {
		if m := months(&rows[i]); *m == nil {
			*m = entities.HarvestMonths{}
		}
	}
	return rows
}
