package repositoryImp

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"alqualis/entities"
	"alqualis/pkg/faults"
	"alqualis/pkg/reference"
	"alqualis/pkg/reference/repository"
	"alqualis/pkg/textnorm"
)

type genericRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReferenceRepository { return &genericRepo{db} }

func (r *genericRepo) ListAll(ctx context.Context, table string) ([]entities.Row, error) {
	t, err := reference.Lookup(table)
	if err != nil {
		return nil, err
	}
	rows := []entities.Row{}
	if err := r.db.WithContext(ctx).Table(t.Name).Order(t.IDColumn).Find(&rows).Error; err != nil {
		return nil, faults.Storage("list "+t.Name, err)
	}
	return rows, nil
}

func (r *genericRepo) FindByID(ctx context.Context, table string, id int64) (entities.Row, error) {
	t, err := reference.Lookup(table)
	if err != nil {
		return nil, err
	}
	var rows []entities.Row
	if err := r.db.WithContext(ctx).Table(t.Name).Where(t.IDColumn+" = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, faults.Storage("find "+t.Name, err)
	}
	if len(rows) == 0 {
		return nil, faults.New(faults.NotFoundError, fmt.Sprintf("%s %d not found", t.Name, id))
	}
	return rows[0], nil
}

func (r *genericRepo) InsertOne(ctx context.Context, table, column, value string) (entities.Result, error) {
	t, err := writableColumn(table, column)
	if err != nil {
		return entities.Result{}, err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return entities.Result{}, faults.New(faults.ValidationError, column+" is required")
	}

	db := r.db.WithContext(ctx)
	taken, err := r.valueTaken(db, t, value, 0)
	if err != nil {
		return entities.Result{}, err
	}
	if taken {
		return entities.Result{Outcome: entities.AlreadyExists}, nil
	}

	var id int64
	q := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?) RETURNING %s`, t.Name, t.NameColumn, t.IDColumn)
	if err := db.Raw(q, value).Scan(&id).Error; err != nil {
		if faults.IsUniqueViolation(err) {
			return entities.Result{Outcome: entities.AlreadyExists}, nil
		}
		return entities.Result{}, faults.Storage("insert "+t.Name, err)
	}
	return entities.Result{ID: id, Outcome: entities.Created}, nil
}

func (r *genericRepo) UpdateOne(ctx context.Context, table, column, value string, id int64) (entities.Result, error) {
	t, err := writableColumn(table, column)
	if err != nil {
		return entities.Result{}, err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return entities.Result{}, faults.New(faults.ValidationError, column+" is required")
	}

	db := r.db.WithContext(ctx)
	taken, err := r.valueTaken(db, t, value, id)
	if err != nil {
		return entities.Result{}, err
	}
	if taken {
		return entities.Result{ID: id, Outcome: entities.AlreadyExists}, nil
	}

	res := db.Table(t.Name).Where(t.IDColumn+" = ?", id).Update(t.NameColumn, value)
	if res.Error != nil {
		if faults.IsUniqueViolation(res.Error) {
			return entities.Result{ID: id, Outcome: entities.AlreadyExists}, nil
		}
		return entities.Result{}, faults.Storage("update "+t.Name, res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Result{}, faults.New(faults.NotFoundError, fmt.Sprintf("%s %d not found", t.Name, id))
	}
	return entities.Result{ID: id, Outcome: entities.Updated}, nil
}

func (r *genericRepo) DeleteOne(ctx context.Context, table string, id int64) (entities.Result, error) {
	t, err := reference.Writable(table)
	if err != nil {
		return entities.Result{}, err
	}
	db := r.db.WithContext(ctx)
	for _, dep := range t.Dependents {
		var n int64
		if err := db.Table(dep.Table).Where(dep.Column+" = ?", id).Count(&n).Error; err != nil {
			return entities.Result{}, faults.Storage("check dependents of "+t.Name, err)
		}
		if n > 0 {
			return entities.Result{ID: id, Outcome: entities.HasDependents}, nil
		}
	}
	res := db.Exec(fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, t.Name, t.IDColumn), id)
	if res.Error != nil {
		return entities.Result{}, faults.Storage("delete "+t.Name, res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Result{}, faults.New(faults.NotFoundError, fmt.Sprintf("%s %d not found", t.Name, id))
	}
	return entities.Result{ID: id, Outcome: entities.Deleted}, nil
}

type colInfo struct {
	CID     int     `gorm:"column:cid"`
	Name    string  `gorm:"column:name"`
	Type    string  `gorm:"column:type"`
	NotNull int     `gorm:"column:notnull"`
	Default *string `gorm:"column:dflt_value"`
	PK      int     `gorm:"column:pk"`
}

func (r *genericRepo) FindWithTextFilter(ctx context.Context, table, term string) ([]entities.Row, error) {
	t, err := reference.Lookup(table)
	if err != nil {
		return nil, err
	}
	db := r.db.WithContext(ctx)

	var cols []colInfo
	if err := db.Raw(fmt.Sprintf(`PRAGMA table_info(%s)`, t.Name)).Scan(&cols).Error; err != nil {
		return nil, faults.Storage("inspect "+t.Name, err)
	}
	text := textColumns(cols)
	if len(text) == 0 {
		return []entities.Row{}, nil
	}

	pattern := "%" + escapeLike(textnorm.Upper(term)) + "%"
	conds := make([]string, len(text))
	args := make([]any, len(text))
	for i, c := range text {
		conds[i] = c + ` LIKE ? ESCAPE '\'`
		args[i] = pattern
	}
	rows := []entities.Row{}
	if err := db.Table(t.Name).Where(strings.Join(conds, " OR "), args...).Order(t.IDColumn).Find(&rows).Error; err != nil {
		return nil, faults.Storage("filter "+t.Name, err)
	}
	return rows, nil
}

func (r *genericRepo) FindIDByValue(ctx context.Context, table, column, value string) (int64, error) {
	t, err := reference.Lookup(table)
	if err != nil {
		return 0, err
	}
	if column != t.NameColumn {
		return 0, faults.New(faults.ValidationError, fmt.Sprintf("column %s is not searchable on %s", column, t.Name))
	}
	var ids []int64
	err = r.db.WithContext(ctx).Table(t.Name).Where(t.NameColumn+" = ?", strings.TrimSpace(value)).
		Limit(1).Pluck(t.IDColumn, &ids).Error
	if err != nil {
		return 0, faults.Storage("find "+t.Name, err)
	}
	if len(ids) == 0 {
		return 0, faults.New(faults.NotFoundError, fmt.Sprintf("%s %q not found", t.Name, value))
	}
	return ids[0], nil
}

func (r *genericRepo) valueTaken(db *gorm.DB, t reference.Table, value string, excludeID int64) (bool, error) {
	q := db.Table(t.Name).Where(t.NameColumn+" = ?", value)
	if excludeID != 0 {
		q = q.Where(t.IDColumn+" <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, faults.Storage("check duplicate in "+t.Name, err)
	}
	return n > 0, nil
}

func writableColumn(table, column string) (reference.Table, error) {
	t, err := reference.Writable(table)
	if err != nil {
		return t, err
	}
	if column != t.NameColumn {
		return reference.Table{}, faults.New(faults.ValidationError, fmt.Sprintf("column %s is not writable on %s", column, t.Name))
	}
	return t, nil
}

// textColumns picks CHAR/TEXT columns, falling back to nome_* columns when
// the declared types say nothing.
func textColumns(cols []colInfo) []string {
	var out []string
	for _, c := range cols {
		typ := strings.ToUpper(c.Type)
		if strings.Contains(typ, "CHAR") || strings.Contains(typ, "TEXT") {
			out = append(out, c.Name)
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, c := range cols {
		if strings.HasPrefix(strings.ToLower(c.Name), "nome_") {
			out = append(out, c.Name)
		}
	}
	return out
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
