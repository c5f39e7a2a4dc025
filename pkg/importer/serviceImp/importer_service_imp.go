package serviceImp

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"alqualis/entities"
	"alqualis/pkg/faults"
	"alqualis/pkg/importer"
	"alqualis/pkg/importer/service"
	"alqualis/pkg/metrics"
	plantationSvc "alqualis/pkg/plantation/service"
	producerSvc "alqualis/pkg/producer/service"
	"alqualis/pkg/reference"
	refRepo "alqualis/pkg/reference/repository"
	"alqualis/pkg/sheet"
	"alqualis/pkg/textnorm"
)

type importerSvc struct {
	refs        refRepo.ReferenceRepository
	producers   producerSvc.ProducerService
	plantations plantationSvc.PlantationService
	metrics     *metrics.Collectors
}

func New(
	refs refRepo.ReferenceRepository,
	producers producerSvc.ProducerService,
	plantations plantationSvc.PlantationService,
	m *metrics.Collectors,
) service.ImporterService {
	return &importerSvc{refs: refs, producers: producers, plantations: plantations, metrics: m}
}

// run holds the state of one import: the per-batch name -> id cache lives
// here and is dropped when Import returns.
type run struct {
	*importerSvc
	id     string
	prefix string
	cols   importer.Columns
	cache  map[string]map[string]int64
}

func (s *importerSvc) Import(ctx context.Context, d sheet.Dataset, opts service.Options) (*service.Report, error) {
	prefix := strings.ToUpper(textnorm.NoSpace(opts.Prefix))
	if prefix == "" {
		return nil, faults.New(faults.ValidationError, "code prefix is required")
	}
	cols := importer.ResolveColumns(d)
	if cols[importer.ProducerName] < 0 {
		return nil, faults.New(faults.ValidationError, fmt.Sprintf("no producer name column in header %v", d.Header))
	}

	r := &run{
		importerSvc: s,
		id:          uuid.NewString(),
		prefix:      prefix,
		cols:        cols,
		cache:       map[string]map[string]int64{},
	}
	rep := &service.Report{RunID: r.id, Total: len(d.Rows), Failures: []service.RowFailure{}}
	log.Printf("[import] run=%s start rows=%d prefix=%s", r.id, rep.Total, prefix)

	for i, row := range d.Rows {
		if err := ctx.Err(); err != nil {
			log.Printf("[import] run=%s cancelled after %d rows", r.id, i)
			s.metrics.RunDone(true)
			return rep, err
		}
		n := i + 1
		if err := r.importRow(ctx, n, row); err != nil {
			err = faults.Wrap(faults.ImportRowError, fmt.Sprintf("row %d", n), err)
			log.Printf("[import] run=%s %v", r.id, err)
			rep.Failures = append(rep.Failures, service.RowFailure{Row: n, Error: err.Error()})
			s.metrics.RowDone(metrics.RowFailed)
		} else {
			rep.Succeeded++
			s.metrics.RowDone(metrics.RowImported)
		}
		if opts.Progress != nil {
			opts.Progress(n, rep.Total)
		}
	}

	s.metrics.RunDone(rep.Partial())
	log.Printf("[import] run=%s done ok=%d failed=%d", r.id, rep.Succeeded, len(rep.Failures))
	return rep, nil
}

func (r *run) importRow(ctx context.Context, n int, row []string) error {
	get := func(f importer.Field) string { return r.cols.Get(row, f) }
	upper := func(f importer.Field) string { return textnorm.Upper(get(f)) }

	community, err := r.resolve(ctx, reference.Community, upper(importer.Community))
	if err != nil {
		return err
	}
	municipality, err := r.resolve(ctx, reference.Municipality, upper(importer.Municipality))
	if err != nil {
		return err
	}
	variety, err := r.resolve(ctx, reference.Variety, upper(importer.Variety))
	if err != nil {
		return err
	}
	coop, err := r.resolve(ctx, reference.Cooperative, upper(importer.Cooperative))
	if err != nil {
		return err
	}
	face, err := r.resolve(ctx, reference.ExposureFace, upper(importer.Face))
	if err != nil {
		return err
	}

	code := fmt.Sprintf("%s%02d", r.prefix, n)
	producerID, err := r.producers.Insert(ctx, producerSvc.Input{
		Name:          upper(importer.ProducerName),
		CPF:           textnorm.Ptr(textnorm.Digits(get(importer.CPF))),
		Code:          &code,
		CooperativeID: coop,
	})
	if err != nil {
		return fmt.Errorf("producer: %w", err)
	}

	talhao := upper(importer.Talhao)
	name := upper(importer.Plantation)
	if name == "" {
		name = talhao
	}
	if name == "" {
		name = fmt.Sprintf("Plantação %d", n)
	}
	var faces []int64
	if face != nil {
		faces = []int64{*face}
	}
	_, err = r.plantations.Insert(ctx, plantationSvc.Input{
		ProducerID:     producerID,
		VarietyID:      deref(variety),
		CommunityID:    deref(community),
		MunicipalityID: deref(municipality),
		Name:           name,
		Talhao:         textnorm.Ptr(talhao),
		Latitude:       textnorm.Ptr(upper(importer.Latitude)),
		Longitude:      textnorm.Ptr(upper(importer.Longitude)),
		Altitude:       textnorm.Ptr(upper(importer.Altitude)),
		FaceIDs:        faces,
		HarvestMonths:  splitMonths(get(importer.HarvestMonths)),
	})
	if err != nil {
		return fmt.Errorf("plantation: %w", err)
	}
	return nil
}

// resolve returns the id of the reference row called name, creating it on
// first sight. Blank names resolve to nil.
func (r *run) resolve(ctx context.Context, table, name string) (*int64, error) {
	if name == "" {
		return nil, nil
	}
	key := strings.ToLower(name)
	if id, ok := r.cache[table][key]; ok {
		return &id, nil
	}

	t, err := reference.Writable(table)
	if err != nil {
		return nil, err
	}
	res, err := r.refs.InsertOne(ctx, t.Name, t.NameColumn, name)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", table, name, err)
	}
	id := res.ID
	if res.Outcome == entities.AlreadyExists {
		// InsertOne does not hand back the id of an existing row
		if id, err = r.refs.FindIDByValue(ctx, t.Name, t.NameColumn, name); err != nil {
			return nil, fmt.Errorf("%s %q: %w", table, name, err)
		}
	}
	if r.cache[table] == nil {
		r.cache[table] = map[string]int64{}
	}
	r.cache[table][key] = id
	return &id, nil
}

func splitMonths(cell string) []string {
	out := []string{}
	for _, m := range strings.Split(cell, ",") {
		if m = textnorm.Upper(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

func deref(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
