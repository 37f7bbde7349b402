package seed

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/mesh-intelligence/refbook/internal/family"
	"github.com/mesh-intelligence/refbook/pkg/types"
)

// Options are the runtime switches a seeding run consumes.
type Options struct {
	MasterLocale       string
	LocaleAlternatives []string
	Snapshot           bool
	SnapshotPath       string
}

// Seeder persists descriptor sets in an order that guarantees parent rows
// exist before children reference them, then upserts idempotently. It reads
// and writes through the repository directly; the symbol cache stays out of
// the seeding path and is refreshed through the repository's after-save
// notifications.
type Seeder struct {
	repo     types.Repository
	registry *family.Registry
	source   *Source
	log      *slog.Logger
	opts     Options
}

// NewSeeder wires a Seeder.
func NewSeeder(repo types.Repository, registry *family.Registry, source *Source, log *slog.Logger, opts Options) *Seeder {
	if log == nil {
		log = slog.Default()
	}
	return &Seeder{repo: repo, registry: registry, source: source, log: log, opts: opts}
}

// Validate runs the load-and-validate half of the pipeline without writing
// anything: master completeness plus parity for every alternative locale.
// Suitable for dry-run checking in CI.
func (s *Seeder) Validate() error {
	_, err := s.loadAndValidate(s.log)
	return err
}

// Run executes the full pipeline: load master, validate master and every
// alternative locale, optionally write the snapshot, then seed parent sets
// before everything else. Any validation violation or unresolved parent
// aborts the run before or during writes respectively; nothing is rolled
// back, but the upsert is idempotent so a corrected rerun converges.
func (s *Seeder) Run() error {
	log := s.log.With("run_id", newRunID())

	master, err := s.loadAndValidate(log)
	if err != nil {
		return err
	}

	if s.opts.Snapshot {
		log.Info("writing snapshot", "path", s.opts.SnapshotPath)
		if err := WriteSnapshot(master, s.opts.SnapshotPath); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
	}

	// Register a family for every set in the master so parent references
	// between sets resolve through the registry.
	for _, set := range master.Sets {
		s.registry.Register(types.Classify(set.Name))
	}

	if err := s.seedParents(master, log); err != nil {
		return err
	}
	for _, set := range master.Sets {
		if err := s.seedSet(set, log); err != nil {
			return err
		}
	}

	log.Info("seeding complete")
	return nil
}

// loadAndValidate loads the master tree, validates it, then validates each
// alternative locale against it. Master violations abort before the
// alternatives are read; alternative violations are aggregated across all
// locales and reported together.
func (s *Seeder) loadAndValidate(log *slog.Logger) (*Tree, error) {
	log.Info("loading master locale", "locale", s.opts.MasterLocale)
	master, err := s.source.Load(s.opts.MasterLocale)
	if err != nil {
		return nil, err
	}

	var v Validator
	log.Info("validating master locale")
	if err := v.ValidateMaster(master); err != nil {
		return nil, err
	}

	var violations *multierror.Error
	for _, loc := range s.opts.LocaleAlternatives {
		log.Info("validating alternative locale", "locale", loc)
		alt, err := s.source.Load(loc)
		if err != nil {
			return nil, err
		}
		if err := v.ValidateAlternative(master, alt); err != nil {
			violations = multierror.Append(violations, err)
		}
	}
	if err := violations.ErrorOrNil(); err != nil {
		return nil, err
	}
	return master, nil
}

// seedParents hoists sets referenced as parents and seeds them first,
// removing them from the pool. One level only: a hoisted set's own parent
// references are not hoisted in turn, so deeper chains fail with an
// unresolved parent instead of being reordered.
func (s *Seeder) seedParents(master *Tree, log *slog.Logger) error {
	log.Info("collecting parent sets")

	var parentSets []string
	seen := make(map[string]bool)
	for _, set := range master.Sets {
		if set.Parent == "" {
			continue
		}
		ref, err := types.ParseParentRef(set.Parent)
		if err != nil {
			return fmt.Errorf("set %q: %w", set.Name, err)
		}
		if !seen[ref.Set] {
			seen[ref.Set] = true
			parentSets = append(parentSets, ref.Set)
		}
	}
	if len(parentSets) == 0 {
		return nil
	}

	log.Info("seeding parent sets", "sets", parentSets)
	for _, name := range parentSets {
		// Only sets backed by a registered descriptor family are hoisted.
		if _, ok := s.registry.BySet(name); !ok {
			continue
		}
		set, ok := master.RemoveSet(name)
		if !ok {
			continue
		}
		if err := s.seedSet(set, log); err != nil {
			return err
		}
	}
	return nil
}

// seedSet upserts every entry of a set. Creates fill the full attribute bag
// with implicit defaults; updates touch only the declared attributes plus
// the resolved parent. The repository fires invalidation hooks after every
// write.
func (s *Seeder) seedSet(set *Set, log *slog.Logger) error {
	familyName := types.Classify(set.Name)
	log.Info("seeding set", "set", set.Name, "family", familyName, "entries", len(set.Entries))

	for _, e := range set.Entries {
		parent, err := s.resolveParent(e, set)
		if err != nil {
			return err
		}

		existing, err := s.repo.FindBySymbol(familyName, e.Symbol)
		switch {
		case errors.Is(err, types.ErrNotFound):
			d := &types.Descriptor{
				Family:      familyName,
				Symbol:      e.Symbol,
				Name:        deref(e.Attrs.Name),
				Description: deref(e.Attrs.Description),
				Index:       derefInt(e.Attrs.Index),
				Value:       e.Attrs.Value,
				Parent:      parent,
			}
			if _, err := s.repo.Create(d); err != nil {
				return fmt.Errorf("creating %s.%s: %w", set.Name, e.Symbol, err)
			}
			log.Debug("created descriptor", "set", set.Name, "symbol", e.Symbol, "id", d.ID)

		case err != nil:
			return fmt.Errorf("looking up %s.%s: %w", set.Name, e.Symbol, err)

		default:
			attrs := types.Attributes{
				Name:        e.Attrs.Name,
				Description: e.Attrs.Description,
				Index:       e.Attrs.Index,
				Value:       e.Attrs.Value,
				Parent:      parent,
				ParentSet:   true,
			}
			if _, err := s.repo.Update(familyName, existing.ID, attrs); err != nil {
				return fmt.Errorf("updating %s.%s: %w", set.Name, e.Symbol, err)
			}
			log.Debug("updated descriptor", "set", set.Name, "symbol", e.Symbol, "id", existing.ID)
		}
	}
	return nil
}

// resolveParent resolves an entry's parent: its own override, else the
// set-level default, else none. A reference that does not name a registered
// family, or whose row does not exist yet, fails the run; a child is never
// silently created with a missing parent.
func (s *Seeder) resolveParent(e *Entry, set *Set) (*types.Parent, error) {
	refStr := set.Parent
	if e.Attrs.Parent != nil {
		refStr = *e.Attrs.Parent
	}
	if refStr == "" {
		return nil, nil
	}

	ref, err := types.ParseParentRef(refStr)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", set.Name, e.Symbol, err)
	}

	parentFamily, ok := s.registry.BySet(ref.Set)
	if !ok {
		return nil, fmt.Errorf("%w: %q for %s.%s: set %q is not a descriptor family",
			types.ErrUnresolvedParent, refStr, set.Name, e.Symbol, ref.Set)
	}

	row, err := s.repo.FindBySymbol(parentFamily.Name(), ref.Symbol)
	if errors.Is(err, types.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q for %s.%s", types.ErrUnresolvedParent, refStr, set.Name, e.Symbol)
	}
	if err != nil {
		return nil, fmt.Errorf("resolving parent %q: %w", refStr, err)
	}
	return &types.Parent{Family: row.Family, ID: row.ID}, nil
}

// newRunID returns a UUID v7 correlating one seeding run's log lines.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}
