package importer

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/planora/planora/internal/model"
)

//go:embed schema.cue
var schemaCUE string

// planFile mirrors the portable YAML format.
type planFile struct {
	BudgetTotal float64       `yaml:"budgetTotal"`
	Groups      []groupEntry  `yaml:"groups"`
	Guests      []guestEntry  `yaml:"guests"`
	Expenses    []expenseItem `yaml:"expenses"`
}

type groupEntry struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type guestEntry struct {
	Name      string `yaml:"name"`
	Group     string `yaml:"group"`
	Parent    string `yaml:"parent"`
	Confirmed bool   `yaml:"confirmed"`
	Priority  int    `yaml:"priority"`
	Photo     string `yaml:"photo"`
	Root      *bool  `yaml:"root"`
}

type expenseItem struct {
	Category   string  `yaml:"category"`
	Supplier   string  `yaml:"supplier"`
	Estimated  float64 `yaml:"estimated"`
	Actual     float64 `yaml:"actual"`
	Contracted bool    `yaml:"contracted"`
	Include    *bool   `yaml:"include"`
}

// Importer translates portable files into plans. The id generator is
// injectable so tests get stable ids; the default is a random UUID.
type Importer struct {
	newID func() string
}

// New creates an importer with UUID id generation.
func New() *Importer {
	return &Importer{newID: uuid.NewString}
}

// WithIDGenerator overrides id synthesis. Used in tests.
func (imp *Importer) WithIDGenerator(gen func() string) *Importer {
	imp.newID = gen
	return imp
}

// ImportFile reads, validates, and translates a portable plan file.
func (imp *Importer) ImportFile(path string) (*model.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	p, err := imp.Import(data)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return p, nil
}

// Import validates and translates portable YAML bytes into a plan with
// fresh ids. Dangling name references degrade per package policy; only
// malformed YAML or schema violations return errors.
func (imp *Importer) Import(data []byte) (*model.Plan, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	var file planFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return imp.translate(&file), nil
}

// validate unifies the decoded document with the embedded CUE schema.
func validate(doc any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE).LookupPath(cue.ParsePath("#PlanFile"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	unified := schema.Unify(ctx.Encode(doc))
	if err := unified.Validate(cue.Final()); err != nil {
		return fmt.Errorf("invalid plan file:\n%s", cueerrors.Details(err, nil))
	}
	return nil
}

// translate resolves names to synthesized ids. Two passes over guests:
// ids first (parents may be declared after their children in the file),
// then records.
func (imp *Importer) translate(file *planFile) *model.Plan {
	p := &model.Plan{
		BudgetTotal: file.BudgetTotal,
		Expenses:    []model.ExpenseItem{},
		Guests:      []model.Guest{},
		GuestGroups: []model.GuestGroup{},
	}

	groupIDs := make(map[string]string, len(file.Groups))
	for _, gr := range file.Groups {
		if _, dup := groupIDs[gr.Name]; dup {
			continue
		}
		color := gr.Color
		if color == "" {
			color = model.DefaultGroupColor(len(p.GuestGroups))
		}
		id := imp.newID()
		groupIDs[gr.Name] = id
		p.GuestGroups = append(p.GuestGroups, model.GuestGroup{ID: id, Name: gr.Name, Color: color})
	}

	// Pass 1: assign every guest an id by name. Duplicate names keep the
	// first id so parent references stay unambiguous.
	guestIDs := make(map[string]string, len(file.Guests))
	for _, g := range file.Guests {
		if _, dup := guestIDs[g.Name]; !dup {
			guestIDs[g.Name] = imp.newID()
		}
	}

	// Pass 2: build records, resolving references. The first guest with a
	// given name owns the mapped id; later duplicates get fresh ids so the
	// plan never carries id collisions.
	claimed := make(map[string]bool, len(file.Guests))
	for _, g := range file.Guests {
		id := guestIDs[g.Name]
		if claimed[g.Name] {
			id = imp.newID()
		}
		claimed[g.Name] = true
		guest := model.Guest{
			ID:        id,
			Name:      g.Name,
			Confirmed: g.Confirmed,
			Priority:  clampPriority(g.Priority),
			PhotoURL:  g.Photo,
			IsRoot:    g.Root,
		}
		if g.Group != "" {
			id, ok := groupIDs[g.Group]
			if !ok {
				// Synthesize the missing group rather than failing the
				// import or silently dropping the guest's grouping.
				id = imp.newID()
				groupIDs[g.Group] = id
				p.GuestGroups = append(p.GuestGroups, model.GuestGroup{
					ID:    id,
					Name:  g.Group,
					Color: model.DefaultGroupColor(len(p.GuestGroups)),
				})
			}
			guest.GroupID = id
		}
		if g.Parent != "" && g.Parent != g.Name {
			// Unresolved parent names stay empty: the guest enters as a
			// root instead of crashing the import.
			guest.ParentID = guestIDs[g.Parent]
		}
		p.Guests = append(p.Guests, guest)
	}

	for _, e := range file.Expenses {
		include := true
		if e.Include != nil {
			include = *e.Include
		}
		p.Expenses = append(p.Expenses, model.ExpenseItem{
			ID:             imp.newID(),
			Category:       e.Category,
			Supplier:       e.Supplier,
			EstimatedValue: e.Estimated,
			ActualValue:    e.Actual,
			IsContracted:   e.Contracted,
			Include:        include,
		})
	}

	return p
}

func clampPriority(v int) int {
	switch {
	case v == 0:
		return model.PriorityDefault
	case v < model.PriorityMin:
		return model.PriorityMin
	case v > model.PriorityMax:
		return model.PriorityMax
	default:
		return v
	}
}
