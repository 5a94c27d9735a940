package taxonomy

import (
	_ "embed"
	"sync"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCategory marks a catalog lookup miss. Check with errors.Is.
var ErrUnknownCategory = errors.New("unknown category")

//go:embed data.yaml
var rawTable []byte

// record is one row of the embedded category table.
type record struct {
	Group       string `yaml:"group"`
	Archive     string `yaml:"archive"`
	ArchiveName string `yaml:"archive_name"`
	Suffix      string `yaml:"suffix"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Legacy      bool   `yaml:"legacy"`
}

type table struct {
	Categories []record `yaml:"categories"`
}

// Machine-learning category collections. ml_broad follows the arXiv machine
// learning classification guide; ml_karpathy is the arxiv-sanity selection.
var (
	mlBroadIDs = []string{
		"cs.LG", "stat.ML", "math.OC", "cs.CV", "cs.CL", "eess.AS",
		"cs.IR", "cs.HC", "cs.SI", "cs.CY", "cs.GR", "cs.SY",
		"cs.AI", "cs.MM", "cs.ET", "cs.NE",
	}
	mlKarpathyIDs = []string{
		"cs.CV", "cs.AI", "cs.CL", "cs.LG", "cs.NE", "stat.ML",
	}
	hepIDs = []string{"hep-th", "hep-ph", "hep-ex", "hep-lat"}
)

// Catalog holds the full category taxonomy: every category indexed by id,
// the live archives, the subject groups, and a few curated collections. It
// is built once and never mutated afterward.
type Catalog struct {
	categories []Category
	archives   []Archive
	groups     []Group

	byID      map[string]Category
	byArchive map[string]Archive
	byGroup   map[string]Group

	mlBroad    []Category
	mlKarpathy []Category
	hep        []Category
	legacy     []Category
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared catalog, building it from the embedded table on
// first use. The table ships with the package, so a build failure is a
// programmer error and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := build(rawTable)
		if err != nil {
			panic(errors.Wrap(err, "taxonomy: corrupt embedded category table"))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func build(raw []byte) (*Catalog, error) {
	var t table
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, errors.Wrap(err, "decoding category table")
	}

	c := &Catalog{
		byID:      make(map[string]Category, len(t.Categories)),
		byArchive: make(map[string]Archive),
		byGroup:   make(map[string]Group),
	}

	var archiveOrder []string
	members := make(map[string][]Category)

	for _, r := range t.Categories {
		if r.Group == "" || r.Archive == "" || r.Name == "" || r.Description == "" {
			return nil, errors.Newf("incomplete record for archive %q suffix %q", r.Archive, r.Suffix)
		}
		id := r.Archive
		if r.Suffix != "" {
			id = r.Archive + "." + r.Suffix
		}
		archiveName := r.ArchiveName
		if archiveName == "" {
			archiveName = r.Group
		}
		cat := Category{
			ID:          id,
			Name:        r.Name,
			GroupName:   r.Group,
			ArchiveID:   r.Archive,
			ArchiveName: archiveName,
			Description: r.Description,
			Legacy:      r.Legacy,
		}
		if _, dup := c.byID[id]; dup {
			return nil, errors.Newf("duplicate category id %q", id)
		}
		c.byID[id] = cat
		c.categories = append(c.categories, cat)
		if cat.Legacy {
			c.legacy = append(c.legacy, cat)
		}
		if _, seen := members[r.Archive]; !seen {
			archiveOrder = append(archiveOrder, r.Archive)
		}
		members[r.Archive] = append(members[r.Archive], cat)
	}

	var groupOrder []string
	groupArchives := make(map[string][]Archive)

	for _, aid := range archiveOrder {
		ms := members[aid]
		live := false
		legacyIdx := -1
		for i, m := range ms {
			if !m.Legacy {
				live = true
			}
			if m.ID == aid && m.Legacy {
				legacyIdx = i
			}
			if m.ArchiveName != ms[0].ArchiveName || m.GroupName != ms[0].GroupName {
				return nil, errors.Newf("inconsistent archive metadata for %q", aid)
			}
		}
		if !live {
			// Subsumed legacy archives (cmp-lg, chao-dyn, ...) stay
			// reachable through Category lookups only.
			continue
		}
		a := Archive{
			ID:         aid,
			Name:       ms[0].ArchiveName,
			GroupName:  ms[0].GroupName,
			categories: ms,
			legacy:     legacyIdx,
		}
		c.archives = append(c.archives, a)
		c.byArchive[aid] = a
		if _, seen := groupArchives[a.GroupName]; !seen {
			groupOrder = append(groupOrder, a.GroupName)
		}
		groupArchives[a.GroupName] = append(groupArchives[a.GroupName], a)
	}

	for _, name := range groupOrder {
		g := Group{Name: name, archives: groupArchives[name]}
		c.groups = append(c.groups, g)
		c.byGroup[name] = g
	}

	var err error
	if c.mlBroad, err = c.collect(mlBroadIDs); err != nil {
		return nil, err
	}
	if c.mlKarpathy, err = c.collect(mlKarpathyIDs); err != nil {
		return nil, err
	}
	if c.hep, err = c.collect(hepIDs); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) collect(ids []string) ([]Category, error) {
	out := make([]Category, 0, len(ids))
	for _, id := range ids {
		cat, ok := c.byID[id]
		if !ok {
			return nil, errors.Newf("curated collection references missing id %q", id)
		}
		out = append(out, cat)
	}
	return out, nil
}

// Category returns the category with the given id, covering both modern
// dotted ids ("cs.AI") and bare legacy ids ("cmp-lg").
func (c *Catalog) Category(id string) (Category, error) {
	cat, ok := c.byID[id]
	if !ok {
		return Category{}, errors.Mark(errors.Newf("no category with id %q", id), ErrUnknownCategory)
	}
	return cat, nil
}

// MustCategory is like Category but panics on a lookup miss.
func (c *Catalog) MustCategory(id string) Category {
	cat, err := c.Category(id)
	if err != nil {
		panic(err)
	}
	return cat
}

// Archive returns the live archive with the given id ("cs", "astro-ph").
func (c *Catalog) Archive(id string) (Archive, error) {
	a, ok := c.byArchive[id]
	if !ok {
		return Archive{}, errors.Mark(errors.Newf("no archive with id %q", id), ErrUnknownCategory)
	}
	return a, nil
}

// MustArchive is like Archive but panics on a lookup miss.
func (c *Catalog) MustArchive(id string) Archive {
	a, err := c.Archive(id)
	if err != nil {
		panic(err)
	}
	return a
}

// Group returns the subject group with the given name ("Physics").
func (c *Catalog) Group(name string) (Group, error) {
	g, ok := c.byGroup[name]
	if !ok {
		return Group{}, errors.Mark(errors.Newf("no group named %q", name), ErrUnknownCategory)
	}
	return g, nil
}

// MustGroup is like Group but panics on a lookup miss.
func (c *Catalog) MustGroup(name string) Group {
	g, err := c.Group(name)
	if err != nil {
		panic(err)
	}
	return g
}

// AllCategories returns every category in table order, legacy ids included.
// The returned slice is shared and must not be modified.
func (c *Catalog) AllCategories() []Category { return c.categories }

// AllArchives returns the live archives in table order. Subsumed legacy
// archives are excluded; their categories remain reachable through Category.
func (c *Catalog) AllArchives() []Archive { return c.archives }

// Groups returns the subject groups in table order.
func (c *Catalog) Groups() []Group { return c.groups }

// MLBroad returns the broad machine-learning selection from the arXiv
// machine learning classification guide.
func (c *Catalog) MLBroad() []Category { return c.mlBroad }

// MLKarpathy returns the six categories covered by arxiv-sanity.
func (c *Catalog) MLKarpathy() []Category { return c.mlKarpathy }

// HEP returns the four high-energy-physics categories.
func (c *Catalog) HEP() []Category { return c.hep }

// Legacy returns every retired category id in table order.
func (c *Catalog) Legacy() []Category { return c.legacy }
