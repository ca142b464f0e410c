// Package category implements the process-wide category directory: the
// single authority for category names and ids. Names are unique under
// case-insensitive comparison. The directory never touches referencing
// entities itself; rename and remove return an explicit Change that the
// cascade coordinator applies to the stores, so the remove-then-add
// ordering of a rename is a visible contract rather than a side effect of
// observer registration.
//
// The directory is not safe for concurrent use; all mutation is expected
// to flow through the single command path.
package category

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/lininnin/mindtrack/internal/constants"
	"github.com/lininnin/mindtrack/internal/models"
)

// ChangeKind describes what a directory mutation did.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeRenamed ChangeKind = "renamed"
	ChangeRemoved ChangeKind = "removed"
)

// Change is the explicit notification result of a directory mutation. For
// a rename, Removed carries the old entry and Added the new one; consumers
// must treat the pair as one logical rename (the category id is identical
// on both sides).
type Change struct {
	Kind    ChangeKind
	Removed *models.Category
	Added   *models.Category
}

// Directory is the in-memory registry. Entries are keyed by the lowercased
// name; ids stay stable across renames.
type Directory struct {
	byKey map[string]models.Category
}

// New returns a directory seeded with the default categories.
func New() *Directory {
	d := &Directory{byKey: make(map[string]models.Category)}
	d.EnsureDefaults()
	return d
}

// key normalizes a name for case-insensitive lookup.
func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// EnsureDefaults re-inserts any missing default category. Called on
// construction and whenever the set is reloaded from storage, so a wiped
// store never leaves the app without categories.
func (d *Directory) EnsureDefaults() {
	for _, name := range constants.DefaultCategories {
		if _, ok := d.byKey[key(name)]; !ok {
			d.byKey[key(name)] = models.Category{ID: uuid.New().String(), Name: name}
		}
	}
}

// Reload replaces the directory contents with the given categories, then
// re-ensures the defaults.
func (d *Directory) Reload(categories []models.Category) {
	d.byKey = make(map[string]models.Category, len(categories))
	for _, c := range categories {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		d.byKey[key(c.Name)] = c
	}
	d.EnsureDefaults()
}

// Add inserts a new category. It returns an error for a blank name, and
// (nil, false) without error when an equal-ignoring-case name already
// exists.
func (d *Directory) Add(name string) (*Change, bool, error) {
	if strings.TrimSpace(name) == "" {
		return nil, false, fmt.Errorf("category name cannot be blank")
	}
	if _, ok := d.byKey[key(name)]; ok {
		return nil, false, nil
	}
	cat := models.Category{ID: uuid.New().String(), Name: strings.TrimSpace(name)}
	d.byKey[key(name)] = cat
	return &Change{Kind: ChangeAdded, Added: &cat}, true, nil
}

// Rename replaces oldName with newName, keeping the id stable. It fails
// silently (nil, false) when oldName is absent, newName is blank, or
// newName collides case-insensitively with a different existing category.
// Renaming a category to a casing variant of itself is allowed.
func (d *Directory) Rename(oldName, newName string) (*Change, bool) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, false
	}

	old, ok := d.byKey[key(oldName)]
	if !ok {
		return nil, false
	}

	if existing, ok := d.byKey[key(newName)]; ok && existing.ID != old.ID {
		return nil, false
	}

	// Remove-then-add in one call so observers never see an intermediate
	// state across the boundary.
	delete(d.byKey, key(oldName))
	renamed := models.Category{ID: old.ID, Name: newName}
	d.byKey[key(newName)] = renamed

	return &Change{Kind: ChangeRenamed, Removed: &old, Added: &renamed}, true
}

// Remove deletes a category by name. It fails silently (nil, false) when
// the name is absent. Referencing entities are not touched here; the
// returned Change carries the removed entry so the cascade coordinator can
// clear references.
func (d *Directory) Remove(name string) (*Change, bool) {
	old, ok := d.byKey[key(name)]
	if !ok {
		return nil, false
	}
	delete(d.byKey, key(name))
	return &Change{Kind: ChangeRemoved, Removed: &old}, true
}

// Has reports whether a category with the given name exists
// (case-insensitive).
func (d *Directory) Has(name string) bool {
	_, ok := d.byKey[key(name)]
	return ok
}

// GetByName returns the category with the given name (case-insensitive).
func (d *Directory) GetByName(name string) (models.Category, bool) {
	c, ok := d.byKey[key(name)]
	return c, ok
}

// GetByID returns the category with the given id.
func (d *Directory) GetByID(id string) (models.Category, bool) {
	for _, c := range d.byKey {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// NameByID resolves an id to a display name, returning the uncategorized
// label for an empty or unresolvable id.
func (d *Directory) NameByID(id string) string {
	if id == "" {
		return constants.UncategorizedLabel
	}
	if c, ok := d.GetByID(id); ok {
		return c.Name
	}
	return constants.UncategorizedLabel
}

// All returns every category, sorted case-insensitively by name.
func (d *Directory) All() []models.Category {
	cats := make([]models.Category, 0, len(d.byKey))
	for _, c := range d.byKey {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		return strings.ToLower(cats[i].Name) < strings.ToLower(cats[j].Name)
	})
	return cats
}

// Names returns every category name in case-insensitive alphabetical order.
func (d *Directory) Names() []string {
	cats := d.All()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return names
}
