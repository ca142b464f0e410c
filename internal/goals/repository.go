// Package goals implements the file-backed goal repository: a master list
// of goals plus two membership lists ("current" and "today") persisted
// across three files. The membership lists hold goal names only and are
// resolved through the master map on every read, so a goal mutated via the
// today view is the same object seen through the master list.
package goals

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/lininnin/mindtrack/internal/models"
	"github.com/lininnin/mindtrack/internal/validation"
)

// Repository owns the three goal files. It is not safe for concurrent use;
// every method performs a full load-mutate-store cycle on the files it
// touches, relying on the single-writer command path.
type Repository struct {
	masterPath  string
	currentPath string
	todayPath   string

	goals   map[string]*models.Goal // keyed by exact name
	current []string                // goal names, insertion order
	today   []string                // goal names, insertion order
}

// NewRepository loads the repository from the three files. Missing or
// empty files are treated as empty collections, never as errors, so a
// fresh install needs no init step for goals.
func NewRepository(masterPath, currentPath, todayPath string) (*Repository, error) {
	r := &Repository{
		masterPath:  masterPath,
		currentPath: currentPath,
		todayPath:   todayPath,
		goals:       make(map[string]*models.Goal),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) load() error {
	var master []models.Goal
	if err := readJSONFile(r.masterPath, &master); err != nil {
		return fmt.Errorf("failed to load goal list: %w", err)
	}
	r.goals = make(map[string]*models.Goal, len(master))
	for i := range master {
		g := master[i]
		r.goals[g.Name] = &g
	}

	if err := readJSONFile(r.currentPath, &r.current); err != nil {
		return fmt.Errorf("failed to load current goals: %w", err)
	}
	if err := readJSONFile(r.todayPath, &r.today); err != nil {
		return fmt.Errorf("failed to load today goals: %w", err)
	}

	// Membership entries whose goal no longer exists are dropped on the
	// next write; resolution simply skips them until then.
	return nil
}

// readJSONFile unmarshals the file into v, leaving v untouched when the
// file is absent or empty.
func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func writeJSONFile(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (r *Repository) saveMaster() error {
	master := r.All()
	return writeJSONFile(r.masterPath, master)
}

func (r *Repository) saveCurrent() error {
	return writeJSONFile(r.currentPath, r.current)
}

func (r *Repository) saveToday() error {
	return writeJSONFile(r.todayPath, r.today)
}

// Save upserts a goal into the master list keyed by name and persists the
// master file. Membership files are untouched.
func (r *Repository) Save(goal models.Goal) error {
	if err := validation.ValidateGoal(goal); err != nil {
		return err
	}
	if existing, ok := r.goals[goal.Name]; ok {
		*existing = goal
	} else {
		g := goal
		r.goals[goal.Name] = &g
	}
	return r.saveMaster()
}

// Get returns the canonical goal object for the given name. Mutations
// through the returned pointer must be followed by Persist.
func (r *Repository) Get(name string) (*models.Goal, bool) {
	g, ok := r.goals[name]
	return g, ok
}

// Persist writes the master list. Use after mutating a goal obtained from
// Get or one of the membership views.
func (r *Repository) Persist() error {
	return r.saveMaster()
}

// All returns a copy of every goal, sorted by name.
func (r *Repository) All() []models.Goal {
	out := make([]models.Goal, 0, len(r.goals))
	for _, g := range r.goals {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AddToCurrent adds the named goal to the current-goals membership list.
// Returns an error when no such goal exists; adding an existing member is
// a no-op.
func (r *Repository) AddToCurrent(name string) error {
	if _, ok := r.goals[name]; !ok {
		return fmt.Errorf("goal not found: %s", name)
	}
	if contains(r.current, name) {
		return nil
	}
	r.current = append(r.current, name)
	return r.saveCurrent()
}

// AddToToday adds the named goal to the today membership list. Returns an
// error when no such goal exists; adding an existing member is a no-op.
func (r *Repository) AddToToday(name string) error {
	if _, ok := r.goals[name]; !ok {
		return fmt.Errorf("goal not found: %s", name)
	}
	if contains(r.today, name) {
		return nil
	}
	r.today = append(r.today, name)
	return r.saveToday()
}

// RemoveFromToday drops the named goal from the today list. Removing a
// non-member is a no-op, not an error.
func (r *Repository) RemoveFromToday(name string) error {
	trimmed := remove(r.today, name)
	if len(trimmed) == len(r.today) {
		return nil
	}
	r.today = trimmed
	return r.saveToday()
}

// RemoveFromCurrent drops the named goal from the current list. Removing a
// non-member is a no-op, not an error.
func (r *Repository) RemoveFromCurrent(name string) error {
	trimmed := remove(r.current, name)
	if len(trimmed) == len(r.current) {
		return nil
	}
	r.current = trimmed
	return r.saveCurrent()
}

// UpdateTodayGoalProgress sets the named goal's progress to an absolute
// value, marking it completed when the new progress reaches the frequency.
// Only the master file is persisted; progress never changes membership.
func (r *Repository) UpdateTodayGoalProgress(name string, newProgress int) error {
	g, ok := r.goals[name]
	if !ok {
		return fmt.Errorf("goal not found: %s", name)
	}
	g.SetProgress(newProgress)
	return r.saveMaster()
}

// RecordCompletion increments the named goal's progress by one.
func (r *Repository) RecordCompletion(name string) error {
	g, ok := r.goals[name]
	if !ok {
		return fmt.Errorf("goal not found: %s", name)
	}
	g.RecordCompletion()
	return r.saveMaster()
}

// MinusProgress decrements the named goal's progress by one, clamping at
// zero.
func (r *Repository) MinusProgress(name string) error {
	g, ok := r.goals[name]
	if !ok {
		return fmt.Errorf("goal not found: %s", name)
	}
	g.MinusProgress()
	return r.saveMaster()
}

// DeleteByName removes the goal from the master list and both membership
// lists, persisting all three files. Deleting an absent name is a no-op,
// so the operation is idempotent.
func (r *Repository) DeleteByName(name string) error {
	delete(r.goals, name)
	r.current = remove(r.current, name)
	r.today = remove(r.today, name)

	if err := r.saveMaster(); err != nil {
		return err
	}
	if err := r.saveCurrent(); err != nil {
		return err
	}
	return r.saveToday()
}

// CurrentGoals resolves the current membership list through the master
// map. Entries whose goal no longer exists are skipped.
func (r *Repository) CurrentGoals() []*models.Goal {
	return r.resolve(r.current)
}

// TodayGoals resolves the today membership list through the master map.
func (r *Repository) TodayGoals() []*models.Goal {
	return r.resolve(r.today)
}

// TodayGoal returns the primary focus goal: the first entry of the today
// list.
func (r *Repository) TodayGoal() (*models.Goal, bool) {
	goals := r.TodayGoals()
	if len(goals) == 0 {
		return nil, false
	}
	return goals[0], true
}

func (r *Repository) resolve(names []string) []*models.Goal {
	out := make([]*models.Goal, 0, len(names))
	for _, name := range names {
		if g, ok := r.goals[name]; ok {
			out = append(out, g)
		}
	}
	return out
}

// FindAvailable returns goals whose date range contains today and which
// are not yet completed. today is a YYYY-MM-DD date string.
func (r *Repository) FindAvailable(today string) []models.Goal {
	var out []models.Goal
	for _, g := range r.All() {
		if g.Available(today) {
			out = append(out, g)
		}
	}
	return out
}

// FindByTargetRange returns goals whose frequency lies in [low, high]
// inclusive.
func (r *Repository) FindByTargetRange(low, high int) []models.Goal {
	var out []models.Goal
	for _, g := range r.All() {
		if g.Frequency >= low && g.Frequency <= high {
			out = append(out, g)
		}
	}
	return out
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func remove(names []string, name string) []string {
	out := names[:0:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
