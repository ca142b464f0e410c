package category

import (
	"testing"

	"github.com/lininnin/mindtrack/internal/models"
)

func TestNew_SeedsDefaults(t *testing.T) {
	d := New()

	for _, name := range []string{"Work", "School", "Personal", "Health"} {
		if !d.Has(name) {
			t.Errorf("default category %q missing", name)
		}
	}
}

func TestAdd(t *testing.T) {
	t.Run("new category", func(t *testing.T) {
		d := New()

		change, added, err := d.Add("Fitness")
		if err != nil {
			t.Fatalf("Add() returned error: %v", err)
		}
		if !added {
			t.Fatal("Add() = false, want true")
		}
		if change.Kind != ChangeAdded || change.Added == nil {
			t.Errorf("unexpected change: %+v", change)
		}
		if change.Added.ID == "" {
			t.Error("added category has no id")
		}
	})

	t.Run("duplicate ignoring case", func(t *testing.T) {
		d := New()

		change, added, err := d.Add("wOrK")
		if err != nil {
			t.Fatalf("Add() returned error: %v", err)
		}
		if added || change != nil {
			t.Errorf("Add() = (%+v, %v), want (nil, false) for duplicate", change, added)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		d := New()

		if _, _, err := d.Add("   "); err == nil {
			t.Error("Add() accepted a blank name")
		}
	})
}

func TestRename(t *testing.T) {
	t.Run("keeps id stable", func(t *testing.T) {
		d := New()
		old, _ := d.GetByName("Work")

		change, ok := d.Rename("Work", "Job")
		if !ok {
			t.Fatal("Rename() = false, want true")
		}
		if change.Kind != ChangeRenamed {
			t.Errorf("change kind = %s, want %s", change.Kind, ChangeRenamed)
		}
		if change.Removed == nil || change.Added == nil {
			t.Fatal("rename change must carry both entries")
		}
		if change.Removed.ID != change.Added.ID || change.Added.ID != old.ID {
			t.Errorf("rename changed the id: removed=%s added=%s want=%s",
				change.Removed.ID, change.Added.ID, old.ID)
		}
		if d.Has("Work") {
			t.Error("old name still present after rename")
		}
		if !d.Has("Job") {
			t.Error("new name missing after rename")
		}
	})

	t.Run("collision with another category", func(t *testing.T) {
		d := New()

		if _, ok := d.Rename("Work", "school"); ok {
			t.Error("Rename() allowed a case-insensitive collision")
		}
		if !d.Has("Work") {
			t.Error("failed rename must leave the directory unchanged")
		}
	})

	t.Run("casing variant of itself", func(t *testing.T) {
		d := New()
		old, _ := d.GetByName("Work")

		change, ok := d.Rename("Work", "WORK")
		if !ok {
			t.Fatal("Rename() to a casing variant of itself must succeed")
		}
		if change.Added.ID != old.ID {
			t.Error("casing rename changed the id")
		}
		got, _ := d.GetByName("work")
		if got.Name != "WORK" {
			t.Errorf("display name = %q, want %q", got.Name, "WORK")
		}
	})

	t.Run("absent old name", func(t *testing.T) {
		d := New()

		if _, ok := d.Rename("Nope", "Whatever"); ok {
			t.Error("Rename() of an absent name must fail silently")
		}
	})
}

func TestRemove(t *testing.T) {
	d := New()

	change, ok := d.Remove("work")
	if !ok {
		t.Fatal("Remove() = false, want true")
	}
	if change.Kind != ChangeRemoved || change.Removed == nil {
		t.Errorf("unexpected change: %+v", change)
	}
	if d.Has("Work") {
		t.Error("category still present after remove")
	}

	if _, ok := d.Remove("work"); ok {
		t.Error("second Remove() must fail silently")
	}
}

func TestNameByID(t *testing.T) {
	d := New()
	work, _ := d.GetByName("Work")

	if got := d.NameByID(work.ID); got != "Work" {
		t.Errorf("NameByID() = %q, want %q", got, "Work")
	}
	if got := d.NameByID(""); got != "-" {
		t.Errorf("NameByID(empty) = %q, want %q", got, "-")
	}
	if got := d.NameByID("no-such-id"); got != "-" {
		t.Errorf("NameByID(unknown) = %q, want %q", got, "-")
	}
}

func TestReload_EnsuresDefaults(t *testing.T) {
	d := New()
	d.Reload([]models.Category{{ID: "c1", Name: "Custom"}})

	if !d.Has("Custom") {
		t.Error("reloaded category missing")
	}
	if !d.Has("Work") {
		t.Error("defaults not re-ensured after reload")
	}
}

func TestNames_SortedCaseInsensitively(t *testing.T) {
	d := New()
	d.Reload([]models.Category{
		{ID: "1", Name: "beta"},
		{ID: "2", Name: "Alpha"},
	})

	names := d.Names()
	if len(names) < 2 || names[0] != "Alpha" || names[1] != "beta" {
		t.Errorf("Names() = %v, want Alpha before beta", names)
	}
}
