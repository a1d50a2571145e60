package history

import (
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "state", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func record(t *testing.T, db *DB, icon string, at time.Time) *Copy {
	t.Helper()
	c := &Copy{Icon: icon, Color: "#ffffff", Size: "large", CopiedAt: at}
	if err := db.Record(c); err != nil {
		t.Fatalf("Record(%s): %v", icon, err)
	}
	return c
}

func TestRecordAssignsID(t *testing.T) {
	db := openTemp(t)
	a := record(t, db, "heart", time.Time{})
	b := record(t, db, "sun", time.Time{})
	if a.ID == 0 || b.ID <= a.ID {
		t.Errorf("IDs = %d, %d; want increasing", a.ID, b.ID)
	}
	if a.CopiedAt.IsZero() {
		t.Error("zero CopiedAt should be set to now")
	}
	if err := db.Record(&Copy{}); err == nil {
		t.Error("Record without an icon should fail")
	}
}

func TestRecent(t *testing.T) {
	db := openTemp(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	record(t, db, "heart", base)
	record(t, db, "sun", base.Add(time.Minute))
	record(t, db, "moon", base.Add(2*time.Minute))
	record(t, db, "heart", base.Add(3*time.Minute))

	got, err := db.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if want := []string{"heart", "moon", "sun"}; !slices.Equal(got, want) {
		t.Errorf("Recent = %v, want %v", got, want)
	}

	got, err = db.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("Recent(2) = %v", got)
	}
}

func TestTop(t *testing.T) {
	db := openTemp(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, icon := range []string{"sun", "heart", "sun", "moon", "heart", "sun"} {
		record(t, db, icon, base.Add(time.Duration(i)*time.Second))
	}

	top, err := db.Top(2)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Top(2) = %+v", top)
	}
	if top[0].Icon != "sun" || top[0].Count != 3 || top[1].Icon != "heart" || top[1].Count != 2 {
		t.Errorf("Top = %+v", top)
	}
	if !top[0].Last.Equal(base.Add(5 * time.Second)) {
		t.Errorf("sun last copied %v, want %v", top[0].Last, base.Add(5*time.Second))
	}
}

func TestLogAndClear(t *testing.T) {
	db := openTemp(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 123, time.UTC)
	c := &Copy{Icon: "zap", Color: "#e94560", Size: "xlarge", RotationDeg: 90, CopiedAt: at}
	if err := db.Record(c); err != nil {
		t.Fatal(err)
	}
	record(t, db, "bell", at.Add(time.Hour))

	log, err := db.Log(10)
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	if len(log) != 2 || log[0].Icon != "bell" {
		t.Fatalf("Log = %+v, want bell first", log)
	}
	got := log[1]
	if got.ID != c.ID || got.Color != c.Color || got.Size != c.Size || got.RotationDeg != 90 || !got.CopiedAt.Equal(at) {
		t.Errorf("Log[1] = %+v, want %+v", got, *c)
	}

	n, err := db.Clear()
	if err != nil || n != 2 {
		t.Errorf("Clear = %d, %v; want 2", n, err)
	}
	if names, _ := db.Recent(5); len(names) != 0 {
		t.Errorf("Recent after Clear = %v", names)
	}
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	record(t, db, "star", time.Time{})
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	if names, err := db.Recent(1); err != nil || !slices.Equal(names, []string{"star"}) {
		t.Errorf("Recent after reopen = %v, %v", names, err)
	}
}
