package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weekboard.json")
	content := `{"version":1,"events":{"2025-11-03":[{"id":"a","title":"Run","emoji":"🏃","completed":false,"date":"2025-11-03"}]}}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	storePath := setupTestStore(t)
	mgr := NewManager(storePath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Fatalf("backup file was not created: %s", backupPath)
	}

	original, _ := os.ReadFile(storePath)
	copied, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(copied) != string(original) {
		t.Error("backup content differs from storage file")
	}
}

func TestCreateBackup_MissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected CreateBackup to fail for missing storage file")
	}
}

func TestListBackups(t *testing.T) {
	storePath := setupTestStore(t)
	mgr := NewManager(storePath)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected 0 backups initially, got %d", len(backups))
	}

	for i := 0; i < 3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Errorf("expected 3 backups, got %d", len(backups))
	}
	for _, b := range backups {
		if b.Path == "" || b.Size == 0 || b.Timestamp.IsZero() {
			t.Errorf("backup has incomplete info: %+v", b)
		}
	}
}

func TestUniqueBackupFilenames(t *testing.T) {
	storePath := setupTestStore(t)
	mgr := NewManager(storePath)

	paths := make(map[string]bool)
	for i := 0; i < 5; i++ {
		backupPath, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		name := filepath.Base(backupPath)
		if paths[name] {
			t.Errorf("duplicate backup filename: %s", name)
		}
		paths[name] = true
	}
}

func TestBackupRotation(t *testing.T) {
	storePath := setupTestStore(t)
	mgr := NewManager(storePath)

	for i := 0; i < MaxBackups+3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups not sorted newest first at index %d", i)
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	storePath := setupTestStore(t)
	mgr := NewManager(storePath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Modify the storage file, then restore the original.
	modified := `{"version":1,"events":{}}`
	if err := os.WriteFile(storePath, []byte(modified), 0600); err != nil {
		t.Fatalf("failed to modify storage: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	restored, _ := os.ReadFile(storePath)
	if string(restored) == modified {
		t.Error("storage was not restored from backup")
	}
}

func TestRestoreBackup_CreatesPreRestoreBackup(t *testing.T) {
	storePath := setupTestStore(t)
	mgr := NewManager(storePath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	before, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	after, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Errorf("expected %d backups after restore, got %d", len(before)+1, len(after))
	}
}

func TestVerifyBackup_RejectsGarbage(t *testing.T) {
	storePath := setupTestStore(t)
	mgr := NewManager(storePath)

	invalidPath := filepath.Join(t.TempDir(), "invalid.json")
	if err := os.WriteFile(invalidPath, []byte("not a board"), 0600); err != nil {
		t.Fatalf("failed to create invalid file: %v", err)
	}

	if err := mgr.RestoreBackup(invalidPath); err == nil {
		t.Error("expected restore of invalid backup to fail")
	}
}

func TestVerifyBackup_SQLiteHeader(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "weekboard.db")
	if err := os.WriteFile(storePath, append([]byte("SQLite format 3\x00"), make([]byte, 100)...), 0600); err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}

	mgr := NewManager(storePath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if err := mgr.verifyBackup(backupPath); err != nil {
		t.Errorf("verifyBackup failed for valid db backup: %v", err)
	}

	badPath := filepath.Join(dir, "bad.db")
	if err := os.WriteFile(badPath, []byte("nope"), 0600); err != nil {
		t.Fatalf("failed to create bad db: %v", err)
	}
	if err := mgr.verifyBackup(badPath); err == nil {
		t.Error("verifyBackup should reject a non-SQLite file")
	}
}
