// ABOUTME: Backup and restore functionality for the syscolor config file
// ABOUTME: Manages <home>/backups/ so a config reset can be undone
package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNoBackup is returned by Restore when no backup has been saved
var ErrNoBackup = errors.New("no config backup found")

// EnsureBackupDir creates the backup directory if it doesn't exist
// Returns the path to the backup directory
func EnsureBackupDir(home string) (string, error) {
	backupDir := filepath.Join(home, "backups")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", err
	}
	return backupDir, nil
}

// Path returns where the backup of the named file is kept
func Path(home, name string) string {
	return filepath.Join(home, "backups", name+".bak")
}

// Save copies src into the backup directory, replacing any earlier backup.
// Returns the backup path, or "" when src does not exist.
func Save(home, src string) (string, error) {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return "", nil
	}

	if _, err := EnsureBackupDir(home); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	backupPath := Path(home, filepath.Base(src))
	if err := copyFile(src, backupPath); err != nil {
		return "", err
	}
	return backupPath, nil
}

// Restore copies the backup of dst back over dst
func Restore(home, dst string) error {
	backupPath := Path(home, filepath.Base(dst))
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return ErrNoBackup
	}
	return copyFile(backupPath, dst)
}

func copyFile(from, to string) error {
	src, err := os.Open(from)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", from, err)
	}
	defer src.Close()

	dst, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", to, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to copy %s: %w", from, err)
	}
	return dst.Close()
}
