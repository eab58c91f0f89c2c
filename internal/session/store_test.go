package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveThenRead(t *testing.T) {
	tests := []struct {
		name     string
		userID   int
		username string
	}{
		{"simple", 7, "alice"},
		{"zero id", 0, "bob"},
		{"large id", 123456789, "user.with-chars_9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(t.TempDir())
			if err := s.Save(tt.userID, tt.username); err != nil {
				t.Fatalf("Save() error: %v", err)
			}
			sess := s.Read()
			if sess == nil {
				t.Fatal("Read() = nil after Save")
			}
			if sess.UserID != tt.userID {
				t.Errorf("UserID = %d, want %d", sess.UserID, tt.userID)
			}
			if sess.Username != tt.username {
				t.Errorf("Username = %q, want %q", sess.Username, tt.username)
			}
		})
	}
}

func TestReadWithoutSave(t *testing.T) {
	s := New(t.TempDir())
	if sess := s.Read(); sess != nil {
		t.Errorf("Read() = %+v, want nil", sess)
	}
}

func TestClear(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Save(7, "alice"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if sess := s.Read(); sess != nil {
		t.Errorf("Read() after Clear = %+v, want nil", sess)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Clear(); err != nil {
		t.Errorf("Clear() on empty store error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear() error: %v", err)
	}
}

func TestReadPartialState(t *testing.T) {
	// Only one of the two entries present reads as no session.
	tests := []struct {
		name string
		keep string
	}{
		{"only userId", "userId"},
		{"only username", "username"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			s := New(dir)
			if err := s.Save(7, "alice"); err != nil {
				t.Fatalf("Save() error: %v", err)
			}
			for _, key := range []string{"userId", "username"} {
				if key != tt.keep {
					if err := os.Remove(filepath.Join(dir, key)); err != nil {
						t.Fatal(err)
					}
				}
			}
			if sess := s.Read(); sess != nil {
				t.Errorf("Read() = %+v, want nil for partial state", sess)
			}
		})
	}
}

func TestReadMalformedUserID(t *testing.T) {
	tests := []struct {
		name  string
		rawID string
	}{
		{"not a number", "abc"},
		{"negative", "-3"},
		{"empty", ""},
		{"float", "7.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "userId"), []byte(tt.rawID), 0600); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(filepath.Join(dir, "username"), []byte("alice"), 0600); err != nil {
				t.Fatal(err)
			}
			s := New(dir)
			if sess := s.Read(); sess != nil {
				t.Errorf("Read() = %+v, want nil for malformed userId %q", sess, tt.rawID)
			}
		})
	}
}

func TestNoopStore(t *testing.T) {
	// A store without a usable dir succeeds silently and holds nothing.
	s := New("")
	if err := s.Save(7, "alice"); err != nil {
		t.Errorf("Save() on no-op store error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Errorf("Clear() on no-op store error: %v", err)
	}
	if sess := s.Read(); sess != nil {
		t.Errorf("Read() on no-op store = %+v, want nil", sess)
	}
}
