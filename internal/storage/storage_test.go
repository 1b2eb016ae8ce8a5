package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// slotFactories builds each backend against a fresh temp directory.
var slotFactories = map[string]func(t *testing.T) Slot{
	"file": func(t *testing.T) Slot {
		s, err := NewFileSlot(filepath.Join(t.TempDir(), "state"))
		require.NoError(t, err)
		return s
	},
	"sqlite": func(t *testing.T) Slot {
		s, err := OpenSQLite(filepath.Join(t.TempDir(), "state.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	},
	"memory": func(t *testing.T) Slot {
		return NewMemorySlot()
	},
}

func TestSlot_ReadMissing(t *testing.T) {
	for name, newSlot := range slotFactories {
		t.Run(name, func(t *testing.T) {
			_, err := newSlot(t).Read("accessibility-settings")
			require.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestSlot_WriteThenRead(t *testing.T) {
	for name, newSlot := range slotFactories {
		t.Run(name, func(t *testing.T) {
			s := newSlot(t)
			require.NoError(t, s.Write("accessibility-settings", []byte(`{"a":1}`)))

			got, err := s.Read("accessibility-settings")
			require.NoError(t, err)
			require.Equal(t, `{"a":1}`, string(got))
		})
	}
}

func TestSlot_Overwrite(t *testing.T) {
	for name, newSlot := range slotFactories {
		t.Run(name, func(t *testing.T) {
			s := newSlot(t)
			require.NoError(t, s.Write("k", []byte("first")))
			require.NoError(t, s.Write("k", []byte("second")))

			got, err := s.Read("k")
			require.NoError(t, err)
			require.Equal(t, "second", string(got))
		})
	}
}

func TestSlot_InvalidKeys(t *testing.T) {
	for name, newSlot := range slotFactories {
		t.Run(name, func(t *testing.T) {
			s := newSlot(t)
			for _, key := range []string{"", ".", "..", "../escape", "a/b"} {
				require.Error(t, s.Write(key, []byte("x")), "key %q", key)
				_, err := s.Read(key)
				require.Error(t, err, "key %q", key)
			}
		})
	}
}

func TestFileSlot_AtomicWrite(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSlot(dir)
	require.NoError(t, err)

	require.NoError(t, s.Write("k", []byte("one")))
	require.NoError(t, s.Write("k", []byte("two")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files left behind")
	require.Equal(t, "k.json", entries[0].Name())
}

func TestFileSlot_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deeper")
	s, err := NewFileSlot(dir)
	require.NoError(t, err)

	require.NoError(t, s.Write("k", []byte("v")))
	_, err = os.Stat(s.Path("k"))
	require.NoError(t, err)
}

func TestNewFileSlot_EmptyDir(t *testing.T) {
	_, err := NewFileSlot("")
	require.Error(t, err)
}

func TestSQLiteSlot_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Write("k", []byte("kept")))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Read("k")
	require.NoError(t, err)
	require.Equal(t, "kept", string(got))
}

func TestMemorySlot_CopiesValues(t *testing.T) {
	s := NewMemorySlot()
	data := []byte("abc")
	require.NoError(t, s.Write("k", data))
	data[0] = 'z'

	got, err := s.Read("k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))
	require.Equal(t, 1, s.Writes())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open("", filepath.Join(dir, "files"))
	require.NoError(t, err)
	require.IsType(t, &FileSlot{}, s)

	s, err = Open("FILE", filepath.Join(dir, "files"))
	require.NoError(t, err)
	require.IsType(t, &FileSlot{}, s)

	s, err = Open("sqlite", filepath.Join(dir, "state.db"))
	require.NoError(t, err)
	require.IsType(t, &SQLiteSlot{}, s)
	require.NoError(t, s.Close())

	s, err = Open("memory", "")
	require.NoError(t, err)
	require.IsType(t, &MemorySlot{}, s)

	_, err = Open("redis", "")
	require.Error(t, err)
}
