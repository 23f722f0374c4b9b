package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"plates", "wells", "coords", "convert", "rotate", "validate", "browse", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestPlateFlagsResolveBuiltin(t *testing.T) {
	flags := plateFlags{plate: "384-well"}
	def, err := flags.resolve()
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if *def.RowCount != 16 || *def.ColumnCount != 24 {
		t.Errorf("resolve() dimensions = %dx%d, want 16x24", *def.RowCount, *def.ColumnCount)
	}
}

func TestPlateFlagsResolveUnknown(t *testing.T) {
	flags := plateFlags{plate: "7-well"}
	if _, err := flags.resolve(); err == nil {
		t.Error("resolve() of an unknown format succeeded")
	}
}

func TestPlateFlagsFileWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plate.toml")
	if err := os.WriteFile(path, []byte("rows = 2\ncolumns = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	flags := plateFlags{plate: "96-well", file: path}
	def, err := flags.resolve()
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if *def.RowCount != 2 || *def.ColumnCount != 3 {
		t.Errorf("resolve() did not prefer the file over --plate")
	}
}

func TestParseWellAcceptsLowercase(t *testing.T) {
	row, col, err := parseWell("h12")
	if err != nil {
		t.Fatalf("parseWell(\"h12\") error = %v", err)
	}
	if row != 7 || col != 11 {
		t.Errorf("parseWell(\"h12\") = (%d, %d), want (7, 11)", row, col)
	}
}
