package power

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadTable(t *testing.T) {
	const input = `# k [h/Mpc]   P(k) [(Mpc/h)^3]

0.01  1000
0.1   100   ignored trailing column
# mid-table comment
1     1
10    0.01
`

	tab, err := ReadTable(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTable error: %v", err)
	}

	wantK := []float64{0.01, 0.1, 1, 10}
	wantP := []float64{1000, 100, 1, 0.01}

	if tab.Len() != len(wantK) {
		t.Fatalf("Len=%d, want %d", tab.Len(), len(wantK))
	}
	for i := range wantK {
		if tab.K[i] != wantK[i] || tab.P[i] != wantP[i] {
			t.Fatalf("row %d: (%v, %v), want (%v, %v)", i, tab.K[i], tab.P[i], wantK[i], wantP[i])
		}
	}
}

func TestReadTableRejectsMalformedRows(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"single column", "0.01 1\n0.1\n"},
		{"bad wavenumber", "0.01 1\nabc 2\n"},
		{"bad power", "0.01 1\n0.1 xyz\n"},
		{"empty table", "# only comments\n"},
		{"unsorted", "0.1 1\n0.01 2\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadTable(strings.NewReader(tc.input))
			if !errors.Is(err, ErrBadTable) {
				t.Fatalf("expected ErrBadTable, got %v", err)
			}
		})
	}
}

func TestReadTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plin.dat")
	content := "# test spectrum\n0.01 1000\n0.1 100\n1 1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tab, err := ReadTableFile(path)
	if err != nil {
		t.Fatalf("ReadTableFile error: %v", err)
	}
	if tab.Len() != 3 {
		t.Fatalf("Len=%d, want 3", tab.Len())
	}

	_, err = ReadTableFile(filepath.Join(t.TempDir(), "missing.dat"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
