package variance

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const profileHeader = "# r sigma2 dln_sigma2_dln_r"

// WriteProfile writes p as a three-column text table (radius, variance,
// log-derivative) with a leading # header line, readable back by generic
// column parsers.
func WriteProfile(w io.Writer, p *Profile) error {
	if p == nil {
		return errNilProfile
	}
	if _, err := fmt.Fprintln(w, profileHeader); err != nil {
		return fmt.Errorf("variance: write profile: %w", err)
	}
	for i := range p.R {
		_, err := fmt.Fprintf(w, "%.12e %.12e %.12e\n",
			p.R[i], p.Sigma2[i], p.DlnSigma2DlnR[i])
		if err != nil {
			return fmt.Errorf("variance: write profile: %w", err)
		}
	}
	return nil
}

// WriteProfileFile writes p to path, creating or truncating the file.
func WriteProfileFile(path string, p *Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("variance: write profile: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := WriteProfile(bw, p); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("variance: write profile: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("variance: write profile: %w", err)
	}
	return nil
}

// Run computes the profile and, when OutputPath is configured, persists it.
// A persistence failure comes back together with the computed profile, so
// the caller keeps the in-memory result even when the write failed.
func (c *Calculator) Run() (*Profile, error) {
	p, err := c.Calculate()
	if err != nil {
		return nil, err
	}
	if c.cfg.OutputPath == "" {
		return p, nil
	}
	if err := WriteProfileFile(c.cfg.OutputPath, p); err != nil {
		return p, err
	}
	return p, nil
}
