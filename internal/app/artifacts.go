package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wikibrief/wikibrief/internal/workflow"
)

// writeArtifacts writes the sanitized report as plain text and, when
// enabled, renders a PDF copy next to it.
func (a *App) writeArtifacts(sess workflow.Session) error {
	path := sess.ArtifactName()
	if a.cfg.OutDir != "" {
		if err := os.MkdirAll(a.cfg.OutDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		path = filepath.Join(a.cfg.OutDir, path)
	}
	if err := os.WriteFile(path, []byte(sess.Report), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Info().Str("out", path).Msg("wrote report")

	if a.cfg.EnablePDF {
		pdfPath := strings.TrimSuffix(path, ".txt") + ".pdf"
		if err := writeReportPDF(sess, pdfPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", pdfPath).Msg("wrote pdf")
	}
	return nil
}
