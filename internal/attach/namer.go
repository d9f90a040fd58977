package attach

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	manyScores  = regexp.MustCompile(`_{2,}`)
	safeExt     = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)
)

// Name derives the stored file name for a slot's upload:
// {dealer}_feature{slot}_{YYYYMMDD}{ext}. The dealer part has whitespace
// collapsed to underscores and everything outside [A-Za-z0-9_-] dropped, so
// the result can never carry a path separator or traversal sequence. The
// extension keeps the original's case. An empty dealer name falls back to
// "dealer".
func Name(dealerName string, slot int, originalFileName string, at time.Time) string {
	dealer := strings.Join(strings.FieldsFunc(strings.TrimSpace(dealerName), unicode.IsSpace), "_")
	dealer = unsafeChars.ReplaceAllString(dealer, "")
	dealer = strings.Trim(manyScores.ReplaceAllString(dealer, "_"), "_")
	if dealer == "" {
		dealer = "dealer"
	}

	ext := filepath.Ext(filepath.Base(originalFileName))
	if !safeExt.MatchString(ext) {
		ext = ""
	}

	return fmt.Sprintf("%s_feature%d_%s%s", dealer, slot, at.Format("20060102"), ext)
}
