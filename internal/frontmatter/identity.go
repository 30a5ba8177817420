package frontmatter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inful/mdfp"
)

const (
	UIDField     = "uid"
	LastmodField = "lastmod"
)

var errNilFields = errors.New("fields map is nil")

// EnsureUID sets a random uid unless fields already has one, and returns the
// uid in effect.
func EnsureUID(fields map[string]any) (string, bool, error) {
	if fields == nil {
		return "", false, errNilFields
	}
	if v, ok := fields[UIDField]; ok && v != nil {
		if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
			return s, false, nil
		}
	}
	id := uuid.NewString()
	fields[UIDField] = id
	return id, true, nil
}

// Fingerprint hashes body together with every field except the fingerprint,
// lastmod and uid. Output is stable across key order and newline style.
func Fingerprint(fields map[string]any, body []byte) (string, error) {
	hashed := make(map[string]any, len(fields))
	for k, v := range fields {
		switch k {
		case mdfp.FingerprintField, LastmodField, UIDField:
			continue
		}
		hashed[k] = v
	}

	raw, err := SerializeYAML(hashed, "\n")
	if err != nil {
		return "", err
	}
	return mdfp.CalculateFingerprintFromParts(trimTrailingNewline(string(raw)), string(body)), nil
}

// UpsertFingerprint stores the current fingerprint in fields. When it differs
// from the stored one, lastmod is set to now (UTC date).
func UpsertFingerprint(fields map[string]any, body []byte, now time.Time) (string, bool, error) {
	if fields == nil {
		return "", false, errNilFields
	}

	fp, err := Fingerprint(fields, body)
	if err != nil {
		return "", false, err
	}

	old, _ := fields[mdfp.FingerprintField].(string)
	if strings.TrimSpace(old) == fp {
		return fp, false, nil
	}
	fields[mdfp.FingerprintField] = fp
	fields[LastmodField] = now.UTC().Format(time.DateOnly)
	return fp, true, nil
}
