package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// unsafeChars matches everything stripped from an uploaded filename.
var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// UniqueName builds a collision-resistant artifact name from an uploaded
// filename:
//
//	{prefix}{sanitizedStem}_{YYYYMMDD-HHMMSS}_{8 hex}{ext}
//
// The timestamp is UTC at second precision; the hex suffix comes from a
// crypto-quality source, so two calls within the same second still differ.
// A filename without an extension gets ".jpg"; an empty stem after
// sanitization becomes "upload".
func UniqueName(originalFilename, prefix string) string {
	base := sanitize(originalFilename)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "upload"
	}
	if ext == "" {
		ext = ".jpg"
	}
	stamp := time.Now().UTC().Format("20060102-150405")
	return fmt.Sprintf("%s%s_%s_%s%s", prefix, stem, stamp, randomSuffix(), ext)
}

// sanitize strips directory components (either separator style) and any
// character outside [A-Za-z0-9._-].
func sanitize(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(name)
	return unsafeChars.ReplaceAllString(name, "")
}

func randomSuffix() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// A failed crypto/rand read is effectively unreachable; degrade to
		// the clock rather than failing the request.
		return fmt.Sprintf("%08x", uint32(time.Now().UnixNano()))
	}
	return hex.EncodeToString(b[:])
}

// AllowedName reports whether filename carries one of the accepted raster
// extensions (png, jpg, jpeg), case-insensitively.
func AllowedName(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}
